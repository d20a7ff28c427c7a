package plan

import "fmt"

// Compose maps every base unit directly to its super-district by chaining
// unit → district → super-district. It returns ErrUnassignedDistrict if a
// district used by a unit has no super-district.
func Compose(a Assignment, districtToSuper map[int]int) (map[int]int, error) {
	out := make(map[int]int, len(a))
	for u, d := range a {
		s, ok := districtToSuper[d]
		if !ok {
			return nil, fmt.Errorf("%w: unit %d in district %d", ErrUnassignedDistrict, u, d)
		}
		out[u] = s
	}

	return out, nil
}
