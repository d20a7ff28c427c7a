package plan

import "fmt"

// Validate checks the size pattern against numDistricts.
//
// Rules (all ErrInvalidConfiguration):
//   - numDistricts must be positive;
//   - the pattern must be non-empty and every entry positive;
//   - the entries must sum to numDistricts exactly.
func (t TargetSizes) Validate(numDistricts int) error {
	if numDistricts <= 0 {
		return fmt.Errorf("%w: numDistricts=%d must be positive", ErrInvalidConfiguration, numDistricts)
	}
	if len(t) == 0 {
		return fmt.Errorf("%w: target sizes are empty", ErrInvalidConfiguration)
	}
	for i, v := range t {
		if v <= 0 {
			return fmt.Errorf("%w: target size #%d is %d, must be positive", ErrInvalidConfiguration, i, v)
		}
	}
	if s := t.Sum(); s != numDistricts {
		return fmt.Errorf("%w: target sizes sum to %d, want numDistricts=%d", ErrInvalidConfiguration, s, numDistricts)
	}

	return nil
}

// Districts returns the number of distinct district ids used.
func (a Assignment) Districts() int {
	seen := make(map[int]struct{})
	for _, d := range a {
		seen[d] = struct{}{}
	}

	return len(seen)
}

// Validate checks that every district id lies in [0, numDistricts) and that
// exactly numDistricts distinct ids are used.
func (a Assignment) Validate(numDistricts int) error {
	if len(a) == 0 {
		return fmt.Errorf("%w: baseline assignment is empty", ErrInvalidConfiguration)
	}
	for u, d := range a {
		if d < 0 || d >= numDistricts {
			return fmt.Errorf("%w: unit %d assigned to district %d outside [0,%d)",
				ErrInvalidConfiguration, u, d, numDistricts)
		}
	}
	if n := a.Districts(); n != numDistricts {
		return fmt.Errorf("%w: assignment uses %d districts, want numDistricts=%d",
			ErrInvalidConfiguration, n, numDistricts)
	}

	return nil
}

// ValidateUnits checks the base-unit records against the assignment:
// unique ids, non-negative counts, and every unit assigned.
func ValidateUnits(units []BaseUnit, a Assignment) error {
	seen := make(map[int]struct{}, len(units))
	for _, u := range units {
		if _, dup := seen[u.ID]; dup {
			return fmt.Errorf("%w: duplicate unit id %d", ErrInvalidInput, u.ID)
		}
		seen[u.ID] = struct{}{}
		if u.Population < 0 || u.VotesA < 0 || u.VotesB < 0 {
			return fmt.Errorf("%w: unit %d has a negative count", ErrInvalidInput, u.ID)
		}
		if _, ok := a[u.ID]; !ok {
			return fmt.Errorf("%w: unit %d missing from baseline assignment", ErrInvalidInput, u.ID)
		}
	}

	return nil
}

// Validate runs every configuration and input check in order:
// target sizes, assignment, then units.
func Validate(units []BaseUnit, a Assignment, targets TargetSizes, numDistricts int) error {
	if err := targets.Validate(numDistricts); err != nil {
		return err
	}
	if err := a.Validate(numDistricts); err != nil {
		return err
	}

	return ValidateUnits(units, a)
}
