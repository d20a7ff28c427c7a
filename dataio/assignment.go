package dataio

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// ReadMapping parses a JSON object with integer-valued entries and integer
// keys, such as a baseline plan or a district → super-district map.
func ReadMapping(r io.Reader) (map[int]int, error) {
	var raw map[string]int
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}

	out := make(map[int]int, len(raw))
	for k, v := range raw {
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q is not an integer", ErrMalformedRecord, k)
		}
		out[id] = v
	}

	return out, nil
}

// WriteMapping writes m as an indented JSON object keyed by decimal ids.
// encoding/json orders keys, so output is stable for equal maps.
func WriteMapping(w io.Writer, m map[int]int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(m)
}
