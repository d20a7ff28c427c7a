package dataio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedRecord is returned for unreadable or invalid input rows.
var ErrMalformedRecord = errors.New("dataio: malformed record")

// table is a header-indexed CSV stream.
type table struct {
	r    *csv.Reader
	cols map[string]int
	line int
}

// newTable reads the header and checks that every name in required is present.
func newTable(r io.Reader, required ...string) (*table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header", ErrMalformedRecord)
		}
		return nil, fmt.Errorf("%w: line 1: %v", ErrMalformedRecord, err)
	}
	t := &table{r: cr, cols: make(map[string]int, len(header)), line: 1}
	for i, name := range header {
		t.cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := t.cols[name]; !ok {
			return nil, fmt.Errorf("%w: header lacks column %q", ErrMalformedRecord, name)
		}
	}

	return t, nil
}

// next returns the following record, or io.EOF.
func (t *table) next() ([]string, error) {
	rec, err := t.r.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	t.line++
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, t.line, err)
	}

	return rec, nil
}

// int64Field parses column name of rec as a non-negative integer.
func (t *table) int64Field(rec []string, name string) (int64, error) {
	raw := strings.TrimSpace(rec[t.cols[name]])
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d, column %s: invalid integer %q", ErrMalformedRecord, t.line, name, raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: line %d, column %s: negative value %d", ErrMalformedRecord, t.line, name, v)
	}

	return v, nil
}

// maxInt is the largest id accepted by intField.
var maxInt int64 = math.MaxInt

// intField is int64Field narrowed to int. Values that do not fit an int on
// this platform are rejected rather than wrapped.
func (t *table) intField(rec []string, name string) (int, error) {
	v, err := t.int64Field(rec, name)
	if err != nil {
		return 0, err
	}
	if v > maxInt {
		return 0, fmt.Errorf("%w: line %d, column %s: %d exceeds %d", ErrMalformedRecord, t.line, name, v, maxInt)
	}

	return int(v), nil
}

// writeCSV writes header and rows and flushes.
func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}

	return cw.Error()
}

func itoa(v int) string     { return strconv.Itoa(v) }
func i64toa(v int64) string { return strconv.FormatInt(v, 10) }
