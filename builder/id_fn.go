// SPDX-License-Identifier: MIT
// Package: superdistricts/builder
//
// id_fn.go - vertex id schemes.

package builder

// IDFn maps a constructor-local index (0..n-1) to a vertex id.
type IDFn func(idx int) int

// DefaultIDFn is the identity: index i becomes vertex i.
func DefaultIDFn(idx int) int { return idx }

// OffsetIDFn returns idx + k.
func OffsetIDFn(k int) IDFn {
	return func(idx int) int { return idx + k }
}

// StrideIDFn returns base + idx*stride. Useful to interleave two fixtures.
func StrideIDFn(base, stride int) IDFn {
	return func(idx int) int { return base + idx*stride }
}
