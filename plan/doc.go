// Package plan holds the inputs shared by every stage of the gluing pipeline.
//
// A run is described by:
//
//   - []BaseUnit        precinct-level population and two-party votes
//   - Assignment        unit id → baseline district id in [0, N)
//   - TargetSizes       ordered super-district sizes summing to N
//
// Validation is explicit and happens before any gluing attempt:
//
//	TargetSizes.Validate(N)  → ErrInvalidConfiguration
//	Assignment.Validate(N)   → ErrInvalidConfiguration
//	ValidateUnits(units, a)  → ErrInvalidInput
//
// Compose chains unit → district → super-district for export.
package plan
