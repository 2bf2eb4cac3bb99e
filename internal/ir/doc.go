// Package ir provides the program and intermediate representation types for QSGAL.
//
// This package contains type definitions and serialization helpers only.
// All other internal packages import ir; ir imports nothing internal. This
// keeps IR the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Program (parser output) and IR (analyzer output) share a shape but are
//     distinct types; converting between them always copies
//   - Op, Geometry and AttractorKind are closed tag sets marshaled as strings
//   - Every Command carries exactly one float64 operand
//   - All JSON tags use snake_case
package ir
