// Package kernel provides core domain primitives shared by every aggregate
// in the dispatch system.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - GeoPoint: a value object for geographic coordinates with interpolation
//
// These primitives enforce domain invariants at construction time. They are
// immutable and safe for concurrent use.
package kernel
