// Package kernel contains shared value objects used across the domain model.
// These are the building blocks aggregates compose: strongly typed identifiers
// and other primitives that enforce their own invariants on construction.
//
// Kernel types are immutable value objects. They are compared by value,
// validated at the boundary, and safe to share between goroutines.
package kernel
