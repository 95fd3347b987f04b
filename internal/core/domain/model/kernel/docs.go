// Package kernel provides core domain primitives for the shipment-tracking
// service. It implements the fundamental building blocks shared by every
// aggregate in the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
