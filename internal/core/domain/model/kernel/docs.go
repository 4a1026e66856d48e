// Package kernel contains shared value objects used across the domain model:
// entity identifiers, geographic coordinates, and service time windows.
//
// All types in this package are immutable. The zero value of each type is
// invalid and fails Validate; instances must be created through the provided
// constructors.
package kernel
