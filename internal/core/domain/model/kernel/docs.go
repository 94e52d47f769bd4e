// Package kernel holds the value objects shared by every aggregate of the
// fulfillment core.
//
// The package includes:
//   - UUID: identifier wrapper around github.com/google/uuid with zero-value detection
//   - ProductRef: tagged reference to a package or a campaign in the catalog
//   - Money: a non-negative amount in minor currency units
//
// All values are immutable and safe for concurrent use.
package kernel
