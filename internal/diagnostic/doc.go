// Package diagnostic provides structured errors and warnings produced
// while compiling binding plans and validating overlay files.
//
// Key capabilities:
//   - Member-level binding errors (duplicate wire names, qualifier
//     conflicts, unconstructible transients)
//   - Overlay validation reports (unknown types, members, strategies)
//   - Aggregation into a single build-time error
package diagnostic
