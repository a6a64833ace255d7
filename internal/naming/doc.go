// Package naming derives wire-format member names from declared
// identifiers. A strategy is applied only when a member carries no explicit
// wire-name override; conversions are memoized per strategy since the same
// identifiers recur across types.
package naming
