// Package plan compiles object descriptors into binding plans: the
// immutable, ordered member sequences the adapter engine interprets.
//
// Compilation is a pure function of the descriptor shape. It derives wire
// names, normalizes qualifier sets, merges supertype members, assigns
// constructor slots, and rejects malformed declarations with an
// InvalidBindingError before any adapter exists. Caching compiled plans is
// the registry's concern, not this package's.
package plan
