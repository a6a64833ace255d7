// Package mapper is the runtime half of jsonbind: the adapter registry and
// the plan-driven encode/decode engine.
//
// A Mapper is built once, via Builder, from object descriptors, custom
// adapter registrations, optional overlay files, and a naming strategy.
// Descriptors are compiled to binding plans at build time, so malformed
// declarations fail the build rather than the first decode. Adapters are
// resolved lazily per (type, qualifier set) key, cached for the life of the
// Mapper, and shared by identity across every member that requests the same
// key. A Mapper is immutable after Build and safe for concurrent use.
package mapper
