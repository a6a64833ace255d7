// Package overlay loads and applies YAML binding overlays.
//
// An overlay adjusts registered descriptors without touching their source:
// wire-name overrides, transient exclusions, and a per-type naming
// strategy. Overlays are applied at mapper build time, before plan
// compilation, so a bad overlay fails the build like any other malformed
// binding.
//
// # Schema overview
//
//	version: "1"
//	types:
//	  - type: Person
//	    naming: snake_case
//	    names:
//	      HomeAddress: addr
//	    transient: [cachedHash]
package overlay
