// Package schema holds the declaration surface of the mapper: type
// references, qualifiers, and per-type object descriptors.
//
// A descriptor is the hand-written (or generated) equivalent of what an
// annotation processor would derive from a class declaration: the ordered
// members, their wire names and nullability, defaults, transients, accessor
// closures, and a constructor closure. Descriptors are plain data; the
// binding plan compiler turns them into executable plans.
//
// # Constructor calling convention
//
// The engine stages decoded constructor arguments in an Args value, indexed
// by the parameter's position among the effective plan's constructor
// parameters: inherited-only parameters first in supertype order, then the
// type's own parameters in declaration order. A parameter absent from the
// input is left unset; the constructor closure applies its own default for
// unset slots (the Or and Arg helpers exist for that), so parameter default
// semantics live with the type rather than being precomputed by the engine.
package schema
