package schema

// MemberKind determines how a decoded value is applied to the instance.
type MemberKind int

const (
	// Param is a constructor parameter with no later mutation.
	Param MemberKind = iota
	// Property is a mutable property applied via its setter after
	// construction.
	Property
	// ParamAndProperty is initialized by the constructor and additionally
	// exposes a setter of the same name.
	ParamAndProperty
)

// String returns a human-readable kind name.
func (k MemberKind) String() string {
	switch k {
	case Param:
		return "constructor parameter"
	case Property:
		return "property"
	case ParamAndProperty:
		return "constructor parameter and property"
	default:
		return "unknown"
	}
}

// MemberDescriptor declares one serializable member of an object type.
//
// Get reads the member's current value from an instance and is required for
// every non-transient member (encode needs it). Set applies a value to an
// instance and is required for Property and ParamAndProperty members.
// Closures receive the instance as `any` and are expected to normalize
// absent values to untyped nil.
type MemberDescriptor struct {
	// Name is the declared identifier.
	Name string
	// JSONName overrides the wire name. Empty means derive from Name via
	// the mapper's naming strategy.
	JSONName string
	// Kind determines how a decoded value reaches the instance.
	Kind MemberKind
	// Type is the member's value type, including nullability.
	Type TypeRef
	// Qualifiers narrow which adapter serves this member.
	Qualifiers []Qualifier
	// Transient excludes the member from both encode and decode.
	Transient bool
	// Default supplies the value applied when the wire name is absent from
	// input. Only consulted for Property members; constructor parameters
	// handle their own defaults inside the constructor closure, flagged
	// here via HasDefault so the compiler can derive requiredness.
	Default func() any
	// HasDefault marks a constructor parameter whose default is applied by
	// the constructor closure when the slot is unset. Implied true when
	// Default is non-nil.
	HasDefault bool

	// Get reads the member from an instance for encoding; a nil result
	// is treated as absent. Set writes a decoded value into an instance
	// and is never invoked with a nil value.
	Get func(instance any) any
	Set func(instance any, value any)
}

// ObjectDescriptor declares the serializable shape of one object type.
// Members are listed in declaration order: constructor parameters first,
// then additional mutable properties.
type ObjectDescriptor struct {
	// TypeName is the object type's identity, matched against
	// TypeRef.Name at resolution.
	TypeName string
	// Supertype optionally names another registered descriptor whose
	// members are inherited into this type's effective plan.
	Supertype string
	// Members in declaration order.
	Members []MemberDescriptor
	// New constructs an instance from staged constructor arguments. See
	// the package comment for the slot convention. Required whenever any
	// effective member is a constructor parameter; optional pure-property
	// types may instead rely on Zero.
	New func(args *Args) any
	// Zero constructs an empty instance for types with no constructor
	// parameters. Ignored when New is set.
	Zero func() any
}

// Args stages decoded constructor arguments together with presence flags.
type Args struct {
	values  []any
	present []bool
}

// NewArgs creates an Args with the given arity. All slots start unset.
func NewArgs(arity int) *Args {
	return &Args{
		values:  make([]any, arity),
		present: make([]bool, arity),
	}
}

// Set stages a value for slot i.
func (a *Args) Set(i int, v any) {
	a.values[i] = v
	a.present[i] = true
}

// Get returns the staged value for slot i and whether it was set.
func (a *Args) Get(i int) (any, bool) {
	if i < 0 || i >= len(a.values) {
		return nil, false
	}

	return a.values[i], a.present[i]
}

// Or returns the staged value for slot i, or def when the slot is unset.
func (a *Args) Or(i int, def any) any {
	if v, ok := a.Get(i); ok {
		return v
	}

	return def
}

// Arg returns the staged value for slot i converted to T, or def when the
// slot is unset or holds nil.
func Arg[T any](a *Args, i int, def T) T {
	v, ok := a.Get(i)
	if !ok || v == nil {
		return def
	}

	return v.(T)
}
