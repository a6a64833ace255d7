package plan

import (
	"fmt"

	"jsonbind/internal/diagnostic"
	"jsonbind/schema"
)

// Member is one compiled member binding. Exactly one Member exists per
// distinct wire name in a plan.
type Member struct {
	// Name is the declared identifier.
	Name string
	// JSONName is the wire-format key, already resolved through overrides
	// and the naming strategy.
	JSONName string
	// Kind determines how a decoded value is applied to the instance.
	Kind schema.MemberKind
	// Type is the member's value type.
	Type schema.TypeRef
	// Qualifiers is the normalized qualifier set.
	Qualifiers []schema.Qualifier
	// Transient members are excluded from both encode and decode.
	Transient bool
	// HasDefault is true when a value exists for the member without input:
	// either Default below, or a constructor-applied parameter default.
	HasDefault bool
	// Default supplies the fallback value for absent properties. Nil for
	// constructor parameters, whose defaults live in the constructor.
	Default func() any
	// Required is true iff the member is non-nullable and has no default.
	// Decode fails when a required member is absent.
	Required bool
	// Slot is the constructor argument position, -1 for pure properties.
	Slot int
	// DeclaredBy names the type that declared this binding, which differs
	// from the plan's type for inherited members.
	DeclaredBy string

	Get func(instance any) any
	Set func(instance any, value any)
}

// Plan is the compiled, immutable binding plan for one object type.
// Member order is the plan's single source of truth for encode output
// order and setter application order: inherited-only members first in
// supertype order, then the type's own members in declaration order.
type Plan struct {
	TypeName string
	Members  []Member
	// Arity is the number of constructor slots.
	Arity int
	New   func(args *schema.Args) any
	Zero  func() any
}

// Construct invokes the plan's constructor with the staged arguments.
func (p *Plan) Construct(args *schema.Args) any {
	if p.New != nil {
		return p.New(args)
	}

	return p.Zero()
}

// InvalidBindingError reports malformed member declarations found at
// compile time. It fails the mapper build; it is never seen during decode
// or encode.
type InvalidBindingError struct {
	TypeName string
	Diags    diagnostic.Diagnostics
}

func (e *InvalidBindingError) Error() string {
	return fmt.Sprintf("invalid binding for %s: %v", e.TypeName, e.Diags.Error())
}
