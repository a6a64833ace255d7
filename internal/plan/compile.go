package plan

import (
	"fmt"

	"jsonbind/internal/diagnostic"
	"jsonbind/internal/naming"
	"jsonbind/schema"
)

// Lookup resolves a type name to its registered descriptor. Used to chase
// supertype references during compilation.
type Lookup func(typeName string) (*schema.ObjectDescriptor, bool)

// Compile derives the binding plan for one descriptor. It is a pure
// function of the descriptor shape; the same descriptor always compiles to
// an equivalent plan. Malformed declarations are reported together in a
// single *InvalidBindingError.
func Compile(desc *schema.ObjectDescriptor, lookup Lookup, strategy *naming.Strategy) (*Plan, error) {
	if strategy == nil {
		strategy = naming.Identity
	}

	seen := map[string]bool{}

	p, diags := compile(desc, lookup, strategy, seen)
	if diags.HasErrors() {
		return nil, &InvalidBindingError{TypeName: desc.TypeName, Diags: diags}
	}

	return p, nil
}

func compile(desc *schema.ObjectDescriptor, lookup Lookup, strategy *naming.Strategy, seen map[string]bool) (*Plan, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	if seen[desc.TypeName] {
		diags.AddError("supertype_cycle",
			fmt.Sprintf("supertype chain of %q forms a cycle", desc.TypeName),
			desc.TypeName, "")

		return nil, diags
	}

	seen[desc.TypeName] = true

	own := compileMembers(desc, strategy, &diags)

	members := own
	if desc.Supertype != "" {
		members = mergeSupertype(desc, own, lookup, strategy, seen, &diags)
	}

	if diags.HasErrors() {
		return nil, diags
	}

	// Constructor slots follow member order across the effective plan.
	arity := 0

	for i := range members {
		if members[i].Kind == schema.Property {
			members[i].Slot = -1

			continue
		}

		members[i].Slot = arity
		arity++
	}

	if arity > 0 && desc.New == nil {
		diags.AddError("missing_constructor",
			fmt.Sprintf("type %q has constructor parameters but no constructor", desc.TypeName),
			desc.TypeName, "")
	}

	if arity == 0 && desc.New == nil && desc.Zero == nil {
		diags.AddError("missing_constructor",
			fmt.Sprintf("type %q declares neither a constructor nor a zero maker", desc.TypeName),
			desc.TypeName, "")
	}

	if diags.HasErrors() {
		return nil, diags
	}

	return &Plan{
		TypeName: desc.TypeName,
		Members:  members,
		Arity:    arity,
		New:      desc.New,
		Zero:     desc.Zero,
	}, diags
}

// compileMembers derives bindings for the descriptor's own members, in
// declaration order. A constructor parameter and a mutable property sharing
// one wire name collapse into a single ParamAndProperty binding at the
// first declaration's position; the parameter side wins the value type.
func compileMembers(desc *schema.ObjectDescriptor, strategy *naming.Strategy, diags *diagnostic.Diagnostics) []Member {
	var members []Member

	index := map[string]int{}

	for i := range desc.Members {
		md := &desc.Members[i]

		m, ok := compileMember(desc.TypeName, md, strategy, diags)
		if !ok {
			continue
		}

		at, exists := index[m.JSONName]
		if !exists {
			index[m.JSONName] = len(members)
			members = append(members, m)

			continue
		}

		if !mergeCollision(&members[at], &m) {
			diags.AddError("duplicate_json_name",
				fmt.Sprintf("wire name %q bound by both %q and %q", m.JSONName, members[at].Name, m.Name),
				desc.TypeName, m.Name)
		}
	}

	return members
}

func compileMember(typeName string, md *schema.MemberDescriptor, strategy *naming.Strategy, diags *diagnostic.Diagnostics) (Member, bool) {
	jsonName := md.JSONName
	if jsonName == "" {
		jsonName = strategy.Apply(md.Name)
	}

	quals, err := schema.NormalizeQualifiers(md.Qualifiers)
	if err != nil {
		diags.AddError("conflicting_qualifiers", err.Error(), typeName, md.Name)

		return Member{}, false
	}

	hasDefault := md.HasDefault || md.Default != nil

	if md.Transient {
		if md.Kind != schema.Property && !hasDefault {
			diags.AddError("transient_without_default",
				fmt.Sprintf("transient constructor parameter %q needs a default", md.Name),
				typeName, md.Name)

			return Member{}, false
		}
	} else {
		if md.Get == nil {
			diags.AddError("missing_getter",
				fmt.Sprintf("member %q has no getter", md.Name), typeName, md.Name)

			return Member{}, false
		}

		if md.Kind != schema.Param && md.Set == nil {
			diags.AddError("missing_setter",
				fmt.Sprintf("mutable property %q has no setter", md.Name), typeName, md.Name)

			return Member{}, false
		}
	}

	return Member{
		Name:       md.Name,
		JSONName:   jsonName,
		Kind:       md.Kind,
		Type:       md.Type,
		Qualifiers: quals,
		Transient:  md.Transient,
		HasDefault: hasDefault,
		Default:    md.Default,
		Required:   !md.Transient && !md.Type.Nullable && !hasDefault,
		DeclaredBy: typeName,
		Get:        md.Get,
		Set:        md.Set,
	}, true
}

// mergeCollision collapses a parameter/property pair bound to one wire name.
// Returns false when the pair is not mergeable (two parameters or two
// properties), which is a genuine duplicate.
func mergeCollision(existing, incoming *Member) bool {
	switch {
	case existing.Kind == schema.Param && incoming.Kind == schema.Property:
		existing.Kind = schema.ParamAndProperty
		existing.Set = incoming.Set

		return true
	case existing.Kind == schema.Property && incoming.Kind == schema.Param:
		set := existing.Set
		*existing = *incoming
		existing.Kind = schema.ParamAndProperty
		existing.Set = set

		return true
	default:
		return false
	}
}

// mergeSupertype prepends inherited members ahead of the type's own.
// A subtype member sharing a wire name with a supertype member replaces it
// entirely and keeps the subtype's declared position; inherited-only
// members retain their supertype order.
func mergeSupertype(desc *schema.ObjectDescriptor, own []Member, lookup Lookup, strategy *naming.Strategy, seen map[string]bool, diags *diagnostic.Diagnostics) []Member {
	if lookup == nil {
		diags.AddError("unknown_supertype",
			fmt.Sprintf("supertype %q of %q is not registered", desc.Supertype, desc.TypeName),
			desc.TypeName, "")

		return own
	}

	super, ok := lookup(desc.Supertype)
	if !ok {
		diags.AddError("unknown_supertype",
			fmt.Sprintf("supertype %q of %q is not registered", desc.Supertype, desc.TypeName),
			desc.TypeName, "")

		return own
	}

	superPlan, superDiags := compile(super, lookup, strategy, seen)

	diags.Merge(superDiags)

	if superPlan == nil {
		return own
	}

	overridden := map[string]bool{}
	for i := range own {
		overridden[own[i].JSONName] = true
	}

	var members []Member

	for i := range superPlan.Members {
		if overridden[superPlan.Members[i].JSONName] {
			continue
		}

		members = append(members, superPlan.Members[i])
	}

	return append(members, own...)
}
