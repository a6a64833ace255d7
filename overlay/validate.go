package overlay

import (
	"fmt"

	"jsonbind/internal/diagnostic"
	"jsonbind/internal/naming"
	"jsonbind/schema"
)

// Lookup resolves a type name to its registered descriptor.
type Lookup func(typeName string) (*schema.ObjectDescriptor, bool)

// Validate checks an overlay against the registered descriptors. This is a
// structural step only; binding-level consequences (say, marking the sole
// constructor parameter transient) surface later during plan compilation.
func Validate(f *File, lookup Lookup) *diagnostic.Diagnostics {
	res := ValidateStructure(f)

	if lookup == nil {
		return res
	}

	for i := range f.Types {
		to := &f.Types[i]

		desc, ok := lookup(to.Type)
		if !ok {
			res.AddError("unknown_type",
				fmt.Sprintf("overlay targets unregistered type %q", to.Type), to.Type, "")

			continue
		}

		known := map[string]bool{}
		for j := range desc.Members {
			known[desc.Members[j].Name] = true
		}

		for member := range to.Names {
			if !known[member] {
				res.AddError("unknown_member",
					fmt.Sprintf("overlay renames unknown member %q", member), to.Type, member)
			}
		}

		for _, member := range to.Transient {
			if !known[member] {
				res.AddError("unknown_member",
					fmt.Sprintf("overlay marks unknown member %q transient", member), to.Type, member)
			}
		}
	}

	return res
}

// ValidateStructure checks the overlay document in isolation, without any
// registered descriptors. Used by bindcheck.
func ValidateStructure(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	if f == nil {
		res.AddError("overlay_is_nil", "overlay file is nil", "", "")

		return res
	}

	if f.Version != "1" {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported overlay version %q", f.Version), "", "")
	}

	seen := map[string]bool{}

	for i := range f.Types {
		to := &f.Types[i]

		if to.Type == "" {
			res.AddError("missing_type_name",
				fmt.Sprintf("overlay entry %d has no type name", i), "", "")

			continue
		}

		if seen[to.Type] {
			res.AddError("duplicate_type",
				fmt.Sprintf("type %q appears in the overlay more than once", to.Type), to.Type, "")
		}

		seen[to.Type] = true

		if to.Naming != "" {
			if _, ok := naming.ByName(to.Naming); !ok {
				res.AddError("unknown_naming",
					fmt.Sprintf("unknown naming strategy %q", to.Naming), to.Type, "")
			}
		}

		for member, wire := range to.Names {
			if wire == "" {
				res.AddError("empty_wire_name",
					fmt.Sprintf("member %q is renamed to the empty string", member), to.Type, member)
			}
		}
	}

	return res
}
