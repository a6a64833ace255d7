package schema

import "strings"

// TypeRef identifies a value type: a base type name, ordered type
// arguments, and a nullability flag. Two refs are equal iff all three
// components are equal; Key produces the canonical form that equality and
// all adapter memoization is keyed on.
type TypeRef struct {
	Name     string
	Args     []TypeRef
	Nullable bool
}

// Built-in base type names understood by the adapter registry.
const (
	TypeString = "String"
	TypeInt    = "Int"
	TypeFloat  = "Float"
	TypeBool   = "Bool"
	TypeList   = "List"
	TypeMap    = "Map"
)

// String returns the String type ref.
func String() TypeRef { return TypeRef{Name: TypeString} }

// Int returns the Int type ref.
func Int() TypeRef { return TypeRef{Name: TypeInt} }

// Float returns the Float type ref.
func Float() TypeRef { return TypeRef{Name: TypeFloat} }

// Bool returns the Bool type ref.
func Bool() TypeRef { return TypeRef{Name: TypeBool} }

// Object returns a ref to a declared object type.
func Object(name string) TypeRef { return TypeRef{Name: name} }

// List returns a ref to a homogeneous list of elem.
func List(elem TypeRef) TypeRef {
	return TypeRef{Name: TypeList, Args: []TypeRef{elem}}
}

// Map returns a ref to a string-keyed map of elem. JSON object names are
// always strings, so the key type is fixed.
func Map(elem TypeRef) TypeRef {
	return TypeRef{Name: TypeMap, Args: []TypeRef{String(), elem}}
}

// AsNullable returns a copy of the ref with the nullable flag set.
func (t TypeRef) AsNullable() TypeRef {
	t.Nullable = true
	return t
}

// Key returns the canonical identity string, e.g. "List<String?>" or
// "Person?".
func (t TypeRef) Key() string {
	var b strings.Builder

	t.writeKey(&b)

	return b.String()
}

func (t TypeRef) writeKey(b *strings.Builder) {
	b.WriteString(t.Name)

	if len(t.Args) > 0 {
		b.WriteByte('<')

		for i, a := range t.Args {
			if i > 0 {
				b.WriteString(", ")
			}

			a.writeKey(b)
		}

		b.WriteByte('>')
	}

	if t.Nullable {
		b.WriteByte('?')
	}
}

// Equal reports whether two refs have identical identity.
func (t TypeRef) Equal(o TypeRef) bool {
	return t.Key() == o.Key()
}
