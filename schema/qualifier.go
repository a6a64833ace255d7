package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Qualifier narrows which adapter applies to a member or custom adapter
// registration. The argument is part of the identity: the same qualifier
// name applied with two different arguments forms two distinct resolution
// keys and must not share an adapter.
type Qualifier struct {
	Name string
	Arg  string
}

// Qual returns a parameterless qualifier.
func Qual(name string) Qualifier { return Qualifier{Name: name} }

// QualArg returns a parameterized qualifier.
func QualArg(name, arg string) Qualifier { return Qualifier{Name: name, Arg: arg} }

func (q Qualifier) String() string {
	if q.Arg == "" {
		return "@" + q.Name
	}

	return fmt.Sprintf("@%s(%s)", q.Name, q.Arg)
}

// NormalizeQualifiers returns the canonical form of a qualifier set:
// sorted and deduplicated, so set identity is order-independent. It fails
// when the same qualifier name appears with two different arguments, which
// is a conflicting declaration.
func NormalizeQualifiers(quals []Qualifier) ([]Qualifier, error) {
	if len(quals) == 0 {
		return nil, nil
	}

	out := make([]Qualifier, len(quals))
	copy(out, quals)

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}

		return out[i].Arg < out[j].Arg
	})

	dedup := out[:1]

	for _, q := range out[1:] {
		last := dedup[len(dedup)-1]
		if q == last {
			continue
		}

		if q.Name == last.Name {
			return nil, fmt.Errorf("conflicting qualifier %q declared with arguments %q and %q",
				q.Name, last.Arg, q.Arg)
		}

		dedup = append(dedup, q)
	}

	return dedup, nil
}

// QualifierSetKey renders a normalized qualifier set as a stable string
// fragment for resolution keys. Empty for the empty set.
func QualifierSetKey(quals []Qualifier) string {
	if len(quals) == 0 {
		return ""
	}

	parts := make([]string, len(quals))
	for i, q := range quals {
		parts[i] = q.String()
	}

	return strings.Join(parts, ",")
}
