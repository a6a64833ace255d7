package mapper

import (
	"jsonbind/schema"
)

// Test model: a person with a nested address, a list member, a transient
// member, and a constructor parameter default.

type address struct {
	City string
	Zip  *string
}

type person struct {
	ID     string
	Name   string
	Nick   *string
	Tags   []string
	Home   *address
	cached string
}

func strPtr(s string) *string { return &s }

func addressDescriptor() *schema.ObjectDescriptor {
	return &schema.ObjectDescriptor{
		TypeName: "Address",
		Members: []schema.MemberDescriptor{
			{
				Name: "city", Kind: schema.Param, Type: schema.String(),
				Get: func(v any) any { return v.(*address).City },
			},
			{
				Name: "zip", Kind: schema.Property, Type: schema.String().AsNullable(),
				Get: func(v any) any {
					a := v.(*address)
					if a.Zip == nil {
						return nil
					}

					return *a.Zip
				},
				Set: func(v any, val any) {
					s := val.(string)
					v.(*address).Zip = &s
				},
			},
		},
		New: func(a *schema.Args) any {
			return &address{City: schema.Arg(a, 0, "")}
		},
	}
}

func personDescriptor() *schema.ObjectDescriptor {
	return &schema.ObjectDescriptor{
		TypeName: "Person",
		Members: []schema.MemberDescriptor{
			{
				Name: "id", Kind: schema.Param, Type: schema.String(),
				Get: func(v any) any { return v.(*person).ID },
			},
			{
				Name: "name", Kind: schema.Param, Type: schema.String(), HasDefault: true,
				Get: func(v any) any { return v.(*person).Name },
			},
			{
				Name: "nick", Kind: schema.Property, Type: schema.String().AsNullable(),
				Get: func(v any) any {
					p := v.(*person)
					if p.Nick == nil {
						return nil
					}

					return *p.Nick
				},
				Set: func(v any, val any) {
					s := val.(string)
					v.(*person).Nick = &s
				},
			},
			{
				Name: "tags", Kind: schema.Property, Type: schema.List(schema.String()).AsNullable(),
				Get: func(v any) any {
					p := v.(*person)
					if p.Tags == nil {
						return nil
					}

					out := make([]any, len(p.Tags))
					for i, t := range p.Tags {
						out[i] = t
					}

					return out
				},
				Set: func(v any, val any) {
					items := val.([]any)
					tags := make([]string, len(items))
					for i, item := range items {
						tags[i] = item.(string)
					}

					v.(*person).Tags = tags
				},
			},
			{
				Name: "home", Kind: schema.Property, Type: schema.Object("Address").AsNullable(),
				Get: func(v any) any {
					p := v.(*person)
					if p.Home == nil {
						return nil
					}

					return p.Home
				},
				Set: func(v any, val any) {
					v.(*person).Home = val.(*address)
				},
			},
			{
				Name: "cached", Kind: schema.Property, Type: schema.String(), Transient: true,
				Get: func(v any) any { return v.(*person).cached },
				Set: func(v any, val any) { v.(*person).cached = val.(string) },
			},
		},
		New: func(a *schema.Args) any {
			return &person{
				ID:   schema.Arg(a, 0, ""),
				Name: schema.Arg(a, 1, "anon"),
			}
		},
	}
}

func buildPersonMapper() (*Mapper, error) {
	return NewBuilder().
		RegisterDescriptor(addressDescriptor()).
		RegisterDescriptor(personDescriptor()).
		Build()
}
