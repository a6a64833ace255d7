package mapper

import (
	"bytes"
	"fmt"
	"strings"

	"jsonbind/schema"
	"jsonbind/token"
)

// TypedAdapter is the typed facade over a resolved adapter for an object
// type whose constructor produces *T instances. Both entry points are
// null-safe regardless of the bound type's own nullability: a nil instance
// encodes to the literal "null" and "null" decodes to nil.
type TypedAdapter[T any] struct {
	core           Adapter
	serializeNulls bool
}

// For resolves the adapter for ref and wraps it for instances of *T.
func For[T any](m *Mapper, ref schema.TypeRef, quals ...schema.Qualifier) (*TypedAdapter[T], error) {
	core, err := m.Adapter(ref, quals...)
	if err != nil {
		return nil, err
	}

	return &TypedAdapter[T]{core: core}, nil
}

// SerializeNulls returns a view of the adapter that writes explicit nulls
// for absent members. The underlying resolution is shared; only the
// per-call writer mode differs.
func (a *TypedAdapter[T]) SerializeNulls() *TypedAdapter[T] {
	cp := *a
	cp.serializeNulls = true

	return &cp
}

// ToJSON encodes v as a compact JSON document.
func (a *TypedAdapter[T]) ToJSON(v *T) (string, error) {
	var buf bytes.Buffer

	w := token.NewWriter(&buf)
	w.SerializeNulls = a.serializeNulls

	var iv any
	if v != nil {
		iv = v
	}

	if err := a.core.Encode(w, iv); err != nil {
		return "", err
	}

	// jsontext terminates top-level values with a newline.
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// FromJSON decodes a JSON document into an instance, or nil for the
// literal "null".
func (a *TypedAdapter[T]) FromJSON(s string) (*T, error) {
	v, err := a.core.Decode(token.NewStringReader(s))
	if err != nil {
		return nil, err
	}

	if v == nil {
		return nil, nil
	}

	out, ok := v.(*T)
	if !ok {
		return nil, fmt.Errorf("adapter produced %T, want %T", v, (*T)(nil))
	}

	return out, nil
}

// ToJSON encodes v with the adapter resolved for ref. The untyped
// counterpart of TypedAdapter.ToJSON; absent values are untyped nil.
func (m *Mapper) ToJSON(ref schema.TypeRef, v any, quals ...schema.Qualifier) (string, error) {
	ad, err := m.Adapter(ref, quals...)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer

	if err := ad.Encode(token.NewWriter(&buf), v); err != nil {
		return "", err
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// FromJSON decodes a JSON document with the adapter resolved for ref.
func (m *Mapper) FromJSON(ref schema.TypeRef, s string, quals ...schema.Qualifier) (any, error) {
	ad, err := m.Adapter(ref, quals...)
	if err != nil {
		return nil, err
	}

	return ad.Decode(token.NewStringReader(s))
}
