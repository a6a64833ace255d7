package mapper

import (
	"fmt"

	"jsonbind/token"
)

// Built-in adapters for primitive and composite types. All assume non-null
// input; the null-safety wrapper handles nil on both sides.

type stringAdapter struct{}

func (stringAdapter) Decode(r *token.Reader) (any, error) {
	return r.NextString()
}

func (stringAdapter) Encode(w *token.Writer, v any) error {
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("string adapter given %T", v)
	}

	return w.String(s)
}

type intAdapter struct{}

func (intAdapter) Decode(r *token.Reader) (any, error) {
	return r.NextInt()
}

func (intAdapter) Encode(w *token.Writer, v any) error {
	switch n := v.(type) {
	case int64:
		return w.Int(n)
	case int:
		return w.Int(int64(n))
	default:
		return fmt.Errorf("int adapter given %T", v)
	}
}

type floatAdapter struct{}

func (floatAdapter) Decode(r *token.Reader) (any, error) {
	return r.NextFloat()
}

func (floatAdapter) Encode(w *token.Writer, v any) error {
	switch n := v.(type) {
	case float64:
		return w.Float(n)
	case int64:
		return w.Float(float64(n))
	case int:
		return w.Float(float64(n))
	default:
		return fmt.Errorf("float adapter given %T", v)
	}
}

type boolAdapter struct{}

func (boolAdapter) Decode(r *token.Reader) (any, error) {
	return r.NextBool()
}

func (boolAdapter) Encode(w *token.Writer, v any) error {
	b, ok := v.(bool)
	if !ok {
		return fmt.Errorf("bool adapter given %T", v)
	}

	return w.Bool(b)
}

// listAdapter stages elements as []any; descriptor closures convert to the
// concrete slice type.
type listAdapter struct {
	elem Adapter
}

func (a listAdapter) Decode(r *token.Reader) (any, error) {
	if err := r.BeginArray(); err != nil {
		return nil, err
	}

	out := []any{}

	for r.More() {
		v, err := a.elem.Decode(r)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	if err := r.EndArray(); err != nil {
		return nil, err
	}

	return out, nil
}

func (a listAdapter) Encode(w *token.Writer, v any) error {
	items, ok := v.([]any)
	if !ok {
		return fmt.Errorf("list adapter given %T", v)
	}

	if err := w.BeginArray(); err != nil {
		return err
	}

	for _, item := range items {
		if err := a.elem.Encode(w, item); err != nil {
			return err
		}
	}

	return w.EndArray()
}

// mapAdapter stages entries as map[string]any. Encode output order for map
// entries is unspecified, matching Go map iteration; object members, whose
// order matters, go through binding plans instead. A nil entry still owns
// its key, so it encodes as an explicit null rather than being dropped.
type mapAdapter struct {
	elem Adapter
}

func (a mapAdapter) Decode(r *token.Reader) (any, error) {
	if err := r.BeginObject(); err != nil {
		return nil, err
	}

	out := map[string]any{}

	for r.More() {
		name, err := r.NextName()
		if err != nil {
			return nil, err
		}

		v, err := a.elem.Decode(r)
		if err != nil {
			return nil, err
		}

		out[name] = v
	}

	if err := r.EndObject(); err != nil {
		return nil, err
	}

	return out, nil
}

func (a mapAdapter) Encode(w *token.Writer, v any) error {
	entries, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("map adapter given %T", v)
	}

	if err := w.BeginObject(); err != nil {
		return err
	}

	for name, item := range entries {
		if err := w.Name(name); err != nil {
			return err
		}

		if err := a.elem.Encode(w, item); err != nil {
			return err
		}
	}

	return w.EndObject()
}
