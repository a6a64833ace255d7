package mapper

import "jsonbind/token"

// Adapter pairs the decode and encode operations for one resolution key.
// Values flow through the engine as `any`; absent values are untyped nil.
// Adapters are immutable and safe for concurrent use.
type Adapter interface {
	Decode(r *token.Reader) (any, error)
	Encode(w *token.Writer, v any) error
}

// DecodeFunc is the decode half of a custom adapter registration.
type DecodeFunc func(r *token.Reader) (any, error)

// EncodeFunc is the encode half of a custom adapter registration.
type EncodeFunc func(w *token.Writer, v any) error

// nullSafe wraps every resolved adapter exactly once: decode
// short-circuits a null literal to nil, encode short-circuits nil to a
// null literal. Inner adapters may therefore assume non-null input.
type nullSafe struct {
	inner Adapter
}

func (a nullSafe) Decode(r *token.Reader) (any, error) {
	if r.Peek() == token.Null {
		if err := r.NextNull(); err != nil {
			return nil, err
		}

		return nil, nil
	}

	return a.inner.Decode(r)
}

func (a nullSafe) Encode(w *token.Writer, v any) error {
	if v == nil {
		return w.Null()
	}

	return a.inner.Encode(w, v)
}

// custom dispatches to caller-supplied functions, falling back to the
// default adapter for the bare type for any direction not supplied.
// The fallback resolves lazily so that a one-directional custom adapter
// for a type with no other adapter still works in its supplied direction.
type custom struct {
	dec      DecodeFunc
	enc      EncodeFunc
	fallback func() (Adapter, error)
}

func (a *custom) Decode(r *token.Reader) (any, error) {
	if a.dec != nil {
		return a.dec(r)
	}

	fb, err := a.fallback()
	if err != nil {
		return nil, err
	}

	return fb.Decode(r)
}

func (a *custom) Encode(w *token.Writer, v any) error {
	if a.enc != nil {
		return a.enc(w, v)
	}

	fb, err := a.fallback()
	if err != nil {
		return err
	}

	return fb.Encode(w, v)
}
