package mapper

import (
	"fmt"
	"sync"

	"jsonbind/internal/plan"
	"jsonbind/schema"
	"jsonbind/token"
)

// objectAdapter interprets a binding plan. Member adapters resolve lazily
// on first use, which both defers NoAdapterError to first use (matching
// the resolution contract) and lets self-referential types terminate.
type objectAdapter struct {
	m    *Mapper
	plan *plan.Plan
	// byName maps wire names to member indices for the decode loop.
	byName map[string]int

	mu      sync.Mutex
	members []Adapter
}

func newObjectAdapter(m *Mapper, p *plan.Plan) *objectAdapter {
	byName := make(map[string]int, len(p.Members))
	for i := range p.Members {
		byName[p.Members[i].JSONName] = i
	}

	return &objectAdapter{
		m:       m,
		plan:    p,
		byName:  byName,
		members: make([]Adapter, len(p.Members)),
	}
}

// member resolves the adapter for member i, memoized.
func (a *objectAdapter) member(i int) (Adapter, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.members[i] != nil {
		return a.members[i], nil
	}

	m := &a.plan.Members[i]

	ad, err := a.m.Adapter(m.Type, m.Qualifiers...)
	if err != nil {
		return nil, fmt.Errorf("member %q of %s: %w", m.Name, a.plan.TypeName, err)
	}

	a.members[i] = ad

	return ad, nil
}

func (a *objectAdapter) Decode(r *token.Reader) (any, error) {
	if err := r.BeginObject(); err != nil {
		return nil, err
	}

	n := len(a.plan.Members)
	values := make([]any, n)
	seen := make([]bool, n)

	for r.More() {
		name, err := r.NextName()
		if err != nil {
			return nil, err
		}

		idx, ok := a.byName[name]
		if !ok {
			// Unknown keys are never errors.
			if err := r.SkipValue(); err != nil {
				return nil, err
			}

			continue
		}

		m := &a.plan.Members[idx]
		if m.Transient {
			if err := r.SkipValue(); err != nil {
				return nil, err
			}

			continue
		}

		ad, err := a.member(idx)
		if err != nil {
			return nil, err
		}

		v, err := ad.Decode(r)
		if err != nil {
			return nil, err
		}

		if v == nil && !m.Type.Nullable {
			return nil, &DataError{
				Msg:  fmt.Sprintf("Non-null value '%s' was null", name),
				Path: r.Path(),
			}
		}

		// Duplicate keys are not detected; last seen wins.
		values[idx] = v
		seen[idx] = true
	}

	if err := r.EndObject(); err != nil {
		return nil, err
	}

	for i := range a.plan.Members {
		m := &a.plan.Members[i]
		if m.Required && !m.Transient && !seen[i] {
			return nil, &DataError{
				Msg:  fmt.Sprintf("Required property '%s' missing", m.JSONName),
				Path: r.Path(),
			}
		}
	}

	args := schema.NewArgs(a.plan.Arity)

	for i := range a.plan.Members {
		m := &a.plan.Members[i]
		if m.Slot >= 0 && seen[i] {
			// Absent slots stay unset so the constructor applies its own
			// parameter defaults.
			args.Set(m.Slot, values[i])
		}
	}

	instance := a.plan.Construct(args)

	// Property application follows plan order, supertype properties before
	// subtype properties. Deliberate and deterministic: setters with
	// computed behavior observe this ordering.
	for i := range a.plan.Members {
		m := &a.plan.Members[i]
		if m.Slot >= 0 || m.Transient {
			continue
		}

		switch {
		case seen[i]:
			// An explicit null leaves the constructed zero value in
			// place; Set is never invoked with nil.
			if values[i] != nil {
				m.Set(instance, values[i])
			}
		case m.Default != nil:
			m.Set(instance, m.Default())
		}
	}

	return instance, nil
}

func (a *objectAdapter) Encode(w *token.Writer, v any) error {
	if err := w.BeginObject(); err != nil {
		return err
	}

	// Output key order is plan order, always.
	for i := range a.plan.Members {
		m := &a.plan.Members[i]
		if m.Transient {
			continue
		}

		val := m.Get(v)
		if val == nil && !w.SerializeNulls {
			continue
		}

		if err := w.Name(m.JSONName); err != nil {
			return err
		}

		ad, err := a.member(i)
		if err != nil {
			return err
		}

		if err := ad.Encode(w, val); err != nil {
			return err
		}
	}

	return w.EndObject()
}
