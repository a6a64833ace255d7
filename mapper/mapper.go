package mapper

import (
	"fmt"
	"sync"

	"jsonbind/internal/naming"
	"jsonbind/internal/plan"
	"jsonbind/schema"
)

// registration is one caller-supplied custom adapter, bound to an exact
// resolution key. Either direction may be nil; the other delegates to the
// default adapter for the bare type.
type registration struct {
	key string
	ref schema.TypeRef
	dec DecodeFunc
	enc EncodeFunc
}

// Mapper resolves adapters by (type, qualifier set) key. Immutable after
// Build; the only mutable state is the resolution cache, which converges to
// one canonical adapter instance per key.
type Mapper struct {
	plans    map[string]*plan.Plan
	customs  []registration
	strategy *naming.Strategy

	mu    sync.RWMutex
	cache map[string]Adapter
}

// resolutionKey renders the canonical cache key for a normalized lookup.
func resolutionKey(ref schema.TypeRef, quals []schema.Qualifier) string {
	k := ref.Key()
	if qk := schema.QualifierSetKey(quals); qk != "" {
		k += " " + qk
	}

	return k
}

// Adapter resolves the adapter for ref under the given qualifiers.
// Resolution order: custom registrations for the exact key in registration
// order, then a plan-driven adapter for a registered descriptor, then the
// built-ins. The first resolution for a key is published to the cache;
// concurrent losers discard their redundant build silently.
func (m *Mapper) Adapter(ref schema.TypeRef, quals ...schema.Qualifier) (Adapter, error) {
	nq, err := schema.NormalizeQualifiers(quals)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", ref.Key(), err)
	}

	key := resolutionKey(ref, nq)

	m.mu.RLock()
	ad, ok := m.cache[key]
	m.mu.RUnlock()

	if ok {
		return ad, nil
	}

	built, err := m.build(ref, nq, key)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.cache[key]; ok {
		return existing, nil
	}

	m.cache[key] = built

	return built, nil
}

func (m *Mapper) build(ref schema.TypeRef, quals []schema.Qualifier, key string) (Adapter, error) {
	// First-registered wins when multiple registrations match one key.
	for i := range m.customs {
		reg := &m.customs[i]
		if reg.key != key {
			continue
		}

		c := &custom{dec: reg.dec, enc: reg.enc}
		c.fallback = m.lazyDefault(reg.ref)

		return nullSafe{c}, nil
	}

	if len(quals) > 0 {
		return nil, &NoAdapterError{Key: key + " (no adapter for type with qualifiers)"}
	}

	return m.buildDefault(ref, key)
}

// lazyDefault resolves the default adapter for the bare type once, on first
// use, bypassing custom registrations so that a one-directional custom
// adapter cannot delegate to itself.
func (m *Mapper) lazyDefault(ref schema.TypeRef) func() (Adapter, error) {
	var (
		once sync.Once
		ad   Adapter
		err  error
	)

	return func() (Adapter, error) {
		once.Do(func() {
			ad, err = m.buildDefault(ref, ref.Key())
		})

		return ad, err
	}
}

func (m *Mapper) buildDefault(ref schema.TypeRef, key string) (Adapter, error) {
	if len(ref.Args) == 0 {
		if p, ok := m.plans[ref.Name]; ok {
			return nullSafe{newObjectAdapter(m, p)}, nil
		}
	}

	switch ref.Name {
	case schema.TypeString:
		return nullSafe{stringAdapter{}}, nil
	case schema.TypeInt:
		return nullSafe{intAdapter{}}, nil
	case schema.TypeFloat:
		return nullSafe{floatAdapter{}}, nil
	case schema.TypeBool:
		return nullSafe{boolAdapter{}}, nil
	case schema.TypeList:
		if len(ref.Args) == 1 {
			elem, err := m.Adapter(ref.Args[0])
			if err != nil {
				return nil, err
			}

			return nullSafe{listAdapter{elem: elem}}, nil
		}
	case schema.TypeMap:
		if len(ref.Args) == 2 && ref.Args[0].Name == schema.TypeString {
			elem, err := m.Adapter(ref.Args[1])
			if err != nil {
				return nil, err
			}

			return nullSafe{mapAdapter{elem: elem}}, nil
		}
	}

	return nil, &NoAdapterError{Key: key}
}
