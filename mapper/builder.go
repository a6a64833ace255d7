package mapper

import (
	"fmt"

	"jsonbind/internal/naming"
	"jsonbind/internal/plan"
	"jsonbind/overlay"
	"jsonbind/schema"
)

// Builder accumulates descriptors, custom adapters, overlays, and the
// naming strategy, then compiles everything into an immutable Mapper.
type Builder struct {
	descriptors  []*schema.ObjectDescriptor
	customs      []registration
	pendingQuals [][]schema.Qualifier
	overlays     []*overlay.File
	strategyName string
}

// NewBuilder creates an empty Builder using the identity naming strategy.
func NewBuilder() *Builder {
	return &Builder{strategyName: "identity"}
}

// RegisterDescriptor registers an object descriptor. Registering two
// descriptors for one type name fails the build.
func (b *Builder) RegisterDescriptor(desc *schema.ObjectDescriptor) *Builder {
	b.descriptors = append(b.descriptors, desc)

	return b
}

// Register adds a custom adapter for the exact (type, qualifier set) key.
// Either function may be nil to make the adapter one-directional; the
// missing direction delegates to the default adapter for the bare type.
// When several registrations match a key, the first registered wins.
func (b *Builder) Register(ref schema.TypeRef, quals []schema.Qualifier, dec DecodeFunc, enc EncodeFunc) *Builder {
	b.customs = append(b.customs, registration{ref: ref, dec: dec, enc: enc})
	b.pendingQuals = append(b.pendingQuals, quals)

	return b
}

// Naming selects the wire-name strategy by its registered name
// ("identity", "snake_case", "camel_case", "kebab_case"). Members with an
// explicit wire name are unaffected.
func (b *Builder) Naming(strategyName string) *Builder {
	b.strategyName = strategyName

	return b
}

// Overlay queues an overlay file, applied to descriptors at build time in
// the order added.
func (b *Builder) Overlay(f *overlay.File) *Builder {
	b.overlays = append(b.overlays, f)

	return b
}

// Build validates and compiles everything registered so far. Descriptor
// compilation is eager: malformed bindings fail here, never at decode time.
func (b *Builder) Build() (*Mapper, error) {
	strategy, ok := naming.ByName(b.strategyName)
	if !ok {
		return nil, fmt.Errorf("unknown naming strategy %q", b.strategyName)
	}

	descs := map[string]*schema.ObjectDescriptor{}

	for _, d := range b.descriptors {
		if d.TypeName == "" {
			return nil, fmt.Errorf("descriptor with empty type name")
		}

		if _, dup := descs[d.TypeName]; dup {
			return nil, fmt.Errorf("duplicate descriptor for type %q", d.TypeName)
		}

		descs[d.TypeName] = d
	}

	lookup := func(name string) (*schema.ObjectDescriptor, bool) {
		d, ok := descs[name]
		return d, ok
	}

	for _, f := range b.overlays {
		if diags := overlay.Validate(f, overlay.Lookup(lookup)); diags.HasErrors() {
			return nil, fmt.Errorf("invalid overlay: %w", diags.Error())
		}

		for i := range f.Types {
			to := &f.Types[i]
			descs[to.Type] = overlay.Apply(to, descs[to.Type])
		}
	}

	plans := make(map[string]*plan.Plan, len(descs))

	for name, d := range descs {
		p, err := plan.Compile(d, plan.Lookup(lookup), strategy)
		if err != nil {
			return nil, fmt.Errorf("compiling %s: %w", name, err)
		}

		plans[name] = p
	}

	customs := make([]registration, len(b.customs))
	customKeys := map[string]bool{}

	for i, reg := range b.customs {
		if reg.dec == nil && reg.enc == nil {
			return nil, fmt.Errorf("custom adapter for %s supplies neither direction", reg.ref.Key())
		}

		nq, err := schema.NormalizeQualifiers(b.pendingQuals[i])
		if err != nil {
			return nil, fmt.Errorf("custom adapter for %s: %w", reg.ref.Key(), err)
		}

		reg.key = resolutionKey(reg.ref, nq)
		customs[i] = reg
		customKeys[reg.key] = true
	}

	// Member types are statically known, so a member nothing can serve is
	// a build failure here rather than a surprise at first decode.
	for name, p := range plans {
		for i := range p.Members {
			mbr := &p.Members[i]
			if mbr.Transient {
				continue
			}

			if err := checkResolvable(mbr.Type, mbr.Qualifiers, plans, customKeys); err != nil {
				return nil, fmt.Errorf("member %q of %s: %w", mbr.Name, name, err)
			}
		}
	}

	return &Mapper{
		plans:    plans,
		customs:  customs,
		strategy: strategy,
		cache:    map[string]Adapter{},
	}, nil
}

// checkResolvable mirrors the registry's lookup order without building
// anything: custom keys, then registered descriptors, then built-ins.
func checkResolvable(ref schema.TypeRef, quals []schema.Qualifier, plans map[string]*plan.Plan, customKeys map[string]bool) error {
	key := resolutionKey(ref, quals)
	if customKeys[key] {
		return nil
	}

	if len(quals) > 0 {
		return &NoAdapterError{Key: key + " (no adapter for type with qualifiers)"}
	}

	if len(ref.Args) == 0 {
		if _, ok := plans[ref.Name]; ok {
			return nil
		}
	}

	switch ref.Name {
	case schema.TypeString, schema.TypeInt, schema.TypeFloat, schema.TypeBool:
		if len(ref.Args) == 0 {
			return nil
		}
	case schema.TypeList:
		if len(ref.Args) == 1 {
			return checkResolvable(ref.Args[0], nil, plans, customKeys)
		}
	case schema.TypeMap:
		if len(ref.Args) == 2 && ref.Args[0].Name == schema.TypeString {
			return checkResolvable(ref.Args[1], nil, plans, customKeys)
		}
	}

	return &NoAdapterError{Key: key}
}
