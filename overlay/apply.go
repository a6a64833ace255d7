package overlay

import (
	"jsonbind/internal/naming"
	"jsonbind/schema"
)

// Apply returns a copy of desc with the overlay's adjustments folded in.
// The input descriptor is never mutated. Per-type naming strategies are
// materialized into explicit wire names here, so plan compilation sees one
// uniform strategy.
func Apply(to *TypeOverlay, desc *schema.ObjectDescriptor) *schema.ObjectDescriptor {
	out := *desc
	out.Members = make([]schema.MemberDescriptor, len(desc.Members))
	copy(out.Members, desc.Members)

	var strategy *naming.Strategy
	if to.Naming != "" {
		strategy, _ = naming.ByName(to.Naming)
	}

	transient := map[string]bool{}
	for _, name := range to.Transient {
		transient[name] = true
	}

	for i := range out.Members {
		m := &out.Members[i]

		if wire, ok := to.Names[m.Name]; ok {
			m.JSONName = wire
		} else if strategy != nil && m.JSONName == "" {
			m.JSONName = strategy.Apply(m.Name)
		}

		if transient[m.Name] {
			m.Transient = true
		}
	}

	return &out
}
