package layout

// Resolver runs its providers in order and returns the first applicable layout.
// New layouts are added by registering a provider or a named table, not by
// editing Resolve.
type Resolver struct {
	providers []Provider
}

func NewResolver(providers ...Provider) *Resolver {
	return &Resolver{providers: providers}
}

// NewDefaultResolver wires explicit config, then the built-in named layouts,
// then the per-event fallback.
func NewDefaultResolver(s Settings) *Resolver {
	return NewResolver(
		NewExplicitSectionsProvider(s),
		NewNamedLayoutProvider(s, MortgageMatchupCenter()),
		NewFallbackProvider(s),
	)
}

// Resolve is pure: identical input yields identical, identically ordered output.
func (r *Resolver) Resolve(in Input) []SectionDefinition {
	defs, _ := r.ResolveWith(in)
	return defs
}

// ResolveWith also reports which provider produced the layout.
func (r *Resolver) ResolveWith(in Input) ([]SectionDefinition, string) {
	for _, p := range r.providers {
		if defs, ok := p.Sections(in); ok && len(defs) > 0 {
			return defs, p.Name()
		}
	}
	return nil, ""
}
