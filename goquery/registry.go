package goquery

// Registry manages site-specific selector profiles keyed by page hostname.
// When no registered profile claims a host, extraction runs on the generic
// chat-UI heuristics alone.
type Registry struct {
	profiles []*Profile
}

// NewRegistry creates a Registry with the given profiles.
func NewRegistry(profiles ...*Profile) *Registry {
	return &Registry{profiles: profiles}
}

// Register adds a profile. Profiles are consulted in registration order.
func (r *Registry) Register(p *Profile) {
	r.profiles = append(r.profiles, p)
}

// ForHost returns the first registered profile that claims the host.
// Returns nil if no profile matches.
func (r *Registry) ForHost(host string) *Profile {
	for _, p := range r.profiles {
		if p.MatchesHost(host) {
			return p
		}
	}
	return nil
}

// List returns the names of all registered profiles.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.profiles))
	for _, p := range r.profiles {
		names = append(names, p.Name())
	}
	return names
}
