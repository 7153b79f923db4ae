package strategy

import "fmt"

// Registry resolves strategies by name. Session state stores only the
// strategy name so it stays serializable; the registry re-binds the
// implementation on each use.
type Registry struct {
	strategies map[string]ActiveLearningStrategy
	fallback   string
}

func NewRegistry(defaultName string) *Registry {
	r := &Registry{
		strategies: map[string]ActiveLearningStrategy{},
		fallback:   defaultName,
	}
	r.Register(NewUncertaintySamplingStrategy())
	r.Register(NewHighestConfidenceStrategy())
	return r
}

func (r *Registry) Register(s ActiveLearningStrategy) {
	r.strategies[s.Name()] = s
}

// Get resolves a strategy by name.
func (r *Registry) Get(name string) (ActiveLearningStrategy, error) {
	if s, ok := r.strategies[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("no such strategy: %q", name)
}

// Default returns the configured default strategy. Falls back to uncertainty
// sampling if the configured name is unknown.
func (r *Registry) Default() ActiveLearningStrategy {
	if s, ok := r.strategies[r.fallback]; ok {
		return s
	}
	return r.strategies[UncertaintySamplingName]
}
