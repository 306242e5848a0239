package adapters

import (
	"fmt"

	"github.com/aretw0/enricher/pkg/domain"
)

// InMemoryScenarioLoader is a simple implementation of ports.ScenarioLoader for testing.
type InMemoryScenarioLoader struct {
	scenarios map[string][]domain.Participant
}

// NewInMemoryScenarioLoader creates a new empty loader.
func NewInMemoryScenarioLoader() *InMemoryScenarioLoader {
	return &InMemoryScenarioLoader{
		scenarios: make(map[string][]domain.Participant),
	}
}

// AddScenario allows pre-populating the loader for tests.
func (l *InMemoryScenarioLoader) AddScenario(path string, participants ...domain.Participant) {
	l.scenarios[path] = participants
}

// LoadParticipants retrieves a scenario from memory.
func (l *InMemoryScenarioLoader) LoadParticipants(path string) ([]domain.Participant, error) {
	participants, ok := l.scenarios[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrScenarioNotFound, path)
	}
	return participants, nil
}
