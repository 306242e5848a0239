package ports

import "github.com/aretw0/enricher/pkg/domain"

// ScenarioLoader defines how the enricher reads participants out of a scenario.
type ScenarioLoader interface {
	// LoadParticipants returns every participant entry of the scenario at path, in order.
	// An absent participants list yields an empty slice and no error.
	LoadParticipants(path string) ([]domain.Participant, error)
}

// ResultsStore defines how the enricher patches a results document.
type ResultsStore interface {
	// Enrich sets participants.name in the document at path and returns the patched document.
	// When persist is false the document on disk is left untouched.
	Enrich(path string, name string, persist bool) ([]byte, error)
}
