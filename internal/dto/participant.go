package dto

import (
	"github.com/aretw0/enricher/pkg/domain"
)

// ParticipantEntry represents one entry of a scenario's participants list.
// Only "name" is mapped; every other key lands in Extra untouched, whatever its type.
type ParticipantEntry struct {
	Name  any            `mapstructure:"name"`
	Extra map[string]any `mapstructure:",remain"`
}

// ToDomain converts the entry. A name that is not a string counts as missing.
func (e ParticipantEntry) ToDomain() domain.Participant {
	name, named := e.Name.(string)
	return domain.Participant{
		Name:  name,
		Named: named,
		Extra: e.Extra,
	}
}
