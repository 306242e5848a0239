package adapters

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/enricher/internal/dto"
	"github.com/aretw0/enricher/pkg/domain"
	"github.com/mitchellh/mapstructure"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// scenarioDocument is the subset of a scenario file the enricher reads.
// Participants stays untyped so that only its presence and shape are checked.
type scenarioDocument struct {
	Participants any `toml:"participants" yaml:"participants"`
}

// FileScenarioLoader implements ports.ScenarioLoader for scenario files on disk.
// Files ending in .yaml or .yml are read as YAML; everything else as TOML.
type FileScenarioLoader struct{}

// NewFileScenarioLoader creates a new FileScenarioLoader.
func NewFileScenarioLoader() *FileScenarioLoader {
	return &FileScenarioLoader{}
}

// LoadParticipants reads the scenario at path and decodes its participants list.
func (l *FileScenarioLoader) LoadParticipants(path string) ([]domain.Participant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrScenarioNotFound, path)
		}
		return nil, fmt.Errorf("failed to read scenario %s: %w", path, err)
	}

	var doc scenarioDocument
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = toml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse scenario %s: %w", path, err)
	}

	entries, err := participantEntries(doc.Participants)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}

	participants := make([]domain.Participant, 0, len(entries))
	for _, entry := range entries {
		participants = append(participants, decodeParticipant(entry))
	}
	return participants, nil
}

// participantEntries normalizes the participants value into a list.
// An absent value or an empty table counts as no participants.
func participantEntries(v any) ([]any, error) {
	switch list := v.(type) {
	case nil:
		return nil, nil
	case []any:
		return list, nil
	case []map[string]any:
		entries := make([]any, len(list))
		for i, entry := range list {
			entries[i] = entry
		}
		return entries, nil
	case map[string]any:
		if len(list) == 0 {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("participants must be a list of tables, got %T", v)
}

// decodeParticipant maps a raw entry onto the DTO.
// An entry that is not a table decodes to an unnamed participant.
func decodeParticipant(raw any) domain.Participant {
	var entry dto.ParticipantEntry
	if err := mapstructure.Decode(raw, &entry); err != nil {
		return domain.Participant{}
	}
	return entry.ToDomain()
}
