package adapters

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/aretw0/enricher/internal/logging"
	"github.com/aretw0/enricher/pkg/domain"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

const (
	participantsPath    = "participants"
	participantNamePath = "participants.name"
)

// Zero Width keeps every array expanded, one element per line.
var prettyOptions = &pretty.Options{Indent: "  "}

// JSONResultsStore implements ports.ResultsStore for JSON results files.
// It patches the raw document instead of round-tripping it through a map,
// so existing keys keep their order and their values keep their exact encoding.
type JSONResultsStore struct {
	logger *slog.Logger
}

// NewJSONResultsStore creates a store that reports warnings to logger.
// A nil logger discards them.
func NewJSONResultsStore(logger *slog.Logger) *JSONResultsStore {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &JSONResultsStore{logger: logger}
}

// Enrich sets participants.name in the results file at path.
// When persist is true the patched document overwrites the file, keeping its mode.
func (s *JSONResultsStore) Enrich(path string, name string, persist bool) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrResultsNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat results %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results %s: %w", path, err)
	}

	patched, err := SetParticipantName(data, name, s.logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if persist {
		if err := os.WriteFile(path, patched, info.Mode().Perm()); err != nil {
			return nil, fmt.Errorf("failed to write results %s: %w", path, err)
		}
	}
	return patched, nil
}

// SetParticipantName returns a copy of the results document with participants.name set,
// re-indented with two spaces. A missing participants object is created.
func SetParticipantName(data []byte, name string, logger *slog.Logger) ([]byte, error) {
	if !gjson.ValidBytes(data) {
		return nil, domain.ErrInvalidResults
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, domain.ErrResultsNotObject
	}

	var err error
	participants := gjson.GetBytes(data, participantsPath)
	switch {
	case !participants.Exists():
		logger.Warn("No participants section in results, creating it")
		data, err = sjson.SetRawBytes(data, participantsPath, []byte("{}"))
		if err != nil {
			return nil, fmt.Errorf("failed to add participants section: %w", err)
		}
	case !participants.IsObject():
		return nil, domain.ErrParticipantsNotObject
	}

	raw, err := encodeString(name)
	if err != nil {
		return nil, err
	}
	data, err = sjson.SetRawBytes(data, participantNamePath, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to set participant name: %w", err)
	}

	return pretty.PrettyOptions(data, prettyOptions), nil
}

// encodeString renders s as a JSON string literal without HTML escaping,
// matching the raw bytes kept for the rest of the document.
func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("failed to encode participant name: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
