package enricher

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/enricher/internal/adapters"
	"github.com/aretw0/enricher/internal/logging"
	"github.com/aretw0/enricher/pkg/domain"
	"github.com/aretw0/enricher/pkg/ports"
)

// Version is the release version, overridden at build time with -ldflags "-X".
var Version = "dev"

// Enricher writes the participant named by a scenario into a results document.
type Enricher struct {
	loader ports.ScenarioLoader
	store  ports.ResultsStore
	logger *slog.Logger
	out    io.Writer
	dryRun bool
}

// Option defines a functional option for configuring the Enricher.
type Option func(*Enricher)

// WithScenarioLoader injects a custom ScenarioLoader, bypassing the file loader.
func WithScenarioLoader(l ports.ScenarioLoader) Option {
	return func(e *Enricher) {
		e.loader = l
	}
}

// WithResultsStore injects a custom ResultsStore, bypassing the JSON file store.
func WithResultsStore(s ports.ResultsStore) Option {
	return func(e *Enricher) {
		e.store = s
	}
}

// WithLogger sets the structured logger that receives warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Enricher) {
		e.logger = logger
	}
}

// WithOutput sets where confirmation messages and dry-run documents are written (default: Stdout).
func WithOutput(w io.Writer) Option {
	return func(e *Enricher) {
		e.out = w
	}
}

// WithDryRun prints the enriched document instead of writing it back.
func WithDryRun(dryRun bool) Option {
	return func(e *Enricher) {
		e.dryRun = dryRun
	}
}

// New initializes an Enricher.
// By default it reads scenarios from disk and patches JSON results files in place.
func New(opts ...Option) *Enricher {
	e := &Enricher{}
	for _, opt := range opts {
		opt(e)
	}

	if e.logger == nil {
		e.logger = logging.NewNop()
	}
	if e.out == nil {
		e.out = os.Stdout
	}
	if e.loader == nil {
		e.loader = adapters.NewFileScenarioLoader()
	}
	if e.store == nil {
		e.store = adapters.NewJSONResultsStore(e.logger)
	}
	return e
}

// Run parses the scenario and enriches the results document with its participant.
// A missing scenario fails with domain.ErrScenarioNotFound before the results are touched.
func (e *Enricher) Run(scenarioPath, resultsPath string) error {
	info, err := e.ParseScenario(scenarioPath)
	if err != nil {
		return err
	}
	return e.EnrichResults(resultsPath, info)
}

// ParseScenario extracts the participant identity from the scenario at path.
// An empty participants list yields the zero ParticipantInfo; with several
// participants the first one wins. Both cases are logged as warnings.
func (e *Enricher) ParseScenario(path string) (domain.ParticipantInfo, error) {
	participants, err := e.loader.LoadParticipants(path)
	if err != nil {
		return domain.ParticipantInfo{}, err
	}

	if len(participants) == 0 {
		e.logger.Warn("No participants found in scenario", "scenario", path)
		return domain.ParticipantInfo{}, nil
	}

	if len(participants) > 1 {
		e.logger.Warn("Multiple participants found, using first one", "scenario", path, "count", len(participants))
	}

	info := participants[0].Info()
	e.logger.Debug("Participant resolved", "scenario", path, "name", info.Name)
	return info, nil
}

// EnrichResults sets participants.name in the results document at path.
func (e *Enricher) EnrichResults(path string, info domain.ParticipantInfo) error {
	name := info.ResolvedName()

	doc, err := e.store.Enrich(path, name, !e.dryRun)
	if err != nil {
		return err
	}

	if e.dryRun {
		_, err := e.out.Write(doc)
		return err
	}

	_, err = fmt.Fprintf(e.out, "Enriched %s with participant name: %s\n", path, name)
	return err
}
