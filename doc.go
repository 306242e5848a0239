/*
Package enricher annotates benchmark results with the identity of the participant under test.

A benchmark run is described by a scenario file (TOML, or YAML) listing its
participants. Once the run has produced its results document (JSON), the
enricher copies the first participant's name into the document's
"participants" object and writes the document back in place.

# Behaviour

  - A scenario without participants is not an error: the name falls back to "unknown".
  - With several participants, the first one is used and a warning is logged.
  - A results document without a "participants" object gets one.
  - Every other field of the results document is left as it was, in its original order.

# Usage

	package main

	import (
		"log"

		"github.com/aretw0/enricher"
	)

	func main() {
		e := enricher.New()
		if err := e.Run("scenario.toml", "results.json"); err != nil {
			log.Fatal(err)
		}
	}

Loading and storing are behind the interfaces in package ports, so the
Enricher can also be driven from memory with WithScenarioLoader and
WithResultsStore.
*/
package enricher
