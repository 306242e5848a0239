/*
Package ports defines the driven ports (interfaces) of the results enricher.

These interfaces decouple the enrichment flow from the file formats it reads
and writes, so the facade can be driven from files or from memory in tests.

# Key Interfaces

  - ScenarioLoader: extracts the participant identity from a scenario.
  - ResultsStore: writes the participant identity into a results document.
*/
package ports
