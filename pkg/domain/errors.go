package domain

import "errors"

// ErrScenarioNotFound is returned when the scenario path does not exist.
var ErrScenarioNotFound = errors.New("scenario not found")

// ErrResultsNotFound is returned when the results path does not exist.
var ErrResultsNotFound = errors.New("results not found")

// ErrInvalidResults is returned when the results document is not valid JSON.
var ErrInvalidResults = errors.New("results document is not valid JSON")

// ErrResultsNotObject is returned when the results document's top-level value is not a JSON object.
var ErrResultsNotObject = errors.New("results document is not a JSON object")

// ErrParticipantsNotObject is returned when the results "participants" field exists but is not a JSON object.
var ErrParticipantsNotObject = errors.New("results participants field is not a JSON object")
