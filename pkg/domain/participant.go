package domain

// DefaultParticipantName is written when a scenario does not name its participant.
const DefaultParticipantName = "unknown"

// Participant is the view of a single scenario participant entry.
// Only Name is consumed by the enricher; the remaining keys are kept in Extra.
type Participant struct {
	Name  string
	Extra map[string]any

	// Named reports whether the entry carried a string name.
	Named bool
}

// Info converts the entry into the identity written to the results document.
func (p Participant) Info() ParticipantInfo {
	if !p.Named {
		return NewParticipantInfo(DefaultParticipantName)
	}
	return NewParticipantInfo(p.Name)
}

// ParticipantInfo is the identity extracted from a scenario.
// The zero value means the scenario listed no participants.
type ParticipantInfo struct {
	Name string
	// Named is false when no participant entry was found.
	Named bool
}

// NewParticipantInfo returns a ParticipantInfo carrying the given name.
func NewParticipantInfo(name string) ParticipantInfo {
	return ParticipantInfo{Name: name, Named: true}
}

// ResolvedName returns the name to write into the results document.
func (p ParticipantInfo) ResolvedName() string {
	if !p.Named {
		return DefaultParticipantName
	}
	return p.Name
}
