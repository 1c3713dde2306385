package model

// Outcome represents the user's decision reported by the native install flow
type Outcome string

const (
	// OutcomeAccepted means the user accepted the native install prompt
	OutcomeAccepted Outcome = "accepted"

	// OutcomeDismissed means the user dismissed the native install prompt
	OutcomeDismissed Outcome = "dismissed"
)

// String returns the string representation of Outcome
func (o Outcome) String() string {
	return string(o)
}

// Accepted returns true if the user accepted the native install prompt
func (o Outcome) Accepted() bool {
	return o == OutcomeAccepted
}
