package model

// PromptState represents the state of the install banner state machine
type PromptState string

const (
	// StateHidden means the banner is off screen and no show is pending
	StateHidden PromptState = "Hidden"

	// StateScheduled means a show has been scheduled after the capture delay
	StateScheduled PromptState = "ScheduledToShow"

	// StateVisible means the banner is currently on screen
	StateVisible PromptState = "Visible"
)

// String returns the string representation of PromptState
func (ps PromptState) String() string {
	return string(ps)
}

// IsHidden returns true if the banner is off screen with nothing pending
func (ps PromptState) IsHidden() bool {
	return ps == StateHidden
}

// IsPending returns true if a show has been scheduled but not yet fired
func (ps PromptState) IsPending() bool {
	return ps == StateScheduled
}

// IsVisible returns true if the banner is on screen
func (ps PromptState) IsVisible() bool {
	return ps == StateVisible
}
