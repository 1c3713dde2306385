package prompt

// Package prompt implements the controller deciding when the install banner
// is shown, deferred, or suppressed. It captures the platform's one-shot
// install capability, consults the persisted flags, schedules display after
// a short delay, and mediates the user's accept/dismiss decision.
