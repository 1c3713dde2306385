package model

// Package model defines domain data structures used across the app: the
// banner state machine states and the outcome of the native install flow.
// Values are plain string enums with explicit predicate helpers so the UI
// and the controller can branch on them directly.
