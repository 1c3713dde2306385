package ui

// Package ui contains the Fyne-based user interface for the install banner.
// It wires user interactions to the prompt controller and renders the
// banner, the manual-install fallback dialog, and the maintenance settings.
// All UI strings are localized via Localization.
