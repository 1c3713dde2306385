package platform

// Package platform contains OS/platform integration glue: the installed
// display-mode query, manual install instructions, the installability signal
// watcher, and launcher-entry installation.
