package platform

import (
	"log"
	"sync"
)

// Watcher delivers installability signals from platform probes to a single
// subscriber. Subscribe on start, Close on teardown; signals emitted after
// Close or before Subscribe are dropped.
type Watcher struct {
	mu      sync.Mutex
	handler func(*InstallSignal)
	closed  bool
}

// NewWatcher creates a new installability watcher
func NewWatcher() *Watcher {
	return &Watcher{}
}

// Subscribe registers the handler receiving emitted signals, replacing any
// previous one
func (w *Watcher) Subscribe(handler func(*InstallSignal)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.handler = handler
}

// Emit delivers a signal to the subscriber. Platform probes call this when
// install criteria are met.
func (w *Watcher) Emit(sig *InstallSignal) {
	w.mu.Lock()
	handler := w.handler
	closed := w.closed
	w.mu.Unlock()

	if closed || handler == nil {
		log.Printf("Dropping install signal: no subscriber")
		return
	}
	handler(sig)
}

// Close detaches the subscriber so no further signals reach a stale instance
func (w *Watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	w.handler = nil
}
