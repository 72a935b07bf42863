package rag

import (
	"io"
	"sync"
)

// Handle owns a lazily-initialized retrieval service for the process
// lifetime. The pipeline itself takes a Service explicitly; Handle exists
// for callers (the CLI) that want initialize-once semantics with an
// explicit teardown instead of a hidden global.
type Handle struct {
	mu      sync.Mutex
	svc     Service
	factory func() (Service, error)
}

// NewHandle creates a Handle that builds its Service on first use.
func NewHandle(factory func() (Service, error)) *Handle {
	return &Handle{factory: factory}
}

// Service returns the underlying Service, initializing it on first call.
func (h *Handle) Service() (Service, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.svc != nil {
		return h.svc, nil
	}
	svc, err := h.factory()
	if err != nil {
		return nil, err
	}
	h.svc = svc
	return h.svc, nil
}

// Close releases the service and resets the handle to uninitialized, so a
// later Service call re-creates it.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.svc == nil {
		return nil
	}
	var err error
	if closer, ok := h.svc.(io.Closer); ok {
		err = closer.Close()
	}
	h.svc = nil
	return err
}
