package autoload_test

import (
	"sync"
)

// recordingResolver returns "loaded:<path>" and records every call.
type recordingResolver struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordingResolver) Resolve(path string) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, path)
	return "loaded:" + path, nil
}

func (r *recordingResolver) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}
