package app

import (
	"sync"

	"go.trai.ch/weld/internal/core/domain"
)

// hookGuard admits each lifecycle hook at most once per App instance. The
// host runtime delivers hooks at least once, sometimes twice per logical
// event; without the guard the non-idempotent manifest patcher would insert
// duplicate fragments. State is owned by the App, never module-level, so
// parallel orchestrations do not interfere.
type hookGuard struct {
	mu       sync.Mutex
	admitted map[domain.HookID]bool
}

func newHookGuard() *hookGuard {
	return &hookGuard{admitted: make(map[domain.HookID]bool)}
}

// admitOnce returns true exactly once per hook ID for the lifetime of the
// guard; subsequent calls with the same ID return false.
func (g *hookGuard) admitOnce(hook domain.HookID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.admitted[hook] {
		return false
	}
	g.admitted[hook] = true
	return true
}
