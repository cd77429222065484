package routes

import (
	"sync"

	demosvc "copilot_demo/internal/services/demo"
)

type Deps struct {
	Demo *demosvc.Service
}

var (
	depsMu   sync.RWMutex
	depsOnce bool
	deps     Deps
)

func SetDeps(next Deps) {
	depsMu.Lock()
	defer depsMu.Unlock()
	deps = next
	depsOnce = true
}

func getDeps() Deps {
	depsMu.RLock()
	defer depsMu.RUnlock()
	if !depsOnce {
		panic("routes deps not initialized")
	}
	return deps
}
