package mdpress

import (
	"errors"
	"runtime"
	"sync"
	"time"
)

// Pool sizing constants.
const (
	// MinPoolSize ensures at least one engine is available.
	MinPoolSize = 1

	// MaxPoolSize caps browser instances to limit memory (~200MB each).
	MaxPoolSize = 8

	// cpuDivisor leaves headroom for Chrome child processes.
	cpuDivisor = 2
)

// EnginePool manages a pool of Engine instances so independent jobs can
// run concurrently, each with its own browser. A single job always drives
// one engine serially; the pool only serves separate jobs. Engines are
// created lazily on first acquire to avoid startup delay.
type EnginePool struct {
	size    int
	timeout time.Duration
	engines []Engine
	sem     chan Engine
	mu      sync.Mutex
	created int
	closed  bool
}

// NewEnginePool creates a pool with capacity for n engines, each using the
// given page-load timeout. Engines are created lazily when acquired.
func NewEnginePool(n int, timeout time.Duration) *EnginePool {
	if n < 1 {
		n = 1
	}

	return &EnginePool{
		size:    n,
		timeout: timeout,
		engines: make([]Engine, 0, n),
		sem:     make(chan Engine, n),
	}
}

// Acquire gets an engine from the pool, creating one if needed.
// Blocks if all engines are in use.
func (p *EnginePool) Acquire() Engine {
	// Try to get an existing engine (non-blocking)
	select {
	case eng := <-p.sem:
		return eng
	default:
	}

	// Check if we can create a new engine
	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create new engine outside the lock
		eng := NewRodEngine(p.timeout)

		p.mu.Lock()
		p.engines = append(p.engines, eng)
		p.mu.Unlock()

		return eng
	}
	p.mu.Unlock()

	// All engines created, wait for one to be released
	return <-p.sem
}

// Release returns an engine to the pool.
// The lock is released before sending to avoid deadlock when channel is full.
func (p *EnginePool) Release(eng Engine) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	p.sem <- eng
}

// Close releases all browser resources.
// Returns an aggregated error if multiple engines fail to close.
func (p *EnginePool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	engines := p.engines
	p.mu.Unlock()

	var errs []error
	for _, eng := range engines {
		if err := eng.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Size returns the pool capacity.
func (p *EnginePool) Size() int {
	return p.size
}

// ResolvePoolSize determines the pool size to use.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs in containerized environments
	available := runtime.GOMAXPROCS(0)
	n := available / cpuDivisor

	if n < MinPoolSize {
		return MinPoolSize
	}
	if n > MaxPoolSize {
		return MaxPoolSize
	}
	return n
}
