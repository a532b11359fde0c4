// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{RejectEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	s := jsontime.RegisterAll(jsontime.NewConfig(jsontime.WithHooks(hooks))).Build()
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/jsontime"
)

// Hooks forwards events to inner on background workers. Events are
// dropped when the queue is full or after Close.
type Hooks struct {
	inner jsontime.Hooks
	q     chan func()
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

var _ jsontime.Hooks = (*Hooks)(nil)

func New(inner jsontime.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers.
func (h *Hooks) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	close(h.q)
	h.mu.Unlock()
	h.wg.Wait()
}

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) ConverterReplaced(typ string) { h.try(func() { h.inner.ConverterReplaced(typ) }) }
func (h *Hooks) DecodeRejected(typ, input string, err error) {
	h.try(func() { h.inner.DecodeRejected(typ, input, err) })
}
