package wifi

import "sync/atomic"

// ResetSignal defers a telemetry queue reset from an asynchronous trigger
// to the main loop. Signal may be called from any goroutine; Drain belongs
// to the main loop. Repeated signals before a Drain coalesce into one.
type ResetSignal struct {
	requested atomic.Bool
}

func (r *ResetSignal) Signal() {
	r.requested.Store(true)
}

// Drain reports whether a reset was requested since the last Drain and
// clears the request.
func (r *ResetSignal) Drain() bool {
	return r.requested.CompareAndSwap(true, false)
}
