package wifi

import (
	bitset "github.com/justincpresley/esat-wifi/util/bitset"
)

// TelemetryQueue decides which telemetry packets go out next. Pending is
// kept inside Enabled whenever it is recomputed by Reset.
type TelemetryQueue struct {
	enabled bitset.BitSet
	pending bitset.BitSet
}

func NewTelemetryQueue() *TelemetryQueue {
	return &TelemetryQueue{}
}

func (q *TelemetryQueue) Enable(id uint8) { q.enabled.Set(id) }

// Disable stops id from being scheduled by later resets. An id that is
// already pending stays pending and can still be drained.
func (q *TelemetryQueue) Disable(id uint8) { q.enabled.Clear(id) }

func (q *TelemetryQueue) IsEnabled(id uint8) bool { return q.enabled.Test(id) }

func (q *TelemetryQueue) Reset(available bitset.BitSet) {
	q.pending = q.pending.Union(available).Intersect(q.enabled)
}

// Next returns the lowest pending id without removing it.
func (q *TelemetryQueue) Next() (uint8, bool) {
	return q.pending.First()
}

func (q *TelemetryQueue) Consume(id uint8) { q.pending.Clear(id) }

func (q *TelemetryQueue) Enabled() bitset.BitSet { return q.enabled }
func (q *TelemetryQueue) Pending() bitset.BitSet { return q.pending }
