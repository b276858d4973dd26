package status

import "sync/atomic"

// Metric keys written by the engine
const (
	KeyFrames         = "engine.frames"
	KeyFrameDelta     = "engine.frame_delta"
	KeyEvents         = "engine.events"
	KeySessions       = "session.count"
	KeySessionID      = "session.id"
	KeyCropsSpawned   = "session.spawned"
	KeyCropsCollected = "session.collected"
	KeyMovesBlocked   = "session.blocked"
	KeySpawnInterval  = "session.spawn_interval"
)

// Registry is the central metrics facade
// Owners cache pointers during init; update loops write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Snapshot copies every metric into a flat map, suitable for structured logging
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = v.Get() })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
