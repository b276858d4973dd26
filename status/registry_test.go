package status

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	a := m.Get("x")
	b := m.Get("x")
	if a != b {
		t.Error("Get should return the same pointer for the same key")
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d, want 1", m.Count())
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	m.Get("b")
	m.Get("c")
	m.Get("a")

	var keys []string
	m.Range(func(k string, _ *atomic.Int64) { keys = append(keys, k) })
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("Range order = %v, want [a b c]", keys)
	}
}

func TestRegistryConcurrentIncrements(t *testing.T) {
	r := NewRegistry()
	const goroutines = 50
	const perGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			c := r.Ints.Get(KeyFrames)
			for j := 0; j < perGoroutine; j++ {
				c.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := r.Ints.Get(KeyFrames).Load(); got != goroutines*perGoroutine {
		t.Errorf("frames = %d, want %d", got, goroutines*perGoroutine)
	}
}

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyCropsCollected).Store(4)
	r.Floats.Get(KeySpawnInterval).Set(0.55)
	r.Strings.Get(KeySessionID).Store("abc")

	snap := r.Snapshot()
	if snap[KeyCropsCollected] != int64(4) {
		t.Errorf("collected = %v", snap[KeyCropsCollected])
	}
	if snap[KeySpawnInterval] != 0.55 {
		t.Errorf("spawn interval = %v", snap[KeySpawnInterval])
	}
	if snap[KeySessionID] != "abc" {
		t.Errorf("session id = %v", snap[KeySessionID])
	}
	if r.TotalCount() != 3 {
		t.Errorf("TotalCount() = %d, want 3", r.TotalCount())
	}
}

func TestAtomicZeroValues(t *testing.T) {
	var f AtomicFloat
	var s AtomicString
	if f.Get() != 0 || s.Load() != "" {
		t.Error("Zero values should read as 0 and empty string")
	}
}
