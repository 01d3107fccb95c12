package buffer

import (
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	bytesInUseGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pgsqlite_buffer_bytes_in_use",
		Help: "Bytes currently held by the buffer pool, pooled or checked out.",
	})
	discardsCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pgsqlite_buffer_discards_total",
		Help: "Total buffers dropped instead of returned to the pool.",
	})
	registerMetricsOnce sync.Once
)

// Thresholds are fractions of Monitor's configured high watermark; crossing
// either triggers the registered cleanup callbacks. The spec names the two
// tiers but leaves their exact ratio unspecified — medium is fixed here at
// half of high, matching the 50%-cache-trim figure spec.md §4.6 already
// commits to for the corresponding cleanup action.
const mediumWatermarkFraction = 0.5

// Monitor tracks bytes currently held by one or more Pools and invokes
// registered cleanup callbacks when usage crosses the medium or high
// watermark, grounded in the teacher's sync.Map-based Pool but generalized
// to atomic counters since this isn't a keyed cache.
type Monitor struct {
	highWatermark   int64
	mediumWatermark int64

	bytesInUse atomic.Int64

	mu        sync.Mutex
	callbacks []func()

	triggeredMedium atomic.Bool
	triggeredHigh   atomic.Bool
}

// NewMonitor builds a Monitor with the given high watermark in bytes; the
// medium watermark is derived from it.
func NewMonitor(highWatermarkBytes int64) *Monitor {
	registerMetricsOnce.Do(func() {
		prometheus.MustRegister(bytesInUseGauge, discardsCounter)
	})
	return &Monitor{
		highWatermark:   highWatermarkBytes,
		mediumWatermark: int64(float64(highWatermarkBytes) * mediumWatermarkFraction),
	}
}

// RegisterCleanup adds a callback invoked (at most once per watermark
// crossing, until usage drops back below it) when bytes-in-use crosses a
// threshold. Cache-trim hooks from pkg/cache are the intended callers.
func (m *Monitor) RegisterCleanup(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

// BytesInUse reports the current tracked byte count.
func (m *Monitor) BytesInUse() int64 {
	return m.bytesInUse.Load()
}

func (m *Monitor) recordDiscard() {
	discardsCounter.Inc()
}

func (m *Monitor) add(n int64) {
	v := m.bytesInUse.Add(n)
	bytesInUseGauge.Set(float64(v))
	m.checkThresholds(v)
}

func (m *Monitor) sub(n int64) {
	v := m.bytesInUse.Add(-n)
	bytesInUseGauge.Set(float64(v))
	if v < m.mediumWatermark {
		m.triggeredMedium.Store(false)
	}
	if v < m.highWatermark {
		m.triggeredHigh.Store(false)
	}
}

func (m *Monitor) checkThresholds(v int64) {
	if m.highWatermark > 0 && v >= m.highWatermark {
		if m.triggeredHigh.CompareAndSwap(false, true) {
			m.runCleanup()
		}
		return
	}
	if m.mediumWatermark > 0 && v >= m.mediumWatermark {
		if m.triggeredMedium.CompareAndSwap(false, true) {
			m.runCleanup()
		}
	}
}

func (m *Monitor) runCleanup() {
	m.mu.Lock()
	callbacks := append([]func(){}, m.callbacks...)
	m.mu.Unlock()
	for _, fn := range callbacks {
		fn()
	}
}
