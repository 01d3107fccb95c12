package buffer

import "github.com/pgsqlite/pgsqlite/pkg/config"

// NewFromConfig builds a Monitor and Pool wired together from the process
// configuration. Monitoring is optional per buffer.enable_monitoring; with
// it disabled the Pool still frees and reuses buffers, it just never reports
// bytes-in-use or triggers cleanup callbacks.
func NewFromConfig(bufCfg config.BufferConfig, memCfg config.MemoryConfig) (*Pool, *Monitor) {
	var monitor *Monitor
	if bufCfg.EnableMonitoring {
		monitor = NewMonitor(memCfg.HighWatermarkBytes)
	}
	pool := NewPool(bufCfg.MaxPoolSize, bufCfg.MaxCapacity, monitor)
	return pool, monitor
}
