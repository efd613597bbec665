package database

import (
	"database/sql"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/companion-ledger/internal/domain/port/core"
)

// PoolExhaustionRatio is the in-use share of the pool that triggers a warning
const PoolExhaustionRatio = 0.8

// ConnectionPoolMonitor periodically samples sql.DBStats and warns when the pool runs dry
type ConnectionPoolMonitor struct {
	stats  func() sql.DBStats
	logger coreport.Logger

	mu   sync.RWMutex
	last sql.DBStats

	stopOnce sync.Once
	stopChan chan struct{}
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(stats func() sql.DBStats, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		stats:    stats,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start samples once and then every interval until Stop is called
func (m *ConnectionPoolMonitor) Start(interval time.Duration) {
	m.collect()

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.collect()
			case <-m.stopChan:
				return
			}
		}
	}()
}

// Stop stops the monitoring. Safe to call more than once.
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

// Last returns the most recent sample
func (m *ConnectionPoolMonitor) Last() sql.DBStats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last
}

func (m *ConnectionPoolMonitor) collect() {
	stats := m.stats()

	m.mu.Lock()
	m.last = stats
	m.mu.Unlock()

	if stats.MaxOpenConnections > 0 && float64(stats.InUse) > float64(stats.MaxOpenConnections)*PoolExhaustionRatio {
		m.logger.Warn("Database connection pool nearly exhausted", map[string]any{
			"in_use":     stats.InUse,
			"max_open":   stats.MaxOpenConnections,
			"idle":       stats.Idle,
			"wait_count": stats.WaitCount,
			"wait_time":  stats.WaitDuration.String(),
		})
	}
}
