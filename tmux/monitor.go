package tmux

import (
	"time"

	"keyhud/logging"
)

// Monitor watches the attached tmux client for key-table (mode) changes
type Monitor struct {
	client    ClientStater
	stopCh    chan struct{}
	notifyCh  chan string
	lastTable string
}

// NewMonitor creates a new mode monitor. Mode changes are delivered on
// notifyCh; delivery is serial, and an update is dropped when the consumer
// lags (the next poll re-detects the change).
func NewMonitor(client ClientStater, notifyCh chan string) *Monitor {
	return &Monitor{
		client:   client,
		stopCh:   make(chan struct{}),
		notifyCh: notifyCh,
	}
}

// Start begins monitoring at the given poll interval
func (m *Monitor) Start(interval time.Duration) {
	go m.monitorLoop(interval)
}

// Stop halts the monitoring
func (m *Monitor) Stop() {
	close(m.stopCh)
}

// monitorLoop runs in the background checking the client's key table
func (m *Monitor) monitorLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			m.checkKeyTable()
		}
	}
}

// checkKeyTable queries the current key table and notifies on change
func (m *Monitor) checkKeyTable() {
	table, err := m.client.CurrentKeyTable()
	if err != nil {
		// The client can briefly vanish mid-detach; just try again on
		// the next tick.
		return
	}

	if table == m.lastTable {
		return
	}

	logging.Logger.Debug("Key table changed", "table", table)

	select {
	case m.notifyCh <- table:
		m.lastTable = table
	default:
		// Channel full; leave lastTable alone so the next tick retries
	}
}
