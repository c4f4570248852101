package server

import (
	"encoding/json"
	"maps"
	"net/http"
	"sync"

	"github.com/zeusync/scriptcore/internal/core/events/bus"
	"github.com/zeusync/scriptcore/internal/core/observability/log"
	"github.com/zeusync/scriptcore/internal/core/runtime"
)

// StatsSource reports behavior runtime counters.
type StatsSource interface {
	Stats() runtime.Stats
}

// Metrics is the /metrics document.
type Metrics struct {
	Bus      bus.EventBusMetrics `json:"bus"`
	Events   map[string]uint64   `json:"events"`
	Failures map[string]uint64   `json:"failures,omitempty"`
	Dropped  uint64              `json:"dropped"`
	Clients  int                 `json:"clients"`
	Runtime  *runtime.Stats      `json:"runtime,omitempty"`
}

// eventCounter is registered as a bus observer and counts events per type.
type eventCounter struct {
	mu       sync.Mutex
	events   map[string]uint64
	failures map[string]uint64
	dropped  uint64
}

func newEventCounter() *eventCounter {
	return &eventCounter{
		events:   make(map[string]uint64),
		failures: make(map[string]uint64),
	}
}

func (c *eventCounter) OnPublish(eventType string, _ bus.Event) {
	c.mu.Lock()
	c.events[eventType]++
	c.mu.Unlock()
}

func (c *eventCounter) OnDelivered(eventType string, _ int, err error, _ int64) {
	if err == nil {
		return
	}
	c.mu.Lock()
	c.failures[eventType]++
	c.mu.Unlock()
}

func (c *eventCounter) drop() {
	c.mu.Lock()
	c.dropped++
	c.mu.Unlock()
}

func (c *eventCounter) fill(m *Metrics) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m.Events = maps.Clone(c.events)
	if len(c.failures) > 0 {
		m.Failures = maps.Clone(c.failures)
	}
	m.Dropped = c.dropped
}

func (s *Inspector) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	m := Metrics{
		Bus:     s.events.GetMetrics(),
		Clients: s.Clients(),
	}
	s.counter.fill(&m)
	if s.stats != nil {
		stats := s.stats.Stats()
		m.Runtime = &stats
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(m); err != nil {
		s.logger.Warn("Encoding metrics failed", log.Error(err))
	}
}
