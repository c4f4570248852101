// Package server exposes a read-only HTTP inspector for a running scene.
//
//	GET /entities         JSON snapshot of every live entity
//	GET /entities?kind=k  only the entities carrying component kind k
//	GET /metrics          event bus, event type and runtime counters
//	GET /ws               WebSocket stream of lifecycle events
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/zeusync/scriptcore/internal/core/events/bus"
	"github.com/zeusync/scriptcore/internal/core/models"
	"github.com/zeusync/scriptcore/internal/core/observability/log"
	"github.com/zeusync/scriptcore/internal/core/scene"
)

const shutdownTimeout = 5 * time.Second

// Snapshotter is the part of the scene the inspector reads.
type Snapshotter interface {
	Snapshot() models.Iterator[scene.EntitySnapshot]
	EntitiesWith(kind models.ComponentKind) models.Iterator[models.UUID]
}

type Inspector struct {
	addr     string
	entities Snapshotter
	stats    StatsSource
	events   bus.EventBus
	counter  *eventCounter
	logger   log.Log

	mu       sync.Mutex
	clients  map[*client]struct{}
	sub      bus.Subscription
	server   *http.Server
	listener net.Listener
	closed   bool
}

// NewInspector subscribes to every event on events and observes its deliveries.
// stats may be nil.
func NewInspector(addr string, entities Snapshotter, stats StatsSource, events bus.EventBus, logger log.Log) (*Inspector, error) {
	if entities == nil || events == nil {
		return nil, ErrInvalidConfig
	}
	if logger == nil {
		logger = log.Provide()
	}
	s := &Inspector{
		addr:     addr,
		entities: entities,
		stats:    stats,
		events:   events,
		counter:  newEventCounter(),
		logger:   logger.With(log.String("component", "inspector")),
		clients:  make(map[*client]struct{}),
	}
	sub, err := events.Subscribe(bus.Wildcard, s.broadcast)
	if err != nil {
		return nil, err
	}
	s.sub = sub
	events.AddObserver(s.counter)
	return s, nil
}

func (s *Inspector) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/ws":
		s.handleWebSocket(w, r)
	case "/entities":
		s.handleEntities(w, r)
	case "/metrics":
		s.handleMetrics(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (s *Inspector) handleEntities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	snapshot := s.entities.Snapshot().ToSlice()
	if raw := r.URL.Query().Get("kind"); raw != "" {
		var kind models.ComponentKind
		if err := kind.UnmarshalText([]byte(raw)); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		snapshot = filterByKind(snapshot, s.entities.EntitiesWith(kind))
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		s.logger.Warn("Encoding entity snapshot failed", log.Error(err))
	}
}

func filterByKind(snapshot []scene.EntitySnapshot, ids models.Iterator[models.UUID]) []scene.EntitySnapshot {
	defer func() { _ = ids.Close() }()
	keep := make(map[models.UUID]struct{}, ids.Count())
	for ids.Next() {
		keep[ids.Item()] = struct{}{}
	}
	out := make([]scene.EntitySnapshot, 0, len(keep))
	for _, snap := range snapshot {
		if _, ok := keep[snap.ID]; ok {
			out = append(out, snap)
		}
	}
	return out
}

// Start listens on the configured address and serves in the background.
func (s *Inspector) Start(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrServerClosed
	}
	if s.server != nil {
		return ErrServerAlreadyRunning
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = ln
	s.server = &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	srv := s.server
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Inspector stopped", log.Error(err))
		}
	}()
	s.logger.Info("Inspector listening", log.String("addr", ln.Addr().String()))
	return nil
}

// Addr returns the bound address once started.
func (s *Inspector) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

func (s *Inspector) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Clients returns the number of connected WebSocket clients.
func (s *Inspector) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Stop shuts the HTTP server down, disconnects every client and leaves the bus.
// The inspector cannot be restarted and refuses new WebSocket clients.
func (s *Inspector) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrServerClosed
	}
	s.closed = true
	srv := s.server
	sub := s.sub
	for c := range s.clients {
		delete(s.clients, c)
		c.close()
	}
	s.mu.Unlock()

	s.events.RemoveObserver(s.counter)
	_ = s.events.Unsubscribe(sub)
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// Run starts the inspector and blocks until ctx is done.
func (s *Inspector) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Stop(stopCtx)
}
