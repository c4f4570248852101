// Package scene is an in-memory engine: it owns every entity and component and
// serves the synchronous boundary calls made by scripts.
package scene

import (
	"sync"

	"github.com/zeusync/scriptcore/internal/core/events/bus"
	"github.com/zeusync/scriptcore/internal/core/models"
	"github.com/zeusync/scriptcore/internal/core/models/interfaces"
	"github.com/zeusync/scriptcore/internal/core/observability/log"
)

var _ interfaces.EngineBoundary = (*Scene)(nil)

// EventSource tags every event the scene publishes.
const EventSource = "scene"

// Lifecycle event types.
const (
	EventEntityCreated   = "entity.created"
	EventEntityDestroyed = "entity.destroyed"
	EventEntityRenamed   = "entity.renamed"
	EventComponentAdded  = "component.added"
)

// EntityEvent is the payload of every lifecycle event.
type EntityEvent struct {
	ID   models.UUID          `json:"id"`
	Name string               `json:"name"`
	Kind models.ComponentKind `json:"kind,omitempty"`
}

type record struct {
	id         models.UUID
	name       string
	components map[models.ComponentKind]any
}

// Scene is the live-object table keyed by UUID. Entities are kept in creation
// order, which is the order EntityFindByName scans.
type Scene struct {
	mu       sync.RWMutex
	entities map[models.UUID]*record
	order    []models.UUID

	input *inputState

	logger    log.Log
	scriptLog log.Log
	events    bus.EventBus
}

// New creates an empty scene. A nil logger falls back to log.Provide and a nil
// bus to a private one.
func New(logger log.Log, events bus.EventBus) *Scene {
	if logger == nil {
		logger = log.Provide()
	}
	if events == nil {
		events = bus.New()
	}
	return &Scene{
		entities:  make(map[models.UUID]*record),
		input:     newInputState(),
		logger:    logger.With(log.String("component", "scene")),
		scriptLog: logger.With(log.String("source", "script")),
		events:    events,
	}
}

// Events returns the bus lifecycle events are published on.
func (s *Scene) Events() bus.EventBus { return s.events }

// Len returns the number of live entities.
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

func (s *Scene) EntityIsValid(id models.UUID) bool {
	if !id.IsValid() {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entities[id]
	return ok
}

// EntityCreate adds an entity carrying a default Transform.
func (s *Scene) EntityCreate(name string) models.UUID {
	s.mu.Lock()
	id := models.NewUUID()
	for _, taken := s.entities[id]; taken; _, taken = s.entities[id] {
		id = models.NewUUID()
	}
	s.entities[id] = &record{
		id:   id,
		name: name,
		components: map[models.ComponentKind]any{
			models.KindTransform: newComponent(models.KindTransform),
		},
	}
	s.order = append(s.order, id)
	s.mu.Unlock()

	s.logger.Debug("Entity created", log.Stringer("id", id), log.String("name", name))
	s.publish(EventEntityCreated, EntityEvent{ID: id, Name: name})
	return id
}

func (s *Scene) EntityDestroy(id models.UUID) bool {
	s.mu.Lock()
	rec, ok := s.entities[id]
	if !ok {
		s.mu.Unlock()
		return false
	}
	delete(s.entities, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.logger.Debug("Entity destroyed", log.Stringer("id", id), log.String("name", rec.name))
	s.publish(EventEntityDestroyed, EntityEvent{ID: id, Name: rec.name})
	return true
}

// EntityFindByName returns the first live entity, in creation order, whose name
// matches. It is a linear scan.
func (s *Scene) EntityFindByName(name string) (models.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.order {
		if s.entities[id].name == name {
			return id, true
		}
	}
	return models.InvalidUUID, false
}

func (s *Scene) EntityHasComponent(id models.UUID, kind models.ComponentKind) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.entities[id]
	if !ok {
		return false
	}
	_, has := rec.components[kind]
	return has
}

func (s *Scene) EntityAddComponent(id models.UUID, kind models.ComponentKind) {
	if !kind.IsValid() {
		s.logger.Warn("Unknown component kind", log.Stringer("id", id), log.Stringer("kind", kind))
		return
	}
	s.mu.Lock()
	rec, ok := s.entities[id]
	if !ok {
		s.mu.Unlock()
		s.deadCall("EntityAddComponent", id)
		return
	}
	if _, has := rec.components[kind]; has {
		s.mu.Unlock()
		return
	}
	rec.components[kind] = newComponent(kind)
	name := rec.name
	s.mu.Unlock()

	s.publish(EventComponentAdded, EntityEvent{ID: id, Name: name, Kind: kind})
}

func (s *Scene) EntityGetName(id models.UUID) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.entities[id]
	if !ok {
		return ""
	}
	return rec.name
}

func (s *Scene) EntitySetName(id models.UUID, name string) {
	s.mu.Lock()
	rec, ok := s.entities[id]
	if !ok {
		s.mu.Unlock()
		s.deadCall("EntitySetName", id)
		return
	}
	rec.name = name
	s.mu.Unlock()

	s.publish(EventEntityRenamed, EntityEvent{ID: id, Name: name})
}

// Log writes a script message at the given level.
func (s *Scene) Log(level log.Level, message string) {
	s.scriptLog.Log(level, message)
}

func (s *Scene) publish(eventType string, payload EntityEvent) {
	if err := s.events.Publish(bus.NewEvent(eventType, EventSource, payload)); err != nil {
		s.logger.Warn("Event handler failed", log.String("event", eventType), log.Error(err))
	}
}

func (s *Scene) deadCall(op string, id models.UUID) {
	s.logger.Warn("Boundary call on missing entity or component",
		log.String("op", op), log.Stringer("id", id))
}
