package scene

import (
	"github.com/zeusync/scriptcore/internal/core/models"
)

// EntitySnapshot is a point-in-time copy of one entity.
type EntitySnapshot struct {
	ID         models.UUID            `json:"id"`
	Name       string                 `json:"name"`
	Components []models.ComponentKind `json:"components"`
	Transform  Transform              `json:"transform"`
}

// Snapshot copies every live entity in creation order.
func (s *Scene) Snapshot() models.Iterator[EntitySnapshot] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]EntitySnapshot, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.snapshotLocked(s.entities[id]))
	}
	return models.NewSliceIterator(out)
}

// EntitiesWith lists the live entities carrying kind, in creation order.
func (s *Scene) EntitiesWith(kind models.ComponentKind) models.Iterator[models.UUID] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.UUID
	for _, id := range s.order {
		if _, ok := s.entities[id].components[kind]; ok {
			out = append(out, id)
		}
	}
	return models.NewSliceIterator(out)
}

func (s *Scene) snapshotLocked(rec *record) EntitySnapshot {
	snap := EntitySnapshot{ID: rec.id, Name: rec.name}
	for _, kind := range models.ComponentKinds() {
		if _, ok := rec.components[kind]; ok {
			snap.Components = append(snap.Components, kind)
		}
	}
	if t, ok := rec.components[models.KindTransform].(*Transform); ok {
		snap.Transform = *t
	}
	return snap
}
