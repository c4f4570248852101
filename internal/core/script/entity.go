// Package script is the handle model scripts use to reach engine state.
//
// An Entity or Component is a small copyable value naming engine-owned state
// by identity. Handles never cache what they refer to: every access goes back
// through the engine boundary, so a handle to a destroyed entity simply
// reports itself invalid and degrades to zero values and no-ops.
//
// Handles must only be used from the update thread.
package script

import (
	"fmt"

	"github.com/zeusync/scriptcore/internal/core/models"
	"github.com/zeusync/scriptcore/internal/core/models/interfaces"
)

// DefaultEntityName is used when CreateEntity is given an empty name.
const DefaultEntityName = "Entity"

// Entity is a handle to an engine-side entity. The zero value is the null handle.
type Entity struct {
	id     models.UUID
	engine interfaces.EngineBoundary
}

// EntityFromID wraps an identity. The handle is not checked for liveness.
func EntityFromID(engine interfaces.EngineBoundary, id models.UUID) Entity {
	return Entity{id: id, engine: engine}
}

// CreateEntity asks the engine for a new entity.
func CreateEntity(engine interfaces.EngineBoundary, name string) Entity {
	if name == "" {
		name = DefaultEntityName
	}
	return Entity{id: engine.EntityCreate(name), engine: engine}
}

// DestroyEntity removes e from the engine. Destroying an invalid handle is a
// no-op and reports false.
func DestroyEntity(e Entity) bool {
	if !e.IsValid() {
		return false
	}
	return e.engine.EntityDestroy(e.id)
}

// FindEntityByName returns the first live entity with the given name. The engine
// scans every entity, so avoid calling it every frame.
func FindEntityByName(engine interfaces.EngineBoundary, name string) (Entity, bool) {
	id, ok := engine.EntityFindByName(name)
	if !ok || !id.IsValid() {
		return Entity{}, false
	}
	return Entity{id: id, engine: engine}, true
}

func (e Entity) ID() models.UUID { return e.id }

// IsValid asks the engine whether the entity is still live.
func (e Entity) IsValid() bool {
	return e.engine != nil && e.id.IsValid() && e.engine.EntityIsValid(e.id)
}

// IsNil reports whether e compares equal to the null handle.
func (e Entity) IsNil() bool { return !e.IsValid() }

// Equal compares handles. An invalid handle equals only other invalid handles;
// two live handles are equal when their identities are.
func (e Entity) Equal(other Entity) bool {
	eNil, otherNil := e.IsNil(), other.IsNil()
	if eNil || otherNil {
		return eNil && otherNil
	}
	return e.id == other.id
}

func (e Entity) Name() string {
	if !e.IsValid() {
		return ""
	}
	return e.engine.EntityGetName(e.id)
}

func (e Entity) SetName(name string) {
	if !e.IsValid() {
		return
	}
	e.engine.EntitySetName(e.id, name)
}

func (e Entity) HasComponent(kind models.ComponentKind) bool {
	if !e.IsValid() {
		return false
	}
	return e.engine.EntityHasComponent(e.id, kind)
}

// GetComponent returns a handle only when the entity currently has kind.
func (e Entity) GetComponent(kind models.ComponentKind) (Component, bool) {
	if !e.HasComponent(kind) {
		return Component{}, false
	}
	return Component{entity: e, kind: kind}, true
}

// AddComponent attaches a new component of kind. It returns false without
// touching the entity when the kind is already present or the entity is gone.
func (e Entity) AddComponent(kind models.ComponentKind) (Component, bool) {
	if !e.IsValid() || !kind.IsValid() || e.engine.EntityHasComponent(e.id, kind) {
		return Component{}, false
	}
	e.engine.EntityAddComponent(e.id, kind)
	return Component{entity: e, kind: kind}, true
}

// Transform looks the transform up again on every call.
func (e Entity) Transform() (TransformComponent, bool) {
	c, ok := e.GetComponent(models.KindTransform)
	return TransformComponent{c}, ok
}

func (e Entity) SpriteRenderer() (SpriteRendererComponent, bool) {
	c, ok := e.GetComponent(models.KindSpriteRenderer)
	return SpriteRendererComponent{c}, ok
}

func (e Entity) CircleRenderer() (CircleRendererComponent, bool) {
	c, ok := e.GetComponent(models.KindCircleRenderer)
	return CircleRendererComponent{c}, ok
}

func (e Entity) Rigidbody2D() (Rigidbody2DComponent, bool) {
	c, ok := e.GetComponent(models.KindRigidbody2D)
	return Rigidbody2DComponent{c}, ok
}

func (e Entity) AudioListener() (AudioListenerComponent, bool) {
	c, ok := e.GetComponent(models.KindAudioListener)
	return AudioListenerComponent{c}, ok
}

func (e Entity) AudioSource() (AudioSourceComponent, bool) {
	c, ok := e.GetComponent(models.KindAudioSource)
	return AudioSourceComponent{c}, ok
}

// String formats the handle as Name<id> without asking the engine when the
// handle is null.
func (e Entity) String() string {
	if !e.IsValid() {
		return fmt.Sprintf("<%s>", e.id)
	}
	return fmt.Sprintf("%s<%s>", e.Name(), e.id)
}
