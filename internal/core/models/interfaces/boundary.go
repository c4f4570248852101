package interfaces

import (
	"github.com/zeusync/scriptcore/internal/core/models"
	"github.com/zeusync/scriptcore/internal/core/observability/log"
	"github.com/zeusync/scriptcore/pkg/hmath"
)

// EngineBoundary is the synchronous call surface the host engine exposes to
// scripts. Every call is a round trip that completes before returning and is
// only valid from the update thread.
//
// Calls addressed to an entity that is no longer live must not fail: getters
// return zero values and setters do nothing.
type EngineBoundary interface {
	EntityBoundary
	TransformBoundary
	SpriteRendererBoundary
	CircleRendererBoundary
	Rigidbody2DBoundary
	AudioListenerBoundary
	AudioSourceBoundary
	InputBoundary
	LogBoundary
}

// EntityBoundary manages entity lifetime, identity and component membership.
type EntityBoundary interface {
	// EntityIsValid reports whether id refers to a live entity.
	EntityIsValid(id models.UUID) bool
	// EntityCreate instantiates a new entity and returns its fresh identity.
	EntityCreate(name string) models.UUID
	// EntityDestroy removes the entity. It returns false when id is not live.
	EntityDestroy(id models.UUID) bool
	// EntityFindByName scans live entities and returns the first whose name matches.
	EntityFindByName(name string) (models.UUID, bool)
	EntityHasComponent(id models.UUID, kind models.ComponentKind) bool
	// EntityAddComponent attaches a default component. It does nothing when the
	// kind is already present.
	EntityAddComponent(id models.UUID, kind models.ComponentKind)
	EntityGetName(id models.UUID) string
	EntitySetName(id models.UUID, name string)
}

type TransformBoundary interface {
	TransformGetPosition(id models.UUID) hmath.Vector3
	TransformSetPosition(id models.UUID, v hmath.Vector3)
	TransformGetRotation(id models.UUID) hmath.Vector3
	TransformSetRotation(id models.UUID, v hmath.Vector3)
	TransformGetScale(id models.UUID) hmath.Vector3
	TransformSetScale(id models.UUID, v hmath.Vector3)
}

type SpriteRendererBoundary interface {
	SpriteRendererGetColor(id models.UUID) hmath.Color
	SpriteRendererSetColor(id models.UUID, c hmath.Color)
	SpriteRendererGetTiling(id models.UUID) hmath.Vector2
	SpriteRendererSetTiling(id models.UUID, v hmath.Vector2)
}

type CircleRendererBoundary interface {
	CircleRendererGetColor(id models.UUID) hmath.Color
	CircleRendererSetColor(id models.UUID, c hmath.Color)
	CircleRendererGetThickness(id models.UUID) float32
	CircleRendererSetThickness(id models.UUID, v float32)
	CircleRendererGetFade(id models.UUID) float32
	CircleRendererSetFade(id models.UUID, v float32)
}

type Rigidbody2DBoundary interface {
	Rigidbody2DApplyLinearImpulse(id models.UUID, impulse, worldPoint hmath.Vector2, wake bool)
	Rigidbody2DApplyLinearImpulseToCenter(id models.UUID, impulse hmath.Vector2, wake bool)
	Rigidbody2DApplyAngularImpulse(id models.UUID, impulse float32, wake bool)
}

type AudioListenerBoundary interface {
	AudioListenerGetIsVisibleInGame(id models.UUID) bool
	AudioListenerSetIsVisibleInGame(id models.UUID, v bool)
}

type AudioSourceBoundary interface {
	AudioSourceGetGain(id models.UUID) float32
	AudioSourceSetGain(id models.UUID, v float32)
	AudioSourceGetPitch(id models.UUID) float32
	AudioSourceSetPitch(id models.UUID, v float32)
	AudioSourceGetLoop(id models.UUID) bool
	AudioSourceSetLoop(id models.UUID, v bool)
	AudioSourceGet3D(id models.UUID) bool
	AudioSourceSet3D(id models.UUID, v bool)
	AudioSourceGetState(id models.UUID) models.AudioSourceState
	AudioSourceGetOffset(id models.UUID) float32
	AudioSourceSetOffset(id models.UUID, v float32)
	AudioSourceGetLength(id models.UUID) float32
	AudioSourceGetPath(id models.UUID) string
	AudioSourceGetIsVisibleInGame(id models.UUID) bool
	AudioSourceSetIsVisibleInGame(id models.UUID, v bool)
	AudioSourcePlay(id models.UUID)
	AudioSourceStop(id models.UUID)
	AudioSourcePause(id models.UUID)
	AudioSourceRewind(id models.UUID)
}

// InputBoundary exposes polled key and mouse state for the current frame.
type InputBoundary interface {
	InputIsKeyPressed(key models.KeyCode) bool
	InputIsKeyDown(key models.KeyCode) bool
	InputIsKeyUp(key models.KeyCode) bool
	InputIsMouseButtonPressed(button models.MouseCode) bool
	InputIsMouseButtonDown(button models.MouseCode) bool
	InputIsMouseButtonUp(button models.MouseCode) bool
}

// LogBoundary forwards script log messages into the engine log.
type LogBoundary interface {
	Log(level log.Level, message string)
}
