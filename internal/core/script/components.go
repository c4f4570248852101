package script

import (
	"github.com/zeusync/scriptcore/internal/core/models"
	"github.com/zeusync/scriptcore/pkg/hmath"
)

// TransformComponent is the typed handle every entity is created with.
// Each accessor goes through the boundary; a dead handle reads zero values and
// ignores writes.
type TransformComponent struct{ Component }

// Position reads the world position.
func (t TransformComponent) Position() hmath.Vector3 {
	if !t.bound() {
		return hmath.Vector3{}
	}
	return t.entity.engine.TransformGetPosition(t.entity.id)
}

// SetPosition writes the world position.
func (t TransformComponent) SetPosition(v hmath.Vector3) {
	if t.bound() {
		t.entity.engine.TransformSetPosition(t.entity.id, v)
	}
}

// Rotation reads the Euler rotation in radians.
func (t TransformComponent) Rotation() hmath.Vector3 {
	if !t.bound() {
		return hmath.Vector3{}
	}
	return t.entity.engine.TransformGetRotation(t.entity.id)
}

// SetRotation writes the Euler rotation in radians.
func (t TransformComponent) SetRotation(v hmath.Vector3) {
	if t.bound() {
		t.entity.engine.TransformSetRotation(t.entity.id, v)
	}
}

// Scale reads the scale.
func (t TransformComponent) Scale() hmath.Vector3 {
	if !t.bound() {
		return hmath.Vector3{}
	}
	return t.entity.engine.TransformGetScale(t.entity.id)
}

// SetScale writes the scale.
func (t TransformComponent) SetScale(v hmath.Vector3) {
	if t.bound() {
		t.entity.engine.TransformSetScale(t.entity.id, v)
	}
}

// SpriteRendererComponent is the typed handle for SpriteRenderer components.
type SpriteRendererComponent struct{ Component }

// Color reads the tint.
func (s SpriteRendererComponent) Color() hmath.Color {
	if !s.bound() {
		return hmath.Color{}
	}
	return s.entity.engine.SpriteRendererGetColor(s.entity.id)
}

// SetColor writes the tint.
func (s SpriteRendererComponent) SetColor(c hmath.Color) {
	if s.bound() {
		s.entity.engine.SpriteRendererSetColor(s.entity.id, c)
	}
}

// Tiling reads the texture tiling factor.
func (s SpriteRendererComponent) Tiling() hmath.Vector2 {
	if !s.bound() {
		return hmath.Vector2{}
	}
	return s.entity.engine.SpriteRendererGetTiling(s.entity.id)
}

// SetTiling writes the texture tiling factor.
func (s SpriteRendererComponent) SetTiling(v hmath.Vector2) {
	if s.bound() {
		s.entity.engine.SpriteRendererSetTiling(s.entity.id, v)
	}
}

// CircleRendererComponent is the typed handle for CircleRenderer components.
type CircleRendererComponent struct{ Component }

// Color reads the tint.
func (c CircleRendererComponent) Color() hmath.Color {
	if !c.bound() {
		return hmath.Color{}
	}
	return c.entity.engine.CircleRendererGetColor(c.entity.id)
}

// SetColor writes the tint.
func (c CircleRendererComponent) SetColor(color hmath.Color) {
	if c.bound() {
		c.entity.engine.CircleRendererSetColor(c.entity.id, color)
	}
}

// Thickness reads the ring thickness; 1 draws a filled circle.
func (c CircleRendererComponent) Thickness() float32 {
	if !c.bound() {
		return 0
	}
	return c.entity.engine.CircleRendererGetThickness(c.entity.id)
}

func (c CircleRendererComponent) SetThickness(v float32) {
	if c.bound() {
		c.entity.engine.CircleRendererSetThickness(c.entity.id, v)
	}
}

// Fade reads the edge fade.
func (c CircleRendererComponent) Fade() float32 {
	if !c.bound() {
		return 0
	}
	return c.entity.engine.CircleRendererGetFade(c.entity.id)
}

func (c CircleRendererComponent) SetFade(v float32) {
	if c.bound() {
		c.entity.engine.CircleRendererSetFade(c.entity.id, v)
	}
}

// Rigidbody2DComponent is the typed handle for Rigidbody2D components.
type Rigidbody2DComponent struct{ Component }

// ApplyLinearImpulse applies impulse at worldPoint. A sleeping body is only
// affected when wake is set.
func (r Rigidbody2DComponent) ApplyLinearImpulse(impulse, worldPoint hmath.Vector2, wake bool) {
	if r.bound() {
		r.entity.engine.Rigidbody2DApplyLinearImpulse(r.entity.id, impulse, worldPoint, wake)
	}
}

// ApplyLinearImpulseToCenter applies impulse at the center of mass.
func (r Rigidbody2DComponent) ApplyLinearImpulseToCenter(impulse hmath.Vector2, wake bool) {
	if r.bound() {
		r.entity.engine.Rigidbody2DApplyLinearImpulseToCenter(r.entity.id, impulse, wake)
	}
}

// ApplyAngularImpulse adds impulse to the angular velocity.
func (r Rigidbody2DComponent) ApplyAngularImpulse(impulse float32, wake bool) {
	if r.bound() {
		r.entity.engine.Rigidbody2DApplyAngularImpulse(r.entity.id, impulse, wake)
	}
}

// AudioListenerComponent is the typed handle for AudioListener components.
type AudioListenerComponent struct{ Component }

// IsVisibleInGame reports whether the gizmo is drawn in game view.
func (l AudioListenerComponent) IsVisibleInGame() bool {
	return l.bound() && l.entity.engine.AudioListenerGetIsVisibleInGame(l.entity.id)
}

func (l AudioListenerComponent) SetIsVisibleInGame(v bool) {
	if l.bound() {
		l.entity.engine.AudioListenerSetIsVisibleInGame(l.entity.id, v)
	}
}

// AudioSourceComponent is the typed handle for AudioSource components.
type AudioSourceComponent struct{ Component }

// Gain reads the volume multiplier.
func (a AudioSourceComponent) Gain() float32 {
	if !a.bound() {
		return 0
	}
	return a.entity.engine.AudioSourceGetGain(a.entity.id)
}

// SetGain writes the volume multiplier, floored at 0.
func (a AudioSourceComponent) SetGain(v float32) {
	if a.bound() {
		a.entity.engine.AudioSourceSetGain(a.entity.id, v)
	}
}

func (a AudioSourceComponent) Pitch() float32 {
	if !a.bound() {
		return 0
	}
	return a.entity.engine.AudioSourceGetPitch(a.entity.id)
}

// SetPitch writes the pitch multiplier, floored at 0.
func (a AudioSourceComponent) SetPitch(v float32) {
	if a.bound() {
		a.entity.engine.AudioSourceSetPitch(a.entity.id, v)
	}
}

func (a AudioSourceComponent) Loop() bool {
	return a.bound() && a.entity.engine.AudioSourceGetLoop(a.entity.id)
}

func (a AudioSourceComponent) SetLoop(v bool) {
	if a.bound() {
		a.entity.engine.AudioSourceSetLoop(a.entity.id, v)
	}
}

// Is3D reports whether the source is spatialised.
func (a AudioSourceComponent) Is3D() bool {
	return a.bound() && a.entity.engine.AudioSourceGet3D(a.entity.id)
}

func (a AudioSourceComponent) Set3D(v bool) {
	if a.bound() {
		a.entity.engine.AudioSourceSet3D(a.entity.id, v)
	}
}

// State reports the transport state.
func (a AudioSourceComponent) State() models.AudioSourceState {
	if !a.bound() {
		return models.AudioNone
	}
	return a.entity.engine.AudioSourceGetState(a.entity.id)
}

func (a AudioSourceComponent) IsPlaying() bool {
	return a.State() == models.AudioPlaying
}

// Offset is the playback position in seconds.
func (a AudioSourceComponent) Offset() float32 {
	if !a.bound() {
		return 0
	}
	return a.entity.engine.AudioSourceGetOffset(a.entity.id)
}

// SetOffset seeks, clamped to Length when it is known.
func (a AudioSourceComponent) SetOffset(v float32) {
	if a.bound() {
		a.entity.engine.AudioSourceSetOffset(a.entity.id, v)
	}
}

// Length is the clip duration in seconds.
func (a AudioSourceComponent) Length() float32 {
	if !a.bound() {
		return 0
	}
	return a.entity.engine.AudioSourceGetLength(a.entity.id)
}

// Path is the clip asset path.
func (a AudioSourceComponent) Path() string {
	if !a.bound() {
		return ""
	}
	return a.entity.engine.AudioSourceGetPath(a.entity.id)
}

// IsVisibleInGame reports whether the gizmo is drawn in game view.
func (a AudioSourceComponent) IsVisibleInGame() bool {
	return a.bound() && a.entity.engine.AudioSourceGetIsVisibleInGame(a.entity.id)
}

func (a AudioSourceComponent) SetIsVisibleInGame(v bool) {
	if a.bound() {
		a.entity.engine.AudioSourceSetIsVisibleInGame(a.entity.id, v)
	}
}

// Play starts playback, from the beginning when the source was stopped.
func (a AudioSourceComponent) Play() {
	if a.bound() {
		a.entity.engine.AudioSourcePlay(a.entity.id)
	}
}

// Pause pauses a playing source.
func (a AudioSourceComponent) Pause() {
	if a.bound() {
		a.entity.engine.AudioSourcePause(a.entity.id)
	}
}

// Stop stops a playing or paused source.
func (a AudioSourceComponent) Stop() {
	if a.bound() {
		a.entity.engine.AudioSourceStop(a.entity.id)
	}
}

// Rewind resets the source to its initial state at offset 0.
func (a AudioSourceComponent) Rewind() {
	if a.bound() {
		a.entity.engine.AudioSourceRewind(a.entity.id)
	}
}
