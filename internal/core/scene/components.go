package scene

import (
	"github.com/zeusync/scriptcore/internal/core/models"
	"github.com/zeusync/scriptcore/pkg/hmath"
)

// Transform is the spatial state every entity carries.
type Transform struct {
	Position hmath.Vector3 `json:"position"`
	Rotation hmath.Vector3 `json:"rotation"`
	Scale    hmath.Vector3 `json:"scale"`
}

type SpriteRenderer struct {
	Color  hmath.Color   `json:"color"`
	Tiling hmath.Vector2 `json:"tiling"`
}

type CircleRenderer struct {
	Color     hmath.Color `json:"color"`
	Thickness float32     `json:"thickness"`
	Fade      float32     `json:"fade"`
}

// Rigidbody2D accumulates the impulses applied to a body. Integration is left
// to whichever physics backend consumes them.
type Rigidbody2D struct {
	LinearImpulse  hmath.Vector2 `json:"linear_impulse"`
	AngularImpulse float32       `json:"angular_impulse"`
	Awake          bool          `json:"awake"`
}

type AudioListener struct {
	VisibleInGame bool `json:"visible_in_game"`
}

type AudioSource struct {
	Path          string                  `json:"path"`
	Length        float32                 `json:"length"`
	Gain          float32                 `json:"gain"`
	Pitch         float32                 `json:"pitch"`
	Loop          bool                    `json:"loop"`
	Spatial       bool                    `json:"spatial"`
	State         models.AudioSourceState `json:"state"`
	Offset        float32                 `json:"offset"`
	VisibleInGame bool                    `json:"visible_in_game"`
}

func newComponent(kind models.ComponentKind) any {
	switch kind {
	case models.KindTransform:
		return &Transform{Scale: hmath.Vector3One}
	case models.KindSpriteRenderer:
		return &SpriteRenderer{Color: hmath.White, Tiling: hmath.Vector2One}
	case models.KindCircleRenderer:
		return &CircleRenderer{Color: hmath.White, Thickness: 1, Fade: 0.005}
	case models.KindRigidbody2D:
		return &Rigidbody2D{Awake: true}
	case models.KindAudioListener:
		return &AudioListener{VisibleInGame: true}
	case models.KindAudioSource:
		return &AudioSource{Gain: 1, Pitch: 1, State: models.AudioInitial, VisibleInGame: true}
	default:
		return nil
	}
}

func lookup[C any](s *Scene, id models.UUID, kind models.ComponentKind) (*C, bool) {
	rec, ok := s.entities[id]
	if !ok {
		return nil, false
	}
	c, ok := rec.components[kind].(*C)
	return c, ok
}

// view runs fn under the read lock. A missing entity or component yields the
// zero value.
func view[C, R any](s *Scene, id models.UUID, kind models.ComponentKind, op string, fn func(*C) R) R {
	s.mu.RLock()
	c, ok := lookup[C](s, id, kind)
	if !ok {
		s.mu.RUnlock()
		s.deadCall(op, id)
		var zero R
		return zero
	}
	defer s.mu.RUnlock()
	return fn(c)
}

// update runs fn under the write lock. A missing entity or component makes it
// a no-op.
func update[C any](s *Scene, id models.UUID, kind models.ComponentKind, op string, fn func(*C)) {
	s.mu.Lock()
	c, ok := lookup[C](s, id, kind)
	if !ok {
		s.mu.Unlock()
		s.deadCall(op, id)
		return
	}
	defer s.mu.Unlock()
	fn(c)
}

// Component returns a copy of the component data of the given type.
func Component[C any](s *Scene, id models.UUID, kind models.ComponentKind) (C, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := lookup[C](s, id, kind)
	if !ok {
		var zero C
		return zero, false
	}
	return *c, true
}

// Transform

func (s *Scene) TransformGetPosition(id models.UUID) hmath.Vector3 {
	return view(s, id, models.KindTransform, "TransformGetPosition", func(t *Transform) hmath.Vector3 { return t.Position })
}

func (s *Scene) TransformSetPosition(id models.UUID, v hmath.Vector3) {
	update(s, id, models.KindTransform, "TransformSetPosition", func(t *Transform) { t.Position = v })
}

func (s *Scene) TransformGetRotation(id models.UUID) hmath.Vector3 {
	return view(s, id, models.KindTransform, "TransformGetRotation", func(t *Transform) hmath.Vector3 { return t.Rotation })
}

func (s *Scene) TransformSetRotation(id models.UUID, v hmath.Vector3) {
	update(s, id, models.KindTransform, "TransformSetRotation", func(t *Transform) { t.Rotation = v })
}

func (s *Scene) TransformGetScale(id models.UUID) hmath.Vector3 {
	return view(s, id, models.KindTransform, "TransformGetScale", func(t *Transform) hmath.Vector3 { return t.Scale })
}

func (s *Scene) TransformSetScale(id models.UUID, v hmath.Vector3) {
	update(s, id, models.KindTransform, "TransformSetScale", func(t *Transform) { t.Scale = v })
}

// SpriteRenderer

func (s *Scene) SpriteRendererGetColor(id models.UUID) hmath.Color {
	return view(s, id, models.KindSpriteRenderer, "SpriteRendererGetColor", func(c *SpriteRenderer) hmath.Color { return c.Color })
}

func (s *Scene) SpriteRendererSetColor(id models.UUID, color hmath.Color) {
	update(s, id, models.KindSpriteRenderer, "SpriteRendererSetColor", func(c *SpriteRenderer) { c.Color = color })
}

func (s *Scene) SpriteRendererGetTiling(id models.UUID) hmath.Vector2 {
	return view(s, id, models.KindSpriteRenderer, "SpriteRendererGetTiling", func(c *SpriteRenderer) hmath.Vector2 { return c.Tiling })
}

func (s *Scene) SpriteRendererSetTiling(id models.UUID, v hmath.Vector2) {
	update(s, id, models.KindSpriteRenderer, "SpriteRendererSetTiling", func(c *SpriteRenderer) { c.Tiling = v })
}

// CircleRenderer

func (s *Scene) CircleRendererGetColor(id models.UUID) hmath.Color {
	return view(s, id, models.KindCircleRenderer, "CircleRendererGetColor", func(c *CircleRenderer) hmath.Color { return c.Color })
}

func (s *Scene) CircleRendererSetColor(id models.UUID, color hmath.Color) {
	update(s, id, models.KindCircleRenderer, "CircleRendererSetColor", func(c *CircleRenderer) { c.Color = color })
}

func (s *Scene) CircleRendererGetThickness(id models.UUID) float32 {
	return view(s, id, models.KindCircleRenderer, "CircleRendererGetThickness", func(c *CircleRenderer) float32 { return c.Thickness })
}

func (s *Scene) CircleRendererSetThickness(id models.UUID, v float32) {
	update(s, id, models.KindCircleRenderer, "CircleRendererSetThickness", func(c *CircleRenderer) { c.Thickness = v })
}

func (s *Scene) CircleRendererGetFade(id models.UUID) float32 {
	return view(s, id, models.KindCircleRenderer, "CircleRendererGetFade", func(c *CircleRenderer) float32 { return c.Fade })
}

func (s *Scene) CircleRendererSetFade(id models.UUID, v float32) {
	update(s, id, models.KindCircleRenderer, "CircleRendererSetFade", func(c *CircleRenderer) { c.Fade = v })
}

// Rigidbody2D

// Rigidbody2DApplyLinearImpulse applies impulse at worldPoint. The off-center
// part of the impulse becomes angular impulse around the entity position.
// A sleeping body ignores the impulse unless wake is set.
func (s *Scene) Rigidbody2DApplyLinearImpulse(id models.UUID, impulse, worldPoint hmath.Vector2, wake bool) {
	s.mu.Lock()
	rb, ok := lookup[Rigidbody2D](s, id, models.KindRigidbody2D)
	t, _ := lookup[Transform](s, id, models.KindTransform)
	if !ok || t == nil {
		s.mu.Unlock()
		s.deadCall("Rigidbody2DApplyLinearImpulse", id)
		return
	}
	defer s.mu.Unlock()
	if !wakeBody(rb, wake) {
		return
	}
	arm := worldPoint.Sub(t.Position.ToVector2())
	rb.LinearImpulse = rb.LinearImpulse.Add(impulse)
	rb.AngularImpulse += arm.X*impulse.Y - arm.Y*impulse.X
}

func (s *Scene) Rigidbody2DApplyLinearImpulseToCenter(id models.UUID, impulse hmath.Vector2, wake bool) {
	update(s, id, models.KindRigidbody2D, "Rigidbody2DApplyLinearImpulseToCenter", func(rb *Rigidbody2D) {
		if wakeBody(rb, wake) {
			rb.LinearImpulse = rb.LinearImpulse.Add(impulse)
		}
	})
}

func (s *Scene) Rigidbody2DApplyAngularImpulse(id models.UUID, impulse float32, wake bool) {
	update(s, id, models.KindRigidbody2D, "Rigidbody2DApplyAngularImpulse", func(rb *Rigidbody2D) {
		if wakeBody(rb, wake) {
			rb.AngularImpulse += impulse
		}
	})
}

// SetRigidbody2DAwake puts a body to sleep or wakes it.
func (s *Scene) SetRigidbody2DAwake(id models.UUID, awake bool) {
	update(s, id, models.KindRigidbody2D, "SetRigidbody2DAwake", func(rb *Rigidbody2D) { rb.Awake = awake })
}

func wakeBody(rb *Rigidbody2D, wake bool) bool {
	if rb.Awake {
		return true
	}
	if !wake {
		return false
	}
	rb.Awake = true
	return true
}

// AudioListener

func (s *Scene) AudioListenerGetIsVisibleInGame(id models.UUID) bool {
	return view(s, id, models.KindAudioListener, "AudioListenerGetIsVisibleInGame", func(l *AudioListener) bool { return l.VisibleInGame })
}

func (s *Scene) AudioListenerSetIsVisibleInGame(id models.UUID, v bool) {
	update(s, id, models.KindAudioListener, "AudioListenerSetIsVisibleInGame", func(l *AudioListener) { l.VisibleInGame = v })
}

// AudioSource

func (s *Scene) AudioSourceGetGain(id models.UUID) float32 {
	return view(s, id, models.KindAudioSource, "AudioSourceGetGain", func(a *AudioSource) float32 { return a.Gain })
}

func (s *Scene) AudioSourceSetGain(id models.UUID, v float32) {
	update(s, id, models.KindAudioSource, "AudioSourceSetGain", func(a *AudioSource) { a.Gain = max(v, 0) })
}

func (s *Scene) AudioSourceGetPitch(id models.UUID) float32 {
	return view(s, id, models.KindAudioSource, "AudioSourceGetPitch", func(a *AudioSource) float32 { return a.Pitch })
}

func (s *Scene) AudioSourceSetPitch(id models.UUID, v float32) {
	update(s, id, models.KindAudioSource, "AudioSourceSetPitch", func(a *AudioSource) { a.Pitch = max(v, 0) })
}

func (s *Scene) AudioSourceGetLoop(id models.UUID) bool {
	return view(s, id, models.KindAudioSource, "AudioSourceGetLoop", func(a *AudioSource) bool { return a.Loop })
}

func (s *Scene) AudioSourceSetLoop(id models.UUID, v bool) {
	update(s, id, models.KindAudioSource, "AudioSourceSetLoop", func(a *AudioSource) { a.Loop = v })
}

func (s *Scene) AudioSourceGet3D(id models.UUID) bool {
	return view(s, id, models.KindAudioSource, "AudioSourceGet3D", func(a *AudioSource) bool { return a.Spatial })
}

func (s *Scene) AudioSourceSet3D(id models.UUID, v bool) {
	update(s, id, models.KindAudioSource, "AudioSourceSet3D", func(a *AudioSource) { a.Spatial = v })
}

func (s *Scene) AudioSourceGetState(id models.UUID) models.AudioSourceState {
	return view(s, id, models.KindAudioSource, "AudioSourceGetState", func(a *AudioSource) models.AudioSourceState { return a.State })
}

func (s *Scene) AudioSourceGetOffset(id models.UUID) float32 {
	return view(s, id, models.KindAudioSource, "AudioSourceGetOffset", func(a *AudioSource) float32 { return a.Offset })
}

// AudioSourceSetOffset seeks within the clip. The offset is clamped to the clip
// length when one is known.
func (s *Scene) AudioSourceSetOffset(id models.UUID, v float32) {
	update(s, id, models.KindAudioSource, "AudioSourceSetOffset", func(a *AudioSource) {
		if a.Length > 0 {
			v = hmath.Clamp(v, 0, a.Length)
		}
		a.Offset = max(v, 0)
	})
}

func (s *Scene) AudioSourceGetLength(id models.UUID) float32 {
	return view(s, id, models.KindAudioSource, "AudioSourceGetLength", func(a *AudioSource) float32 { return a.Length })
}

func (s *Scene) AudioSourceGetPath(id models.UUID) string {
	return view(s, id, models.KindAudioSource, "AudioSourceGetPath", func(a *AudioSource) string { return a.Path })
}

func (s *Scene) AudioSourceGetIsVisibleInGame(id models.UUID) bool {
	return view(s, id, models.KindAudioSource, "AudioSourceGetIsVisibleInGame", func(a *AudioSource) bool { return a.VisibleInGame })
}

func (s *Scene) AudioSourceSetIsVisibleInGame(id models.UUID, v bool) {
	update(s, id, models.KindAudioSource, "AudioSourceSetIsVisibleInGame", func(a *AudioSource) { a.VisibleInGame = v })
}

func (s *Scene) AudioSourcePlay(id models.UUID) {
	update(s, id, models.KindAudioSource, "AudioSourcePlay", func(a *AudioSource) {
		if a.State == models.AudioStopped {
			a.Offset = 0
		}
		a.State = models.AudioPlaying
	})
}

// AudioSourcePause only affects a playing source.
func (s *Scene) AudioSourcePause(id models.UUID) {
	update(s, id, models.KindAudioSource, "AudioSourcePause", func(a *AudioSource) {
		if a.State == models.AudioPlaying {
			a.State = models.AudioPaused
		}
	})
}

func (s *Scene) AudioSourceStop(id models.UUID) {
	update(s, id, models.KindAudioSource, "AudioSourceStop", func(a *AudioSource) {
		if a.State == models.AudioPlaying || a.State == models.AudioPaused {
			a.State = models.AudioStopped
		}
	})
}

// AudioSourceRewind returns the source to its initial state at offset zero.
func (s *Scene) AudioSourceRewind(id models.UUID) {
	update(s, id, models.KindAudioSource, "AudioSourceRewind", func(a *AudioSource) {
		a.State = models.AudioInitial
		a.Offset = 0
	})
}

// SetAudioClip binds a clip to an audio source. Path and length are read-only
// for scripts.
func (s *Scene) SetAudioClip(id models.UUID, path string, length float32) {
	update(s, id, models.KindAudioSource, "SetAudioClip", func(a *AudioSource) {
		a.Path = path
		a.Length = max(length, 0)
		a.Offset = 0
	})
}
