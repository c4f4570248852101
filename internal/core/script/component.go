package script

import (
	"github.com/zeusync/scriptcore/internal/core/models"
)

// Component ties a component kind to its owning entity. The zero value is the
// null handle.
type Component struct {
	entity Entity
	kind   models.ComponentKind
}

func (c Component) Entity() Entity             { return c.entity }
func (c Component) Kind() models.ComponentKind { return c.kind }

// IsValid reports whether the owner is live and still carries this kind.
func (c Component) IsValid() bool {
	return c.kind.IsValid() && c.entity.HasComponent(c.kind)
}

func (c Component) IsNil() bool { return !c.IsValid() }

// Equal follows the entity rule: invalid handles equal only each other. Two live
// handles are equal when they share the owning entity and also the kind, so a
// Transform and a SpriteRenderer of the same entity are not equal.
func (c Component) Equal(other Component) bool {
	cNil, otherNil := c.IsNil(), other.IsNil()
	if cNil || otherNil {
		return cNil && otherNil
	}
	return c.kind == other.kind && c.entity.id == other.entity.id
}

func (c Component) as(kind models.ComponentKind) (Component, bool) {
	if c.kind != kind {
		return Component{}, false
	}
	return c, true
}

func (c Component) AsTransform() (TransformComponent, bool) {
	h, ok := c.as(models.KindTransform)
	return TransformComponent{h}, ok
}

func (c Component) AsSpriteRenderer() (SpriteRendererComponent, bool) {
	h, ok := c.as(models.KindSpriteRenderer)
	return SpriteRendererComponent{h}, ok
}

func (c Component) AsCircleRenderer() (CircleRendererComponent, bool) {
	h, ok := c.as(models.KindCircleRenderer)
	return CircleRendererComponent{h}, ok
}

func (c Component) AsRigidbody2D() (Rigidbody2DComponent, bool) {
	h, ok := c.as(models.KindRigidbody2D)
	return Rigidbody2DComponent{h}, ok
}

func (c Component) AsAudioListener() (AudioListenerComponent, bool) {
	h, ok := c.as(models.KindAudioListener)
	return AudioListenerComponent{h}, ok
}

func (c Component) AsAudioSource() (AudioSourceComponent, bool) {
	h, ok := c.as(models.KindAudioSource)
	return AudioSourceComponent{h}, ok
}

// bound reports whether calls can be forwarded. The engine itself degrades
// gracefully for stale identities, so only the null handle is filtered here.
func (c Component) bound() bool {
	return c.entity.engine != nil && c.entity.id.IsValid()
}
