package models

import (
	"errors"
	"fmt"
)

// ComponentKind is the closed set of component categories an entity can carry.
// An entity holds at most one component of each kind.
type ComponentKind uint8

const (
	KindTransform ComponentKind = iota + 1
	KindSpriteRenderer
	KindCircleRenderer
	KindRigidbody2D
	KindAudioListener
	KindAudioSource
)

var ErrUnknownComponentKind = errors.New("unknown component kind")

var kindNames = map[ComponentKind]string{
	KindTransform:      "transform",
	KindSpriteRenderer: "sprite_renderer",
	KindCircleRenderer: "circle_renderer",
	KindRigidbody2D:    "rigidbody2d",
	KindAudioListener:  "audio_listener",
	KindAudioSource:    "audio_source",
}

// ComponentKinds lists every kind in declaration order.
func ComponentKinds() []ComponentKind {
	return []ComponentKind{
		KindTransform,
		KindSpriteRenderer,
		KindCircleRenderer,
		KindRigidbody2D,
		KindAudioListener,
		KindAudioSource,
	}
}

func (k ComponentKind) IsValid() bool {
	_, ok := kindNames[k]
	return ok
}

func (k ComponentKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseComponentKind resolves the snake_case name returned by String.
func ParseComponentKind(s string) (ComponentKind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownComponentKind)
}

func (k ComponentKind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%d: %w", uint8(k), ErrUnknownComponentKind)
	}
	return []byte(k.String()), nil
}

func (k *ComponentKind) UnmarshalText(text []byte) error {
	parsed, err := ParseComponentKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
