package config

import (
	"errors"
	"fmt"

	"github.com/zeusync/scriptcore/internal/core/models"
	"github.com/zeusync/scriptcore/internal/core/runtime"
	"github.com/zeusync/scriptcore/internal/core/scene"
	"github.com/zeusync/scriptcore/internal/core/script"
	"github.com/zeusync/scriptcore/pkg/hmath"
)

// Build creates the configured entities in s and attaches their behaviors to rt.
// Entities are all created before any behavior is attached. Every failure is
// collected; entities that failed to configure are still left in the scene.
func (sc SceneConfig) Build(s *scene.Scene, rt *runtime.Runtime) ([]script.Entity, error) {
	entities := make([]script.Entity, 0, len(sc.Entities))
	var all error
	for _, ec := range sc.Entities {
		e := script.CreateEntity(s, ec.Name)
		entities = append(entities, e)
		for _, cc := range ec.Components {
			if err := applyComponent(s, e, cc); err != nil {
				all = errors.Join(all, fmt.Errorf("entity %q: %w", ec.Name, err))
			}
		}
	}

	if rt == nil {
		return entities, all
	}
	for i, ec := range sc.Entities {
		if ec.Behavior == nil {
			continue
		}
		if err := rt.Attach(entities[i], ec.Behavior.Name, ec.Behavior.Params); err != nil {
			all = errors.Join(all, fmt.Errorf("entity %q: %w", ec.Name, err))
		}
	}
	return entities, all
}

func applyComponent(s *scene.Scene, e script.Entity, cc ComponentConfig) error {
	if !cc.Kind.IsValid() {
		return fmt.Errorf("%s: %w", cc.Kind, ErrUnknownComponent)
	}
	c, ok := e.GetComponent(cc.Kind)
	if !ok {
		if c, ok = e.AddComponent(cc.Kind); !ok {
			return fmt.Errorf("add %s: %w", cc.Kind, ErrInvalidConfig)
		}
	}

	switch cc.Kind {
	case models.KindTransform:
		t, _ := c.AsTransform()
		if cc.Position != nil {
			t.SetPosition(hmath.NewVector3(cc.Position[0], cc.Position[1], cc.Position[2]))
		}
		if cc.Rotation != nil {
			t.SetRotation(hmath.NewVector3(cc.Rotation[0], cc.Rotation[1], cc.Rotation[2]))
		}
		if cc.Scale != nil {
			t.SetScale(hmath.NewVector3(cc.Scale[0], cc.Scale[1], cc.Scale[2]))
		}

	case models.KindSpriteRenderer:
		sr, _ := c.AsSpriteRenderer()
		if cc.Color != "" {
			color, err := hmath.HexToRGB(cc.Color)
			if err != nil {
				return fmt.Errorf("%s color: %w", cc.Kind, err)
			}
			sr.SetColor(color)
		}
		if cc.Tiling != nil {
			sr.SetTiling(hmath.NewVector2(cc.Tiling[0], cc.Tiling[1]))
		}

	case models.KindCircleRenderer:
		cr, _ := c.AsCircleRenderer()
		if cc.Color != "" {
			color, err := hmath.HexToRGB(cc.Color)
			if err != nil {
				return fmt.Errorf("%s color: %w", cc.Kind, err)
			}
			cr.SetColor(color)
		}
		if cc.Thickness != nil {
			cr.SetThickness(*cc.Thickness)
		}
		if cc.Fade != nil {
			cr.SetFade(*cc.Fade)
		}

	case models.KindRigidbody2D:
		if cc.Awake != nil {
			s.SetRigidbody2DAwake(e.ID(), *cc.Awake)
		}

	case models.KindAudioListener:
		l, _ := c.AsAudioListener()
		if cc.VisibleInGame != nil {
			l.SetIsVisibleInGame(*cc.VisibleInGame)
		}

	case models.KindAudioSource:
		a, _ := c.AsAudioSource()
		s.SetAudioClip(e.ID(), cc.Path, cc.Length)
		if cc.Gain != nil {
			a.SetGain(*cc.Gain)
		}
		if cc.Pitch != nil {
			a.SetPitch(*cc.Pitch)
		}
		a.SetLoop(cc.Loop)
		a.Set3D(cc.Spatial)
		if cc.VisibleInGame != nil {
			a.SetIsVisibleInGame(*cc.VisibleInGame)
		}
		if cc.PlayOnAwake {
			a.Play()
		}
	}
	return nil
}
