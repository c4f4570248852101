package behaviors

import (
	"github.com/zeusync/scriptcore/internal/core/models"
	"github.com/zeusync/scriptcore/internal/core/runtime"
	"github.com/zeusync/scriptcore/internal/core/script"
	"github.com/zeusync/scriptcore/pkg/hmath"
)

// EntityTester exercises the handle lifecycle. On create it spawns a sprite
// entity and looks up another entity by name. Every frame it drifts the found
// entity to the right, recolors its circle halfway through LifeTime, and
// destroys it once LifeTime runs out.
type EntityTester struct {
	NewEntityName     string
	NewEntityColor    hmath.Color
	EntityToFind      string
	EntityToFindColor hmath.Color
	LifeTime          float32
	DriftSpeed        float32

	Spawned script.Entity
	Found   script.Entity
	circle  script.CircleRendererComponent
}

func NewEntityTester(params map[string]any) (runtime.Behavior, error) {
	t := &EntityTester{}
	var err error
	if t.NewEntityName, err = runtime.StringParam(params, "new_entity_name", "Missing name"); err != nil {
		return nil, err
	}
	if t.NewEntityColor, err = colorParam(params, "new_entity_color", hmath.White); err != nil {
		return nil, err
	}
	if t.EntityToFind, err = runtime.StringParam(params, "entity_to_find", ""); err != nil {
		return nil, err
	}
	if t.EntityToFindColor, err = colorParam(params, "entity_to_find_color", hmath.Red); err != nil {
		return nil, err
	}
	if t.LifeTime, err = runtime.Float32Param(params, "life_time", 5); err != nil {
		return nil, err
	}
	if t.DriftSpeed, err = runtime.Float32Param(params, "drift_speed", 0.5); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *EntityTester) OnCreate(ctx *runtime.Context) error {
	ctx.Log.Debug("New entity: [%s]", t.NewEntityName)
	t.Spawned = ctx.CreateEntity(t.NewEntityName)
	ctx.Log.Debug("New entity ID: [%s]", t.Spawned.ID())

	if c, ok := t.Spawned.AddComponent(models.KindSpriteRenderer); ok {
		sprite, _ := c.AsSpriteRenderer()
		sprite.SetColor(t.NewEntityColor)
	}

	found, ok := ctx.FindEntityByName(t.EntityToFind)
	ctx.Log.Debug("Find by name: %s", found)
	if !ok {
		return nil
	}
	t.Found = found
	if circle, ok := found.CircleRenderer(); ok {
		t.circle = circle
		circle.SetColor(t.NewEntityColor)
	}
	return nil
}

func (t *EntityTester) OnUpdate(ctx *runtime.Context, ts float32) error {
	if t.Found.IsValid() {
		if transform, ok := t.Found.Transform(); ok {
			position := transform.Position()
			position.X += t.DriftSpeed * ts
			transform.SetPosition(position)
		}
	}

	if t.LifeTime < 2.5 && t.circle.IsValid() {
		t.circle.SetColor(t.EntityToFindColor)
	}

	t.LifeTime -= ts

	if t.Found.IsNil() {
		return nil
	}
	if t.LifeTime < 0 {
		ctx.Log.Debug("Destroy %s!", t.Found)
		script.DestroyEntity(t.Found)
	}
	return nil
}

func (t *EntityTester) OnDestroy(ctx *runtime.Context) {
	ctx.Log.Debug("Destroy [%s]", ctx.Self.ID())
}
