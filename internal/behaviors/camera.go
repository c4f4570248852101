package behaviors

import (
	"github.com/zeusync/scriptcore/internal/core/models"
	"github.com/zeusync/scriptcore/internal/core/runtime"
	"github.com/zeusync/scriptcore/pkg/hmath"
)

// Camera pans its transform with the arrow keys.
type Camera struct {
	Speed     float32
	FastSpeed float32
}

func NewCamera(params map[string]any) (runtime.Behavior, error) {
	speed, err := runtime.Float32Param(params, "speed", 1)
	if err != nil {
		return nil, err
	}
	fast, err := runtime.Float32Param(params, "fast_speed", 5)
	if err != nil {
		return nil, err
	}
	return &Camera{Speed: speed, FastSpeed: fast}, nil
}

func (c *Camera) OnCreate(*runtime.Context) error { return nil }

func (c *Camera) OnUpdate(ctx *runtime.Context, ts float32) error {
	speed := c.Speed
	if ctx.Input.IsKeyDown(models.KeyLeftShift) {
		speed = c.FastSpeed
	}

	var velocity hmath.Vector3
	if ctx.Input.IsKeyDown(models.KeyUp) {
		velocity.Y = 1
	}
	if ctx.Input.IsKeyDown(models.KeyDown) {
		velocity.Y = -1
	}
	if ctx.Input.IsKeyDown(models.KeyLeft) {
		velocity.X = -1
	}
	if ctx.Input.IsKeyDown(models.KeyRight) {
		velocity.X = 1
	}

	transform, ok := ctx.Self.Transform()
	if !ok {
		return nil
	}
	transform.SetPosition(transform.Position().Add(velocity.Scale(speed * ts)))
	return nil
}
