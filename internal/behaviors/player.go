package behaviors

import (
	"github.com/zeusync/scriptcore/internal/core/models"
	"github.com/zeusync/scriptcore/internal/core/runtime"
	"github.com/zeusync/scriptcore/internal/core/script"
	"github.com/zeusync/scriptcore/pkg/hmath"
)

// Player steers a rigidbody with WASD. Holding left shift switches to the
// sprint speed. Holding space gives the circle renderer, if any, a random color
// every frame.
type Player struct {
	Speed       float32
	SprintSpeed float32
	Rename      string

	rigidbody script.Rigidbody2DComponent
	hasBody   bool
	circle    script.CircleRendererComponent
}

func NewPlayer(params map[string]any) (runtime.Behavior, error) {
	speed, err := runtime.Float32Param(params, "speed", 0.5)
	if err != nil {
		return nil, err
	}
	sprint, err := runtime.Float32Param(params, "sprint_speed", 5)
	if err != nil {
		return nil, err
	}
	rename, err := runtime.StringParam(params, "rename", "")
	if err != nil {
		return nil, err
	}
	return &Player{Speed: speed, SprintSpeed: sprint, Rename: rename}, nil
}

func (p *Player) OnCreate(ctx *runtime.Context) error {
	ctx.Log.Debug("Player.OnCreate - %s", ctx.Self.ID())
	p.rigidbody, p.hasBody = ctx.Self.Rigidbody2D()
	p.circle, _ = ctx.Self.CircleRenderer()
	ctx.Log.Debug("The entity name: %s", ctx.Self.Name())
	if p.Rename != "" {
		ctx.Self.SetName(p.Rename)
	}
	return nil
}

func (p *Player) OnUpdate(ctx *runtime.Context, ts float32) error {
	if ctx.Input.IsKeyDown(models.KeySpace) && p.circle.IsValid() {
		p.circle.SetColor(hmath.RandomColor())
	}
	if !p.hasBody || !p.rigidbody.IsValid() {
		return nil
	}

	speed := p.Speed
	if ctx.Input.IsKeyDown(models.KeyLeftShift) {
		speed = p.SprintSpeed
	}

	var velocity hmath.Vector2
	if ctx.Input.IsKeyDown(models.KeyW) {
		velocity.Y = 1
	}
	if ctx.Input.IsKeyDown(models.KeyS) {
		velocity.Y = -1
	}
	if ctx.Input.IsKeyDown(models.KeyA) {
		velocity.X = -1
	}
	if ctx.Input.IsKeyDown(models.KeyD) {
		velocity.X = 1
	}

	p.rigidbody.ApplyLinearImpulseToCenter(velocity.Scale(speed*ts), true)
	return nil
}
