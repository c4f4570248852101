package behaviors

import (
	"github.com/zeusync/scriptcore/internal/core/models"
	"github.com/zeusync/scriptcore/internal/core/runtime"
	"github.com/zeusync/scriptcore/internal/core/script"
)

// AudioTester toggles three audio sources from the keyboard: A for the left
// source, D for the right, W for the music. Shift+A flips looping on the left
// source and Shift+D flips 3D on the right one. The music source's properties
// are mirrored into the exported fields every frame.
type AudioTester struct {
	LeftSource  string
	RightSource string
	MusicSource string

	Gain   float32
	Pitch  float32
	Loop   bool
	Is3D   bool
	Offset float32
	Path   string
	Length float32
	State  models.AudioSourceState

	left  script.AudioSourceComponent
	right script.AudioSourceComponent
	music script.AudioSourceComponent
}

func NewAudioTester(params map[string]any) (runtime.Behavior, error) {
	a := &AudioTester{}
	var err error
	if a.LeftSource, err = runtime.StringParam(params, "left_source", ""); err != nil {
		return nil, err
	}
	if a.RightSource, err = runtime.StringParam(params, "right_source", ""); err != nil {
		return nil, err
	}
	if a.MusicSource, err = runtime.StringParam(params, "music_source", ""); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *AudioTester) OnCreate(ctx *runtime.Context) error {
	a.left = findAudioSource(ctx, a.LeftSource)
	ctx.Log.Debug("Left: %s", a.left.Path())
	a.right = findAudioSource(ctx, a.RightSource)
	ctx.Log.Debug("Right: %s", a.right.Path())
	a.music = findAudioSource(ctx, a.MusicSource)
	ctx.Log.Debug("Music: %s", a.music.Path())
	a.Path = a.music.Path()

	if owner := a.music.Entity(); owner.IsValid() {
		ctx.Log.Debug("Has %s: %t", models.KindTransform, owner.HasComponent(models.KindTransform))
		ctx.Log.Debug("Has %s: %t", models.KindCircleRenderer, owner.HasComponent(models.KindCircleRenderer))
	}
	return nil
}

func (a *AudioTester) OnUpdate(ctx *runtime.Context, _ float32) error {
	shift := ctx.Input.IsKeyDown(models.KeyLeftShift)

	if ctx.Input.IsKeyPressed(models.KeyA) && a.left.IsValid() {
		toggle(a.left)
		if shift {
			a.left.SetLoop(!a.left.Loop())
		}
	}
	if ctx.Input.IsKeyPressed(models.KeyD) && a.right.IsValid() {
		toggle(a.right)
		if shift {
			a.right.Set3D(!a.right.Is3D())
		}
	}
	if ctx.Input.IsKeyPressed(models.KeyW) && a.music.IsValid() {
		toggle(a.music)
	}

	if a.music.IsValid() {
		a.Gain = a.music.Gain()
		a.Pitch = a.music.Pitch()
		a.Loop = a.music.Loop()
		a.Is3D = a.music.Is3D()
		a.Offset = a.music.Offset()
		a.Length = a.music.Length()
		a.State = a.music.State()
	}
	return nil
}

// toggle stops a playing source and plays any other.
func toggle(src script.AudioSourceComponent) {
	if src.State() == models.AudioPlaying {
		src.Stop()
		return
	}
	src.Play()
}

func findAudioSource(ctx *runtime.Context, name string) script.AudioSourceComponent {
	if name == "" {
		return script.AudioSourceComponent{}
	}
	e, ok := ctx.FindEntityByName(name)
	if !ok {
		return script.AudioSourceComponent{}
	}
	src, _ := e.AudioSource()
	return src
}
