package behaviors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zeusync/scriptcore/internal/core/events/bus"
	"github.com/zeusync/scriptcore/internal/core/models"
	"github.com/zeusync/scriptcore/internal/core/observability/log"
	"github.com/zeusync/scriptcore/internal/core/runtime"
	"github.com/zeusync/scriptcore/internal/core/scene"
	"github.com/zeusync/scriptcore/internal/core/script"
	"github.com/zeusync/scriptcore/pkg/hmath"
)

const frame = float32(0.5)

func setup(t *testing.T) (*scene.Scene, *runtime.Runtime) {
	t.Helper()
	logger := log.NewFromZap(zap.NewNop())
	events := bus.New()
	s := scene.New(logger, events)
	rt, err := runtime.New(s, events, NewRegistry(), logger)
	require.NoError(t, err)
	t.Cleanup(rt.Stop)
	return s, rt
}

func attach(t *testing.T, rt *runtime.Runtime, e script.Entity, name string, params map[string]any) runtime.Behavior {
	t.Helper()
	require.NoError(t, rt.Attach(e, name, params))
	b, ok := rt.Behavior(e.ID())
	require.True(t, ok)
	return b
}

func TestRegisterAll(t *testing.T) {
	assert.Equal(t, []string{AudioTesterName, CameraName, EntityTesterName, PlayerName}, NewRegistry().Names())
}

func TestPlayerAppliesImpulses(t *testing.T) {
	s, rt := setup(t)
	e := script.CreateEntity(s, "hero")
	_, ok := e.AddComponent(models.KindRigidbody2D)
	require.True(t, ok)
	attach(t, rt, e, PlayerName, map[string]any{"speed": 2, "rename": "Player"})

	require.NoError(t, rt.Start())
	assert.Equal(t, "Player", e.Name())

	s.PressKey(models.KeyW)
	s.PressKey(models.KeyD)
	require.NoError(t, rt.Update(frame))

	rb, ok := scene.Component[scene.Rigidbody2D](s, e.ID(), models.KindRigidbody2D)
	require.True(t, ok)
	assert.Equal(t, hmath.NewVector2(1, 1), rb.LinearImpulse)

	s.PressKey(models.KeyLeftShift)
	s.ReleaseKey(models.KeyW)
	s.ReleaseKey(models.KeyD)
	s.PressKey(models.KeyA)
	require.NoError(t, rt.Update(frame))
	rb, _ = scene.Component[scene.Rigidbody2D](s, e.ID(), models.KindRigidbody2D)
	assert.Equal(t, hmath.NewVector2(1-2.5, 1), rb.LinearImpulse)
}

func TestPlayerWithoutBody(t *testing.T) {
	s, rt := setup(t)
	e := script.CreateEntity(s, "ghost")
	attach(t, rt, e, PlayerName, nil)
	require.NoError(t, rt.Start())
	s.PressKey(models.KeyW)
	assert.NoError(t, rt.Update(frame))
	assert.Equal(t, "ghost", e.Name())
}

func TestPlayerBadParams(t *testing.T) {
	_, err := NewPlayer(map[string]any{"speed": "fast"})
	assert.ErrorIs(t, err, runtime.ErrInvalidParameter)
}

func TestCameraPans(t *testing.T) {
	s, rt := setup(t)
	e := script.CreateEntity(s, "cam")
	attach(t, rt, e, CameraName, map[string]any{"speed": 2})
	require.NoError(t, rt.Start())

	s.PressKey(models.KeyUp)
	s.PressKey(models.KeyRight)
	require.NoError(t, rt.Update(frame))

	tr, _ := e.Transform()
	assert.Equal(t, hmath.NewVector3(1, 1, 0), tr.Position())
}

func TestEntityTesterLifecycle(t *testing.T) {
	s, rt := setup(t)
	target := script.CreateEntity(s, "Circle")
	_, ok := target.AddComponent(models.KindCircleRenderer)
	require.True(t, ok)

	tester := script.CreateEntity(s, "Tester")
	b := attach(t, rt, tester, EntityTesterName, map[string]any{
		"new_entity_name":      "Spawned",
		"new_entity_color":     "00FF00",
		"entity_to_find":       "Circle",
		"entity_to_find_color": "0000FF",
		"life_time":            2,
	}).(*EntityTester)

	require.NoError(t, rt.Start())

	spawned, ok := script.FindEntityByName(s, "Spawned")
	require.True(t, ok)
	sprite, ok := spawned.SpriteRenderer()
	require.True(t, ok)
	assert.Equal(t, hmath.Green, sprite.Color())
	assert.True(t, b.Found.Equal(target))

	circle, _ := target.CircleRenderer()
	assert.Equal(t, hmath.Green, circle.Color())

	require.NoError(t, rt.Update(frame))
	tr, _ := target.Transform()
	assert.InDelta(t, 0.25, tr.Position().X, 1e-6)
	assert.Equal(t, hmath.Blue, circle.Color())

	for i := 0; i < 4; i++ {
		require.NoError(t, rt.Update(frame))
	}
	assert.False(t, target.IsValid())
	assert.True(t, b.Found.IsNil())
	assert.True(t, circle.IsNil())

	require.NoError(t, rt.Update(frame))
	assert.True(t, tester.IsValid())
}

func TestEntityTesterBadColor(t *testing.T) {
	_, err := NewEntityTester(map[string]any{"new_entity_color": "GGGGGG"})
	assert.ErrorIs(t, err, hmath.ErrInvalidFormat)
}

func TestAudioTesterToggles(t *testing.T) {
	s, rt := setup(t)
	music := script.CreateEntity(s, "Music")
	_, ok := music.AddComponent(models.KindAudioSource)
	require.True(t, ok)
	s.SetAudioClip(music.ID(), "assets/music.ogg", 120)

	left := script.CreateEntity(s, "Left")
	_, ok = left.AddComponent(models.KindAudioSource)
	require.True(t, ok)

	tester := script.CreateEntity(s, "AudioTester")
	b := attach(t, rt, tester, AudioTesterName, map[string]any{
		"left_source":  "Left",
		"music_source": "Music",
		"right_source": "Missing",
	}).(*AudioTester)
	require.NoError(t, rt.Start())
	assert.Equal(t, "assets/music.ogg", b.Path)

	s.PressKey(models.KeyW)
	require.NoError(t, rt.Update(frame))
	assert.Equal(t, models.AudioPlaying, b.State)
	assert.Equal(t, float32(120), b.Length)

	s.EndFrame()
	require.NoError(t, rt.Update(frame))
	assert.Equal(t, models.AudioPlaying, b.State, "held key does not toggle again")

	s.ReleaseKey(models.KeyW)
	s.EndFrame()
	s.PressKey(models.KeyW)
	require.NoError(t, rt.Update(frame))
	assert.Equal(t, models.AudioStopped, b.State)

	leftSrc, _ := left.AudioSource()
	s.PressKey(models.KeyLeftShift)
	s.PressKey(models.KeyA)
	s.PressKey(models.KeyD)
	require.NoError(t, rt.Update(frame))
	assert.True(t, leftSrc.IsPlaying())
	assert.True(t, leftSrc.Loop())
}

func TestPlayerRecolorsCircleOnSpace(t *testing.T) {
	s, rt := setup(t)
	e := script.CreateEntity(s, "hero")
	_, ok := e.AddComponent(models.KindCircleRenderer)
	require.True(t, ok)
	attach(t, rt, e, PlayerName, nil)
	require.NoError(t, rt.Start())

	circle, ok := e.CircleRenderer()
	require.True(t, ok)
	require.NoError(t, rt.Update(frame))
	assert.Equal(t, hmath.White, circle.Color())

	s.PressKey(models.KeySpace)
	require.NoError(t, rt.Update(frame))
	assert.NotEqual(t, hmath.White, circle.Color())
}
