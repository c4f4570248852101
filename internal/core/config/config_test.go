package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

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

const sceneYAML = `
runtime:
  log:
    level: warn
  frame_rate: 30
  frames: 5
scene:
  name: test
  entities:
    - name: Hero
      components:
        - kind: transform
          position: [1, 2, 3]
          scale: [2, 2, 2]
        - kind: sprite_renderer
          color: "FF0000"
          tiling: [2, 3]
        - kind: rigidbody2d
          awake: false
      behavior:
        name: noop
        params:
          speed: 1.5
    - name: Speaker
      components:
        - kind: audio_source
          path: beep.wav
          length: 3
          gain: 0.5
          loop: true
          play_on_awake: true
        - kind: circle_renderer
          color: "00FF00"
          thickness: 0.5
`

type noop struct{ params map[string]any }

func (n *noop) OnCreate(*runtime.Context) error           { return nil }
func (n *noop) OnUpdate(*runtime.Context, float32) error { return nil }

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())
	assert.Equal(t, 60, c.Runtime.FrameRate)
	assert.Equal(t, time.Second/60, c.Runtime.Timestep())
	assert.Equal(t, log.LevelInfo, c.Runtime.Log.Level)
	assert.False(t, c.Runtime.Inspector.Enabled)
}

func TestLoadYAML(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(sceneYAML))
	require.NoError(t, err)

	assert.Equal(t, log.LevelWarn, c.Runtime.Log.Level)
	assert.Equal(t, "json", c.Runtime.Log.Encoding, "unset fields keep defaults")
	assert.Equal(t, 30, c.Runtime.FrameRate)
	assert.Equal(t, uint64(5), c.Runtime.Frames)
	require.Len(t, c.Scene.Entities, 2)

	hero := c.Scene.Entities[0]
	assert.Equal(t, models.KindTransform, hero.Components[0].Kind)
	assert.Equal(t, &[3]float32{1, 2, 3}, hero.Components[0].Position)
	require.NotNil(t, hero.Behavior)
	assert.Equal(t, "noop", hero.Behavior.Name)
	assert.Equal(t, 1.5, hero.Behavior.Params["speed"])
}

func TestLoadYAMLErrors(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("scene:\n  entities:\n    - name: x\n      components:\n        - kind: mesh\n"))
	assert.ErrorIs(t, err, models.ErrUnknownComponentKind)

	_, err = LoadYAML(strings.NewReader("scene:\n  entities:\n    - name: x\n      components:\n        - color: \"FF0000\"\n"))
	assert.ErrorIs(t, err, ErrUnknownComponent)

	_, err = LoadYAML(strings.NewReader("runtime:\n  frame_rate: 0\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadYAML(strings.NewReader("runtime:\n  bogus: 1\n"))
	assert.Error(t, err)

	c, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *c)
}

func TestLoadJSON(t *testing.T) {
	doc := `{"runtime":{"frame_rate":120,"inspector":{"enabled":true,"addr":":0"}},
	"scene":{"entities":[{"name":"A","components":[{"kind":"circle_renderer","color":"0000FF","fade":0.25}]}]}}`
	c, err := LoadJSON(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 120, c.Runtime.FrameRate)
	assert.True(t, c.Runtime.Inspector.Enabled)
	assert.Equal(t, models.KindCircleRenderer, c.Scene.Entities[0].Components[0].Kind)

	_, err = LoadJSON(strings.NewReader(`{"runtime":{"inspector":{"enabled":true,"addr":""}}}`))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadJSON(strings.NewReader(`{"unknown":true}`))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "scene.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(sceneYAML), 0o600))
	c, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Len(t, c.Scene.Entities, 2)

	jsonPath := filepath.Join(dir, "scene.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"scene":{"name":"j"}}`), 0o600))
	c, err = LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "j", c.Scene.Name)

	tomlPath := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(""), 0o600))
	_, err = LoadFile(tomlPath)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSandboxConfigLoads(t *testing.T) {
	c, err := LoadFile(filepath.Join("..", "..", "..", "configs", "sandbox.yaml"))
	require.NoError(t, err)
	assert.True(t, c.Runtime.Inspector.Enabled)
	assert.NotEmpty(t, c.Scene.Entities)
}

func TestBuild(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(sceneYAML))
	require.NoError(t, err)

	logger := log.NewFromZap(zap.NewNop())
	events := bus.New()
	s := scene.New(logger, events)
	reg := runtime.NewRegistry()
	reg.Register("noop", func(params map[string]any) (runtime.Behavior, error) {
		return &noop{params: params}, nil
	})
	rt, err := runtime.New(s, events, reg, logger)
	require.NoError(t, err)

	entities, err := c.Scene.Build(s, rt)
	require.NoError(t, err)
	require.Len(t, entities, 2)

	hero := entities[0]
	assert.Equal(t, "Hero", hero.Name())
	tr, _ := hero.Transform()
	assert.Equal(t, hmath.NewVector3(1, 2, 3), tr.Position())
	assert.Equal(t, hmath.NewVector3(2, 2, 2), tr.Scale())
	sprite, ok := hero.SpriteRenderer()
	require.True(t, ok)
	assert.Equal(t, hmath.Red, sprite.Color())
	assert.Equal(t, hmath.NewVector2(2, 3), sprite.Tiling())
	rb, ok := scene.Component[scene.Rigidbody2D](s, hero.ID(), models.KindRigidbody2D)
	require.True(t, ok)
	assert.False(t, rb.Awake)

	b, ok := rt.Behavior(hero.ID())
	require.True(t, ok)
	assert.Equal(t, 1.5, b.(*noop).params["speed"])

	speaker := entities[1]
	audio, ok := speaker.AudioSource()
	require.True(t, ok)
	assert.Equal(t, "beep.wav", audio.Path())
	assert.Equal(t, float32(3), audio.Length())
	assert.Equal(t, float32(0.5), audio.Gain())
	assert.True(t, audio.Loop())
	assert.True(t, audio.IsPlaying())
	circle, ok := speaker.CircleRenderer()
	require.True(t, ok)
	assert.Equal(t, hmath.Green, circle.Color())
	assert.Equal(t, float32(0.5), circle.Thickness())
}

func TestBuildCollectsErrors(t *testing.T) {
	s := scene.New(log.NewFromZap(zap.NewNop()), nil)
	rt, err := runtime.New(s, s.Events(), runtime.NewRegistry(), nil)
	require.NoError(t, err)

	sc := SceneConfig{Entities: []EntityConfig{
		{Name: "bad-color", Components: []ComponentConfig{{Kind: models.KindSpriteRenderer, Color: "nope"}}},
		{Name: "bad-kind", Components: []ComponentConfig{{}}},
		{Name: "bad-behavior", Behavior: &BehaviorConfig{Name: "missing"}},
	}}
	entities, err := sc.Build(s, rt)
	require.Error(t, err)
	assert.ErrorIs(t, err, hmath.ErrInvalidFormat)
	assert.ErrorIs(t, err, ErrUnknownComponent)
	assert.ErrorIs(t, err, runtime.ErrUnknownBehavior)
	assert.Len(t, entities, 3)
	assert.Equal(t, 3, s.Len())

	found, ok := script.FindEntityByName(s, "bad-color")
	require.True(t, ok)
	assert.True(t, found.HasComponent(models.KindSpriteRenderer))

	entities, err = sc.Build(scene.New(nil, nil), nil)
	assert.Len(t, entities, 3)
	assert.NotErrorIs(t, err, runtime.ErrUnknownBehavior)
}
