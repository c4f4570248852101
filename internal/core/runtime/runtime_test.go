package runtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zeusync/scriptcore/internal/core/events/bus"
	"github.com/zeusync/scriptcore/internal/core/models"
	"github.com/zeusync/scriptcore/internal/core/observability/log"
	"github.com/zeusync/scriptcore/internal/core/scene"
	"github.com/zeusync/scriptcore/internal/core/script"
)

type recorder struct {
	calls     []string
	failOn    string
	onUpdate  func(ctx *Context)
	destroyed bool
}

func (r *recorder) OnCreate(ctx *Context) error {
	r.calls = append(r.calls, "create:"+ctx.Self.Name())
	if r.failOn == "create" {
		return errors.New("create failed")
	}
	return nil
}

func (r *recorder) OnUpdate(ctx *Context, _ float32) error {
	r.calls = append(r.calls, "update:"+ctx.Self.Name())
	if r.onUpdate != nil {
		r.onUpdate(ctx)
	}
	if r.failOn == "update" {
		return errors.New("update failed")
	}
	return nil
}

func (r *recorder) OnDestroy(_ *Context) {
	r.destroyed = true
	r.calls = append(r.calls, "destroy")
}

type fixture struct {
	scene    *scene.Scene
	runtime  *Runtime
	registry Registry
	created  map[string]*recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := log.NewFromZap(zap.NewNop())
	events := bus.New()
	f := &fixture{
		scene:    scene.New(logger, events),
		registry: NewRegistry(),
		created:  make(map[string]*recorder),
	}
	f.registry.Register("recorder", func(params map[string]any) (Behavior, error) {
		failOn, err := StringParam(params, "fail_on", "")
		if err != nil {
			return nil, err
		}
		rec := &recorder{failOn: failOn}
		key, _ := StringParam(params, "key", "")
		f.created[key] = rec
		return rec, nil
	})
	rt, err := New(f.scene, events, f.registry, logger)
	require.NoError(t, err)
	f.runtime = rt
	return f
}

func (f *fixture) attach(t *testing.T, name string, params map[string]any) (script.Entity, *recorder) {
	t.Helper()
	e := script.CreateEntity(f.scene, name)
	if params == nil {
		params = map[string]any{}
	}
	params["key"] = name
	require.NoError(t, f.runtime.Attach(e, "recorder", params))
	return e, f.created[name]
}

func TestLifecycleOrder(t *testing.T) {
	f := newFixture(t)
	_, a := f.attach(t, "a", nil)
	_, b := f.attach(t, "b", nil)

	assert.Empty(t, a.calls, "OnCreate waits for Start")
	require.NoError(t, f.runtime.Start())
	require.NoError(t, f.runtime.Update(0.016))

	assert.Equal(t, []string{"create:a", "update:a"}, a.calls)
	assert.Equal(t, []string{"create:b", "update:b"}, b.calls)
	assert.Equal(t, 2, f.runtime.Len())

	f.runtime.Stop()
	assert.True(t, a.destroyed)
	assert.True(t, b.destroyed)
	assert.Equal(t, 0, f.runtime.Len())
	assert.NoError(t, f.runtime.Update(0.016))
	assert.ErrorIs(t, f.runtime.Start(), ErrRuntimeStopped)
}

func TestAttachAfterStartCreatesImmediately(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.runtime.Start())
	_, late := f.attach(t, "late", nil)
	assert.Equal(t, []string{"create:late"}, late.calls)
}

func TestAttachErrors(t *testing.T) {
	f := newFixture(t)
	e, _ := f.attach(t, "a", nil)

	err := f.runtime.Attach(e, "recorder", nil)
	assert.ErrorIs(t, err, ErrAlreadyAttached)

	other := script.CreateEntity(f.scene, "other")
	err = f.runtime.Attach(other, "missing", nil)
	assert.ErrorIs(t, err, ErrUnknownBehavior)

	err = f.runtime.Attach(script.Entity{}, "recorder", nil)
	assert.ErrorIs(t, err, ErrInvalidEntity)

	err = f.runtime.Attach(other, "recorder", map[string]any{"fail_on": 3})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	f.runtime.Stop()
	assert.ErrorIs(t, f.runtime.Attach(other, "recorder", nil), ErrRuntimeStopped)
}

func TestDestroyedEntityGetsOnDestroy(t *testing.T) {
	f := newFixture(t)
	victim, rec := f.attach(t, "victim", nil)
	require.NoError(t, f.runtime.Start())

	script.DestroyEntity(victim)
	assert.False(t, rec.destroyed, "OnDestroy waits for the update thread")

	require.NoError(t, f.runtime.Update(0.016))
	assert.True(t, rec.destroyed)
	assert.Equal(t, []string{"create:victim", "destroy"}, rec.calls)
	assert.Equal(t, 0, f.runtime.Len())
	assert.Equal(t, uint64(1), f.runtime.Stats().Destroyed)
}

func TestDestroyDuringUpdate(t *testing.T) {
	f := newFixture(t)
	_, killer := f.attach(t, "killer", nil)
	targetEntity, target := f.attach(t, "target", nil)
	killer.onUpdate = func(ctx *Context) {
		if e, ok := ctx.FindEntityByName("target"); ok {
			script.DestroyEntity(e)
		}
	}

	require.NoError(t, f.runtime.Start())
	require.NoError(t, f.runtime.Update(0.016))

	assert.Equal(t, []string{"create:target", "destroy"}, target.calls)
	_, ok := f.runtime.Behavior(targetEntity.ID())
	assert.False(t, ok)
	_, ok = f.runtime.Behavior(models.InvalidUUID)
	assert.False(t, ok)
}

func TestFailingBehaviorIsDisabled(t *testing.T) {
	f := newFixture(t)
	_, bad := f.attach(t, "bad", map[string]any{"fail_on": "update"})
	_, good := f.attach(t, "good", nil)

	require.NoError(t, f.runtime.Start())
	err := f.runtime.Update(0.016)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recorder.OnUpdate")

	require.NoError(t, f.runtime.Update(0.016))
	assert.Equal(t, []string{"create:bad", "update:bad"}, bad.calls)
	assert.Equal(t, []string{"create:good", "update:good", "update:good"}, good.calls)
	assert.Equal(t, uint64(1), f.runtime.Stats().Errors)
	assert.Equal(t, uint64(2), f.runtime.Stats().Frames)
}

func TestFailingCreate(t *testing.T) {
	f := newFixture(t)
	_, bad := f.attach(t, "bad", map[string]any{"fail_on": "create"})
	require.Error(t, f.runtime.Start())
	require.NoError(t, f.runtime.Update(0.016))
	assert.Equal(t, []string{"create:bad"}, bad.calls)
}

func TestRegistryNames(t *testing.T) {
	r := NewRegistry()
	r.Register("b", nil)
	r.Register("a", func(map[string]any) (Behavior, error) { return &recorder{}, nil })
	assert.Equal(t, []string{"a", "b"}, r.Names())
	_, err := r.New("b", nil)
	assert.ErrorIs(t, err, ErrUnknownBehavior)
}

func TestParams(t *testing.T) {
	params := map[string]any{"f": 1.5, "i": 3, "s": "x"}
	v, err := Float32Param(params, "f", 0)
	require.NoError(t, err)
	assert.Equal(t, float32(1.5), v)
	v, err = Float32Param(params, "i", 0)
	require.NoError(t, err)
	assert.Equal(t, float32(3), v)
	v, err = Float32Param(params, "missing", 7)
	require.NoError(t, err)
	assert.Equal(t, float32(7), v)
	_, err = Float32Param(params, "s", 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	s, err := StringParam(params, "s", "")
	require.NoError(t, err)
	assert.Equal(t, "x", s)
}
