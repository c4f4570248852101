package bus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testObserver struct {
	publishCount   int
	deliveredCount int
	lastErr        error
}

func (o *testObserver) OnPublish(_ string, _ Event) {
	o.publishCount++
}

func (o *testObserver) OnDelivered(_ string, handlers int, err error, _ int64) {
	o.deliveredCount += handlers
	o.lastErr = err
}

func TestBasicPublishSubscribe(t *testing.T) {
	b := New()
	var got []any
	_, err := b.Subscribe("entity.created", func(e Event) error {
		got = append(got, e.Data())
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, b.Publish(NewEvent("entity.created", "scene", 123)))
	require.NoError(t, b.Publish(NewEvent("entity.destroyed", "scene", 456)))
	assert.Equal(t, []any{123}, got)
}

func TestDeliveryOrderAndWildcard(t *testing.T) {
	b := New()
	var order []string
	_, _ = b.Subscribe(Wildcard, func(e Event) error { order = append(order, "all:"+e.Type()); return nil })
	_, _ = b.Subscribe("x", func(Event) error { order = append(order, "first"); return nil })
	_, _ = b.Subscribe("x", func(Event) error { order = append(order, "second"); return nil })

	require.NoError(t, b.Publish(NewEvent("x", "src", nil)))
	require.NoError(t, b.Publish(NewEvent("y", "src", nil)))
	assert.Equal(t, []string{"first", "second", "all:x", "all:y"}, order)
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	count := 0
	sub, err := b.Subscribe("x", func(Event) error { count++; return nil })
	require.NoError(t, err)
	assert.True(t, sub.IsActive())
	assert.NotEmpty(t, sub.ID())
	assert.Equal(t, "x", sub.EventType())

	require.NoError(t, b.Publish(NewEvent("x", "src", nil)))
	require.NoError(t, b.Unsubscribe(sub))
	require.NoError(t, sub.Cancel())
	require.NoError(t, b.Unsubscribe(nil))
	require.NoError(t, b.Publish(NewEvent("x", "src", nil)))

	assert.False(t, sub.IsActive())
	assert.Equal(t, 1, count)
}

func TestCancelDuringDelivery(t *testing.T) {
	b := New()
	calls := 0
	var sub Subscription
	sub, _ = b.Subscribe("x", func(Event) error {
		calls++
		return sub.Cancel()
	})
	require.NoError(t, b.Publish(NewEvent("x", "src", nil)))
	require.NoError(t, b.Publish(NewEvent("x", "src", nil)))
	assert.Equal(t, 1, calls)
}

func TestPublishJoinsHandlerErrors(t *testing.T) {
	b := New()
	errA := errors.New("a")
	errB := errors.New("b")
	_, _ = b.Subscribe("a", func(Event) error { return errA })
	_, _ = b.Subscribe(Wildcard, func(Event) error { return errB })

	err := b.Publish(NewEvent("a", "s", nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)

	err = b.Publish(NewEvent("c", "s", nil))
	assert.ErrorIs(t, err, errB)
	assert.NotErrorIs(t, err, errA)
}

func TestSubscribeNilHandler(t *testing.T) {
	_, err := New().Subscribe("x", nil)
	assert.Error(t, err)
}

func TestObserverMetricsOptional(t *testing.T) {
	b := New()
	_, _ = b.Subscribe("e", func(e Event) error { return nil })
	_ = b.Publish(NewEvent("e", "s", nil))
	assert.Equal(t, EventBusMetrics{}, b.GetMetrics())

	obs := &testObserver{}
	b.AddObserver(obs)
	_ = b.Publish(NewEvent("e", "s", nil))
	m := b.GetMetrics()
	assert.Equal(t, uint64(1), m.Published)
	assert.Equal(t, uint64(1), m.DeliveredHandlers)
	assert.Equal(t, uint64(1), m.SubscribersActive)
	assert.Equal(t, 1, obs.publishCount)
	assert.Equal(t, 1, obs.deliveredCount)

	b.RemoveObserver(obs)
	_ = b.Publish(NewEvent("e", "s", nil))
	assert.Equal(t, 1, obs.publishCount)
}
