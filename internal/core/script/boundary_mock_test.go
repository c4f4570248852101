package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/zeusync/scriptcore/internal/core/models"
	"github.com/zeusync/scriptcore/internal/core/models/interfaces"
	"github.com/zeusync/scriptcore/internal/core/observability/log"
)

// mockEngine stubs the calls exercised below. Any other boundary call panics
// through the nil embedded interface.
type mockEngine struct {
	interfaces.EngineBoundary
	mock.Mock
}

func (m *mockEngine) EntityIsValid(id models.UUID) bool {
	return m.Called(id).Bool(0)
}

func (m *mockEngine) EntityHasComponent(id models.UUID, kind models.ComponentKind) bool {
	return m.Called(id, kind).Bool(0)
}

func (m *mockEngine) EntityAddComponent(id models.UUID, kind models.ComponentKind) {
	m.Called(id, kind)
}

func (m *mockEngine) EntityFindByName(name string) (models.UUID, bool) {
	args := m.Called(name)
	return args.Get(0).(models.UUID), args.Bool(1)
}

func (m *mockEngine) InputIsKeyDown(key models.KeyCode) bool {
	return m.Called(key).Bool(0)
}

func (m *mockEngine) Log(level log.Level, message string) {
	m.Called(level, message)
}

func TestEveryAccessRevalidates(t *testing.T) {
	engine := &mockEngine{}
	id := models.UUID(7)
	engine.On("EntityIsValid", id).Return(true).Twice()
	engine.On("EntityIsValid", id).Return(false)

	e := EntityFromID(engine, id)
	assert.True(t, e.IsValid())
	assert.True(t, e.IsValid())
	assert.False(t, e.IsValid())
	engine.AssertNumberOfCalls(t, "EntityIsValid", 3)
}

func TestAddComponentSkipsWhenPresent(t *testing.T) {
	engine := &mockEngine{}
	id := models.UUID(9)
	engine.On("EntityIsValid", id).Return(true)
	engine.On("EntityHasComponent", id, models.KindRigidbody2D).Return(true)

	_, ok := EntityFromID(engine, id).AddComponent(models.KindRigidbody2D)
	assert.False(t, ok)
	engine.AssertNotCalled(t, "EntityAddComponent", id, models.KindRigidbody2D)
}

func TestAddComponentForwards(t *testing.T) {
	engine := &mockEngine{}
	id := models.UUID(9)
	engine.On("EntityIsValid", id).Return(true)
	engine.On("EntityHasComponent", id, models.KindAudioListener).Return(false)
	engine.On("EntityAddComponent", id, models.KindAudioListener).Return()

	c, ok := EntityFromID(engine, id).AddComponent(models.KindAudioListener)
	assert.True(t, ok)
	assert.Equal(t, models.KindAudioListener, c.Kind())
	engine.AssertExpectations(t)
}

func TestFindByNameRejectsNullID(t *testing.T) {
	engine := &mockEngine{}
	engine.On("EntityFindByName", "ghost").Return(models.InvalidUUID, true)

	_, ok := FindEntityByName(engine, "ghost")
	assert.False(t, ok)
}

func TestNullHandleSkipsBoundary(t *testing.T) {
	engine := &mockEngine{}
	e := EntityFromID(engine, models.InvalidUUID)
	assert.False(t, e.IsValid())
	assert.True(t, e.Equal(Entity{}))
	engine.AssertNotCalled(t, "EntityIsValid", mock.Anything)
}

func TestInputAndLoggerForward(t *testing.T) {
	engine := &mockEngine{}
	engine.On("InputIsKeyDown", models.KeySpace).Return(true)
	engine.On("Log", log.LevelWarn, "hp=3").Return()
	engine.On("Log", log.LevelCritical, "shutting down").Return()

	assert.True(t, NewInput(engine).IsKeyDown(models.KeySpace))
	logger := NewLogger(engine)
	logger.Warning("hp=%d", 3)
	logger.Critical("shutting down")
	engine.AssertExpectations(t)
}
