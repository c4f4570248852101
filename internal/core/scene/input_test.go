package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zeusync/scriptcore/internal/core/models"
)

func TestKeyStatusMachine(t *testing.T) {
	s, _ := newTestScene(t)

	assert.False(t, s.InputIsKeyDown(models.KeyW))

	s.PressKey(models.KeyW)
	assert.True(t, s.InputIsKeyPressed(models.KeyW))
	assert.True(t, s.InputIsKeyDown(models.KeyW))
	assert.False(t, s.InputIsKeyUp(models.KeyW))

	s.EndFrame()
	assert.False(t, s.InputIsKeyPressed(models.KeyW))
	assert.True(t, s.InputIsKeyDown(models.KeyW))

	s.PressKey(models.KeyW)
	assert.False(t, s.InputIsKeyPressed(models.KeyW), "repeat while held")

	s.ReleaseKey(models.KeyW)
	assert.True(t, s.InputIsKeyUp(models.KeyW))
	assert.False(t, s.InputIsKeyDown(models.KeyW))

	s.EndFrame()
	assert.False(t, s.InputIsKeyUp(models.KeyW))
	assert.False(t, s.InputIsKeyDown(models.KeyW))

	s.ReleaseKey(models.KeyQ)
	assert.False(t, s.InputIsKeyUp(models.KeyQ))
}

func TestMouseStatusMachine(t *testing.T) {
	s, _ := newTestScene(t)

	s.PressMouseButton(models.MouseButtonLeft)
	assert.True(t, s.InputIsMouseButtonPressed(models.MouseButtonLeft))
	assert.True(t, s.InputIsMouseButtonDown(models.MouseButtonLeft))
	assert.False(t, s.InputIsMouseButtonDown(models.MouseButtonRight))

	s.EndFrame()
	assert.False(t, s.InputIsMouseButtonPressed(models.MouseButtonLeft))
	assert.True(t, s.InputIsMouseButtonDown(models.MouseButtonLeft))

	s.ReleaseMouseButton(models.MouseButtonLeft)
	assert.True(t, s.InputIsMouseButtonUp(models.MouseButtonLeft))
	s.EndFrame()
	assert.False(t, s.InputIsMouseButtonUp(models.MouseButtonLeft))

	s.PressMouseButton(models.MouseCode(42))
	assert.False(t, s.InputIsMouseButtonDown(models.MouseCode(42)))
}
