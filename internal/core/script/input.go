package script

import (
	"github.com/zeusync/scriptcore/internal/core/models"
	"github.com/zeusync/scriptcore/internal/core/models/interfaces"
)

// Input polls key and mouse state for the current frame.
type Input struct {
	engine interfaces.InputBoundary
}

func NewInput(engine interfaces.InputBoundary) Input {
	return Input{engine: engine}
}

// IsKeyPressed is true only on the frame the key went down.
func (i Input) IsKeyPressed(key models.KeyCode) bool {
	return i.engine != nil && i.engine.InputIsKeyPressed(key)
}

// IsKeyDown is true while the key is held.
func (i Input) IsKeyDown(key models.KeyCode) bool {
	return i.engine != nil && i.engine.InputIsKeyDown(key)
}

// IsKeyUp is true only on the frame the key was released.
func (i Input) IsKeyUp(key models.KeyCode) bool {
	return i.engine != nil && i.engine.InputIsKeyUp(key)
}

func (i Input) IsMouseButtonPressed(button models.MouseCode) bool {
	return i.engine != nil && i.engine.InputIsMouseButtonPressed(button)
}

func (i Input) IsMouseButtonDown(button models.MouseCode) bool {
	return i.engine != nil && i.engine.InputIsMouseButtonDown(button)
}

func (i Input) IsMouseButtonUp(button models.MouseCode) bool {
	return i.engine != nil && i.engine.InputIsMouseButtonUp(button)
}
