package scene

import (
	"github.com/zeusync/scriptcore/internal/core/models"
)

type inputState struct {
	keys  map[models.KeyCode]models.InputStatus
	mouse [models.MouseButtonCount]models.InputStatus
}

func newInputState() *inputState {
	return &inputState{keys: make(map[models.KeyCode]models.InputStatus)}
}

func press(st models.InputStatus) models.InputStatus {
	if st == models.InputPressed || st == models.InputDown {
		return st
	}
	return models.InputPressed
}

func release(st models.InputStatus) models.InputStatus {
	if st == models.InputPressed || st == models.InputDown {
		return models.InputUp
	}
	return st
}

func advance(st models.InputStatus) models.InputStatus {
	switch st {
	case models.InputPressed:
		return models.InputDown
	case models.InputUp:
		return models.InputNone
	default:
		return st
	}
}

// PressKey records a key press for the current frame. Repeated presses while
// the key is held are ignored.
func (s *Scene) PressKey(key models.KeyCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input.keys[key] = press(s.input.keys[key])
}

func (s *Scene) ReleaseKey(key models.KeyCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.input.keys[key]; ok {
		s.input.keys[key] = release(st)
	}
}

func (s *Scene) PressMouseButton(button models.MouseCode) {
	if int(button) >= models.MouseButtonCount {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input.mouse[button] = press(s.input.mouse[button])
}

func (s *Scene) ReleaseMouseButton(button models.MouseCode) {
	if int(button) >= models.MouseButtonCount {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input.mouse[button] = release(s.input.mouse[button])
}

// EndFrame ages input state: Pressed becomes Down and Up becomes None.
func (s *Scene) EndFrame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, st := range s.input.keys {
		next := advance(st)
		if next == models.InputNone {
			delete(s.input.keys, key)
			continue
		}
		s.input.keys[key] = next
	}
	for i, st := range s.input.mouse {
		s.input.mouse[i] = advance(st)
	}
}

func (s *Scene) keyStatus(key models.KeyCode) models.InputStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.input.keys[key]
}

func (s *Scene) mouseStatus(button models.MouseCode) models.InputStatus {
	if int(button) >= models.MouseButtonCount {
		return models.InputNone
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.input.mouse[button]
}

// InputIsKeyPressed is true only on the frame the key went down.
func (s *Scene) InputIsKeyPressed(key models.KeyCode) bool {
	return s.keyStatus(key) == models.InputPressed
}

// InputIsKeyDown is true on every frame the key is held, including the first.
func (s *Scene) InputIsKeyDown(key models.KeyCode) bool {
	st := s.keyStatus(key)
	return st == models.InputPressed || st == models.InputDown
}

// InputIsKeyUp is true only on the frame the key was released.
func (s *Scene) InputIsKeyUp(key models.KeyCode) bool {
	return s.keyStatus(key) == models.InputUp
}

func (s *Scene) InputIsMouseButtonPressed(button models.MouseCode) bool {
	return s.mouseStatus(button) == models.InputPressed
}

func (s *Scene) InputIsMouseButtonDown(button models.MouseCode) bool {
	st := s.mouseStatus(button)
	return st == models.InputPressed || st == models.InputDown
}

func (s *Scene) InputIsMouseButtonUp(button models.MouseCode) bool {
	return s.mouseStatus(button) == models.InputUp
}
