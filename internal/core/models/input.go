package models

// KeyCode identifies a keyboard key. Values follow the GLFW key table.
type KeyCode uint16

const (
	KeySpace      KeyCode = 32
	Key0          KeyCode = 48
	Key1          KeyCode = 49
	Key2          KeyCode = 50
	Key3          KeyCode = 51
	Key4          KeyCode = 52
	Key5          KeyCode = 53
	Key6          KeyCode = 54
	Key7          KeyCode = 55
	Key8          KeyCode = 56
	Key9          KeyCode = 57
	KeyA          KeyCode = 65
	KeyB          KeyCode = 66
	KeyC          KeyCode = 67
	KeyD          KeyCode = 68
	KeyE          KeyCode = 69
	KeyF          KeyCode = 70
	KeyG          KeyCode = 71
	KeyH          KeyCode = 72
	KeyI          KeyCode = 73
	KeyJ          KeyCode = 74
	KeyK          KeyCode = 75
	KeyL          KeyCode = 76
	KeyM          KeyCode = 77
	KeyN          KeyCode = 78
	KeyO          KeyCode = 79
	KeyP          KeyCode = 80
	KeyQ          KeyCode = 81
	KeyR          KeyCode = 82
	KeyS          KeyCode = 83
	KeyT          KeyCode = 84
	KeyU          KeyCode = 85
	KeyV          KeyCode = 86
	KeyW          KeyCode = 87
	KeyX          KeyCode = 88
	KeyY          KeyCode = 89
	KeyZ          KeyCode = 90
	KeyEscape     KeyCode = 256
	KeyEnter      KeyCode = 257
	KeyTab        KeyCode = 258
	KeyBackspace  KeyCode = 259
	KeyRight      KeyCode = 262
	KeyLeft       KeyCode = 263
	KeyDown       KeyCode = 264
	KeyUp         KeyCode = 265
	KeyLeftShift  KeyCode = 340
	KeyLeftCtrl   KeyCode = 341
	KeyLeftAlt    KeyCode = 342
	KeyRightShift KeyCode = 344
	KeyRightCtrl  KeyCode = 345
	KeyRightAlt   KeyCode = 346
)

// MouseCode identifies a mouse button.
type MouseCode uint16

const (
	MouseButton1 MouseCode = iota
	MouseButton2
	MouseButton3
	MouseButton4
	MouseButton5
	MouseButton6
	MouseButton7
	MouseButton8

	MouseButtonCount = 8

	MouseButtonLeft   = MouseButton1
	MouseButtonRight  = MouseButton2
	MouseButtonMiddle = MouseButton3
)

// InputStatus is the per-frame state of a key or button.
//
// A press is reported as Pressed for exactly one frame, then Down while held.
// A release is reported as Up for one frame, then None.
type InputStatus uint8

const (
	InputNone InputStatus = iota
	InputPressed
	InputDown
	InputUp
)
