package models

// AudioSourceState mirrors the transport state of an engine audio source.
type AudioSourceState int32

const (
	AudioNone AudioSourceState = iota
	AudioInitial
	AudioPlaying
	AudioPaused
	AudioStopped
)

func (s AudioSourceState) String() string {
	switch s {
	case AudioInitial:
		return "initial"
	case AudioPlaying:
		return "playing"
	case AudioPaused:
		return "paused"
	case AudioStopped:
		return "stopped"
	default:
		return "none"
	}
}
