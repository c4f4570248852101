// Package behaviors holds the sample scripts shipped with the sandbox.
package behaviors

import (
	"fmt"

	"github.com/zeusync/scriptcore/internal/core/runtime"
	"github.com/zeusync/scriptcore/pkg/hmath"
)

// Behavior names as used in scene files.
const (
	PlayerName       = "player"
	CameraName       = "camera"
	EntityTesterName = "entity_tester"
	AudioTesterName  = "audio_tester"
)

// Register adds every sample behavior to reg.
func Register(reg runtime.Registry) {
	reg.Register(PlayerName, NewPlayer)
	reg.Register(CameraName, NewCamera)
	reg.Register(EntityTesterName, NewEntityTester)
	reg.Register(AudioTesterName, NewAudioTester)
}

// NewRegistry returns a registry preloaded with the sample behaviors.
func NewRegistry() runtime.Registry {
	reg := runtime.NewRegistry()
	Register(reg)
	return reg
}

func colorParam(params map[string]any, key string, def hmath.Color) (hmath.Color, error) {
	s, err := runtime.StringParam(params, key, "")
	if err != nil || s == "" {
		return def, err
	}
	c, err := hmath.HexToRGB(s)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return c, nil
}
