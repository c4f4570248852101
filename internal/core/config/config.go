// Package config loads sandbox configuration and builds scenes from it.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/scriptcore/internal/core/models"
	"github.com/zeusync/scriptcore/internal/core/observability/log"
)

var (
	ErrUnknownComponent  = errors.New("unknown component")
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// Config is the root document of a sandbox file.
type Config struct {
	Runtime RuntimeConfig `yaml:"runtime" json:"runtime"`
	Scene   SceneConfig   `yaml:"scene" json:"scene"`
}

type RuntimeConfig struct {
	Log log.Options `yaml:"log" json:"log"`
	// FrameRate is the number of fixed update steps per second.
	FrameRate int `yaml:"frame_rate" json:"frame_rate"`
	// Frames stops the loop after that many updates. Zero runs until interrupted.
	Frames    uint64          `yaml:"frames" json:"frames"`
	Inspector InspectorConfig `yaml:"inspector" json:"inspector"`
}

type InspectorConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Addr    string `yaml:"addr" json:"addr"`
}

type SceneConfig struct {
	Name     string         `yaml:"name" json:"name"`
	Entities []EntityConfig `yaml:"entities" json:"entities"`
}

type EntityConfig struct {
	Name       string            `yaml:"name" json:"name"`
	Components []ComponentConfig `yaml:"components,omitempty" json:"components,omitempty"`
	Behavior   *BehaviorConfig   `yaml:"behavior,omitempty" json:"behavior,omitempty"`
}

// ComponentConfig describes one component. Only the fields of its kind are
// read; unset fields keep the engine defaults.
type ComponentConfig struct {
	Kind models.ComponentKind `yaml:"kind" json:"kind"`

	Position *[3]float32 `yaml:"position,omitempty" json:"position,omitempty"`
	Rotation *[3]float32 `yaml:"rotation,omitempty" json:"rotation,omitempty"`
	Scale    *[3]float32 `yaml:"scale,omitempty" json:"scale,omitempty"`

	// Color is a 6-digit RGB hex string.
	Color     string      `yaml:"color,omitempty" json:"color,omitempty"`
	Tiling    *[2]float32 `yaml:"tiling,omitempty" json:"tiling,omitempty"`
	Thickness *float32    `yaml:"thickness,omitempty" json:"thickness,omitempty"`
	Fade      *float32    `yaml:"fade,omitempty" json:"fade,omitempty"`

	Awake *bool `yaml:"awake,omitempty" json:"awake,omitempty"`

	Path          string   `yaml:"path,omitempty" json:"path,omitempty"`
	Length        float32  `yaml:"length,omitempty" json:"length,omitempty"`
	Gain          *float32 `yaml:"gain,omitempty" json:"gain,omitempty"`
	Pitch         *float32 `yaml:"pitch,omitempty" json:"pitch,omitempty"`
	Loop          bool     `yaml:"loop,omitempty" json:"loop,omitempty"`
	Spatial       bool     `yaml:"spatial,omitempty" json:"spatial,omitempty"`
	VisibleInGame *bool    `yaml:"visible_in_game,omitempty" json:"visible_in_game,omitempty"`
	PlayOnAwake   bool     `yaml:"play_on_awake,omitempty" json:"play_on_awake,omitempty"`
}

type BehaviorConfig struct {
	Name   string         `yaml:"name" json:"name"`
	Params map[string]any `yaml:"params,omitempty" json:"params,omitempty"`
}

// DefaultConfig returns a runnable configuration with an empty scene.
func DefaultConfig() Config {
	return Config{
		Runtime: RuntimeConfig{
			Log:       log.DefaultOptions(),
			FrameRate: 60,
			Inspector: InspectorConfig{
				Addr: "127.0.0.1:8089",
			},
		},
		Scene: SceneConfig{Name: "sandbox"},
	}
}

// Timestep is the fixed update step derived from FrameRate.
func (r RuntimeConfig) Timestep() time.Duration {
	if r.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(r.FrameRate)
}

// Validate checks the parts of the document the decoders cannot.
func (c *Config) Validate() error {
	var all error
	if c.Runtime.FrameRate <= 0 {
		all = errors.Join(all, fmt.Errorf("frame_rate %d: %w", c.Runtime.FrameRate, ErrInvalidConfig))
	}
	if c.Runtime.Inspector.Enabled && c.Runtime.Inspector.Addr == "" {
		all = errors.Join(all, fmt.Errorf("inspector enabled without addr: %w", ErrInvalidConfig))
	}
	for i, e := range c.Scene.Entities {
		for j, comp := range e.Components {
			if !comp.Kind.IsValid() {
				all = errors.Join(all, fmt.Errorf("entities[%d] %q components[%d]: %w", i, e.Name, j, ErrUnknownComponent))
			}
		}
		if e.Behavior != nil && e.Behavior.Name == "" {
			all = errors.Join(all, fmt.Errorf("entities[%d] %q: behavior without name: %w", i, e.Name, ErrInvalidConfig))
		}
	}
	return all
}

// LoadJSON decodes a JSON document over DefaultConfig.
func LoadJSON(r io.Reader) (*Config, error) {
	c := DefaultConfig()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadYAML decodes a YAML document over DefaultConfig.
func LoadYAML(r io.Reader) (*Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile picks the decoder from the file extension.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	case ".json":
		return LoadJSON(f)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}
