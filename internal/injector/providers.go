// Package injector wires a sandbox together from its configuration.
package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/scriptcore/internal/behaviors"
	"github.com/zeusync/scriptcore/internal/core/config"
	"github.com/zeusync/scriptcore/internal/core/events/bus"
	"github.com/zeusync/scriptcore/internal/core/models/interfaces"
	"github.com/zeusync/scriptcore/internal/core/observability/log"
	"github.com/zeusync/scriptcore/internal/core/runtime"
	"github.com/zeusync/scriptcore/internal/core/scene"
	"github.com/zeusync/scriptcore/internal/server"
)

// Sandbox is everything a host needs to drive one scene.
type Sandbox struct {
	Config    *config.Config
	Logger    *log.Logger
	Events    bus.EventBus
	Scene     *scene.Scene
	Runtime   *runtime.Runtime
	Inspector *server.Inspector // nil when disabled
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	bus.New,
	scene.New,
	wire.Bind(new(interfaces.EngineBoundary), new(*scene.Scene)),
	behaviors.NewRegistry,
	runtime.New,
	ProvideInspector,
	wire.Struct(new(Sandbox), "*"),
)

func ProvideLogger(cfg *config.Config) *log.Logger {
	return log.NewWithOptions(cfg.Runtime.Log)
}

// ProvideInspector returns nil when the inspector is disabled.
func ProvideInspector(cfg *config.Config, s *scene.Scene, rt *runtime.Runtime, events bus.EventBus, logger log.Log) (*server.Inspector, error) {
	if !cfg.Runtime.Inspector.Enabled {
		return nil, nil
	}
	return server.NewInspector(cfg.Runtime.Inspector.Addr, s, rt, events, logger)
}
