//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/scriptcore/internal/core/config"
)

func InitializeSandbox(cfg *config.Config) (*Sandbox, error) {
	wire.Build(ProviderSet)
	return nil, nil
}
