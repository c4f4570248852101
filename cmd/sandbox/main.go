package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/zeusync/scriptcore/internal/core/config"
	"github.com/zeusync/scriptcore/internal/core/observability/log"
	"github.com/zeusync/scriptcore/internal/injector"
)

func main() {
	path := flag.String("config", "configs/sandbox.yaml", "scene configuration file (.yaml, .yml or .json)")
	frames := flag.Uint64("frames", 0, "stop after this many frames, overrides the config when set")
	flag.Parse()

	if err := run(*path, *frames); err != nil {
		fmt.Fprintln(os.Stderr, "sandbox:", err)
		os.Exit(1)
	}
}

func run(path string, frames uint64) error {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	if frames > 0 {
		cfg.Runtime.Frames = frames
	}

	sb, err := injector.InitializeSandbox(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = sb.Logger.Sync() }()

	if _, err = cfg.Scene.Build(sb.Scene, sb.Runtime); err != nil {
		// Partially built scenes still run; the broken entities are logged.
		sb.Logger.Warn("Scene built with errors", log.String("scene", cfg.Scene.Name), log.Error(err))
	}
	sb.Logger.Info("Scene loaded",
		log.String("scene", cfg.Scene.Name),
		log.Int("entities", sb.Scene.Len()),
		log.Int("behaviors", sb.Runtime.Len()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, sb)
}

// serve runs the frame loop and, when configured, the inspector. Finishing the
// loop shuts the inspector down.
func serve(ctx context.Context, sb *injector.Sandbox) error {
	g, ctx := errgroup.WithContext(ctx)
	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g.Go(func() error {
		defer cancel()
		return runLoop(loopCtx, sb, sb.Config.Runtime.Timestep(), sb.Config.Runtime.Frames)
	})
	if sb.Inspector != nil {
		g.Go(func() error {
			return sb.Inspector.Run(loopCtx)
		})
	}
	return g.Wait()
}
