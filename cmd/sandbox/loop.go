package main

import (
	"context"
	"time"

	"github.com/zeusync/scriptcore/internal/core/observability/log"
	"github.com/zeusync/scriptcore/internal/injector"
)

// runLoop drives the runtime at a fixed timestep until ctx is done or frames
// updates have run. frames == 0 means no limit.
func runLoop(ctx context.Context, sb *injector.Sandbox, step time.Duration, frames uint64) error {
	if err := sb.Runtime.Start(); err != nil {
		sb.Logger.Warn("Some behaviors failed to start", log.Error(err))
	}
	defer sb.Runtime.Stop()

	ticker := time.NewTicker(step)
	defer ticker.Stop()

	ts := float32(step.Seconds())
	var frame uint64
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if err := sb.Runtime.Update(ts); err != nil {
			// The failing behavior is already disabled; keep the frame loop alive.
			sb.Logger.Warn("Frame update failed", log.Uint64("frame", frame), log.Error(err))
		}
		sb.Scene.EndFrame()

		frame++
		if frames > 0 && frame >= frames {
			stats := sb.Runtime.Stats()
			sb.Logger.Info("Frame limit reached",
				log.Uint64("frames", stats.Frames),
				log.Uint64("errors", stats.Errors),
				log.Int("behaviors", sb.Runtime.Len()))
			return nil
		}
	}
}
