package main

import (
	"context"
	"fmt"

	"go.uber.org/fx"
)

// run starts the fx app, waits for a shutdown signal or an internal stop, and
// tears the app down. The returned error is the first failure of either phase.
func run(ctx context.Context, app *fx.App) error {
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		return fmt.Errorf("stop: %w", err)
	}
	return nil
}
