package bootstrap

import (
	"context"
	"log/slog"

	"seating-service/internal/usecase/commands"

	"go.uber.org/fx"
)

// SweepModule gives every open event without seats its initial inventory
// before the server accepts traffic.
var SweepModule = fx.Module("sweep",
	fx.Invoke(runInventorySweep),
)

func runInventorySweep(lc fx.Lifecycle, inventory commands.InventoryCommands) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			results, err := inventory.SweepMissingInventory(ctx)
			if err != nil {
				return err
			}
			if len(results) > 0 {
				slog.Info("inventory sweep finished", "events", len(results))
			}
			return nil
		},
	})
}
