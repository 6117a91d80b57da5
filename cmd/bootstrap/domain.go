package bootstrap

import (
	"seating-service/internal/domain/booking"
	"seating-service/internal/domain/layout"
	"seating-service/internal/domain/pricing"
	"seating-service/internal/pkg/clock"
	"seating-service/internal/pkg/config"

	"go.uber.org/fx"
)

var DomainModule = fx.Module("domain",
	fx.Provide(
		clock.NewRealClock,
		NewPricingCalculator,
		NewLayoutResolver,
		booking.NewFactory,
	),
)

func NewPricingCalculator(cfg config.Config) *pricing.Calculator {
	return pricing.NewCalculator(pricing.Defaults{
		BasePrice:     pricing.FromDecimal(cfg.Pricing.DefaultBasePrice),
		SeatsPerRow:   cfg.Pricing.DefaultSeatsPerRow,
		RowAdjustment: pricing.FromDecimal(cfg.Pricing.RowAdjustment),
		Floor:         pricing.FromDecimal(cfg.Pricing.PriceFloor),
	})
}

func NewLayoutResolver(cfg config.Config) *layout.Resolver {
	return layout.NewDefaultResolver(layout.Settings{
		DefaultBasePrice:       pricing.FromDecimal(cfg.Pricing.DefaultBasePrice),
		DefaultSeatsPerRow:     cfg.Pricing.DefaultSeatsPerRow,
		DefaultSectionCapacity: cfg.Layout.DefaultSectionCapacity,
		FallbackCapacity:       cfg.Layout.FallbackCapacity,
		FallbackSeatsPerRow:    cfg.Layout.FallbackSeatsPerRow,
	})
}
