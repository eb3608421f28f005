package main

import (
	"context"
	"log/slog"
	"os"

	"bookstore/config"
	"bookstore/internal/delivery"
	"bookstore/internal/delivery/http"
	"bookstore/internal/delivery/http/middleware"
	"bookstore/internal/delivery/http/router/handler"
	logs "bookstore/internal/infra/log"
	"bookstore/internal/infra/persistence/postgres"
	"bookstore/internal/infra/pubsub"
	"bookstore/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			checkoutConfig,
			pricingConfig,
			inventoryConfig,
		),
		pubsub.Module,
	)
}

// The job and threshold settings ride on sub-structs of the main config so
// each usecase only sees the knobs it owns.
func checkoutConfig(cfg *config.Config) *config.CheckoutConfig {
	return cfg.Checkout
}

func pricingConfig(cfg *config.Config) *config.PricingConfig {
	return cfg.Pricing
}

func inventoryConfig(cfg *config.Config) *config.InventoryConfig {
	return cfg.Inventory
}

// Book, sale and customer repositories are reached through the transaction
// manager's factory, not the container; only the audit trail writes outside
// the transaction boundary and takes its repository directly.
func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewAuditLogRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuditService,
			impl.NewCheckoutService,
			impl.NewCatalogService,
			impl.NewCustomerService,
			impl.NewPricingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSaleHandler,
			handler.NewBookHandler,
			handler.NewCustomerHandler,
			handler.NewInventoryHandler,
			handler.NewPricingHandler,
			handler.NewAuditHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
