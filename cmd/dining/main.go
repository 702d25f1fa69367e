package main

import (
	"context"
	"log/slog"
	"os"

	"gwdining/config"
	"gwdining/internal/delivery"
	"gwdining/internal/delivery/http"
	"gwdining/internal/delivery/http/middleware"
	"gwdining/internal/delivery/http/router/handler"
	"gwdining/internal/domain/service"
	"gwdining/internal/infra/auth"
	"gwdining/internal/infra/catalog"
	"gwdining/internal/infra/directions"
	"gwdining/internal/infra/kvstore"
	logs "gwdining/internal/infra/log"
	"gwdining/internal/infra/persistence/kv"
	"gwdining/internal/infra/qrcode"
	"gwdining/internal/usecase/impl"

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
		injectService(),
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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		kvstore.New,
		catalog.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			kv.NewCartRepository,
			kv.NewSessionRepository,
			kv.NewReviewRepository,
			kv.NewAccommodationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPlainStore,
			newDirectionsService,
			newQRCodeService,
		),
	)
}

// newDirectionsService creates the route estimator with configured speeds
func newDirectionsService(cfg *config.Config) service.DirectionsService {
	return directions.NewGreatCircleService(cfg.Directions.WalkSpeedKmh, cfg.Directions.DriveSpeedKmh)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.TicketQRService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMenuService,
			impl.NewCheckoutService,
			impl.NewCartService,
			impl.NewSessionService,
			impl.NewLocationService,
			impl.NewAccommodationService,
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
			handler.NewMenuHandler,
			handler.NewCartHandler,
			handler.NewCheckoutHandler,
			handler.NewSessionHandler,
			handler.NewLocationHandler,
			handler.NewAccommodationHandler,
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
