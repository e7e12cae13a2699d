package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"zapshift/config"
	"zapshift/internal/delivery"
	"zapshift/internal/delivery/http"
	"zapshift/internal/delivery/http/middleware"
	"zapshift/internal/delivery/http/router/handler"
	"zapshift/internal/domain/service"
	"zapshift/internal/infra/auth/firebase"
	logs "zapshift/internal/infra/log"
	"zapshift/internal/infra/payment/stripe"
	"zapshift/internal/infra/persistence/postgres"
	"zapshift/internal/infra/tracking"
	"zapshift/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewParcelRepository,
			postgres.NewPaymentRepository,
			postgres.NewRiderRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			tracking.NewGenerator,
			stripe.NewCheckoutGateway,
			newIdentityVerifier,
		),
	)
}

// newIdentityVerifier creates the Firebase-backed verifier with dependency injection
func newIdentityVerifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg.Firebase == nil {
		return nil, fmt.Errorf("firebase configuration is required")
	}

	verifier, err := firebase.NewIdentityVerifier(ctx, cfg.Firebase.CredentialsPath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase verifier: %w", err)
	}

	return verifier, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewParcelService,
			impl.NewPaymentService,
			impl.NewRiderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewParcelHandler,
			handler.NewPaymentHandler,
			handler.NewRiderHandler,
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
