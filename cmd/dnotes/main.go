package main

import (
	"context"
	"log/slog"
	"os"

	"dnotes/config"
	"dnotes/internal/delivery"
	"dnotes/internal/delivery/api"
	"dnotes/internal/delivery/api/middleware"
	"dnotes/internal/delivery/api/router/handler"
	"dnotes/internal/infra/auth"
	logs "dnotes/internal/infra/log"
	"dnotes/internal/infra/mail"
	"dnotes/internal/infra/pdf"
	"dnotes/internal/infra/persistence/database"
	"dnotes/internal/infra/pubsub"
	"dnotes/internal/infra/qrcode"
	"dnotes/internal/infra/storage"
	"dnotes/internal/usecase/impl"

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
		database.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			database.NewUserRepository,
			database.NewCompanyRepository,
			database.NewClientRepository,
			database.NewProjectRepository,
			database.NewDeliveryNoteRepository,
			database.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewCodeGenerator,
			qrcode.NewQRCodeService,
			pdf.NewRenderer,
			storage.NewArtifactStore,
			mail.NewMailer,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewCompanyService,
			impl.NewClientService,
			impl.NewProjectService,
			impl.NewDeliveryNoteService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewClientHandler,
			handler.NewProjectHandler,
			handler.NewDeliveryNoteHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
