package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/merchanthaus/crm-api/internal/application/auth"
	"github.com/merchanthaus/crm-api/internal/application/pipeline"
	"github.com/merchanthaus/crm-api/internal/application/tasks"
	"github.com/merchanthaus/crm-api/internal/application/usecase"
	infrapdf "github.com/merchanthaus/crm-api/internal/infrastructure/pdf"
	"github.com/merchanthaus/crm-api/internal/infrastructure/postgres"
	httpRouter "github.com/merchanthaus/crm-api/internal/interfaces/http"
	"github.com/merchanthaus/crm-api/pkg/config"
	"github.com/merchanthaus/crm-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	opportunityRepo := postgres.NewOpportunityRepository(pool)
	documentRepo := postgres.NewDocumentRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Modelo del pipeline: espejo en memoria respaldado por PostgreSQL.
	// La intake crea account + contact + opportunity en una sola transacción.
	pipelineModel := pipeline.NewModel(opportunityRepo, txRunner)
	if _, err := pipelineModel.Load(); err != nil {
		// No es fatal: el espejo se recarga en cada GET /api/opportunities.
		log.Warn().Err(err).Msg("carga inicial del tablero")
	}

	// PDF: resumen de la aplicación del comercio
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pipelinePDFUC := pipeline.NewPDFUseCase(opportunityRepo, pdfGenerator)

	taskTracker := tasks.NewTracker()

	accountUC := usecase.NewAccountUseCase(accountRepo)
	contactUC := usecase.NewContactUseCase(contactRepo)
	documentUC := usecase.NewDocumentUseCase(documentRepo)
	activityUC := usecase.NewActivityUseCase(activityRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Admin.Emails)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MerchantHaus CRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PipelineModel: pipelineModel,
		PipelinePDF:   pipelinePDFUC,
		TaskTracker:   taskTracker,
		AccountUC:     accountUC,
		ContactUC:     contactUC,
		DocumentUC:    documentUC,
		ActivityUC:    activityUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
