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

	"github.com/jhoicas/gallery-api/internal/application/usecase"
	"github.com/jhoicas/gallery-api/internal/infrastructure/postgres"
	infras3 "github.com/jhoicas/gallery-api/internal/infrastructure/s3"
	httpRouter "github.com/jhoicas/gallery-api/internal/interfaces/http"
	"github.com/jhoicas/gallery-api/pkg/config"
	"github.com/jhoicas/gallery-api/pkg/logger"
	"github.com/jhoicas/gallery-api/pkg/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	if cfg.DB.MigrateOnStart {
		if err := postgres.RunMigrations(ctx, cfg.DB); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Clientes compartidos entre peticiones: pool, S3 y verificador son
	// seguros para uso concurrente y viven lo que el proceso.
	blobs, err := infras3.New(ctx, cfg.S3)
	if err != nil {
		log.Fatal().Err(err).Msg("cliente S3")
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	templateRepo := postgres.NewTemplateRepository(pool)
	mediaRepo := postgres.NewMediaRepository(pool)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, templateRepo)
	templateUC := usecase.NewTemplateUseCase(templateRepo)
	mediaUC := usecase.NewMediaUseCase(mediaRepo, blobs, time.Duration(cfg.S3.SignedURLTTL)*time.Second)

	verifier := token.NewHMACVerifier(cfg.Auth.Secret, cfg.Auth.Issuer)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gallery API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC: categoryUC,
		TemplateUC: templateUC,
		MediaUC:    mediaUC,
		Verifier:   verifier,
		Endpoints:  cfg.Endpoints,
		Log:        log,
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
