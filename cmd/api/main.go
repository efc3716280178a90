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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/application/allocation"
	appcompliance "github.com/jhoicas/Produccion-api/internal/application/compliance"
	appproduction "github.com/jhoicas/Produccion-api/internal/application/production"
	appquality "github.com/jhoicas/Produccion-api/internal/application/quality"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
	domainprod "github.com/jhoicas/Produccion-api/internal/domain/production"
	domainqa "github.com/jhoicas/Produccion-api/internal/domain/quality"
	"github.com/jhoicas/Produccion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Produccion-api/internal/interfaces/http"
	"github.com/jhoicas/Produccion-api/internal/scheduler"
	"github.com/jhoicas/Produccion-api/pkg/config"
	"github.com/jhoicas/Produccion-api/pkg/logger"
)

// cureConfigAdapter expone los umbrales de cura de la configuración como
// fuente para el caso de uso de objetivos.
type cureConfigAdapter struct {
	cfg config.CureConfig
}

func (a cureConfigAdapter) CureThresholds() (domainprod.CureThresholds, error) {
	return domainprod.CureThresholds{
		MinPpm:    decimal.NewFromFloat(a.cfg.MinPpm),
		TargetPpm: decimal.NewFromFloat(a.cfg.TargetPpm),
		MaxPpm:    decimal.NewFromFloat(a.cfg.MaxPpm),
	}, nil
}

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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	materialRepo := postgres.NewMaterialRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	eventRepo := postgres.NewLotEventRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	actualsRepo := postgres.NewBatchIngredientActualRepository(pool)
	checkpointRepo := postgres.NewQACheckpointRepository(pool)
	checkRepo := postgres.NewBatchQACheckRepository(pool)
	taskRepo := postgres.NewComplianceTaskRepository(pool)
	logRepo := postgres.NewComplianceLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	materialUC := usecase.NewMaterialUseCase(materialRepo)
	recipeUC := usecase.NewRecipeUseCase(recipeRepo, materialRepo)
	lotUC := allocation.NewLotUseCase(txRunner, materialRepo, lotRepo, eventRepo)
	allocateUC := allocation.NewAllocateUseCase(txRunner, materialRepo, batchRepo)
	batchUC := appproduction.NewBatchUseCase(batchRepo, recipeRepo, checkpointRepo, checkRepo)
	targetsUC := appproduction.NewTargetsUseCase(batchRepo, recipeRepo, actualsRepo, cureConfigAdapter{cfg: cfg.Cure})
	qualityUC := appquality.NewUseCase(batchRepo, checkpointRepo, checkRepo, domainqa.CoreTempLimits{
		MinTemperatureC: decimal.NewFromFloat(cfg.QA.MinCoreTempC),
		MinHoldMinutes:  decimal.NewFromFloat(cfg.QA.MinHoldMinutes),
	})
	complianceUC := appcompliance.NewUseCase(taskRepo, logRepo, batchRepo)

	// Barrido diario de cumplimiento: loguea tareas vencidas o por vencer.
	sweep := scheduler.New(complianceUC, cfg.Sweep.CronSpec, log)
	if err := sweep.Start(); err != nil {
		log.Fatal().Err(err).Msg("arranque del scheduler")
	}
	defer sweep.Stop()

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
		Title:    "Producción API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		MaterialUC:   materialUC,
		RecipeUC:     recipeUC,
		LotUC:        lotUC,
		AllocateUC:   allocateUC,
		BatchUC:      batchUC,
		TargetsUC:    targetsUC,
		QualityUC:    qualityUC,
		ComplianceUC: complianceUC,
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
