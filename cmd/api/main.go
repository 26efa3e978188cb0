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
	appanalysis "github.com/jhoicas/bodega-radar/internal/application/analysis"
	appanalytics "github.com/jhoicas/bodega-radar/internal/application/analytics"
	"github.com/jhoicas/bodega-radar/internal/application/auth"
	"github.com/jhoicas/bodega-radar/internal/application/usecase"
	enganalysis "github.com/jhoicas/bodega-radar/internal/domain/analysis"
	"github.com/jhoicas/bodega-radar/internal/infrastructure/export"
	infrapdf "github.com/jhoicas/bodega-radar/internal/infrastructure/pdf"
	"github.com/jhoicas/bodega-radar/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/bodega-radar/internal/interfaces/http"
	"github.com/jhoicas/bodega-radar/pkg/config"
	"github.com/jhoicas/bodega-radar/pkg/logger"
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
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	templateRepo := postgres.NewWarehouseTemplateRepository(pool)
	ruleRepo := postgres.NewRuleDefinitionRepository(pool)
	reportRepo := postgres.NewAnalysisReportRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)

	// Motor de análisis: registro cerrado de evaluadores + resolución de contexto.
	// El catálogo cachea las plantillas por empresa; los usecases de plantillas lo
	// invalidan en cada escritura.
	catalog := appanalysis.NewTemplateCatalog(templateRepo)
	var engineOpts []enganalysis.Option
	if cfg.Analysis.Workers > 0 {
		engineOpts = append(engineOpts, enganalysis.WithWorkers(cfg.Analysis.Workers))
	}
	engine := enganalysis.NewEngine(engineOpts...)
	resolver := enganalysis.NewContextResolver(cfg.Analysis.MinMatchScore)
	runAnalysisUC := appanalysis.NewRunAnalysisUseCase(catalog, ruleRepo, reportRepo, engine, resolver)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	templateUC := usecase.NewTemplateUseCase(templateRepo, catalog)
	ruleUC := usecase.NewRuleUseCase(ruleRepo)

	// Exportadores de reportes: PDF (maroto) y XML canónico con digest SHA-256.
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	xmlExporter := export.NewXMLReportExporter()
	reportUC := usecase.NewReportUseCase(reportRepo, pdfGenerator, xmlExporter)

	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Bodega Radar API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:   companyUC,
		UserUC:      userUC,
		TemplateUC:  templateUC,
		RuleUC:      ruleUC,
		ReportUC:    reportUC,
		RunAnalysis: runAnalysisUC,
		DashboardUC: dashboardUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
