package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/bodega-radar/internal/application/analysis"
	appanalytics "github.com/jhoicas/bodega-radar/internal/application/analytics"
	"github.com/jhoicas/bodega-radar/internal/application/auth"
	"github.com/jhoicas/bodega-radar/internal/application/usecase"
	"github.com/jhoicas/bodega-radar/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC   *usecase.CompanyUseCase
	UserUC      *usecase.UserUseCase
	TemplateUC  *usecase.TemplateUseCase
	RuleUC      *usecase.RuleUseCase
	ReportUC    *usecase.ReportUseCase
	RunAnalysis *analysis.RunAnalysisUseCase
	DashboardUC *appanalytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Métricas Prometheus (operacional, sin auth)
	app.Get("/metrics", MetricsHandler())

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Los operarios solo consultan; configurar plantillas/reglas y correr
	// análisis exige rol de analista o admin.
	analyst := RequireRole(entity.RoleAdmin, entity.RoleAnalista)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Users (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)

	// Warehouse templates (protegido)
	templates := protected.Group("/templates")
	templateHandler := NewTemplateHandler(deps.TemplateUC)
	templates.Get("/", templateHandler.List)
	templates.Get("/:id", templateHandler.GetByID)
	templates.Post("/", analyst, templateHandler.Create)
	templates.Put("/:id", analyst, templateHandler.Update)
	templates.Delete("/:id", analyst, templateHandler.Delete)

	// Detection rules (protegido)
	rules := protected.Group("/rules")
	ruleHandler := NewRuleHandler(deps.RuleUC)
	rules.Get("/", ruleHandler.List)
	rules.Get("/:id", ruleHandler.GetByID)
	rules.Post("/", analyst, ruleHandler.Create)
	rules.Put("/:id", analyst, ruleHandler.Update)
	rules.Delete("/:id", analyst, ruleHandler.Delete)

	// Analysis runs + reports (protegido)
	analysisGroup := protected.Group("/analysis")
	analysisHandler := NewAnalysisHandler(deps.RunAnalysis)
	analysisGroup.Post("/run", analyst, analysisHandler.Run)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	analysisGroup.Get("/stats", dashboardHandler.GetSummary)

	reports := analysisGroup.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/", reportHandler.List)
	reports.Get("/:id", reportHandler.GetByID)
	reports.Get("/:id/pdf", reportHandler.ExportPDF)
	reports.Get("/:id/xml", reportHandler.ExportXML)
	reports.Delete("/:id", adminOnly, reportHandler.Delete)
}
