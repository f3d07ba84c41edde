package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "billkit/docs"
	"billkit/internal/handler"
	"billkit/internal/middleware"
	"billkit/internal/service"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Auth     *handler.AuthHandler
	Document *handler.DocumentHandler
	Client   *handler.ClientHandler
	Settings *handler.SettingsHandler
	HSN      *handler.HSNHandler
	Export   *handler.ExportHandler
	Report   *handler.ReportHandler
	Stats    *handler.StatsHandler
	Meta     *handler.MetaHandler
	Health   *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(log zerolog.Logger, allowedOrigins []string, authSvc service.AuthService, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.RefreshToken)
	auth.GET("/needs-setup", h.Auth.NeedsSetup)
	auth.POST("/forgot-password", h.Auth.ForgotPassword)
	auth.POST("/reset-password", h.Auth.ResetPassword)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.GET("/auth/me", h.Auth.Me)

	// Editor routes - the single in-progress document
	editor := protected.Group("/editor")
	editor.POST("/new", h.Document.CreateNew)
	editor.GET("", h.Document.Current)
	editor.POST("/items", h.Document.AddLineItem)
	editor.PATCH("/items/:id", h.Document.UpdateLineItem)
	editor.DELETE("/items/:id", h.Document.RemoveLineItem)
	editor.PUT("/discount", h.Document.UpdateDiscount)
	editor.PUT("/shipping", h.Document.UpdateShipping)
	editor.PUT("/field", h.Document.ApplyField)
	editor.GET("/validate", h.Document.Validate)
	editor.POST("/save", h.Document.Save)
	editor.POST("/load/:id", h.Document.Load)
	editor.POST("/discard", h.Document.Discard)

	// Saved document routes
	documents := protected.Group("/documents")
	documents.GET("", h.Document.List)
	documents.GET("/:id", h.Document.GetByID)
	documents.DELETE("/:id", h.Document.Delete)
	documents.POST("/:id/email", h.Document.Email)

	// Client routes
	clients := protected.Group("/clients")
	clients.POST("", h.Client.Create)
	clients.GET("", h.Client.List)
	clients.GET("/:id", h.Client.GetByID)
	clients.PUT("/:id", h.Client.Update)
	clients.DELETE("/:id", h.Client.Delete)

	// Company settings routes
	settings := protected.Group("/settings")
	settings.GET("", h.Settings.Get)
	settings.PUT("", h.Settings.Update)
	settings.POST("/assets/:kind", h.Settings.UploadAsset)
	settings.GET("/assets/:kind", h.Settings.AssetURL)

	// HSN/SAC lookup routes
	hsn := protected.Group("/hsn")
	hsn.GET("", h.HSN.Search)
	hsn.GET("/:code", h.HSN.GetByCode)

	// Export routes
	exports := protected.Group("/exports")
	exports.GET("/csv", h.Export.CSV)
	exports.GET("/xlsx", h.Export.XLSX)

	// Report routes
	reports := protected.Group("/reports")
	reports.GET("/tax-summary", h.Report.TaxSummary)
	reports.GET("/clients/:id/ledger", h.Report.ClientLedger)
	reports.GET("/monthly", h.Report.MonthlySummary)
	reports.GET("/types", h.Report.TypeOverview)

	// Dashboard stats
	protected.GET("/stats", h.Stats.GetStats)

	// Fixed vocabularies
	meta := protected.Group("/meta")
	meta.GET("/document-types", h.Meta.DocumentTypes)
	meta.GET("/vocabularies", h.Meta.Vocabularies)

	return r
}
