package main

import (
	"fmt"
	"log"

	"billkit/internal/config"
	"billkit/internal/email/noop"
	"billkit/internal/email/ses"
	"billkit/internal/handler"
	"billkit/internal/logger"
	"billkit/internal/port"
	"billkit/internal/repository/postgres"
	"billkit/internal/router"
	"billkit/internal/service"
	s3storage "billkit/internal/storage/s3"
)

// @title BillKit API
// @version 1.0
// @description GST billing document generator for Indian businesses.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT access token. Format: Bearer <token>
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	appLog := logger.New(cfg.Log)

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	clientRepo := postgres.NewClientRepo(db)
	docRepo := postgres.NewDocumentRepo(db)
	settingsRepo := postgres.NewSettingsRepo(db)
	hsnRepo := postgres.NewHSNRepo(db)
	statsRepo := postgres.NewStatsRepo(db)
	reportRepo := postgres.NewReportRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender(cfg.Email.FrontendURL)
		appLog.Warn().Str("provider", cfg.Email.Provider).Msg("email provider not configured, using noop sender")
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	resetSvc := service.NewPasswordResetService(userRepo, emailSender, cfg.JWT, appLog)
	docSvc := service.NewDocumentService(docRepo, clientRepo, settingsRepo)
	clientSvc := service.NewClientService(clientRepo)
	settingsSvc := service.NewSettingsService(settingsRepo, s3Client, &cfg.S3, appLog)
	hsnSvc := service.NewHSNService(hsnRepo)
	statsSvc := service.NewStatsService(statsRepo)
	reportSvc := service.NewReportService(reportRepo)
	exportSvc := service.NewExportService(docRepo)
	mailerSvc := service.NewMailerService(docRepo, settingsRepo, emailSender, appLog)

	// Initialize handlers
	h := router.Handlers{
		Auth:     handler.NewAuthHandler(authSvc, resetSvc),
		Document: handler.NewDocumentHandler(docSvc, mailerSvc),
		Client:   handler.NewClientHandler(clientSvc),
		Settings: handler.NewSettingsHandler(settingsSvc),
		HSN:      handler.NewHSNHandler(hsnSvc),
		Export:   handler.NewExportHandler(exportSvc),
		Report:   handler.NewReportHandler(reportSvc),
		Stats:    handler.NewStatsHandler(statsSvc),
		Meta:     handler.NewMetaHandler(),
		Health:   handler.NewHealthHandler(db),
	}

	// Setup router
	r := router.Setup(appLog, cfg.CORS.AllowedOrigins, authSvc, h)

	appLog.Info().Str("port", cfg.Server.Port).Msg("server starting")
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
