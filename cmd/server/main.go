package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sdp-site.backend/internal/config"
	"sdp-site.backend/internal/infrastructure/repositories"
	"sdp-site.backend/internal/interfaces/http/handlers"
	"sdp-site.backend/internal/interfaces/http/middleware"
	"sdp-site.backend/internal/usecases"
	"sdp-site.backend/pkg/jwt"
	"sdp-site.backend/pkg/logger"
	"sdp-site.backend/pkg/mail"
	"sdp-site.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (public listings will serve fallback data)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	eventRepo := repositories.NewEventRepository(db)
	teamRepo := repositories.NewTeamMemberRepository(db)
	faqRepo := repositories.NewFAQRepository(db)
	contactRepo := repositories.NewContactMessageRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Session.EncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize mailer
	mailer := mail.NewMailer(mail.Config{
		Provider:    cfg.Mail.Provider,
		FromAddress: cfg.Mail.FromAddress,
		FromName:    cfg.Mail.FromName,
		SES: mail.SESConfig{
			Region:          cfg.Mail.SESRegion,
			AccessKeyID:     cfg.Mail.SESAccessKeyID,
			SecretAccessKey: cfg.Mail.SESSecretKey,
		},
	})

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, sessionStore, cfg.Session.TTL)
	contactUsecase := usecases.NewContactUsecase(contactRepo, mailer, cfg.Mail.NotifyAddress)

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(eventRepo)
	teamHandler := handlers.NewTeamHandler(teamRepo)
	faqHandler := handlers.NewFAQHandler(faqRepo)
	contactHandler := handlers.NewContactHandler(contactUsecase)
	authHandler := handlers.NewAuthHandler(authUsecase, cfg.Session.TTL)
	setupHandler := handlers.NewSetupHandler(db, authUsecase, cfg.Admin)
	adminHandler := handlers.NewAdminHandler(eventRepo, teamRepo, faqRepo, contactRepo)
	pagesHandler := handlers.NewPagesHandler()

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.CORSMiddleware(splitOrigins(cfg.CORS.AllowedOrigins)))

	r.LoadHTMLGlob("web/templates/*.html")

	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		eventHandler:   eventHandler,
		teamHandler:    teamHandler,
		faqHandler:     faqHandler,
		contactHandler: contactHandler,
		authHandler:    authHandler,
		setupHandler:   setupHandler,
		adminHandler:   adminHandler,
		sessionAuth:    middleware.SessionAuthMiddleware(authUsecase),
		optionalAuth:   middleware.OptionalSessionMiddleware(authUsecase),
	})
	registerAdminPages(r, pagesHandler, middleware.AdminPageGuard(authUsecase))

	// HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error(ctx, "Server shutdown failed", zap.Error(err))
		}
	}()

	log.Printf("🚀 Server starting on port %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
