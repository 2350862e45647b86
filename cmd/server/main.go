package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/utkarshp579/career-orbit/docs"

	"github.com/utkarshp579/career-orbit/internal/auth"
	"github.com/utkarshp579/career-orbit/internal/cache"
	"github.com/utkarshp579/career-orbit/internal/config"
	"github.com/utkarshp579/career-orbit/internal/db"
	"github.com/utkarshp579/career-orbit/internal/events"
	"github.com/utkarshp579/career-orbit/internal/handler"
	"github.com/utkarshp579/career-orbit/internal/insight"
	"github.com/utkarshp579/career-orbit/internal/llm"
	"github.com/utkarshp579/career-orbit/internal/logger"
	"github.com/utkarshp579/career-orbit/internal/model"
	"github.com/utkarshp579/career-orbit/internal/repository"
	"github.com/utkarshp579/career-orbit/internal/router"
	"github.com/utkarshp579/career-orbit/internal/service"
)

// @title Career Orbit API
// @version 1.0
// @description Career coaching API with AI-generated industry insights, onboarding, and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	_ = godotenv.Load()

	log := logger.New()
	cfg := config.Load()
	ctx := context.Background()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Info().Msg("RESET_DB=true detected, dropping all tables")
		for _, table := range []interface{}{&model.User{}, &model.IndustryInsight{}} {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Warn().Err(err).Msg("failed to drop table (may not exist)")
			}
		}
	}

	if err := gormDB.AutoMigrate(&model.IndustryInsight{}, &model.User{}); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	textGen, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal().Err(err).Msg("gemini init")
	}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	insightRepo := repository.NewInsightRepository(gormDB)
	transactor := repository.NewTransactor(gormDB)

	// Auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Services
	generator := insight.NewGenerator(textGen, cfg.GenerateTimeout, log)
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	insightService := service.NewInsightService(userRepo, insightRepo, generator, cacheClient, log)
	profileService := service.NewProfileService(userRepo, transactor, log)

	// Background function registry; nothing registered yet, the delivery
	// endpoint is live for when functions land.
	registry := events.NewRegistry()

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	insightHandler := handler.NewInsightHandler(insightService)
	profileHandler := handler.NewProfileHandler(profileService)
	industryHandler := handler.NewIndustryHandler()
	eventHandler := handler.NewEventHandler(registry)

	router.Register(
		e,
		cfg,
		authHandler,
		insightHandler,
		profileHandler,
		industryHandler,
		eventHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
