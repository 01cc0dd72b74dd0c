package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "focusos/internal/adapter/db"
	httpadapter "focusos/internal/adapter/http"
	"focusos/internal/adapter/http/handlers"
	httpmiddleware "focusos/internal/adapter/http/middleware"
	"focusos/internal/app/service"
	"focusos/internal/config"
	"focusos/pkg/token"
	"focusos/pkg/translator"
)

const sessionTTL = 24 * time.Hour

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	client, err := dbadapter.ConnectDB(context.Background(), cfg)
	if err != nil {
		logger.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Warn("failed to close mongodb connection", zap.Error(err))
		}
	}()

	database := client.Database(cfg.MongoDatabase)

	habitRepository := dbadapter.NewHabitRepository(database)
	taskRepository := dbadapter.NewTaskRepository(database)
	userRepository := dbadapter.NewUserRepository(database)

	syncService := service.NewSyncService(habitRepository, taskRepository, time.Now)
	habitService := service.NewHabitService(habitRepository, taskRepository, syncService)
	taskService := service.NewTaskService(taskRepository, syncService, time.Now)
	authService := service.NewAuthService(userRepository, token.NewIssuer(cfg.JWTSecret, sessionTTL))

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if cfg.TrustedProxies != nil {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("failed to set trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(client)
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	habitHandler := handlers.NewHabitHandler(habitService)
	syncHandler := handlers.NewSyncHandler(syncService)
	httpadapter.RegisterRoutes(r, healthHandler, authHandler, taskHandler, habitHandler, syncHandler)

	port := cfg.AppPort
	if port == "" {
		port = "5000"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
