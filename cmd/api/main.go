package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "productivity/internal/adapter/db"
	httpadapter "productivity/internal/adapter/http"
	"productivity/internal/adapter/http/handlers"
	httpmiddleware "productivity/internal/adapter/http/middleware"
	appservice "productivity/internal/app/service"
	"productivity/internal/auth"
	"productivity/internal/config"
	"productivity/pkg/translator"
)

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
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageRu},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	// Every registered user gets this image until they upload one.
	defaultAvatar, err := os.ReadFile(cfg.DefaultAvatarPath)
	if err != nil {
		logger.Fatal("failed to read default avatar", zap.String("path", cfg.DefaultAvatarPath), zap.Error(err))
	}

	tokens := auth.NewTokenService(cfg.JwtSecret, cfg.DefaultTokenTTL)

	userRepository := dbadapter.NewUserRepository(db)
	taskRepository := dbadapter.NewTaskRepository(db)
	roleRepository := dbadapter.NewRoleRepository(db)

	userService := appservice.NewUserService(userRepository, tokens, cfg.LoginTokenTTL, defaultAvatar)
	taskService := appservice.NewTaskService(taskRepository, userRepository)
	roleService := appservice.NewRoleService(roleRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("failed to set trusted proxies", zap.Error(err))
		}
	}

	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService)
	roleHandler := handlers.NewRoleHandler(roleService)
	httpadapter.RegisterRoutes(r, tokens, healthHandler, userHandler, taskHandler, roleHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
