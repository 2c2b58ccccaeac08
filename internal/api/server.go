package api

import (
	"context"

	"carparts/internal/app/config"
	"carparts/internal/app/dsn"
	"carparts/internal/app/handler"
	"carparts/internal/app/locale"
	"carparts/internal/app/mailer"
	"carparts/internal/app/middleware"
	"carparts/internal/app/redis"
	"carparts/internal/app/repository"
	"carparts/internal/app/storage"
	"carparts/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// StartServer собирает все зависимости и запускает HTTP-сервер
// @title Car Parts Catalog API
// @version 1.0
// @description Бэкенд каталога автозапчастей: категории, запчасти, авторизация, обратная связь
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func StartServer() {
	logrus.Info("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("failed to read config: %v", err)
	}

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		logrus.Fatal("DSN string is empty. Check your .env file")
	}

	repo, err := repository.New(dsnStr)
	if err != nil {
		logrus.Fatalf("failed to init repository: %v", err)
	}

	bundle, err := locale.NewBundle()
	if err != nil {
		logrus.Fatalf("failed to load translations: %v", err)
	}

	// Redis опционален: без него logout не отзывает токены
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logrus.Warnf("redis unavailable, token blacklist disabled: %v", err)
			redisClient = nil
		}
	}

	st, err := storage.New(cfg.Upload.Dir, cfg.Upload.BaseURL)
	if err != nil {
		logrus.Fatalf("failed to init upload storage: %v", err)
	}

	m := mailer.New(cfg.SMTP)

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	h := handler.NewHandler(repo, cfg, st, m, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		AllowCredentials: true,
	}))
	r.Use(bundle.Middleware())

	h.RegisterRoutes(r, authMiddleware)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	app := pkg.NewApp(cfg, r)
	app.RunApp()
}
