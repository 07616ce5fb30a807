package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"social-platform/config"
	"social-platform/internal/handler"
	"social-platform/internal/model"
	"social-platform/internal/repository"
	"social-platform/internal/service"
	dbPkg "social-platform/pkg/db"
	"social-platform/pkg/logger"
	redisPkg "social-platform/pkg/redis"
	"social-platform/pkg/response"
	"social-platform/pkg/token"
	"social-platform/pkg/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	log := logger.InitLogger(cfg.Log)
	defer log.Sync()

	log.Info("social platform starting",
		zap.String("port", cfg.Server.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Duration("jwt_expire_time", cfg.JWT.ExpireTime),
		zap.Bool("require_verification", cfg.Auth.RequireVerification),
		zap.String("log_level", cfg.Log.Level),
	)

	db, err := dbPkg.InitDB(cfg.Database)
	if err != nil {
		log.Fatal("database connect failed", zap.Error(err))
	}
	defer func() {
		if err := dbPkg.CloseDB(); err != nil {
			log.Error("database close failed", zap.Error(err))
		}
	}()

	if err := dbPkg.AutoMigrate(
		&model.User{}, &model.Post{}, &model.Like{}, &model.Comment{}, &model.Message{},
	); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	// Redis is optional: without it the presence mirror and the
	// conversation cache are skipped, nothing else changes.
	if cfg.Redis.Host != "" {
		if err := redisPkg.InitRedis(cfg.Redis); err != nil {
			log.Warn("redis unavailable, running without presence mirror", zap.Error(err))
		} else {
			defer redisPkg.Close()
		}
	}

	tokenSvc := token.NewService(cfg.JWT)
	hub := ws.NewHub()

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	userSvc := service.NewUserService(userRepo, tokenSvc, cfg.Auth.RequireVerification)
	postSvc := service.NewPostService(postRepo)
	messageSvc := service.NewMessageService(messageRepo, userRepo, hub)
	adminSvc := service.NewAdminService(userRepo, postRepo)

	userHandler := handler.NewUserHandler(userSvc)
	postHandler := handler.NewPostHandler(postSvc)
	messageHandler := handler.NewMessageHandler(messageSvc)
	adminHandler := handler.NewAdminHandler(adminSvc)
	wsHandler := ws.NewHandler(hub, tokenSvc, userSvc, messageSvc, cfg.WebSocket)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(logger.RequestLogger())
	router.Use(logger.Recovery())

	router.GET("/health", func(c *gin.Context) {
		status := "ok"
		if err := dbPkg.HealthCheck(); err != nil {
			status = "db-down"
		}
		response.Success(c, gin.H{
			"status": status,
			"online": hub.OnlineCount(),
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", userHandler.Register)
			auth.GET("/verify/:token", userHandler.Verify)
			auth.POST("/login", userHandler.Login)
		}

		users := v1.Group("/users")
		users.Use(tokenSvc.AuthMiddleware())
		{
			users.GET("/me", userHandler.Me)
			users.PUT("/me", userHandler.UpdateMe)
			users.GET("/search", userHandler.Search)
			users.GET("/:user_id", userHandler.GetUser)
		}

		posts := v1.Group("/posts")
		posts.Use(tokenSvc.AuthMiddleware())
		{
			posts.GET("", postHandler.Feed)
			posts.POST("", postHandler.Create)
			posts.DELETE("/:post_id", postHandler.Delete)
			posts.POST("/:post_id/like", postHandler.ToggleLike)
			posts.GET("/:post_id/comments", postHandler.ListComments)
			posts.POST("/:post_id/comments", postHandler.AddComment)
		}

		messages := v1.Group("/messages")
		messages.Use(tokenSvc.AuthMiddleware())
		{
			messages.POST("", messageHandler.Send)
			messages.GET("/:user_id", messageHandler.History)
		}

		v1.GET("/conversations", tokenSvc.AuthMiddleware(), messageHandler.Counterparts)

		admin := v1.Group("/admin")
		admin.Use(tokenSvc.AuthMiddleware(), tokenSvc.AdminMiddleware())
		{
			admin.GET("/stats", adminHandler.Stats)
			admin.GET("/users", adminHandler.ListUsers)
			admin.PUT("/users/:user_id/block", adminHandler.SetBlocked)
			admin.DELETE("/users/:user_id", adminHandler.DeleteUser)
		}
	}

	router.GET("/ws", wsHandler.Serve)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("http server listening", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}

	log.Info("server stopped")
}
