package main

import (
	"context"
	"log"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/focusdo/backend/api/handler"
	"github.com/focusdo/backend/internal/config"
	"github.com/focusdo/backend/internal/infrastructure/monitor"
	pgInfra "github.com/focusdo/backend/internal/infrastructure/postgres"
	redisInfra "github.com/focusdo/backend/internal/infrastructure/redis"
	"github.com/focusdo/backend/internal/middleware"
	"github.com/focusdo/backend/internal/router"
	"github.com/focusdo/backend/internal/services/lifecycle"
	"github.com/focusdo/backend/pkg/httpcontext"
	"github.com/focusdo/backend/pkg/logger"
	"github.com/focusdo/backend/pkg/password"
	"github.com/focusdo/backend/pkg/token"
	"github.com/focusdo/backend/repository/postgres"
	redisRepo "github.com/focusdo/backend/repository/redis"
	authUC "github.com/focusdo/backend/usecase/auth"
	focusUC "github.com/focusdo/backend/usecase/focus"
	subtaskUC "github.com/focusdo/backend/usecase/subtask"
	taskUC "github.com/focusdo/backend/usecase/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.JWT.Secret == "" {
		zapLogger.Fatal("JWT_SECRET is required")
	}

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	mon := monitor.New(pool, redisClient, cfg.Monitor.Interval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	subTaskRepo := postgres.NewSubTaskRepository(pool)
	focusRepo := postgres.NewFocusSessionRepository(pool)
	sessionRepo := redisRepo.NewSessionRepository(redisClient, cfg.JWT.RefreshTTL)

	hasher := password.NewHasher()
	tokens := token.NewManager(token.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		AccessTTL:  cfg.JWT.AccessTTL,
		RefreshTTL: cfg.JWT.RefreshTTL,
	})

	authUseCase := authUC.New(userRepo, sessionRepo, hasher, tokens, zapLogger)
	taskUseCase := taskUC.New(taskRepo, subTaskRepo, zapLogger)
	subtaskUseCase := subtaskUC.New(subTaskRepo, taskRepo, zapLogger)
	focusUseCase := focusUC.New(focusRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:    apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Task:    apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		SubTask: apiHandler.NewSubTaskHandler(subtaskUseCase, ctxAdapter, zapLogger),
		Focus:   apiHandler.NewFocusHandler(focusUseCase, ctxAdapter, zapLogger),
		Health:  apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(tokens, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
