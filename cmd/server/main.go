package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Skufu/aidoc/internal/api"
	"github.com/Skufu/aidoc/internal/apperror"
	"github.com/Skufu/aidoc/internal/chat"
	"github.com/Skufu/aidoc/internal/config"
	"github.com/Skufu/aidoc/internal/directory"
	"github.com/Skufu/aidoc/internal/enhance"
	"github.com/Skufu/aidoc/internal/logger"
	"github.com/Skufu/aidoc/internal/middleware"
	"github.com/Skufu/aidoc/internal/risk"
	"github.com/Skufu/aidoc/internal/symptoms"
	"github.com/Skufu/aidoc/internal/textgen"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "aidoc",
		Short:        "Symptom analysis and health assistant API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API (default)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "analyze [symptom...]",
			Short: "Run the local symptom analysis and print the result as JSON",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return analyze(cmd.Context(), cmd, args)
			},
		},
	)
	return root
}

// analyze never calls an AI provider.
func analyze(ctx context.Context, cmd *cobra.Command, args []string) error {
	svc := symptoms.NewService(symptoms.NewAnalyzer(nil), nil, 0, nil)
	resp, err := svc.Analyze(ctx, symptoms.ListInput(args...))
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	gin.SetMode(cfg.GinMode)

	catalog := symptoms.DefaultCatalog()
	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("symptom catalog: %w", err)
	}

	var db api.HealthChecker
	var store directory.Store = directory.NewMemoryStore()
	if cfg.EnableDB {
		pool, err := connectDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		defer pool.Close()

		pg := directory.NewPostgresStore(pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("directory schema: %w", err)
		}
		db, store = pool, pg
	}

	enhancer, closeEnhancer := buildEnhancer(ctx, cfg, log)
	defer closeEnhancer()

	handler := &api.Handler{
		Symptoms:  symptoms.NewService(symptoms.NewAnalyzer(catalog), enhancer, cfg.AITimeout, log),
		Chat:      chat.NewService(textgen.ChatFromConfig(cfg), cfg.AITimeout, log),
		Risk:      risk.NewChecker(nil),
		Directory: store,
		DB:        db,
		Logger:    log,
	}

	router := setupRouter(cfg, handler, log)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.AITimeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	log.Info("server listening", zap.String("addr", server.Addr), zap.Bool("ai_enabled", enhancer != nil))
	return waitForShutdown(server, serveErr, log)
}

// buildEnhancer returns a nil Enhancer when no provider key is set. The Redis
// cache is optional; a connection failure only disables caching.
func buildEnhancer(ctx context.Context, cfg *config.Config, log *zap.Logger) (symptoms.Enhancer, func()) {
	gen := textgen.FromConfig(cfg)
	if gen == nil {
		log.Info("no AI provider configured, serving local analysis only")
		return nil, func() {}
	}

	var enhancer symptoms.Enhancer = enhance.New(gen, log)
	if cfg.RedisURL == "" {
		return enhancer, func() {}
	}

	rdb, err := enhance.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn("redis unavailable, enhancement cache disabled", zap.Error(err))
		return enhancer, func() {}
	}
	return enhance.NewCached(enhancer, rdb, cfg.EnhanceCacheTTL, log), func() { _ = rdb.Close() }
}

func connectDB(ctx context.Context, url string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return pool, nil
}

func setupRouter(cfg *config.Config, handler *api.Handler, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
		middleware.Metrics(),
		middleware.BodyLimit(cfg.MaxBodyBytes),
		cors.New(cors.Config{
			AllowOrigins:  cfg.CORSOrigins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
			ExposeHeaders: []string{middleware.RequestIDHeader},
			MaxAge:        12 * time.Hour,
		}),
	)

	handler.Register(router)

	router.NoRoute(func(c *gin.Context) {
		apperror.Respond(c, apperror.NotFound("Route not found"))
	})

	return router
}

func waitForShutdown(server *http.Server, serveErr <-chan error, log *zap.Logger) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-serveErr:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
		return err
	}
	return nil
}
