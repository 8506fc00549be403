// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"supplement_keep/internal/config"
	"supplement_keep/internal/handlers"
	"supplement_keep/internal/middleware"
	"supplement_keep/internal/repository"
	"supplement_keep/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}
	// 開発環境では人間向けの tint、それ以外は JSON
	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	log.Println("Log Config Loaded...")

	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 3. Dependency Injection
	supplementRepo := repository.NewGormSupplementRepository()
	scheduleRepo := repository.NewGormScheduleRepository()
	adherenceRepo := repository.NewGormAdherenceRepository()
	userRepo := repository.NewGormUserRepository()

	notifier := service.NewNotifier(&config.Cfg)

	supplementService := service.NewSupplementService(db, supplementRepo, scheduleRepo, adherenceRepo, config.Cfg.App.RecentAdherenceLimit)
	adherenceService := service.NewAdherenceService(db, supplementRepo, scheduleRepo, adherenceRepo)
	inventoryService := service.NewInventoryService(db, supplementRepo, userRepo, notifier)
	lifecycleService := service.NewLifecycleService(db, supplementRepo)

	supplementHandler := handlers.NewSupplementHandler(supplementService, inventoryService, logger)
	adherenceHandler := handlers.NewAdherenceHandler(adherenceService, logger)
	statsHandler := handlers.NewStatsHandler(supplementService, logger)
	jobHandler := handlers.NewJobHandler(lifecycleService, inventoryService, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	// CORS 設定と適用 (設定ファイルから読み込んだ値を使用)
	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// レート制限。ストアは get/increment/expire を備えていれば差し替え可能
	counterStore := middleware.NewMemoryCounterStore()
	r.Use(middleware.RateLimitMiddleware(
		counterStore,
		config.Cfg.RateLimit.Requests,
		time.Duration(config.Cfg.RateLimit.WindowSeconds)*time.Second,
	))

	// API Routes
	// --- Protected routes (require JWT session) ---
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

		r.Route("/supplements", func(r chi.Router) {
			r.Post("/", supplementHandler.PostSupplement)
			r.Get("/", supplementHandler.GetSupplements)
			r.Get("/today", supplementHandler.GetSupplementToday)
			r.Post("/adherence/toggle", adherenceHandler.ToggleAdherence)
			r.Get("/{supplement_id}", supplementHandler.GetSupplement)
			r.Delete("/{supplement_id}", supplementHandler.DeleteSupplement)
			r.Post("/{supplement_id}/refill", supplementHandler.RefillSupplement)
		})

		r.Get("/me/stats", statsHandler.GetMyStats)
	})

	// --- Batch routes (require cron secret) ---
	r.Group(func(r chi.Router) {
		r.Use(middleware.CronSecretMiddleware(&config.Cfg))

		r.Post("/jobs/auto-complete", jobHandler.AutoComplete)
		r.Post("/jobs/refill-reminders", jobHandler.RefillReminders)
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		// DB接続チェック
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		err = sqlDB.PingContext(r.Context())
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	slog.Info("Server exited gracefully.")
}
