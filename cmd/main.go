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

	"go_vocab_review/internal/clock"
	"go_vocab_review/internal/config"
	"go_vocab_review/internal/handlers"
	"go_vocab_review/internal/middleware"
	"go_vocab_review/internal/repository"
	"go_vocab_review/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み中の一時ロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

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

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 2. Database (GORM)
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
	clk := clock.New()

	tenantRepo := repository.NewGormTenantRepository()
	tokenRepo := repository.NewGormTokenRepository()
	wordRepo := repository.NewGormWordRepository()
	progressRepo := repository.NewGormProgressRepository()
	ankiRepo := repository.NewGormAnkiRepository()

	mailer := service.NewMailer(&config.Cfg)

	authService := service.NewAuthService(db, tenantRepo, tokenRepo, mailer, &config.Cfg)
	wordService := service.NewWordService(db, wordRepo, progressRepo, clk)
	reviewService := service.NewReviewService(db, progressRepo, wordRepo, &config.Cfg, clk)
	sessionService := service.NewSessionService(reviewService, clk)
	learningService := service.NewLearningService(db, ankiRepo, wordRepo, clk)

	authHandler := handlers.NewAuthHandler(authService, logger)
	wordHandler := handlers.NewWordHandler(wordService, logger)
	reviewHandler := handlers.NewReviewHandler(reviewService, logger)
	sessionHandler := handlers.NewSessionHandler(sessionService, logger)
	learningHandler := handlers.NewLearningHandler(learningService, logger)

	// 4. Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	}
	r.Use(cors.New(corsOptions).Handler)

	r.Use(chimiddleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Get("/verify", authHandler.VerifyAccount)
			r.Post("/login", authHandler.Login)
			r.Post("/forgot-password", authHandler.ForgotPassword)
			r.Post("/reset-password", authHandler.ResetPassword)
		})

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Route("/words", func(r chi.Router) {
				r.Post("/", wordHandler.PostWord)
				r.Get("/", wordHandler.GetWords)
				r.Get("/{word_id}", wordHandler.GetWord)
				r.Put("/{word_id}", wordHandler.PutWord)
				r.Patch("/{word_id}", wordHandler.PatchWord)
				r.Delete("/{word_id}", wordHandler.DeleteWord)
				r.Post("/{word_id}/learned", wordHandler.MarkLearned)
				r.Post("/{word_id}/known", wordHandler.MarkKnownAlready)
				r.Delete("/{word_id}/known", wordHandler.UnmarkKnownAlready)
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/stats", reviewHandler.GetStats)
				r.Get("/stats/stream", reviewHandler.StreamStats)
				r.Post("/reset", reviewHandler.ResetProgress)
				r.Delete("/progress", reviewHandler.ClearProgress)

				r.Route("/sessions", func(r chi.Router) {
					r.Post("/", sessionHandler.StartSession)
					r.Get("/{session_id}", sessionHandler.GetSession)
					r.Post("/{session_id}/answers", sessionHandler.SubmitAnswer)
					r.Post("/{session_id}/next", sessionHandler.ContinueToNext)
					r.Delete("/{session_id}", sessionHandler.ExitSession)
				})
			})

			r.Route("/learning", func(r chi.Router) {
				r.Get("/counts", learningHandler.GetCounts)
				r.Post("/{word_id}/grade", learningHandler.GradeCard)
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := sqlDB.PingContext(r.Context()); err != nil {
			slog.ErrorContext(r.Context(), "Health check failed: could not ping DB", slog.Any("error", err))
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
		ReadTimeout: 5 * time.Second,
		// WriteTimeout を設定するとSSE (/reviews/stats/stream) が切られるため未設定
		IdleTimeout: 120 * time.Second,
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

	log.Println("Server exiting")
}
