package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/finwise-app/finwise/internal/api/handlers"
	"github.com/finwise-app/finwise/internal/api/middleware"
	"github.com/finwise-app/finwise/internal/config"
	"github.com/finwise-app/finwise/internal/llm"
	"github.com/finwise-app/finwise/internal/logger"
	"github.com/finwise-app/finwise/internal/store"
)

func main() {
	cfg := config.FromEnv()
	var (
		port = flag.String("port", cfg.Port, "HTTP server port")
		mode = flag.String("mode", cfg.AnswerMode, "chat answer mode: ai-only or hybrid")
	)
	flag.Parse()
	cfg.Port = *port
	cfg.AnswerMode = *mode

	log := logger.New()

	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("No Gemini API key configured - chat will answer with rules and fallbacks only")
	}

	current := store.New()
	client := llm.NewClient(cfg.GeminiAPIKey)

	uploadHandler := handlers.NewUploadHandler(current, log)
	dashboardHandler := handlers.NewDashboardHandler(current, log)
	analyticsHandler := handlers.NewAnalyticsHandler(current, log)
	transactionsHandler := handlers.NewTransactionsHandler(current, log)
	chatHandler := handlers.NewChatHandler(current, client, cfg, log)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/upload", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			uploadHandler.Upload(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/dashboard", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			dashboardHandler.Dashboard(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/analytics", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			analyticsHandler.Analytics(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			chatHandler.Chat(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/transactions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			transactionsHandler.ListTransactions(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/api/categorize/test", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			handlers.CategorizeTest(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/health", handlers.Health)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           3600,
	})

	handler := middleware.Recovery(log)(
		middleware.RequestID(
			middleware.Logger(log)(
				corsHandler.Handler(mux),
			),
		),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("mode", cfg.AnswerMode).Msg("Starting API server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
