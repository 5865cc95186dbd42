package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"lifetrack/internal/service"
	"lifetrack/internal/transport/rest/handler"
	"lifetrack/internal/transport/rest/middleware"
)

// Container holds all dependencies for the router
type Container struct {
	Intelligence *service.IntelligenceService
	AI           *service.AIService
	Logger       *zap.Logger
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	intelligenceHandler := handler.NewIntelligenceHandler(c.Intelligence, c.AI)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)
	r.Use(middleware.RequestLogger(c.Logger))
	r.Use(middleware.Metrics())

	// Intelligence routes
	api := r.PathPrefix("/api/intelligence").Subrouter()
	api.HandleFunc("/dashboard", intelligenceHandler.Dashboard).Methods("GET", "OPTIONS")
	api.HandleFunc("/core", intelligenceHandler.Core).Methods("GET", "OPTIONS")
	api.HandleFunc("/generate-ai", intelligenceHandler.GenerateAI).Methods("POST", "OPTIONS")
	api.HandleFunc("/chat", intelligenceHandler.Chat).Methods("POST", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
