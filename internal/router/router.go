package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"vakilgpt-backend/internal/handlers"
	"vakilgpt-backend/internal/middleware"
)

func New(
	chatHandler *handlers.ChatHandler,
	adminHandler *handlers.AdminHandler,
	publicDir string,
	chatRateLimit int,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ──── Chat Route ────
	r.Group(func(r chi.Router) {
		if chatRateLimit > 0 {
			limiter := middleware.NewRateLimiter(chatRateLimit, time.Minute)
			r.Use(limiter.Middleware)
		}
		r.Post("/chat", chatHandler.Chat)
	})

	// ──── Admin Route ────
	r.Get("/admin", adminHandler.Dashboard)

	// ──── Static Assets ────
	r.Handle("/*", http.FileServer(http.Dir(publicDir)))

	return r
}
