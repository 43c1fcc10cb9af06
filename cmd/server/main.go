package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vakilgpt-backend/internal/config"
	"vakilgpt-backend/internal/database"
	"vakilgpt-backend/internal/handlers"
	"vakilgpt-backend/internal/repository"
	"vakilgpt-backend/internal/router"
	"vakilgpt-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Vakil_GPT Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Open SQLite Database ────
	db, err := database.NewSQLiteDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ SQLite connection failed: %v", err)
	}
	defer db.Close()
	log.Println("✓ SQLite connected")

	// ──── Step 3: Run Database Migrations ────
	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Initialize Repositories ────
	customerRepo := repository.NewCustomerRepo(db)

	// ──── Initialize Services ────
	completionService := services.NewCompletionService(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel)
	chatService := services.NewChatService(completionService, customerRepo)
	log.Printf("✓ Groq client initialized (model %s)", cfg.GroqModel)

	// ──── Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(chatService)
	adminHandler := handlers.NewAdminHandler(customerRepo)

	// ──── Start HTTP Server ────
	r := router.New(chatHandler, adminHandler, cfg.PublicDir, cfg.ChatRateLimit)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Vakil_GPT is LIVE at http://localhost:%s", cfg.Port)
	log.Printf("  Admin: http://localhost:%s/admin", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
