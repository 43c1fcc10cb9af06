// Command seed inserts a sample customer and question for smoke-testing the
// admin view against an empty database.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"vakilgpt-backend/internal/database"
	"vakilgpt-backend/internal/repository"
)

func main() {
	log.Println("🌱 Seeding database...")

	// No Groq key needed here, so skip the full config load
	godotenv.Load()
	databaseURL := envOrDefault("DATABASE_URL", "file:./vakilgpt.db")
	migrationsDir := envOrDefault("MIGRATIONS_DIR", "migrations")

	db, err := database.NewSQLiteDB(databaseURL)
	if err != nil {
		log.Fatalf("✗ SQLite connection failed: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, migrationsDir); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}

	repo := repository.NewCustomerRepo(db)

	answer := "A rental agreement is valid when it satisfies the essentials of a contract under the Indian Contract Act."
	err = repo.UpsertCustomerWithQuestion(context.Background(),
		"test@vakilgpt.com", "Is this rental agreement valid?", &answer)
	if err != nil {
		log.Fatalf("✗ Seed failed: %v", err)
	}

	log.Println("✓ Created customer test@vakilgpt.com with first question")
}

func envOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
