package main

import (
	"flag"
	"log"

	"github.com/dietwise/backend/config"
	"github.com/dietwise/backend/internal/database"
)

func main() {
	migrationsDir := flag.String("dir", "", "Migrations directory (defaults to MIGRATIONS_DIR)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dir := cfg.MigrationsDir
	if *migrationsDir != "" {
		dir = *migrationsDir
	}

	db, err := database.OpenGorm(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, dir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("All migrations applied successfully")
}
