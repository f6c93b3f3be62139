package main

import (
	"database/sql"
	"flag"
	"log/slog"
	"os"

	"fintrack/internal/config"
	"fintrack/internal/database"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	status := flag.Bool("status", false, "print current migration version and exit")
	seeds := flag.Bool("seeds", false, "load seed data after migrating")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db)

	if err := runner.WaitForDatabase(); err != nil {
		slog.Error("Database never became ready", "error", err)
		os.Exit(1)
	}

	if *status {
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			slog.Error("Failed to read migration status", "error", err)
			os.Exit(1)
		}
		slog.Info("Migration status", "version", version, "dirty", dirty)
		return
	}

	if err := runner.RunMigrations(); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Migrations applied")

	if *seeds {
		// LoadSeeds is gated on this variable so the flag enables it
		os.Setenv("SEED_DATABASE", "true")
		if err := runner.LoadSeeds(); err != nil {
			slog.Error("Seed load failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Seeds loaded")
	}
}
