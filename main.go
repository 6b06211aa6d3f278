package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/justinecabel/3-digit-lotto-analyzer/adapters/memory"
	"github.com/justinecabel/3-digit-lotto-analyzer/adapters/postgres"
	"github.com/justinecabel/3-digit-lotto-analyzer/ai"
	"github.com/justinecabel/3-digit-lotto-analyzer/domain/game"
	"github.com/justinecabel/3-digit-lotto-analyzer/internal"
	"github.com/justinecabel/3-digit-lotto-analyzer/internal/config"
	"github.com/justinecabel/3-digit-lotto-analyzer/internal/errors"
	"github.com/justinecabel/3-digit-lotto-analyzer/internal/session"
	"github.com/justinecabel/3-digit-lotto-analyzer/ports"
	"github.com/justinecabel/3-digit-lotto-analyzer/ui"
)

// initRepository selects draw persistence: PostgreSQL when DATABASE_URL is
// set, otherwise in-memory. The dashboard works identically either way.
func initRepository(appConfig *config.Config, logger *internal.Logger) (ports.DrawRepository, func(), error) {
	if appConfig.Database.URL == "" {
		logger.Info("no DATABASE_URL configured, draw history is in-memory only")
		return memory.NewDrawRepository(), func() {}, nil
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to connect to database")
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, errors.Wrap(err, "failed to ping database")
	}

	repo := postgres.NewDrawRepository(db).(*postgres.DrawRepositoryImpl)
	if err := repo.Migrate(context.Background()); err != nil {
		db.Close()
		return nil, nil, errors.Wrap(err, "database migration failed")
	}

	logger.Info("draw history persisted to PostgreSQL")
	return repo, func() { db.Close() }, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	logger := internal.NewDefaultLogger()

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	repo, closeRepo, err := initRepository(appConfig, logger)
	if err != nil {
		log.Fatalf("Failed to initialize draw repository: %v", err)
	}
	defer closeRepo()

	catalog := game.DefaultCatalog()

	store, err := session.NewStore(catalog, appConfig.Data.DefaultGame, repo, logger)
	if err != nil {
		log.Fatalf("Failed to create session store: %v", err)
	}

	predictor := ai.NewPredictor(appConfig.AI)
	if predictor.Enabled() {
		logger.Info("AI predictions enabled (model %s, temperature %.2f)",
			appConfig.AI.OpenAIModel, appConfig.AI.Temperature)
	} else {
		logger.Warn("OPENAI_API_KEY not set, AI predictions disabled")
	}

	server, err := ui.NewServer(appConfig, catalog, store, predictor, logger)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
