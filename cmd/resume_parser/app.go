package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/documents"
	"github.com/jonathan/resume-parser/internal/pipeline"
)

// newParser builds a parser from the loaded configuration.
func newParser(cfg *config.Config, logger *zap.Logger) *pipeline.Parser {
	return pipeline.New(
		pipeline.WithLogger(logger),
		pipeline.WithRegistry(documents.NewRegistry(cfg.DocumentOptions())),
		pipeline.WithSniffOptions(cfg.SniffOptions()),
	)
}

// openStore connects to DATABASE_URL and applies the schema. It returns nil
// when no database is configured.
func openStore(ctx context.Context, cfg *config.Config) (*db.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil
	}

	store, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}
