package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-parser/internal/pipeline"
)

// SaveParsedResume stores a successful parse result under a new ID.
func (db *DB) SaveParsedResume(ctx context.Context, result *pipeline.Result) (*ParsedResume, error) {
	if result == nil || result.Record == nil || result.Metadata == nil {
		return nil, fmt.Errorf("cannot save incomplete parse result")
	}

	recordJSON, err := json.Marshal(result.Record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	metadataJSON, err := json.Marshal(result.Metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	warnings := result.Warnings
	if warnings == nil {
		warnings = []pipeline.Warning{}
	}
	warningsJSON, err := json.Marshal(warnings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal warnings: %w", err)
	}

	saved := &ParsedResume{
		ID:       uuid.New(),
		Record:   result.Record,
		Metadata: result.Metadata,
		Warnings: warnings,
	}
	err = db.pool.QueryRow(ctx,
		`INSERT INTO parsed_resumes (id, filename, format, content_hash, record, metadata, warnings)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		saved.ID, result.Metadata.Filename, result.Metadata.Format, result.Metadata.Hash,
		recordJSON, metadataJSON, warningsJSON,
	).Scan(&saved.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to save parsed resume: %w", err)
	}
	return saved, nil
}

// GetParsedResume retrieves a stored result by ID. It returns nil, nil when
// no row matches.
func (db *DB) GetParsedResume(ctx context.Context, id uuid.UUID) (*ParsedResume, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, record, metadata, warnings, created_at
		 FROM parsed_resumes WHERE id = $1`,
		id,
	)
	parsed, err := scanParsedResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get parsed resume %s: %w", id, err)
	}
	return parsed, nil
}

// FindParsedResumeByHash returns the most recent result for an upload with
// the given content hash, or nil, nil when there is none.
func (db *DB) FindParsedResumeByHash(ctx context.Context, hash string) (*ParsedResume, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, record, metadata, warnings, created_at
		 FROM parsed_resumes WHERE content_hash = $1
		 ORDER BY created_at DESC LIMIT 1`,
		hash,
	)
	parsed, err := scanParsedResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find parsed resume by hash: %w", err)
	}
	return parsed, nil
}

func scanParsedResume(row pgx.Row) (*ParsedResume, error) {
	var parsed ParsedResume
	var recordJSON, metadataJSON, warningsJSON []byte
	if err := row.Scan(&parsed.ID, &recordJSON, &metadataJSON, &warningsJSON, &parsed.CreatedAt); err != nil {
		return nil, err
	}
	if err := decodeParsedResume(&parsed, recordJSON, metadataJSON, warningsJSON); err != nil {
		return nil, err
	}
	return &parsed, nil
}

// decodeParsedResume fills the JSON columns of a row into parsed.
func decodeParsedResume(parsed *ParsedResume, recordJSON, metadataJSON, warningsJSON []byte) error {
	if err := json.Unmarshal(recordJSON, &parsed.Record); err != nil {
		return fmt.Errorf("failed to unmarshal record: %w", err)
	}
	if err := json.Unmarshal(metadataJSON, &parsed.Metadata); err != nil {
		return fmt.Errorf("failed to unmarshal metadata: %w", err)
	}
	if err := json.Unmarshal(warningsJSON, &parsed.Warnings); err != nil {
		return fmt.Errorf("failed to unmarshal warnings: %w", err)
	}
	if parsed.Record != nil {
		parsed.Record.FillDefaults()
	}
	if parsed.Warnings == nil {
		parsed.Warnings = []pipeline.Warning{}
	}
	return nil
}
