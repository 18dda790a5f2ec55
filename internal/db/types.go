package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/pipeline"
	"github.com/jonathan/resume-parser/internal/types"
)

// ParsedResume is a stored parse result.
type ParsedResume struct {
	ID        uuid.UUID           `json:"id"`
	Record    *types.ResumeRecord `json:"record"`
	Metadata  *ingestion.Metadata `json:"metadata"`
	Warnings  []pipeline.Warning  `json:"warnings"`
	CreatedAt time.Time           `json:"created_at"`
}
