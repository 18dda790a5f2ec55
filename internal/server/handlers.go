package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/pipeline"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	uploadField = "file"
	// multipartOverhead is allowed on top of the file limit for boundaries
	// and part headers.
	multipartOverhead = 64 << 10
	// multipartMemory is how much of the form is held in memory before
	// spilling to temporary files.
	multipartMemory = 1 << 20
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// uploadRequest is the part of a multipart upload the API checks before parsing.
type uploadRequest struct {
	Filename    string `validate:"required,max=255"`
	ContentType string `validate:"omitempty,max=255"`
	Size        int64  `validate:"gte=0"`
}

// ParseResponse is the body of a successful parse or lookup.
type ParseResponse struct {
	ID        string              `json:"id,omitempty"`
	Record    *types.ResumeRecord `json:"record"`
	Metadata  *ingestion.Metadata `json:"metadata"`
	Warnings  []pipeline.Warning  `json:"warnings"`
	CreatedAt *time.Time          `json:"created_at,omitempty"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleParse parses the multipart "file" field and returns the record.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	limit := &http.MaxBytesError{Limit: s.maxUploadBytes}
	if r.ContentLength > s.maxUploadBytes+multipartOverhead {
		s.errorResponse(w, r, limit)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes+multipartOverhead)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.errorResponse(w, r, limit)
			return
		}
		s.errorResponse(w, r, &ErrValidation{
			Field:   uploadField,
			Message: `The request must be multipart/form-data with a "file" field.`,
		})
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		s.errorResponse(w, r, &ErrValidation{Field: uploadField, Message: `The "file" field is missing.`})
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > s.maxUploadBytes {
		s.errorResponse(w, r, limit)
		return
	}

	req := uploadRequest{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}
	if err := validateUpload(req); err != nil {
		s.errorResponse(w, r, err)
		return
	}

	result, err := s.parser.ParseResume(r.Context(), pipeline.Upload{
		Filename:    req.Filename,
		ContentType: req.ContentType,
		Body:        file,
	})
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	resp := ParseResponse{Record: result.Record, Metadata: result.Metadata, Warnings: result.Warnings}
	if s.store != nil {
		stored, err := s.persist(r.Context(), result)
		if err != nil {
			s.errorResponse(w, r, fmt.Errorf("failed to store parse result: %w", err))
			return
		}
		resp.ID = stored.ID.String()
		resp.CreatedAt = &stored.CreatedAt
	}

	s.requestLogger(r).Info("resume parsed",
		zap.String("format", result.Metadata.Format),
		zap.Int("chars", result.Metadata.Chars),
		zap.Int("warnings", len(result.Warnings)),
		zap.String("id", resp.ID))
	s.jsonResponse(w, http.StatusOK, resp)
}

// persist stores a result unless identical bytes were stored before.
// Parsing is deterministic, so the earlier row describes the same record.
func (s *Server) persist(ctx context.Context, result *pipeline.Result) (*db.ParsedResume, error) {
	existing, err := s.store.FindParsedResumeByHash(ctx, result.Metadata.Hash)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	return s.store.SaveParsedResume(ctx, result)
}

// handleGetResume returns a stored parse result.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, r, &ErrValidation{Field: "id", Message: "The id must be a UUID."})
		return
	}

	stored, err := s.store.GetParsedResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, r, fmt.Errorf("failed to load parse result: %w", err))
		return
	}
	if stored == nil {
		s.errorResponse(w, r, &ErrNotFound{ID: idStr})
		return
	}

	s.jsonResponse(w, http.StatusOK, ParseResponse{
		ID:        stored.ID.String(),
		Record:    stored.Record,
		Metadata:  stored.Metadata,
		Warnings:  stored.Warnings,
		CreatedAt: &stored.CreatedAt,
	})
}

// validateUpload runs the struct tags on req and reports the first failure.
func validateUpload(req uploadRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ErrValidation{
			Field:   fe.Field(),
			Message: fmt.Sprintf("The upload %s failed the %q check.", fe.Field(), fe.Tag()),
		}
	}
	return &ErrValidation{Field: uploadField, Message: "The upload is invalid."}
}
