package file

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/entity"
)

// UploadRequest carries an uploaded file body and its metadata.
type UploadRequest struct {
	Filename string
	MimeType string
	OwnerID  *uuid.UUID
	Body     io.Reader
}

// Service exposes file operations.
type Service interface {
	Upload(ctx context.Context, req UploadRequest) (*entity.File, error)
	// ResolveURLs loads the files and returns their absolute URLs in the
	// order of ids. Missing files are skipped.
	ResolveURLs(ctx context.Context, ids []uuid.UUID) ([]string, error)
}
