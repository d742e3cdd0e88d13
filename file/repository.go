package file

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/entity"
)

var ErrFileNotFound = errors.New("file not found")

// Repository specifies file record storage.
type Repository interface {
	StoreFile(ctx context.Context, f *entity.File) (*entity.File, error)
	GetFileByID(ctx context.Context, id uuid.UUID) (*entity.File, error)
	// GetFilesByIDs returns the files that still exist; missing ids are
	// silently absent from the result.
	GetFilesByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.File, error)
}
