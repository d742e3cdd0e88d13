package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mikios34/storefront-backend/entity"
	filepkg "github.com/mikios34/storefront-backend/file"
	"go.uber.org/zap"
)

// fileService implements file.Service on top of a local directory that is
// served under the public files path.
type fileService struct {
	repo   filepkg.Repository
	urls   *filepkg.URLGenerator
	dir    string
	logger *zap.Logger
	now    func() time.Time
}

// NewFileService constructs a file.Service writing uploads below dir.
func NewFileService(repo filepkg.Repository, urls *filepkg.URLGenerator, dir string, logger *zap.Logger) filepkg.Service {
	return &fileService{repo: repo, urls: urls, dir: dir, logger: logger, now: time.Now}
}

func (s *fileService) Upload(ctx context.Context, req filepkg.UploadRequest) (*entity.File, error) {
	name := sanitizeFilename(req.Filename)
	if name == "" {
		return nil, errors.New("filename is required")
	}

	// public://<yyyy-mm>/<uuid>-<name>
	rel := path.Join(s.now().UTC().Format("2006-01"), uuid.NewString()+"-"+name)
	dst := filepath.Join(s.dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	out, err := os.Create(dst)
	if err != nil {
		return nil, fmt.Errorf("create upload: %w", err)
	}
	size, err := io.Copy(out, req.Body)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return nil, fmt.Errorf("write upload: %w", err)
	}

	f := &entity.File{
		OwnerID:  req.OwnerID,
		Filename: name,
		URI:      "public://" + rel,
		MimeType: req.MimeType,
		Size:     size,
	}
	stored, err := s.repo.StoreFile(ctx, f)
	if err != nil {
		_ = os.Remove(dst)
		return nil, err
	}
	return stored, nil
}

func (s *fileService) ResolveURLs(ctx context.Context, ids []uuid.UUID) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}
	files, err := s.repo.GetFilesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]entity.File, len(files))
	for _, f := range files {
		byID[f.ID] = f
	}

	urls := make([]string, 0, len(ids))
	for _, id := range ids {
		f, ok := byID[id]
		if !ok {
			continue
		}
		u, err := s.urls.GenerateAbsoluteString(f.URI)
		if err != nil {
			s.logger.Warn("skip unresolvable file", zap.String("file_id", id.String()), zap.String("uri", f.URI), zap.Error(err))
			continue
		}
		urls = append(urls, u)
	}
	return urls, nil
}

// sanitizeFilename keeps the base name and replaces characters that are
// awkward in URLs.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
