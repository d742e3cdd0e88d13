package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	filepkg "github.com/mikios34/storefront-backend/file"
	"github.com/mikios34/storefront-backend/middleware"
)

type FileHandler struct {
	service   filepkg.Service
	maxUpload int64
}

func NewFileHandler(svc filepkg.Service, maxUpload int64) *FileHandler {
	return &FileHandler{service: svc, maxUpload: maxUpload}
}

// Upload stores a multipart "file" field and returns the file record.
// POST /api/v1/files
func (h *FileHandler) Upload() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.maxUpload > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)
		}
		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required", "detail": err.Error()})
			return
		}
		src, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable upload", "detail": err.Error()})
			return
		}
		defer src.Close()

		req := filepkg.UploadRequest{
			Filename: fh.Filename,
			MimeType: fh.Header.Get("Content-Type"),
			Body:     src,
		}
		if ident, ok := middleware.CurrentUser(c); ok {
			req.OwnerID = &ident.UserID
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		f, err := h.service.Upload(ctx, req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store file", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, f)
	}
}
