package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	adminpkg "github.com/mikios34/storefront-backend/admin"
	userpkg "github.com/mikios34/storefront-backend/user"
)

type AdminHandler struct {
	service adminpkg.AdminService
}

func NewAdminHandler(svc adminpkg.AdminService) *AdminHandler { return &AdminHandler{service: svc} }

type registerAdminPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// RegisterAdmin creates another admin account.
// POST /api/v1/admins
func (h *AdminHandler) RegisterAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p registerAdminPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		req := adminpkg.RegisterAdminRequest{Name: p.Name, Email: p.Email, Password: p.Password}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.RegisterAdmin(ctx, req)
		if err != nil {
			if errors.Is(err, userpkg.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to register admin", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// Promote grants the admin role to a user.
// POST /api/v1/users/:id/promote
func (h *AdminHandler) Promote() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		u, err := h.service.Promote(ctx, id)
		if err != nil {
			if errors.Is(err, userpkg.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to promote user", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, u)
	}
}
