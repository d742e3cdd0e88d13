package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	userpkg "github.com/mikios34/storefront-backend/user"
)

type UserHandler struct {
	service userpkg.Service
}

func NewUserHandler(svc userpkg.Service) *UserHandler { return &UserHandler{service: svc} }

type registerUserPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register creates a customer account.
// POST /api/v1/users/register
func (h *UserHandler) Register() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p registerUserPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		h.register(c, userpkg.RegisterUserRequest{Name: p.Name, Email: p.Email, Password: p.Password})
	}
}

type registerFirebasePayload struct {
	Name string `json:"name"`
}

// RegisterFirebase creates a customer account linked to the Firebase user
// of the verified ID token. RequireFirebaseAuth must run first.
// POST /api/v1/users/register/firebase
func (h *UserHandler) RegisterFirebase() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("firebase_uid")
		if uid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "firebase_uid missing in context"})
			return
		}
		email := c.GetString("firebase_email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "firebase token carries no email"})
			return
		}
		var p registerFirebasePayload
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&p); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
				return
			}
		}
		h.register(c, userpkg.RegisterUserRequest{Name: p.Name, Email: email, FirebaseUID: uid})
	}
}

func (h *UserHandler) register(c *gin.Context, req userpkg.RegisterUserRequest) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()
	created, err := h.service.RegisterUser(ctx, req)
	if err != nil {
		if errors.Is(err, userpkg.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to register user", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}
