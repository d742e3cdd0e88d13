package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	authpkg "github.com/mikios34/storefront-backend/auth"
	"github.com/mikios34/storefront-backend/messenger"
	"github.com/mikios34/storefront-backend/middleware"
)

type AuthHandler struct {
	Pages
	service      authpkg.Service
	cookieTTL    time.Duration
	cookieSecure bool
}

func NewAuthHandler(svc authpkg.Service, p Pages, cookieTTL time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Pages: p, service: svc, cookieTTL: cookieTTL, cookieSecure: cookieSecure}
}

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p loginPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		req := authpkg.LoginRequest{Email: strings.TrimSpace(p.Email), Password: p.Password}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		principal, err := h.service.Login(ctx, req)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "login failed", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"principal": principal})
	}
}

type refreshPayload struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Refresh() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p refreshPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		if p.RefreshToken == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "refresh_token is required"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		principal, err := h.service.Refresh(ctx, p.RefreshToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh failed", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"principal": principal})
	}
}

// FirebaseLogin exchanges a verified Firebase ID token for our own tokens.
// RequireFirebaseAuth must run first.
func (h *AuthHandler) FirebaseLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("firebase_uid")
		if uid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "firebase_uid missing in context"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		principal, err := h.service.LoginFirebase(ctx, uid)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "login failed", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"principal": principal})
	}
}

// LoginPage renders the browser login form.
// GET /login
func (h *AuthHandler) LoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.render(c, http.StatusOK, "login.html", "Log in", gin.H{"Destination": safeDestination(c.Query("destination"))})
	}
}

// LoginSubmit checks the credentials, stores the access token in a cookie
// and redirects to the requested destination.
// POST /login
func (h *AuthHandler) LoginSubmit() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.PostForm("email"))
		dest := safeDestination(c.PostForm("destination"))
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		principal, err := h.service.Login(ctx, authpkg.LoginRequest{Email: email, Password: c.PostForm("password")})
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, authpkg.ErrInvalidCredentials) {
				status = http.StatusUnauthorized
			}
			h.addFlash(c, messenger.Message{Type: messenger.TypeError, Text: "Unrecognized email or password."})
			h.render(c, status, "login.html", "Log in", gin.H{"Destination": dest, "Email": email})
			return
		}
		h.setTokenCookie(c, principal.Token, int(h.cookieTTL.Seconds()))
		c.Redirect(http.StatusSeeOther, dest)
	}
}

// Logout clears the access token cookie.
// POST /logout
func (h *AuthHandler) Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.setTokenCookie(c, "", -1)
		c.Redirect(http.StatusSeeOther, "/login")
	}
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// safeDestination keeps redirects on this host.
func safeDestination(dest string) string {
	if !strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "//") || strings.Contains(dest, `\`) {
		return "/"
	}
	return dest
}
