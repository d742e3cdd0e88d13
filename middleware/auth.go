package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	authpkg "github.com/mikios34/storefront-backend/auth"
)

// AccessTokenCookie carries the access token for browser pages.
const AccessTokenCookie = "access_token"

// Identity is the authenticated user attached to a request.
type Identity struct {
	UserID uuid.UUID
	Name   string
	Role   string
}

// tokenFromRequest reads a Bearer token, falling back to the access token
// cookie.
func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	if v, err := c.Cookie(AccessTokenCookie); err == nil {
		return v
	}
	return ""
}

// authenticate validates the request token and places claims into context.
func authenticate(c *gin.Context, secret string) bool {
	tokenString := tokenFromRequest(c)
	if tokenString == "" {
		return false
	}
	claims, err := authpkg.ParseAndValidate(secret, tokenString, authpkg.TokenAccess)
	if err != nil {
		return false
	}
	if _, err := uuid.Parse(claims.UserID); err != nil {
		return false
	}
	c.Set("user_id", claims.UserID)
	c.Set("name", claims.Name)
	c.Set("role", claims.Role)
	return true
}

// RequireAuth validates the access token, places claims into context and continues.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, secret) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Next()
	}
}

// RequireLogin is RequireAuth for browser pages: anonymous visitors are
// redirected to loginPath with the current path as destination.
func RequireLogin(secret, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, secret) {
			dest := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(http.StatusSeeOther, loginPath+"?destination="+dest)
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuth attaches the identity when a valid token is present and lets
// anonymous requests through.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticate(c, secret)
		c.Next()
	}
}

// RequireRoles ensures the authenticated principal has one of the allowed roles.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	roleSet := map[string]struct{}{}
	for _, r := range allowedRoles {
		roleSet[r] = struct{}{}
	}
	return func(c *gin.Context) {
		role := c.GetString("role")
		if _, ok := roleSet[role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: insufficient role"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the identity placed into context by the auth
// middleware.
func CurrentUser(c *gin.Context) (Identity, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		return Identity{}, false
	}
	return Identity{UserID: id, Name: c.GetString("name"), Role: c.GetString("role")}, true
}
