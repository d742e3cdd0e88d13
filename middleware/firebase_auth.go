package middleware

import (
	"context"
	"net/http"
	"strings"

	fbAuth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

// IDTokenVerifier is the part of the Firebase auth client the middleware
// needs. *auth.Client satisfies it.
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbAuth.Token, error)
}

// RequireFirebaseAuth validates a Firebase ID token (Bearer) and sets
// `firebase_uid` and, when the token carries one, `firebase_email` in
// context.
//
//	mw.RequireFirebaseAuth(firebaseAuthClient)
func RequireFirebaseAuth(verifier IDTokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "firebase auth not configured"})
			return
		}

		authHeader := c.GetHeader("Authorization")
		if len(authHeader) <= 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			return
		}

		token, err := verifier.VerifyIDToken(c.Request.Context(), authHeader[7:])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired firebase token"})
			return
		}

		c.Set("firebase_uid", token.UID)
		if email, ok := token.Claims["email"].(string); ok {
			c.Set("firebase_email", email)
		}
		c.Next()
	}
}
