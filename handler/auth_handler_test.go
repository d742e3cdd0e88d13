package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	fbAuth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	authpkg "github.com/mikios34/storefront-backend/auth"
	"github.com/mikios34/storefront-backend/messenger"
	"github.com/mikios34/storefront-backend/middleware"
	"github.com/mikios34/storefront-backend/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAuth struct{}

func (fakeAuth) Login(_ context.Context, req authpkg.LoginRequest) (*authpkg.Principal, error) {
	if req.Email == "alice@example.com" && req.Password == "correct horse" {
		return &authpkg.Principal{UserID: "u1", Name: "alice", Role: "customer", Token: "access-token", RefreshToken: "refresh-token"}, nil
	}
	return nil, authpkg.ErrInvalidCredentials
}

func (fakeAuth) LoginFirebase(_ context.Context, uid string) (*authpkg.Principal, error) {
	if uid == "fb-123" {
		return &authpkg.Principal{UserID: "u2", Name: "fb", Role: "admin", Token: "fb-access-token"}, nil
	}
	return nil, authpkg.ErrInvalidCredentials
}

func (fakeAuth) Refresh(_ context.Context, token string) (*authpkg.Principal, error) {
	if token == "refresh-token" {
		return &authpkg.Principal{UserID: "u1", Token: "new-access"}, nil
	}
	return nil, authpkg.ErrInvalidCredentials
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(fakeAuth{}, NewPages(messenger.NewMemoryStore(), zap.NewNop()), 15*time.Minute, false)
	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	r.Use(middleware.Session(false))
	r.POST("/api/v1/auth/login", h.Login())
	r.POST("/api/v1/auth/refresh", h.Refresh())
	r.POST("/api/v1/auth/firebase", middleware.RequireFirebaseAuth(fakeVerifier{}), h.FirebaseLogin())
	r.GET("/login", h.LoginPage())
	r.POST("/login", h.LoginSubmit())
	r.POST("/logout", h.Logout())
	return r
}

func TestLoginJSON(t *testing.T) {
	r := newAuthRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"alice@example.com","password":"correct horse"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"access-token"`)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", strings.NewReader(`{"refresh_token":"bogus"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

type fakeVerifier struct{}

func (fakeVerifier) VerifyIDToken(_ context.Context, idToken string) (*fbAuth.Token, error) {
	if idToken != "good" {
		return nil, errors.New("bad token")
	}
	return &fbAuth.Token{UID: "fb-123", Claims: map[string]interface{}{"email": "fb@example.com"}}, nil
}

func TestLoginJSON_RejectsFirebaseUID(t *testing.T) {
	r := newAuthRouter()

	for _, body := range []string{
		`{"firebase_uid":"fb-123"}`,
		`{"email":"fb@example.com","firebase_uid":"fb-123"}`,
		`{"email":"not-an-email","password":"correct horse"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.NotContains(t, w.Body.String(), "fb-access-token", body)
	}
}

func TestFirebaseLogin(t *testing.T) {
	r := newAuthRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/firebase", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token":"fb-access-token"`)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/firebase", nil)
	req.Header.Set("Authorization", "Bearer forged")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginSubmit(t *testing.T) {
	r := newAuthRouter()

	form := url.Values{"email": {"alice@example.com"}, "password": {"correct horse"}, "destination": {"/products/1/buy"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/products/1/buy", w.Header().Get("Location"))

	var token string
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.AccessTokenCookie {
			token = ck.Value
			assert.True(t, ck.HttpOnly)
		}
	}
	assert.Equal(t, "access-token", token)

	form.Set("password", "wrong")
	req = httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unrecognized email or password.")
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newAuthRouter()
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusSeeOther, w.Code)
	found := false
	for _, ck := range w.Result().Cookies() {
		if ck.Name == middleware.AccessTokenCookie {
			found = true
			assert.Empty(t, ck.Value)
			assert.Less(t, ck.MaxAge, 0)
		}
	}
	assert.True(t, found)
}
