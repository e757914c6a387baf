package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finvoice/backend/internal/infrastructure/auth"
	"github.com/finvoice/backend/internal/infrastructure/config"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-for-middleware",
		AccessTokenExpiration:  time.Hour,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "finvoice-test",
	})
}

func issueToken(t *testing.T, svc *auth.JWTService) (string, *auth.Claims) {
	t.Helper()
	pair, err := svc.GenerateTokenPair(auth.GenerateTokenInput{
		TenantID: uuid.New(),
		UserID:   uuid.New(),
		Username: "ravi",
	})
	require.NoError(t, err)
	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	return pair.AccessToken, claims
}

func newAuthTestRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)
	handler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"tenant_id": GetJWTTenantID(c),
			"username":  GetJWTUsername(c),
		})
	}
	r.GET("/api/v1/invoices", handler)
	r.POST("/api/v1/auth/login", handler)
	r.GET("/health", handler)
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	svc := newTestJWTService()

	t.Run("skip paths pass through without a token", func(t *testing.T) {
		r := newAuthTestRouter(JWTAuthMiddleware(svc))
		for _, path := range []string{"/health", "/api/v1/auth/login"} {
			method := http.MethodGet
			if path == "/api/v1/auth/login" {
				method = http.MethodPost
			}
			w := httptest.NewRecorder()
			req := httptest.NewRequest(method, path, nil)
			r.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, path)
		}
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		r := newAuthTestRouter(JWTAuthMiddleware(svc))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/invoices", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		r := newAuthTestRouter(JWTAuthMiddleware(svc))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices", nil)
		req.Header.Set(AuthHeaderKey, "Token abc")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token populates claim context", func(t *testing.T) {
		token, claims := issueToken(t, svc)
		r := newAuthTestRouter(JWTAuthMiddleware(svc))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), claims.TenantID)
		assert.Contains(t, w.Body.String(), "ravi")
	})

	t.Run("token from a different key is rejected", func(t *testing.T) {
		other := auth.NewJWTService(config.JWTConfig{
			Secret:                 "a-different-secret",
			AccessTokenExpiration:  time.Hour,
			RefreshTokenExpiration: 24 * time.Hour,
			Issuer:                 "finvoice-test",
		})
		token, _ := issueToken(t, other)
		r := newAuthTestRouter(JWTAuthMiddleware(svc))
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("revoked JTI is rejected", func(t *testing.T) {
		token, claims := issueToken(t, svc)
		blacklist := auth.NewInMemoryTokenBlacklist()
		require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Hour))

		cfg := DefaultJWTConfig(svc)
		cfg.TokenBlacklist = blacklist
		r := newAuthTestRouter(JWTAuthMiddlewareWithConfig(cfg))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "revoked")
	})

	t.Run("user-wide invalidation rejects earlier tokens", func(t *testing.T) {
		token, claims := issueToken(t, svc)
		blacklist := auth.NewInMemoryTokenBlacklist()
		// Invalidation timestamp lands after the token's issued-at.
		time.Sleep(10 * time.Millisecond)
		require.NoError(t, blacklist.AddUserTokensToBlacklist(context.Background(), claims.UserID, time.Hour))

		cfg := DefaultJWTConfig(svc)
		cfg.TokenBlacklist = blacklist
		r := newAuthTestRouter(JWTAuthMiddlewareWithConfig(cfg))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
