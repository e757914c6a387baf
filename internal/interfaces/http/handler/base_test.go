package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/finvoice/backend/internal/domain/shared"
	"github.com/finvoice/backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setJWTContext seeds the context keys the JWT middleware would set.
func setJWTContext(c *gin.Context, tenantID, userID uuid.UUID) {
	c.Set(middleware.JWTTenantIDKey, tenantID.String())
	c.Set(middleware.JWTUserIDKey, userID.String())
	c.Set(middleware.JWTUsernameKey, "tester")
}

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestGetRequestID(t *testing.T) {
	t.Run("from context", func(t *testing.T) {
		c, _ := newTestContext(t)
		c.Set("request_id", "ctx-id")
		assert.Equal(t, "ctx-id", getRequestID(c))
	})

	t.Run("from header", func(t *testing.T) {
		c, _ := newTestContext(t)
		c.Request.Header.Set("X-Request-ID", "hdr-id")
		assert.Equal(t, "hdr-id", getRequestID(c))
	})

	t.Run("empty", func(t *testing.T) {
		c, _ := newTestContext(t)
		assert.Empty(t, getRequestID(c))
	})
}

func TestRequireIdentity(t *testing.T) {
	h := &BaseHandler{}

	t.Run("authenticated", func(t *testing.T) {
		c, _ := newTestContext(t)
		tenantID := uuid.New()
		setJWTContext(c, tenantID, uuid.New())

		gotTenant, actor, ok := h.requireIdentity(c)
		assert.True(t, ok)
		assert.Equal(t, tenantID, gotTenant)
		assert.Equal(t, "tester", actor)
	})

	t.Run("missing identity", func(t *testing.T) {
		c, w := newTestContext(t)

		_, _, ok := h.requireIdentity(c)
		assert.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	})

	t.Run("malformed tenant id", func(t *testing.T) {
		c, w := newTestContext(t)
		c.Set(middleware.JWTTenantIDKey, "not-a-uuid")

		_, _, ok := h.requireIdentity(c)
		assert.False(t, ok)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestBindID(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, _ := newTestContext(t)
		id := uuid.New()
		c.Params = gin.Params{{Key: "id", Value: id.String()}}

		got, ok := bindID(c)
		assert.True(t, ok)
		assert.Equal(t, id, got)
	})

	t.Run("invalid", func(t *testing.T) {
		c, _ := newTestContext(t)
		c.Params = gin.Params{{Key: "id", Value: "nope"}}

		_, ok := bindID(c)
		assert.False(t, ok)
	})
}

func TestHandleError(t *testing.T) {
	h := &BaseHandler{}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", shared.NewNotFoundError("invoice"), http.StatusNotFound, "NOT_FOUND"},
		{"validation", shared.NewValidationError("company is required"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"conflict", shared.NewConflictError("already cancelled"), http.StatusConflict, "CONFLICT"},
		{"unknown error", assert.AnError, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(t)
			h.HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantCode)
		})
	}
}

func TestHandleError_OpaqueInternalMessage(t *testing.T) {
	h := &BaseHandler{}
	c, w := newTestContext(t)

	h.HandleError(c, shared.NewInternalError("find invoice", assert.AnError))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "assert.AnError")
}
