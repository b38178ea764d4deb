package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Madelineqt/clontagram-servidor/internal/logger"
	"github.com/Madelineqt/clontagram-servidor/internal/service"
	"github.com/Madelineqt/clontagram-servidor/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires a full router with permissive mocks: any bearer token
// authenticates as user 42, and post reads return empty lists.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: 42}, nil
		},
	}
	posts := &mockPostService{
		listPostsFn: func(_ context.Context) ([]models.Post, error) {
			return []models.Post{}, nil
		},
		getFeedFn: func(_ context.Context, _ int64, _ string) ([]models.Post, error) {
			return []models.Post{}, nil
		},
	}

	h := NewHandler(&service.Services{AuthService: auth, PostService: posts}, logger.Nop())
	return h.Init()
}

// TestRouter_PublicListing verifies the listing and explore pages need no
// credential.
func TestRouter_PublicListing(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/api/posts", "/api/posts/explore"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "GET %s should be public", path)
	}
}

// TestRouter_AuthBeforeValidation verifies that a request with a malformed
// post id but no credential is rejected for the missing credential: the
// response is 401, never 400.
func TestRouter_AuthBeforeValidation(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/posts/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_ProtectedRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(t)

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/posts/feed"},
		{http.MethodGet, "/api/posts/usuario/4"},
		{http.MethodPost, "/api/posts"},
		{http.MethodPost, "/api/posts/upload"},
	}

	for _, r := range requests {
		req := httptest.NewRequest(r.method, r.path, nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s should require auth", r.method, r.path)
	}
}

func TestRouter_FeedWithToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/feed", nil)
	req.Header.Set("Authorization", "Bearer any.valid.token")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

// TestRouter_TraceIDHeader verifies every response carries a trace id, either
// propagated from the request or freshly generated.
func TestRouter_TraceIDHeader(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))

	req = httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set("X-Trace-ID", "incoming-trace")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "incoming-trace", rec.Header().Get("X-Trace-ID"))
}

// TestRouter_UnsupportedMethodHidden verifies the MethodNotAllowed override:
// an unsupported method on a known path reads as 404, not 405.
func TestRouter_UnsupportedMethodHidden(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/api/posts", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
