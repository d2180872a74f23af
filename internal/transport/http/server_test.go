package httptransport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eats-backend/graph"
	"eats-backend/internal/config"
	"eats-backend/internal/guard"
)

// recordingAuthorizer denies everything and remembers the tokens it saw.
type recordingAuthorizer struct {
	mu     sync.Mutex
	tokens []string
}

func (a *recordingAuthorizer) Authorize(_ context.Context, _ string, token string) guard.Decision {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tokens = append(a.tokens, token)
	return guard.Decision{Outcome: guard.MissingCredential}
}

func (a *recordingAuthorizer) last() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.tokens) == 0 {
		return "<none>"
	}
	return a.tokens[len(a.tokens)-1]
}

func newTestServer(t *testing.T, playground bool) (*Server, *recordingAuthorizer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{ServiceName: "eats-test"}
	cfg.HTTP.Port = "0"
	cfg.HTTP.Playground = playground

	authz := &recordingAuthorizer{}
	schema := graph.NewExecutableSchema(graph.Config{Resolvers: &graph.Resolver{}})
	return New(cfg, zerolog.Nop(), schema, graph.AuthorizeRootFields(authz, zerolog.Nop())), authz
}

func postQuery(t *testing.T, h http.Handler, query string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query":"`+query+`"}`))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGraphQL_TokenReachesGuard(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "bearer", headers: map[string]string{"Authorization": "Bearer abc"}, want: "abc"},
		{name: "bearer lowercase scheme", headers: map[string]string{"Authorization": "bearer abc"}, want: "abc"},
		{name: "legacy header", headers: map[string]string{"x-jwt": "def"}, want: "def"},
		{name: "bearer wins", headers: map[string]string{"Authorization": "Bearer abc", "x-jwt": "def"}, want: "abc"},
		{name: "other scheme falls back", headers: map[string]string{"Authorization": "Basic xyz", "x-jwt": "def"}, want: "def"},
		{name: "empty bearer falls back", headers: map[string]string{"Authorization": "Bearer ", "x-jwt": "def"}, want: "def"},
		{name: "blank bearer falls back", headers: map[string]string{"Authorization": "Bearer    ", "x-jwt": "def"}, want: "def"},
		{name: "anonymous", headers: nil, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, authz := newTestServer(t, false)

			rec := postQuery(t, srv.Handler(), "{ me { id } }", tc.headers)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), "Forbidden resource")
			assert.Equal(t, tc.want, authz.last())
		})
	}
}

func TestGraphQL_PublicFieldSkipsGuard(t *testing.T) {
	srv, authz := newTestServer(t, false)

	rec := postQuery(t, srv.Handler(), "{ __typename }", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"__typename":"Query"}}`, rec.Body.String())
	assert.Equal(t, "<none>", authz.last())
}

func TestRequestID(t *testing.T) {
	srv, _ := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "req-1")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "req-1", rec.Header().Get(requestIDHeader))

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Len(t, rec.Header().Get(requestIDHeader), 36)
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t, false)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"service":"eats-test","status":"healthy"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, false)

	postQuery(t, srv.Handler(), "{ __typename }", nil)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "eats_http_requests_total")
}

func TestPlayground(t *testing.T) {
	srv, _ := newTestServer(t, true)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "GraphQL playground")

	srv, _ = newTestServer(t, false)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv, _ := newTestServer(t, false)
	srv.addr = "127.0.0.1:0"
	srv.shutdownTimeout = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	assert.NoError(t, <-done)
}
