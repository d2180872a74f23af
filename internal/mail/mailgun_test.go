package mail

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	mu       sync.Mutex
	path     string
	user     string
	password string
	form     map[string]string
}

func mailgunServer(t *testing.T, status int) (*httptest.Server, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		got.mu.Lock()
		got.path = r.URL.Path
		got.user, got.password, _ = r.BasicAuth()
		got.form = map[string]string{}
		for k := range r.PostForm {
			got.form[k] = r.PostForm.Get(k)
		}
		got.mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"message":"Queued. Thank you."}`))
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func TestNewMailgun_RequiresDomain(t *testing.T) {
	_, err := NewMailgun(Config{APIKey: "key"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSendVerificationEmail(t *testing.T) {
	srv, got := mailgunServer(t, http.StatusOK)
	m, err := NewMailgun(Config{APIKey: "key-123", Domain: "mg.example.com", BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	require.NoError(t, m.SendVerificationEmail(context.Background(), "owner@example.com", "abc-123"))

	got.mu.Lock()
	defer got.mu.Unlock()
	assert.Equal(t, "/mg.example.com/messages", got.path)
	assert.Equal(t, "api", got.user)
	assert.Equal(t, "key-123", got.password)
	assert.Equal(t, "owner@example.com", got.form["to"])
	assert.Equal(t, "Eats <mailgun@mg.example.com>", got.form["from"])
	assert.Equal(t, verifySubject, got.form["subject"])
	assert.Equal(t, verifyTemplate, got.form["template"])
	assert.Equal(t, "abc-123", got.form["v:code"])
	assert.Equal(t, "owner@example.com", got.form["v:username"])
}

func TestSend_Non2xx(t *testing.T) {
	srv, _ := mailgunServer(t, http.StatusUnauthorized)
	m, err := NewMailgun(Config{APIKey: "bad", Domain: "mg.example.com", BaseURL: srv.URL})
	require.NoError(t, err)

	err = m.SendVerificationEmail(context.Background(), "owner@example.com", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestNoop(t *testing.T) {
	assert.NoError(t, NewNoop(zerolog.Nop()).SendVerificationEmail(context.Background(), "a@b.c", "x"))
}
