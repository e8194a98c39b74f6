package middleware

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"fintrack-server/src/apperr"
	"fintrack-server/src/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resolverFunc func(ctx context.Context, token string) (*models.User, error)

func (f resolverFunc) Resolve(ctx context.Context, token string) (*models.User, error) {
	return f(ctx, token)
}

type observed struct {
	method, route string
	status        int
}

type recorder struct{ calls []observed }

func (r *recorder) ObserveRequest(method, route string, status int, _ float64) {
	r.calls = append(r.calls, observed{method, route, status})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Bearer   abc  ", "abc", true},
		{"Basic abc", "", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			token, ok := BearerToken(r)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.token, token)
		})
	}
}

func TestJWTAuthMiddleware(t *testing.T) {
	ana := &models.User{ID: "u1", Email: "ana@example.com"}
	resolver := resolverFunc(func(_ context.Context, token string) (*models.User, error) {
		switch token {
		case "good":
			return ana, nil
		case "broken-store":
			return nil, errors.New("connection refused")
		default:
			return nil, fmt.Errorf("%w: invalid token", apperr.ErrUnauthenticated)
		}
	})
	handler := JWTAuthMiddleware(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		require.True(t, ok)
		io.WriteString(w, user.ID)
	}))

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"valid", "Bearer good", http.StatusOK, "u1"},
		{"missing", "", http.StatusUnauthorized, `{"detail":"Not authenticated"}`},
		{"rejected", "Bearer bad", http.StatusUnauthorized, `{"detail":"Invalid token"}`},
		{"store failure", "Bearer broken-store", http.StatusInternalServerError, `{"detail":"internal error"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.body, w.Body.String())
			} else {
				assert.JSONEq(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestUserFromContextEmpty(t *testing.T) {
	_, ok := UserFromContext(context.Background())
	assert.False(t, ok)

	_, ok = UserFromContext(WithUser(context.Background(), nil))
	assert.False(t, ok)
}

func TestCORSMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	t.Run("listed origin", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Origin", "https://app.example")
		w := httptest.NewRecorder()
		CORSMiddleware([]string{"https://app.example"})(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unlisted origin", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Origin", "https://other.example")
		w := httptest.NewRecorder()
		CORSMiddleware([]string{"https://app.example"})(next).ServeHTTP(w, r)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("wildcard preflight", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodOptions, "/", nil)
		r.Header.Set("Origin", "https://any.example")
		w := httptest.NewRecorder()
		CORSMiddleware([]string{"*"})(next).ServeHTTP(w, r)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://any.example", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	})
}

func TestInstrumentRecordsRoutePattern(t *testing.T) {
	rec := &recorder{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	r.Use(Instrument(rec, logger))
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "fine")
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {})
	})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {})

	for _, path := range []string{"/items/42", "/ok", "/api/", "/", "/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, rec.calls, 5)
	assert.Equal(t, observed{http.MethodGet, "/items/{id}", http.StatusNotFound}, rec.calls[0])
	assert.Equal(t, observed{http.MethodGet, "/ok", http.StatusOK}, rec.calls[1])
	assert.Equal(t, observed{http.MethodGet, "/api", http.StatusOK}, rec.calls[2])
	assert.Equal(t, observed{http.MethodGet, "/", http.StatusOK}, rec.calls[3])
	assert.Equal(t, http.StatusNotFound, rec.calls[4].status)
}
