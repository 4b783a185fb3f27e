package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BapiMajumder1402/depoy-blog/internal/userservice"
)

func newTestApplication() *application {
	return &application{
		config: &Config{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestRecoverPanic(t *testing.T) {
	app := newTestApplication()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong")
	})

	middleware := app.recoverPanic(handler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()

	middleware.ServeHTTP(res, req)

	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Equal(t, "close", res.Header().Get("Connection"))
}

func TestRateLimit(t *testing.T) {
	app := newTestApplication()
	app.config.Limiter.RPS = 2
	app.config.Limiter.Burst = 4
	app.config.Limiter.Enabled = true

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := app.rateLimit(handler)

	server := httptest.NewServer(middleware)
	defer server.Close()

	tests := []struct {
		name           string
		requests       int
		expectedStatus int
	}{
		{
			name:           "Within Limit",
			requests:       4,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Over Limit",
			requests:       6,
			expectedStatus: http.StatusTooManyRequests,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lastStatusCode int

			for i := 0; i < tt.requests; i++ {
				res, err := http.Get(server.URL)
				assert.NoError(t, err)
				res.Body.Close()

				lastStatusCode = res.StatusCode
			}

			assert.Equal(t, tt.expectedStatus, lastStatusCode)
		})
	}
}

func TestRateLimitDisabled(t *testing.T) {
	app := newTestApplication()
	app.config.Limiter.RPS = 1
	app.config.Limiter.Burst = 1
	app.config.Limiter.Enabled = false

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := app.rateLimit(handler)

	server := httptest.NewServer(middleware)
	defer server.Close()

	for i := 0; i < 10; i++ {
		res, err := http.Get(server.URL)
		assert.NoError(t, err)
		res.Body.Close()

		assert.Equal(t, http.StatusOK, res.StatusCode)
	}
}

func TestRequireAuthUser(t *testing.T) {
	app := newTestApplication()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := app.requireAuthUser(handler)

	tests := []struct {
		name           string
		user           *userservice.User
		expectedStatus int
	}{
		{
			name:           "No User Context",
			user:           nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Anonymous User",
			user:           &userservice.AnonymousUser,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Authenticated User",
			user:           &userservice.User{ID: 1, Username: "testuser"},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.user != nil {
				req = app.createUserContext(req, tt.user)
			}

			res := httptest.NewRecorder()

			middleware.ServeHTTP(res, req)

			assert.Equal(t, tt.expectedStatus, res.Code)
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	app := newTestApplication()

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{
			name:     "Valid Bearer Header",
			header:   "Bearer ABCDEFGHIJKLMNOPQRSTUVWXYZ",
			expected: "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		},
		{
			name:     "Wrong Scheme",
			header:   "Basic ABCDEFGHIJKLMNOPQRSTUVWXYZ",
			expected: "",
		},
		{
			name:     "Missing Token",
			header:   "Bearer",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, app.extractTokenFromHeader(tt.header))
		})
	}
}
