package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		store      string
		db         Pinger
		wantCode   int
		wantStatus string
		wantDB     string
	}{
		{"memory store", "memory", nil, http.StatusOK, "healthy", "disabled"},
		{"database up", "postgres", pingerFunc(func(context.Context) error { return nil }), http.StatusOK, "healthy", "up"},
		{"database down", "postgres", pingerFunc(func(context.Context) error { return errors.New("refused") }), http.StatusServiceUnavailable, "degraded", "down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(HealthOptions{ServiceName: "ecap-directory", Version: "1.2.3", Store: tt.store, DB: tt.db})
			h.started = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
			h.now = func() time.Time { return h.started.Add(90*time.Second + 300*time.Millisecond) }

			r := gin.New()
			h.RegisterRoutes(r)

			for _, path := range []string{"/health", "/healthz"} {
				rr := httptest.NewRecorder()
				r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
				require.Equal(t, tt.wantCode, rr.Code)

				var resp HealthResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantStatus, resp.Status)
				assert.Equal(t, "ecap-directory", resp.Service)
				assert.Equal(t, "1.2.3", resp.Version)
				assert.Equal(t, tt.store, resp.Store)
				assert.Equal(t, tt.wantDB, resp.DB)
				assert.Equal(t, "1m30s", resp.Uptime)
			}
		})
	}
}
