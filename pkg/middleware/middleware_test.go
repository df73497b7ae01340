package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orbicity/hotel-ops-api/internal/domain"
	"github.com/orbicity/hotel-ops-api/internal/usecases/authenticating"
	"github.com/orbicity/hotel-ops-api/internal/usecases/authenticating/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func contextWithClaims(r *http.Request, claims *domain.Claims) context.Context {
	return context.WithValue(r.Context(), ContextKeyUser, claims)
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name   string
		path   string
		header string
		setup  func(m *mocks.MockAuthenticator)
		status int
	}{
		{
			name:   "healthcheck é público",
			path:   "/healthcheck",
			setup:  func(m *mocks.MockAuthenticator) {},
			status: http.StatusOK,
		},
		{
			name: "sem header",
			path: "/v1/instagram/metrics",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Enabled().Return(true)
			},
			status: http.StatusUnauthorized,
		},
		{
			name:   "sem prefixo Bearer",
			path:   "/v1/instagram/metrics",
			header: "Token abc",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Enabled().Return(true)
			},
			status: http.StatusUnauthorized,
		},
		{
			name:   "token expirado",
			path:   "/v1/instagram/metrics",
			header: "Bearer expired",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Enabled().Return(true)
				m.EXPECT().ValidateToken("expired").Return(nil, authenticating.ErrExpiredToken)
			},
			status: http.StatusUnauthorized,
		},
		{
			name:   "papel sem acesso",
			path:   "/v1/instagram/metrics",
			header: "Bearer anon",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Enabled().Return(true)
				m.EXPECT().ValidateToken("anon").Return(nil, authenticating.ErrInsufficientPrivilege)
			},
			status: http.StatusForbidden,
		},
		{
			name:   "token válido",
			path:   "/v1/instagram/metrics",
			header: "Bearer good",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Enabled().Return(true)
				m.EXPECT().ValidateToken("good").Return(&domain.Claims{Role: authenticating.RoleAuthenticated}, nil)
			},
			status: http.StatusOK,
		},
		{
			name: "autenticação desligada",
			path: "/v1/instagram/metrics",
			setup: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Enabled().Return(false)
			},
			status: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			handler := AuthMiddleware(auth)(Authenticated()(okHandler()))
			if tt.path == "/healthcheck" {
				handler = AuthMiddleware(auth)(okHandler())
			}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	handler := RoleMiddleware([]string{authenticating.RoleService})(okHandler())

	t.Run("sem claims", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/probe/run", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("papel não permitido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/cron/probe/run", nil)
		req = req.WithContext(contextWithClaims(req, &domain.Claims{Role: authenticating.RoleAuthenticated}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("papel permitido", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/cron/probe/run", nil)
		req = req.WithContext(contextWithClaims(req, &domain.Claims{Role: authenticating.RoleService}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCors(t *testing.T) {
	handler := Cors(DefaultAllowedOrigins)(okHandler())

	t.Run("origem permitida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/instagram/metrics", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), DataSourceHeader)
	})

	t.Run("origem desconhecida", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/instagram/metrics", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/instagram/metrics", nil)
		rec := httptest.NewRecorder()
		Cors(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("preflight não deve chegar ao handler")
		})).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LoggingMiddleware()(LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/instagram/metrics", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
	assert.NotEmpty(t, rec.Header().Get(CorrelationHeader))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "500 µs", formatDuration(500_000))
	assert.Equal(t, "12 ms", formatDuration(12_000_000))
	assert.Equal(t, "1.50 s", formatDuration(1_500_000_000))
}
