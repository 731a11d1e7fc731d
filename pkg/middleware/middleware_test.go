package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/internal/usecases/authenticating"
	"github.com/vfg2006/store-finance-api/pkg/apiErrors"
	"github.com/vfg2006/store-finance-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

type fakeAuthenticator struct {
	principal *domain.Principal
	err       error
	token     string
}

func (f *fakeAuthenticator) ValidateToken(tokenString string) (*domain.Claims, error) {
	return nil, nil
}

func (f *fakeAuthenticator) Authenticate(ctx context.Context, tokenString string) (*domain.Principal, error) {
	f.token = tokenString
	return f.principal, f.err
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func TestAuthMiddleware(t *testing.T) {
	principal := &domain.Principal{UserID: "u-1", PrimaryRole: domain.RoleFinance}

	tests := []struct {
		name       string
		path       string
		header     string
		auth       *fakeAuthenticator
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Rota pública não exige token",
			path:       "/healthcheck",
			auth:       &fakeAuthenticator{},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "Sem cabeçalho Authorization",
			path:       "/v1/me",
			auth:       &fakeAuthenticator{},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:       "Cabeçalho sem Bearer",
			path:       "/v1/me",
			header:     "Basic abc",
			auth:       &fakeAuthenticator{},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:   "Perfil desativado",
			path:   "/v1/me",
			header: "Bearer token",
			auth: &fakeAuthenticator{err: authenticating.NewAuthError(
				authenticating.ErrUserDisabled, apiErrors.ErrUserDisabled, "Perfil desativado")},
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrUserDisabled,
		},
		{
			name:       "Token válido",
			path:       "/v1/me",
			header:     "Bearer token",
			auth:       &fakeAuthenticator{principal: principal},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *domain.Principal
			handler := AuthMiddleware(tt.auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = PrincipalFromContext(r.Context())
				okHandler(w, r)
			}))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Contains(t, rec.Body.String(), tt.wantCode)
			}
			if tt.wantStatus == http.StatusNoContent && tt.path != "/healthcheck" {
				assert.Equal(t, principal, got)
				assert.Equal(t, "token", tt.auth.token)
			}
		})
	}
}

func TestAuthMiddleware_LogLevel(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantLevel  logrus.Level
	}{
		{
			name: "Credencial recusada gera aviso",
			err: authenticating.NewAuthError(
				authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, "Sessão expirada"),
			wantStatus: http.StatusUnauthorized,
			wantLevel:  logrus.WarnLevel,
		},
		{
			name: "Falha no banco gera erro",
			err: authenticating.NewUserAuthError(
				authenticating.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "u-1", "Erro ao buscar perfil do usuário"),
			wantStatus: http.StatusInternalServerError,
			wantLevel:  logrus.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hook := test.NewLocal(logrus.StandardLogger())
			defer hook.Reset()

			handler := AuthMiddleware(&fakeAuthenticator{err: tt.err})(http.HandlerFunc(okHandler))
			req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
			req.Header.Set("Authorization", "Bearer token")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, hook.LastEntry())
			assert.Equal(t, tt.wantLevel, hook.LastEntry().Level)
		})
	}
}

func TestRequireView(t *testing.T) {
	handler := RequireView(domain.ViewPayables)(http.HandlerFunc(okHandler))

	t.Run("Sem usuário no contexto", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/payables", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Papel sem acesso à tela", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/payables", nil)
		req = req.WithContext(WithPrincipal(req.Context(), &domain.Principal{PrimaryRole: domain.RoleStore}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrInsufficientPrivilege)
	})

	t.Run("Papel com acesso à tela", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/payables", nil)
		req = req.WithContext(WithPrincipal(req.Context(), &domain.Principal{PrimaryRole: domain.RoleFinance}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodOptions, "/v1/me", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	req.Header.Set("Origin", "http://malicioso.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falha inesperada")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}

func TestLoggingMiddleware_SetsCorrelationID(t *testing.T) {
	handler := LoggingMiddleware()(Metrics("/v1/me")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}
