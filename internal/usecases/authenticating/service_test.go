package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-finance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/store-finance-api/internal/config"
	"github.com/vfg2006/store-finance-api/internal/domain"
	errorcodes "github.com/vfg2006/store-finance-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const testSecret = "segredo-de-teste"

func signToken(t *testing.T, secret, subject string, expiresIn time.Duration) string {
	claims := domain.Claims{
		Email: "ana@loja.com",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newTestService(t *testing.T) (Authenticator, *mocks.MockProfileRepository) {
	ctrl := gomock.NewController(t)
	profileRepo := mocks.NewMockProfileRepository(ctrl)
	cfg := &config.Config{Auth: config.Auth{JWTSecret: testSecret}}
	return NewService(profileRepo, cfg), profileRepo
}

func TestService_ValidateToken(t *testing.T) {
	svc, _ := newTestService(t)

	tests := []struct {
		name     string
		token    string
		wantErr  error
		wantCode string
	}{
		{"Token válido", signToken(t, testSecret, "user-1", time.Hour), nil, ""},
		{"Token expirado", signToken(t, testSecret, "user-1", -time.Hour), ErrExpiredToken, errorcodes.ErrExpiredToken},
		{"Assinatura com outro segredo", signToken(t, "outro", "user-1", time.Hour), ErrInvalidToken, errorcodes.ErrInvalidToken},
		{"Token sem sub", signToken(t, testSecret, "", time.Hour), ErrInvalidToken, errorcodes.ErrInvalidToken},
		{"Texto qualquer", "abc.def.ghi", ErrInvalidToken, errorcodes.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "user-1", claims.Subject)
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
			var authErr *AuthError
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, tt.wantCode, authErr.Code)
		})
	}
}

func TestService_Authenticate(t *testing.T) {
	companyID, storeID := "empresa-1", "loja-1"

	t.Run("Perfil ativo com vários papéis", func(t *testing.T) {
		svc, profileRepo := newTestService(t)
		profileRepo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(&domain.Profile{
			UserID:    "user-1",
			Name:      "Ana",
			CompanyID: &companyID,
			StoreID:   &storeID,
			Active:    true,
			Roles:     []domain.Role{domain.RoleHR, domain.RoleStore},
		}, nil)

		principal, err := svc.Authenticate(context.Background(), signToken(t, testSecret, "user-1", time.Hour))
		require.NoError(t, err)
		assert.Equal(t, domain.RoleStore, principal.PrimaryRole)
		assert.Equal(t, "empresa-1", principal.CompanyID)
		assert.Equal(t, "loja-1", principal.StoreID)
		assert.Equal(t, "ana@loja.com", principal.Email)
	})

	t.Run("Perfil desativado", func(t *testing.T) {
		svc, profileRepo := newTestService(t)
		profileRepo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(&domain.Profile{UserID: "user-1"}, nil)

		_, err := svc.Authenticate(context.Background(), signToken(t, testSecret, "user-1", time.Hour))
		assert.ErrorIs(t, err, ErrUserDisabled)
		assert.True(t, IsAuthorizationError(err))
	})

	t.Run("Perfil inexistente", func(t *testing.T) {
		svc, profileRepo := newTestService(t)
		profileRepo.EXPECT().GetByUserID(gomock.Any(), "user-2").Return(nil, nil)

		_, err := svc.Authenticate(context.Background(), signToken(t, testSecret, "user-2", time.Hour))
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Falha no banco", func(t *testing.T) {
		svc, profileRepo := newTestService(t)
		profileRepo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(nil, errors.New("conexão recusada"))

		_, err := svc.Authenticate(context.Background(), signToken(t, testSecret, "user-1", time.Hour))
		assert.ErrorIs(t, err, ErrDatabaseOperation)
		assert.False(t, IsAuthorizationError(err))
	})
}
