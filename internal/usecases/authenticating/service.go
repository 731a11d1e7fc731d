// Package authenticating valida os tokens emitidos pelo provedor de autenticação
// e monta o usuário autenticado a partir do perfil e dos papéis gravados no banco
package authenticating

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-finance-api/infrastructure/repository"
	"github.com/vfg2006/store-finance-api/internal/config"
	"github.com/vfg2006/store-finance-api/internal/domain"
	errorcodes "github.com/vfg2006/store-finance-api/pkg/apiErrors"
)

type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	Authenticate(ctx context.Context, tokenString string) (*domain.Principal, error)
}

type Service struct {
	profileRepo repository.ProfileRepository
	cfg         *config.Config
}

func NewService(profileRepo repository.ProfileRepository, cfg *config.Config) Authenticator {
	return &Service{
		profileRepo: profileRepo,
		cfg:         cfg,
	}
}

// ValidateToken confere assinatura HS256, expiração e emissor do token
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	options := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.cfg.Auth.Issuer != "" {
		options = append(options, jwt.WithIssuer(s.cfg.Auth.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.JWTSecret), nil
	}, options...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, errorcodes.ErrExpiredToken, "Sessão expirada")
		}
		return nil, NewAuthError(ErrInvalidToken, errorcodes.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, NewAuthError(ErrInvalidToken, errorcodes.ErrInvalidToken, "Token sem usuário")
	}
	return claims, nil
}

// Authenticate valida o token e carrega perfil e papéis do usuário.
// Perfis desativados são recusados.
func (s *Service) Authenticate(ctx context.Context, tokenString string) (*domain.Principal, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	userID := claims.Subject
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Erro ao buscar perfil do usuário")
		return nil, NewUserAuthError(ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, userID, "Erro ao buscar perfil do usuário")
	}
	if profile == nil {
		return nil, NewUserAuthError(ErrUserNotFound, errorcodes.ErrUserNotFound, userID, "Perfil não encontrado")
	}
	if !profile.Active {
		logrus.WithField("user_id", userID).Warn("Tentativa de acesso com perfil desativado")
		return nil, NewUserAuthError(ErrUserDisabled, errorcodes.ErrUserDisabled, userID, "Perfil desativado")
	}

	return PrincipalFromProfile(profile, claims), nil
}

// PrincipalFromProfile monta o usuário autenticado escolhendo o papel de maior prioridade
func PrincipalFromProfile(profile *domain.Profile, claims *domain.Claims) *domain.Principal {
	principal := &domain.Principal{
		UserID:      profile.UserID,
		Name:        profile.Name,
		Roles:       profile.Roles,
		PrimaryRole: domain.PrimaryRole(profile.Roles),
	}

	if profile.Email != nil {
		principal.Email = *profile.Email
	} else if claims != nil {
		principal.Email = claims.Email
	}
	if profile.CompanyID != nil {
		principal.CompanyID = *profile.CompanyID
	}
	if profile.StoreID != nil {
		principal.StoreID = *profile.StoreID
	}

	return principal
}
