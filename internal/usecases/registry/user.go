package registry

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-finance-api/infrastructure/repository"
	"github.com/vfg2006/store-finance-api/internal/domain"
)

type UserService interface {
	List(ctx context.Context, principal *domain.Principal, companyID string) ([]*domain.Profile, error)
	UpdateLink(ctx context.Context, principal *domain.Principal, req *domain.UpdateProfileRequest) error
	SetActive(ctx context.Context, principal *domain.Principal, userID string, active bool) error
}

type userService struct {
	profileRepo repository.ProfileRepository
	storeRepo   repository.StoreRepository
}

func NewUserService(profileRepo repository.ProfileRepository, storeRepo repository.StoreRepository) UserService {
	return &userService{
		profileRepo: profileRepo,
		storeRepo:   storeRepo,
	}
}

func (s *userService) List(ctx context.Context, principal *domain.Principal, companyID string) ([]*domain.Profile, error) {
	profiles, err := s.profileRepo.List(ctx, principal.ScopeCompany(companyID))
	if err != nil {
		return nil, errDatabase(err, "Erro ao listar usuários")
	}
	return profiles, nil
}

// UpdateLink vincula o usuário a uma empresa e loja. A loja precisa pertencer à empresa informada.
func (s *userService) UpdateLink(ctx context.Context, principal *domain.Principal, req *domain.UpdateProfileRequest) error {
	if req.UserID == "" {
		return errMissingData("Usuário é obrigatório")
	}

	if _, err := s.managedProfile(ctx, principal, req.UserID); err != nil {
		return err
	}

	if req.CompanyID != nil && *req.CompanyID != "" {
		if restriction := principal.CompanyRestriction(); restriction != "" && restriction != *req.CompanyID {
			return errForbiddenCompany(*req.CompanyID)
		}
	}

	if req.StoreID != nil && *req.StoreID != "" {
		store, err := s.storeRepo.GetByID(ctx, *req.StoreID)
		if err != nil {
			return errDatabase(err, "Erro ao buscar loja do usuário")
		}
		if store == nil {
			return errNotFound(*req.StoreID, "Loja não encontrada")
		}
		if req.CompanyID != nil && *req.CompanyID != "" && *req.CompanyID != store.CompanyID {
			return errInvalidFormat("Loja não pertence à empresa informada")
		}
		if restriction := principal.CompanyRestriction(); restriction != "" && restriction != store.CompanyID {
			return errForbiddenCompany(store.CompanyID)
		}
	}

	return s.update(ctx, req)
}

func (s *userService) SetActive(ctx context.Context, principal *domain.Principal, userID string, active bool) error {
	if userID == principal.UserID && !active {
		return errInvalidStatus("Usuário não pode desativar a si mesmo")
	}

	if _, err := s.managedProfile(ctx, principal, userID); err != nil {
		return err
	}

	return s.update(ctx, &domain.UpdateProfileRequest{UserID: userID, Active: &active})
}

// managedProfile busca o perfil garantindo que ele pertence à empresa de quem altera
func (s *userService) managedProfile(ctx context.Context, principal *domain.Principal, userID string) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errDatabase(err, "Erro ao buscar usuário")
	}
	if profile == nil {
		return nil, errNotFound(userID, "Usuário não encontrado")
	}

	restriction := principal.CompanyRestriction()
	if restriction != "" && (profile.CompanyID == nil || *profile.CompanyID != restriction) {
		return nil, errForbiddenCompany(restriction)
	}
	return profile, nil
}

func (s *userService) update(ctx context.Context, req *domain.UpdateProfileRequest) error {
	if err := s.profileRepo.Update(ctx, req); err != nil {
		if domain.IsNotFound(err) {
			return errNotFound(req.UserID, "Usuário não encontrado")
		}
		return errDatabase(err, "Erro ao atualizar usuário")
	}

	logrus.WithField("user_id", req.UserID).Info("Perfil do usuário atualizado")
	return nil
}
