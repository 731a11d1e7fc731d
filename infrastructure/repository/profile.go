package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/store-finance-api/infrastructure/database/postgres"
	"github.com/vfg2006/store-finance-api/internal/domain"
)

const (
	profilesTable  = "profiles"
	userRolesTable = "user_roles"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	List(ctx context.Context, companyID string) ([]*domain.Profile, error)
	Update(ctx context.Context, req *domain.UpdateProfileRequest) error
}

type profileRepository struct {
	conn *postgres.Connection
}

func NewProfileRepository(conn *postgres.Connection) ProfileRepository {
	return &profileRepository{
		conn: conn,
	}
}

var profileColumns = []string{
	"p.id", "p.user_id", "p.empresa_id", "p.loja_id", "p.nome", "p.email", "p.ativo",
	"p.avatar_url", "p.cargo", "p.departamento", "p.created_at",
	"COALESCE(ARRAY_AGG(ur.role) FILTER (WHERE ur.role IS NOT NULL), '{}')",
}

func (r *profileRepository) baseQuery() squirrel.SelectBuilder {
	return psql.
		Select(profileColumns...).
		From(profilesTable + " p").
		LeftJoin(userRolesTable + " ur ON ur.user_id = p.user_id").
		GroupBy("p.id")
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	return queryOne(ctx, r.conn, r.baseQuery().Where("p.user_id = ?", userID), scanProfile)
}

func (r *profileRepository) List(ctx context.Context, companyID string) ([]*domain.Profile, error) {
	query := r.baseQuery().OrderBy("p.nome ASC")
	if companyID != "" {
		query = query.Where("p.empresa_id = ?", companyID)
	}
	return queryAll(ctx, r.conn, query, scanProfile)
}

func (r *profileRepository) Update(ctx context.Context, req *domain.UpdateProfileRequest) error {
	query := psql.Update(profilesTable).Where("user_id = ?", req.UserID)

	if req.CompanyID != nil {
		query = query.Set("empresa_id", nullString(req.CompanyID))
	}
	if req.StoreID != nil {
		query = query.Set("loja_id", nullString(req.StoreID))
	}
	if req.Active != nil {
		query = query.Set("ativo", *req.Active)
	}

	affected, err := exec(ctx, r.conn, query)
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanProfile(row scanner) (*domain.Profile, error) {
	profile := &domain.Profile{}
	var (
		companyID, storeID, email       sql.NullString
		avatarURL, jobTitle, department sql.NullString
		roles                           pq.StringArray
	)

	err := row.Scan(
		&profile.ID,
		&profile.UserID,
		&companyID,
		&storeID,
		&profile.Name,
		&email,
		&profile.Active,
		&avatarURL,
		&jobTitle,
		&department,
		&profile.CreatedAt,
		&roles,
	)
	if err != nil {
		return nil, err
	}

	profile.CompanyID = stringPtr(companyID)
	profile.StoreID = stringPtr(storeID)
	profile.Email = stringPtr(email)
	profile.AvatarURL = stringPtr(avatarURL)
	profile.JobTitle = stringPtr(jobTitle)
	profile.Department = stringPtr(department)

	profile.Roles = make([]domain.Role, 0, len(roles))
	for _, role := range roles {
		profile.Roles = append(profile.Roles, domain.Role(role))
	}

	return profile, nil
}
