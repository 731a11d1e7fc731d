package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Profile é o perfil do usuário mantido pelo provedor de autenticação
type Profile struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	CompanyID  *string   `json:"company_id"`
	StoreID    *string   `json:"store_id"`
	Name       string    `json:"name"`
	Email      *string   `json:"email"`
	Active     bool      `json:"active"`
	AvatarURL  *string   `json:"avatar_url,omitempty"`
	JobTitle   *string   `json:"job_title,omitempty"`
	Department *string   `json:"department,omitempty"`
	Roles      []Role    `json:"roles"`
	CreatedAt  time.Time `json:"created_at"`
}

type UpdateProfileRequest struct {
	UserID    string  `json:"user_id"`
	CompanyID *string `json:"company_id"`
	StoreID   *string `json:"store_id"`
	Active    *bool   `json:"active"`
}

// Claims são as claims do token emitido pelo provedor de autenticação
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Principal é o usuário autenticado da requisição
type Principal struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	CompanyID   string `json:"company_id"`
	StoreID     string `json:"store_id"`
	Roles       []Role `json:"roles"`
	PrimaryRole Role   `json:"primary_role"`
}

// IsStoreUser indica se o usuário só enxerga a própria loja
func (p *Principal) IsStoreUser() bool {
	return p.PrimaryRole == RoleStore
}

// ScopeStore retorna a loja efetiva de uma consulta: usuários de loja sempre
// ficam restritos à própria loja, os demais usam a loja pedida.
// Retorna false para usuário de loja sem loja vinculada.
func (p *Principal) ScopeStore(requested string) (string, bool) {
	if p.IsStoreUser() {
		return p.StoreID, p.StoreID != ""
	}
	return requested, true
}

// ScopeCompany retorna a empresa efetiva de uma consulta: apenas administradores
// podem consultar outra empresa além da própria.
func (p *Principal) ScopeCompany(requested string) string {
	if p.PrimaryRole == RoleAdmin && requested != "" {
		return requested
	}
	return p.CompanyID
}

// CanWriteStore indica se o usuário pode alterar dados da loja
func (p *Principal) CanWriteStore(storeID string) bool {
	if p.IsStoreUser() {
		return p.StoreID != "" && p.StoreID == storeID
	}
	return true
}

// CanWrite indica se o usuário pode alterar um registro da empresa e loja informadas
func (p *Principal) CanWrite(companyID, storeID string) bool {
	if p.PrimaryRole != RoleAdmin && companyID != p.CompanyID {
		return false
	}
	return p.CanWriteStore(storeID)
}

// CompanyRestriction retorna a empresa que limita as alterações do usuário,
// vazia para administradores
func (p *Principal) CompanyRestriction() string {
	if p.PrimaryRole == RoleAdmin {
		return ""
	}
	return p.CompanyID
}
