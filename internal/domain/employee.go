package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID        string              `json:"id"`
	CompanyID string              `json:"company_id"`
	StoreID   *string             `json:"store_id,omitempty"`
	StoreName string              `json:"store_name,omitempty"`
	Name      string              `json:"name"`
	Role      string              `json:"role"`
	Salary    decimal.NullDecimal `json:"salary"`
	Allowance decimal.NullDecimal `json:"allowance"` // ajuda de custo
	Transport decimal.NullDecimal `json:"transport"` // passagem
	HiredAt   *time.Time          `json:"hired_at,omitempty"`
	Active    bool                `json:"active"`
	CreatedAt time.Time           `json:"created_at"`
}

// MonthlyCost retorna salário + ajuda de custo + passagem
func (e *Employee) MonthlyCost() decimal.Decimal {
	return SumAmounts(e.Salary, e.Allowance, e.Transport)
}

type EmployeeFilter struct {
	CompanyID  string
	StoreID    string
	OnlyActive bool
}

type PayrollSummary struct {
	Employees  int             `json:"employees"`
	Salaries   decimal.Decimal `json:"salaries"`
	Allowances decimal.Decimal `json:"allowances"`
	Transport  decimal.Decimal `json:"transport"`
	Total      decimal.Decimal `json:"total"`
	TotalLabel string          `json:"total_label"`
}
