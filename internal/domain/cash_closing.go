package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CashClosingStatus string

const (
	CashClosingStatusOpen      CashClosingStatus = "Aberto"
	CashClosingStatusClosed    CashClosingStatus = "Fechado"
	CashClosingStatusChecked   CashClosingStatus = "Conferido"
	CashClosingStatusDivergent CashClosingStatus = "Divergente"
)

func (s CashClosingStatus) IsValid() bool {
	switch s {
	case CashClosingStatusOpen, CashClosingStatusClosed, CashClosingStatusChecked, CashClosingStatusDivergent:
		return true
	}
	return false
}

// CashClosing é o fechamento diário de caixa de uma loja
type CashClosing struct {
	ID               string              `json:"id"`
	CompanyID        string              `json:"company_id"`
	StoreID          string              `json:"store_id"`
	StoreName        string              `json:"store_name,omitempty"`
	Date             time.Time           `json:"date"`
	OpeningBalance   decimal.NullDecimal `json:"opening_balance"`
	Cash             decimal.NullDecimal `json:"cash"`
	Pix              decimal.NullDecimal `json:"pix"`
	Card             decimal.NullDecimal `json:"card"`
	Outflows         decimal.NullDecimal `json:"outflows"`
	Supplies         decimal.NullDecimal `json:"supplies"`
	Withdrawals      decimal.NullDecimal `json:"withdrawals"`
	AccessoriesSales decimal.NullDecimal `json:"accessories_sales"`
	Status           CashClosingStatus   `json:"status"`

	// Derivados, sempre recalculados a partir dos componentes
	TotalInflow    decimal.Decimal `json:"total_inflow"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Inflow retorna dinheiro + pix + cartão
func (c *CashClosing) Inflow() decimal.Decimal {
	return SumAmounts(c.Cash, c.Pix, c.Card)
}

// Outflow retorna saídas + sangrias
func (c *CashClosing) Outflow() decimal.Decimal {
	return SumAmounts(c.Outflows, c.Withdrawals)
}

// Balance retorna saldo inicial + entradas + suprimentos - saídas - sangrias
func (c *CashClosing) Balance() decimal.Decimal {
	return OrZero(c.OpeningBalance).
		Add(c.Inflow()).
		Add(OrZero(c.Supplies)).
		Sub(c.Outflow())
}

// Recompute atualiza os campos derivados a partir dos componentes
func (c *CashClosing) Recompute() {
	c.TotalInflow = c.Inflow()
	c.ClosingBalance = c.Balance()
}

type CashClosingFilter struct {
	CompanyID string
	StoreID   string
	StartDate *time.Time
	EndDate   *time.Time
}

// CashClosingTotals agrega os valores de um conjunto de fechamentos
type CashClosingTotals struct {
	StoreID          string          `json:"store_id,omitempty"`
	StoreName        string          `json:"store_name,omitempty"`
	Count            int             `json:"count"`
	OpenRegisters    int             `json:"open_registers"`
	ClosedRegisters  int             `json:"closed_registers"`
	Cash             decimal.Decimal `json:"cash"`
	Pix              decimal.Decimal `json:"pix"`
	Card             decimal.Decimal `json:"card"`
	AccessoriesSales decimal.Decimal `json:"accessories_sales"`
	TotalInflow      decimal.Decimal `json:"total_inflow"`
	TotalOutflow     decimal.Decimal `json:"total_outflow"`
	ClosingBalance   decimal.Decimal `json:"closing_balance"`

	TotalInflowLabel    string `json:"total_inflow_label"`
	TotalOutflowLabel   string `json:"total_outflow_label"`
	ClosingBalanceLabel string `json:"closing_balance_label"`
}

type CashClosingSummary struct {
	Stores []*CashClosingTotals `json:"stores"`
	Total  *CashClosingTotals   `json:"total"`
}
