package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type LedgerDirection string

const (
	DirectionOutflow LedgerDirection = "SAIDA"
	DirectionInflow  LedgerDirection = "ENTRADA"
)

type LedgerStatus string

const (
	LedgerStatusPending  LedgerStatus = "Pendente"
	LedgerStatusPaid     LedgerStatus = "Pago"
	LedgerStatusReceived LedgerStatus = "Recebido"
	LedgerStatusOverdue  LedgerStatus = "Atrasado"
)

// IsSettled indica se o título já foi pago ou recebido
func (s LedgerStatus) IsSettled() bool {
	return s == LedgerStatusPaid || s == LedgerStatusReceived
}

// AllowedFor valida o status para a direção do título.
// Pago só existe em contas a pagar e Recebido só em contas a receber.
func (s LedgerStatus) AllowedFor(direction LedgerDirection) bool {
	switch s {
	case LedgerStatusPending, LedgerStatusOverdue:
		return true
	case LedgerStatusPaid:
		return direction == DirectionOutflow
	case LedgerStatusReceived:
		return direction == DirectionInflow
	}
	return false
}

// LedgerEntry é uma conta a pagar (SAIDA) ou a receber (ENTRADA)
type LedgerEntry struct {
	ID           string              `json:"id"`
	CompanyID    string              `json:"company_id"`
	StoreID      *string             `json:"store_id,omitempty"`
	Direction    LedgerDirection     `json:"direction"`
	Counterparty string              `json:"counterparty"` // fornecedor ou cliente
	Description  string              `json:"description,omitempty"`
	Category     string              `json:"category,omitempty"`
	Amount       decimal.NullDecimal `json:"amount"`
	DueDate      time.Time           `json:"due_date"`
	Status       LedgerStatus        `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type LedgerFilter struct {
	CompanyID string
	StoreID   string
	Status    LedgerStatus
	StartDate *time.Time
	EndDate   *time.Time
}

// TimelineEntry é um título na linha do tempo de conciliação
type TimelineEntry struct {
	*LedgerEntry
	AmountLabel string `json:"amount_label"`
}

// ReconciliationTimeline é a fusão de contas a pagar e a receber ordenada por vencimento
type ReconciliationTimeline struct {
	Entries          []*TimelineEntry `json:"entries"`
	OpenOutflow      decimal.Decimal  `json:"open_outflow"`
	OpenInflow       decimal.Decimal  `json:"open_inflow"`
	OverdueOutflow   decimal.Decimal  `json:"overdue_outflow"`
	OverdueInflow    decimal.Decimal  `json:"overdue_inflow"`
	TotalOutflow     decimal.Decimal  `json:"total_outflow"`
	TotalInflow      decimal.Decimal  `json:"total_inflow"`
	ProjectedBalance decimal.Decimal  `json:"projected_balance"`

	OpenOutflowLabel      string `json:"open_outflow_label"`
	OpenInflowLabel       string `json:"open_inflow_label"`
	ProjectedBalanceLabel string `json:"projected_balance_label"`
}

type ReconciliationStatus string

const (
	ReconciliationStatusPending   ReconciliationStatus = "Pendente"
	ReconciliationStatusChecked   ReconciliationStatus = "Conferido"
	ReconciliationStatusDivergent ReconciliationStatus = "Divergente"
)

func (s ReconciliationStatus) IsValid() bool {
	switch s {
	case ReconciliationStatusPending, ReconciliationStatusChecked, ReconciliationStatusDivergent:
		return true
	}
	return false
}

// StoreReconciliation é a conferência diária de caixa de uma loja
type StoreReconciliation struct {
	ID         string               `json:"id"`
	CompanyID  string               `json:"company_id"`
	StoreID    string               `json:"store_id"`
	StoreName  string               `json:"store_name,omitempty"`
	Date       time.Time            `json:"date"`
	Status     ReconciliationStatus `json:"status"`
	Difference decimal.NullDecimal  `json:"difference"`
	Notes      string               `json:"notes,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

type ReconciliationFilter struct {
	CompanyID string
	StoreID   string
	Status    ReconciliationStatus
	StartDate *time.Time
	EndDate   *time.Time
}
