package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AuditStatus string

const (
	AuditStatusOpen     AuditStatus = "ABERTA"
	AuditStatusAnalysis AuditStatus = "EM_ANALISE"
	AuditStatusResolved AuditStatus = "RESOLVIDA"
)

func (s AuditStatus) IsValid() bool {
	switch s {
	case AuditStatusOpen, AuditStatusAnalysis, AuditStatusResolved:
		return true
	}
	return false
}

// Filtros aceitos pela listagem de auditorias
const (
	AuditFilterAll      = "todos"
	AuditFilterOpen     = "aberto"
	AuditFilterResolved = "concluido"
)

// AuditOccurrence é uma ocorrência registrada pela auditoria em uma loja
type AuditOccurrence struct {
	ID             string              `json:"id"`
	Code           string              `json:"code"`
	CompanyID      string              `json:"company_id"`
	StoreID        string              `json:"store_id"`
	StoreName      string              `json:"store_name,omitempty"`
	Date           time.Time           `json:"date"`
	Type           string              `json:"type"`
	Description    string              `json:"description"`
	ImpactedAmount decimal.NullDecimal `json:"impacted_amount"`
	Status         AuditStatus         `json:"status"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

type AuditFilter struct {
	CompanyID string
	StoreID   string
	Statuses  []AuditStatus
	StartDate *time.Time
	EndDate   *time.Time
}

type AuditSummary struct {
	Open          int             `json:"open"`
	InAnalysis    int             `json:"in_analysis"`
	Resolved      int             `json:"resolved"`
	ImpactedTotal decimal.Decimal `json:"impacted_total"`
	ImpactedLabel string          `json:"impacted_label"`
}
