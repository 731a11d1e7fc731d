package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Semaphore string

const (
	SemaphoreGreen  Semaphore = "verde"
	SemaphoreYellow Semaphore = "amarelo"
	SemaphoreRed    Semaphore = "vermelho"
)

type StoreRankingResponse struct {
	Month      string              `json:"month"`
	Ranking    []*StoreRankingItem `json:"ranking"`
	LastUpdate time.Time           `json:"last_update"`
}

// StoreRankingItem é a posição de uma loja no ranking de faturamento do mês
type StoreRankingItem struct {
	ID               int             `json:"id,omitempty"`
	CompanyID        string          `json:"company_id"`
	StoreID          string          `json:"store_id"`
	StoreName        string          `json:"store_name"`
	Month            string          `json:"month"` // Formato yyyy-mm (ex: 2024-01)
	Revenue          decimal.Decimal `json:"revenue"`
	RevenueLabel     string          `json:"revenue_label"`
	Target           decimal.Decimal `json:"target"`
	Percentage       float64         `json:"percentage"`
	HasGoal          bool            `json:"has_goal"`
	Divergent        bool            `json:"divergent"`
	Semaphore        Semaphore       `json:"semaphore"`
	Position         int             `json:"position"`
	PositionChange   int             `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int             `json:"previous_position"`
	CreatedAt        time.Time       `json:"created_at,omitempty"`
	UpdatedAt        time.Time       `json:"updated_at,omitempty"`
}
