package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type GoalStatus string

const (
	GoalStatusOnTrack  GoalStatus = "on-track"
	GoalStatusWarning  GoalStatus = "warning"
	GoalStatusCritical GoalStatus = "critical"
)

// Goal é a meta mensal de faturamento e lucro de uma loja
type Goal struct {
	ID              string              `json:"id"`
	CompanyID       string              `json:"company_id"`
	StoreID         string              `json:"store_id"`
	StoreName       string              `json:"store_name,omitempty"`
	Month           string              `json:"month"` // Formato yyyy-mm (ex: 2024-01)
	Week            *int                `json:"week,omitempty"`
	TargetRevenue   decimal.NullDecimal `json:"target_revenue"`
	DailyTarget     decimal.NullDecimal `json:"daily_target"`
	TargetProfit    decimal.NullDecimal `json:"target_profit"`
	RealizedRevenue decimal.NullDecimal `json:"realized_revenue"`
	RealizedProfit  decimal.NullDecimal `json:"realized_profit"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// GoalAttainment é o atingimento de uma meta em um período
type GoalAttainment struct {
	GoalID                   string          `json:"goal_id,omitempty"`
	StoreID                  string          `json:"store_id"`
	StoreName                string          `json:"store_name,omitempty"`
	Month                    string          `json:"month"`
	HasGoal                  bool            `json:"has_goal"`
	Message                  string          `json:"message,omitempty"`
	TargetRevenue            decimal.Decimal `json:"target_revenue"`
	RealizedRevenue          decimal.Decimal `json:"realized_revenue"`
	RevenuePercentage        float64         `json:"revenue_percentage"`
	RevenueDisplayPercentage float64         `json:"revenue_display_percentage"`
	TargetProfit             decimal.Decimal `json:"target_profit"`
	RealizedProfit           decimal.Decimal `json:"realized_profit"`
	ProfitPercentage         float64         `json:"profit_percentage"`
	ProfitDisplayPercentage  float64         `json:"profit_display_percentage"`
	Status                   GoalStatus      `json:"status"`
	TargetRevenueLabel       string          `json:"target_revenue_label"`
	RealizedRevenueLabel     string          `json:"realized_revenue_label"`
}

// WeeklyGoal é a meta semanal de faturamento e acessórios de uma loja
type WeeklyGoal struct {
	ID                string              `json:"id"`
	CompanyID         string              `json:"company_id"`
	StoreID           string              `json:"store_id"`
	StoreName         string              `json:"store_name,omitempty"`
	Month             string              `json:"month"`
	Week              int                 `json:"week"`
	TargetRevenue     decimal.NullDecimal `json:"target_revenue"`
	TargetAccessories decimal.NullDecimal `json:"target_accessories"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// WeeklyProgress é o realizado de uma semana calculado a partir dos fechamentos
type WeeklyProgress struct {
	WeeklyGoalID                 string          `json:"weekly_goal_id"`
	StoreID                      string          `json:"store_id"`
	StoreName                    string          `json:"store_name,omitempty"`
	Month                        string          `json:"month"`
	Week                         int             `json:"week"`
	TargetRevenue                decimal.Decimal `json:"target_revenue"`
	RealizedRevenue              decimal.Decimal `json:"realized_revenue"`
	RevenuePercentage            float64         `json:"revenue_percentage"`
	RevenueDisplayPercentage     float64         `json:"revenue_display_percentage"`
	TargetAccessories            decimal.Decimal `json:"target_accessories"`
	RealizedAccessories          decimal.Decimal `json:"realized_accessories"`
	AccessoriesPercentage        float64         `json:"accessories_percentage"`
	AccessoriesDisplayPercentage float64         `json:"accessories_display_percentage"`
	Status                       GoalStatus      `json:"status"`
}

// WeeklyEstimate é a distribuição estimada do realizado mensal em uma semana.
// Não existe valor gravado por semana: o realizado é distribuído a partir da semana 1.
type WeeklyEstimate struct {
	Week              int             `json:"week"`
	Target            decimal.Decimal `json:"target"`
	EstimatedRealized decimal.Decimal `json:"estimated_realized"`
	Percentage        float64         `json:"percentage"`
	Status            GoalStatus      `json:"status"`
	Estimated         bool            `json:"estimated"`
}

type WeeklyAttainment struct {
	StoreID   string            `json:"store_id"`
	StoreName string            `json:"store_name,omitempty"`
	Month     string            `json:"month"`
	Progress  []*WeeklyProgress `json:"progress"`
	Estimates []*WeeklyEstimate `json:"estimates"`
}
