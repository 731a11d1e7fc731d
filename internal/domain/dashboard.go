package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdminDashboard é o painel macro da empresa no mês
type AdminDashboard struct {
	Month                 string              `json:"month"`
	ActiveStores          int                 `json:"active_stores"`
	ActiveEmployees       int                 `json:"active_employees"`
	Revenue               decimal.Decimal     `json:"revenue"`
	RevenueLabel          string              `json:"revenue_label"`
	Delinquency           decimal.Decimal     `json:"delinquency"`
	DelinquencyLabel      string              `json:"delinquency_label"`
	OpenPayables          decimal.Decimal     `json:"open_payables"`
	OpenPayablesLabel     string              `json:"open_payables_label"`
	OpenReceivables       decimal.Decimal     `json:"open_receivables"`
	OpenReceivablesLabel  string              `json:"open_receivables_label"`
	PendingAudits         int                 `json:"pending_audits"`
	ActiveCampaigns       int                 `json:"active_campaigns"`
	AverageAttainment     float64             `json:"average_attainment"`
	Divergences           int                 `json:"divergences"`
	Payroll               decimal.Decimal     `json:"payroll"`
	PayrollLabel          string              `json:"payroll_label"`
	OpenRegisters         int                 `json:"open_registers"`
	ClosedRegisters       int                 `json:"closed_registers"`
	Ranking               []*StoreRankingItem `json:"ranking"`
	Semaphore             map[Semaphore]int   `json:"semaphore"`
	ProjectedBalance      decimal.Decimal     `json:"projected_balance"`
	ProjectedBalanceLabel string              `json:"projected_balance_label"`
}

type DailyHistoryPoint struct {
	Date        string          `json:"date"` // Formato yyyy-mm-dd
	Revenue     decimal.Decimal `json:"revenue"`
	DailyTarget decimal.Decimal `json:"daily_target"`
	AxisLabel   string          `json:"axis_label"`
	ValueLabel  string          `json:"value_label"` // Rótulo curto do faturamento (ex: R$ 1.5k)
}

// StoreDashboard é o painel do dia de uma loja
type StoreDashboard struct {
	StoreID           string               `json:"store_id"`
	StoreName         string               `json:"store_name"`
	Date              time.Time            `json:"date"`
	TodayRevenue      decimal.Decimal      `json:"today_revenue"`
	TodayRevenueLabel string               `json:"today_revenue_label"`
	DailyTarget       decimal.Decimal      `json:"daily_target"`
	DailyTargetLabel  string               `json:"daily_target_label"`
	Percentage        float64              `json:"percentage"` // limitado a 100
	Remaining         decimal.Decimal      `json:"remaining"`
	RemainingLabel    string               `json:"remaining_label"`
	RegisterStatus    *CashClosingStatus   `json:"register_status"`
	HasGoal           bool                 `json:"has_goal"`
	History           []*DailyHistoryPoint `json:"history"`
}
