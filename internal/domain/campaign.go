package domain

import "time"

type CampaignPeriod string

const (
	CampaignPeriodDaily   CampaignPeriod = "DIARIA"
	CampaignPeriodWeekly  CampaignPeriod = "SEMANAL"
	CampaignPeriodMonthly CampaignPeriod = "MENSAL"
)

func (p CampaignPeriod) IsValid() bool {
	switch p {
	case CampaignPeriodDaily, CampaignPeriodWeekly, CampaignPeriodMonthly:
		return true
	}
	return false
}

// Campaign é uma campanha de vendas com meta de quantidade
type Campaign struct {
	ID                string         `json:"id"`
	CompanyID         string         `json:"company_id"`
	StoreID           *string        `json:"store_id,omitempty"`
	Name              string         `json:"name"`
	Period            CampaignPeriod `json:"period"`
	StartDate         time.Time      `json:"start_date"`
	EndDate           time.Time      `json:"end_date"`
	Product           string         `json:"product"`
	TargetQuantity    int            `json:"target_quantity"`
	Progress          int            `json:"progress"`
	Active            bool           `json:"active"`
	Percentage        float64        `json:"percentage"`
	DisplayPercentage float64        `json:"display_percentage"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type CampaignFilter struct {
	CompanyID  string
	StoreID    string
	OnlyActive bool
}
