package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type MaintenanceStatus string

const (
	MaintenanceStatusPending      MaintenanceStatus = "PENDENTE"
	MaintenanceStatusInProgress   MaintenanceStatus = "EM_ANDAMENTO"
	MaintenanceStatusWaitingParts MaintenanceStatus = "AGUARDANDO_PECA"
	MaintenanceStatusDone         MaintenanceStatus = "CONCLUIDO"
	MaintenanceStatusDelivered    MaintenanceStatus = "ENTREGUE"
	MaintenanceStatusCanceled     MaintenanceStatus = "CANCELADO"
)

// maintenanceTransitions lista para quais status cada status pode avançar
var maintenanceTransitions = map[MaintenanceStatus][]MaintenanceStatus{
	MaintenanceStatusPending:      {MaintenanceStatusInProgress, MaintenanceStatusWaitingParts, MaintenanceStatusCanceled},
	MaintenanceStatusInProgress:   {MaintenanceStatusWaitingParts, MaintenanceStatusDone, MaintenanceStatusCanceled},
	MaintenanceStatusWaitingParts: {MaintenanceStatusInProgress, MaintenanceStatusCanceled},
	MaintenanceStatusDone:         {MaintenanceStatusDelivered},
}

func (s MaintenanceStatus) IsValid() bool {
	switch s {
	case MaintenanceStatusPending, MaintenanceStatusInProgress, MaintenanceStatusWaitingParts,
		MaintenanceStatusDone, MaintenanceStatusDelivered, MaintenanceStatusCanceled:
		return true
	}
	return false
}

// CanTransitionTo indica se a ordem de serviço pode ir do status atual para next
func (s MaintenanceStatus) CanTransitionTo(next MaintenanceStatus) bool {
	for _, allowed := range maintenanceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// MaintenanceTicket é uma ordem de serviço de manutenção aberta em uma loja
type MaintenanceTicket struct {
	ID            string              `json:"id"`
	Code          string              `json:"code"`
	CompanyID     string              `json:"company_id"`
	StoreID       string              `json:"store_id"`
	StoreName     string              `json:"store_name,omitempty"`
	CustomerName  string              `json:"customer_name"`
	CustomerPhone string              `json:"customer_phone,omitempty"`
	Device        string              `json:"device"`
	Problem       string              `json:"problem,omitempty"`
	Service       string              `json:"service,omitempty"`
	PaymentMethod *string             `json:"payment_method,omitempty"`
	LaborAmount   decimal.NullDecimal `json:"labor_amount"`   // mão de obra
	PartsAmount   decimal.NullDecimal `json:"parts_amount"`   // valor cobrado pelas peças
	PartsCost     decimal.NullDecimal `json:"parts_cost"`     // custo das peças
	MachineFee    decimal.NullDecimal `json:"machine_fee"`    // taxa da maquininha
	TotalAmount   decimal.Decimal     `json:"total_amount"`   // mão de obra + peças
	NetProfit     decimal.Decimal     `json:"net_profit"`     // total - custo das peças - taxa
	Status        MaintenanceStatus   `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// Recompute atualiza o valor total e o lucro líquido da ordem
func (m *MaintenanceTicket) Recompute() {
	m.TotalAmount = SumAmounts(m.LaborAmount, m.PartsAmount)
	m.NetProfit = m.TotalAmount.Sub(OrZero(m.PartsCost)).Sub(OrZero(m.MachineFee))
}

// Formas de pagamento aceitas nas ordens de serviço
var PaymentMethods = map[string]bool{
	"DINHEIRO":   true,
	"PIX":        true,
	"DEBITO":     true,
	"CREDITO_1X": true,
	"CREDITO_2X": true,
}

type MaintenanceFilter struct {
	CompanyID string
	StoreID   string
	Status    MaintenanceStatus
}
