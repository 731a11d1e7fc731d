package domain

import "github.com/shopspring/decimal"

// Categorias usadas pelo histórico de DRE
const (
	DRECategoryRevenue     = "Receita Bruta"
	DRECategoryNetProfit   = "Lucro Líquido"
	DRECategoryNetResult   = "Resultado Líquido"
	DRECategoryOperational = "Despesas Operacionais"
	DRECategoryCMV         = "Custo CMV"

	DREPlanningRevenue = "RECEITA"
	DREPlanningExpense = "DESPESA"

	DREHeadquarters = "Matriz"
)

// DREEntry é uma linha do histórico da demonstração de resultado
type DREEntry struct {
	ID          string              `json:"id"`
	CompanyID   string              `json:"company_id"`
	Year        int                 `json:"year"`
	Month       int                 `json:"month"`
	Category    string              `json:"category"`
	Subcategory string              `json:"subcategory,omitempty"`
	StoreName   string              `json:"store_name,omitempty"`
	Amount      decimal.NullDecimal `json:"amount"`
}

type DREFilter struct {
	CompanyID string
	Year      int
	StoreName string
}

type DREStoreRevenue struct {
	StoreName    string          `json:"store_name"`
	Revenue      decimal.Decimal `json:"revenue"`
	RevenueLabel string          `json:"revenue_label"`
}

type DREMonth struct {
	Month    int             `json:"month"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// BoardKPIs são os indicadores do painel da diretoria
type BoardKPIs struct {
	Year           int                `json:"year"`
	Revenue        decimal.Decimal    `json:"revenue"`
	NetProfit      decimal.Decimal    `json:"net_profit"`
	Margin         float64            `json:"margin"`
	RevenueLabel   string             `json:"revenue_label"`
	NetProfitLabel string             `json:"net_profit_label"`
	StoreRanking   []*DREStoreRevenue `json:"store_ranking"`
	Evolution      []*DREMonth        `json:"evolution"`
}

type PlanningMonth struct {
	Month    int             `json:"month"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

type Planning struct {
	Year          int              `json:"year"`
	StoreName     string           `json:"store_name,omitempty"`
	Months        []*PlanningMonth `json:"months"`
	TotalRevenue  decimal.Decimal  `json:"total_revenue"`
	TotalExpenses decimal.Decimal  `json:"total_expenses"`
	TotalProfit   decimal.Decimal  `json:"total_profit"`
	Margin        float64          `json:"margin"`
}
