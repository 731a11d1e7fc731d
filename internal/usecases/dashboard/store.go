package dashboard

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/pkg/utils"
)

// Períodos aceitos no histórico do painel da loja
var allowedHistoryDays = map[int]bool{7: true, 15: true, 30: true}

var weekdayShort = [...]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"}

// AxisLabel formata o rótulo do eixo do gráfico (ex: seg 03)
func AxisLabel(t time.Time) string {
	return fmt.Sprintf("%s %02d", weekdayShort[t.Weekday()], t.Day())
}

// BuildStore monta o painel da loja no dia today com o histórico dos últimos days dias
func BuildStore(store *domain.Store, today time.Time, days int, goal *domain.Goal, closings []*domain.CashClosing) *domain.StoreDashboard {
	today = utils.StartOfDay(today)
	todayKey := today.Format(utils.DateLayout)

	byDay := make(map[string]decimal.Decimal)
	var registerStatus *domain.CashClosingStatus

	for _, c := range closings {
		key := c.Date.Format(utils.DateLayout)
		byDay[key] = byDay[key].Add(c.Inflow())

		if key == todayKey && registerStatus == nil {
			status := c.Status
			registerStatus = &status
		}
	}

	dailyTarget := decimal.Zero
	if goal != nil {
		dailyTarget = domain.OrZero(goal.DailyTarget)
	}

	todayRevenue := byDay[todayKey]
	remaining := decimal.Max(decimal.Zero, dailyTarget.Sub(todayRevenue))

	dashboard := &domain.StoreDashboard{
		StoreID:           store.ID,
		StoreName:         store.Name,
		Date:              today,
		TodayRevenue:      todayRevenue,
		TodayRevenueLabel: utils.FormatBRL(todayRevenue),
		DailyTarget:       dailyTarget,
		DailyTargetLabel:  utils.FormatBRL(dailyTarget),
		Percentage:        utils.CapPercentage(utils.RoundOneDecimal(utils.Percentage(todayRevenue, dailyTarget))),
		Remaining:         remaining,
		RemainingLabel:    utils.FormatBRL(remaining),
		RegisterStatus:    registerStatus,
		HasGoal:           goal != nil,
		History:           make([]*domain.DailyHistoryPoint, 0, days),
	}

	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		key := day.Format(utils.DateLayout)

		dashboard.History = append(dashboard.History, &domain.DailyHistoryPoint{
			Date:        key,
			Revenue:     byDay[key],
			DailyTarget: dailyTarget,
			AxisLabel:   AxisLabel(day),
			ValueLabel:  utils.FormatBRLShort(byDay[key].InexactFloat64()),
		})
	}

	return dashboard
}
