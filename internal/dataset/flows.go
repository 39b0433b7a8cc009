package dataset

import "FundLens/internal/domain/models"

// Flow window sizes in trading days.
const (
	weeklyFlowWindow  = 5
	monthlyFlowWindow = 22
)

// FlowMetrics derives net-new-money and shareholder-change metrics from a
// fund's daily rows. Rows must be date-ordered. Windows that exceed the
// available history fall back to the next shorter horizon, matching how the
// dashboard treats young funds. Returns nil with fewer than 2 rows.
func FlowMetrics(rows []models.FundDaily) *models.FlowMetrics {
	if len(rows) < 2 {
		return nil
	}
	last := rows[len(rows)-1]

	currentAUM := last.AUM
	currentShareholders := last.Shareholders

	dailyTransfers := last.Movement
	dailyInvestors := last.Shareholders - rows[len(rows)-2].Shareholders

	weeklyTransfers := dailyTransfers
	if len(rows) >= weeklyFlowWindow {
		weeklyTransfers = sumMovement(rows, weeklyFlowWindow)
	}
	weeklyInvestors := dailyInvestors
	if len(rows) >= weeklyFlowWindow+1 {
		weeklyInvestors = last.Shareholders - rows[len(rows)-1-weeklyFlowWindow].Shareholders
	}

	monthlyTransfers := weeklyTransfers
	if len(rows) >= monthlyFlowWindow {
		monthlyTransfers = sumMovement(rows, monthlyFlowWindow)
	}
	monthlyInvestors := weeklyInvestors
	if len(rows) >= monthlyFlowWindow+1 {
		monthlyInvestors = last.Shareholders - rows[len(rows)-1-monthlyFlowWindow].Shareholders
	}

	return &models.FlowMetrics{
		AUM:          &currentAUM,
		Shareholders: &currentShareholders,

		DailyTransfers:    &dailyTransfers,
		DailyTransfersPct: safePct(dailyTransfers, currentAUM),
		DailyInvestors:    &dailyInvestors,
		DailyInvestorsPct: safePct(float64(dailyInvestors), float64(currentShareholders)),

		WeeklyTransfers:    &weeklyTransfers,
		WeeklyTransfersPct: safePct(weeklyTransfers, currentAUM),
		WeeklyInvestors:    &weeklyInvestors,
		WeeklyInvestorsPct: safePct(float64(weeklyInvestors), float64(currentShareholders)),

		MonthlyTransfers:    &monthlyTransfers,
		MonthlyTransfersPct: safePct(monthlyTransfers, currentAUM),
		MonthlyInvestors:    &monthlyInvestors,
		MonthlyInvestorsPct: safePct(float64(monthlyInvestors), float64(currentShareholders)),
	}
}

func sumMovement(rows []models.FundDaily, window int) float64 {
	sum := 0.0
	for _, r := range rows[len(rows)-window:] {
		sum += r.Movement
	}
	return sum
}

// safePct expresses value as a percentage of base, zero when the base is
// missing. The zero (rather than nil) fallback mirrors the upstream pipeline.
func safePct(value, base float64) *float64 {
	pct := 0.0
	if base != 0 {
		pct = value / base * 100
	}
	return &pct
}
