package usecase

import (
	"context"
	"time"

	"FundLens/internal/analytics"
	"FundLens/internal/dataset"
	"FundLens/internal/domain/models"
	"FundLens/internal/risk"
	xhttp "FundLens/pkg/http"
	applogger "FundLens/pkg/logger"
)

// distributionSampleCap bounds the raw samples returned per frequency.
const distributionSampleCap = 500

// minDistributionPoints is the smallest sample a distribution chart accepts.
const minDistributionPoints = 20

// RiskUseCase builds the risk-monitor table and per-fund return
// distributions.
type RiskUseCase struct {
	store *dataset.Store
	l     *applogger.Logger
}

func NewRiskUseCase(store *dataset.Store) *RiskUseCase {
	return &RiskUseCase{store: store}
}

// SetLogger injects a structured logger.
func (uc *RiskUseCase) SetLogger(l *applogger.Logger) { uc.l = l }

// RiskMonitorEntry is one monitored fund: its metrics plus the derived
// status and color annotations.
type RiskMonitorEntry struct {
	models.FundRiskRecord
	Status risk.FundStatus `json:"status"`
}

// RiskMonitorResult is the full monitor response.
type RiskMonitorResult struct {
	Funds     []RiskMonitorEntry `json:"funds"`
	NotFound  []string           `json:"not_found,omitempty"`
	UpdatedAt string             `json:"updated_at"`
}

// Monitor builds risk records for the requested funds. Unknown names are
// reported in NotFound rather than failing the whole batch.
func (uc *RiskUseCase) Monitor(ctx context.Context, fundNames []string) (*RiskMonitorResult, error) {
	snap := uc.store.Snapshot()
	if snap == nil {
		return nil, xhttp.DataNotLoadedError()
	}

	res := &RiskMonitorResult{
		Funds:     make([]RiskMonitorEntry, 0, len(fundNames)),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	for _, name := range fundNames {
		f, ok := snap.Fund(name)
		if !ok {
			res.NotFound = append(res.NotFound, name)
			continue
		}
		rec := buildRiskRecord(snap, f)
		res.Funds = append(res.Funds, RiskMonitorEntry{
			FundRiskRecord: *rec,
			Status:         risk.ClassifyFund(rec),
		})
	}
	if uc.l != nil {
		uc.l.Debug("risk monitor built",
			applogger.Int("requested", len(fundNames)),
			applogger.Int("resolved", len(res.Funds)),
		)
	}
	return res, nil
}

func buildRiskRecord(snap *dataset.Snapshot, f *models.Fund) *models.FundRiskRecord {
	rec := &models.FundRiskRecord{
		FundName:    f.Name,
		Subcategory: f.Subcategory,
	}
	daily, _ := snap.Returns(f.CNPJStandard)

	for _, freq := range models.Frequencies() {
		series := analytics.ReturnsForFrequency(daily, freq)
		rm := analytics.RiskMetrics(series)
		if rm == nil {
			continue
		}
		metric := frequencyMetric(rm)
		samples := series.Trailing(distributionSampleCap).Values()
		switch freq {
		case models.FrequencyDaily:
			rec.Daily = metric
			rec.DailyReturns = samples
		case models.FrequencyWeekly:
			rec.Weekly = metric
			rec.WeeklyReturns = samples
		case models.FrequencyMonthly:
			rec.Monthly = metric
			rec.MonthlyReturns = samples
		}
	}

	rec.Flows = dataset.FlowMetrics(snap.Details[f.CNPJStandard])
	return rec
}

func frequencyMetric(rm *analytics.RiskMetricsResult) *models.FrequencyMetric {
	ret, var95, var5 := rm.Return, rm.VaR95, rm.VaR5
	cvar95, cvar5, z := rm.CVaR95, rm.CVaR5, rm.ZScore
	return &models.FrequencyMetric{
		ReturnValue: &ret,
		VaR95:       &var95,
		VaR5:        &var5,
		CVaR95:      &cvar95,
		CVaR5:       &cvar5,
		ZScore:      &z,
	}
}

// Distribution builds the return-distribution chart data for one fund and
// frequency: raw samples, a kernel density estimate and the VaR/CVaR bands.
func (uc *RiskUseCase) Distribution(ctx context.Context, req *models.DistributionRequest) (*models.DistributionData, error) {
	snap := uc.store.Snapshot()
	if snap == nil {
		return nil, xhttp.DataNotLoadedError()
	}
	f, ok := snap.Fund(req.FundName)
	if !ok {
		return nil, xhttp.NotFoundErrorf("fund %q not found", req.FundName)
	}
	daily, _ := snap.Returns(f.CNPJStandard)
	series := analytics.ReturnsForFrequency(daily, req.Frequency).Clean()
	if len(series) < minDistributionPoints {
		return nil, xhttp.NotFoundErrorf("fund %q has only %d %s observations, need %d",
			req.FundName, len(series), req.Frequency, minDistributionPoints)
	}

	xs := series.Values()
	grid, density := analytics.KDE(xs)
	if grid == nil {
		return nil, xhttp.NotFoundErrorf("fund %q has a degenerate %s distribution",
			req.FundName, req.Frequency)
	}
	return &models.DistributionData{
		FundName:     req.FundName,
		Frequency:    req.Frequency,
		Returns:      xs,
		KDEX:         grid,
		KDEY:         density,
		VaR95:        analytics.VaR(xs, 0.95),
		VaR5:         analytics.VaRUpper(xs, 0.95),
		CVaR95:       analytics.CVaR(xs, 0.95),
		CVaR5:        analytics.CVaRUpper(xs, 0.95),
		LatestReturn: series.Last(),
	}, nil
}
