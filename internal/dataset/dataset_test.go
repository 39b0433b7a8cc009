package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FundLens/internal/domain/models"
)

func TestStandardizeCNPJ(t *testing.T) {
	assert.Equal(t, "12345678000190", StandardizeCNPJ("12.345.678/0001-90"))
	assert.Equal(t, "00000000000042", StandardizeCNPJ("42"))
	assert.Equal(t, "", StandardizeCNPJ(""))
	assert.Equal(t, "", StandardizeCNPJ("n/a"))
}

func dailyRows(n int, shareholderStep int, movement float64) []models.FundDaily {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]models.FundDaily, n)
	for i := 0; i < n; i++ {
		rows[i] = models.FundDaily{
			Date:         start.AddDate(0, 0, i),
			CNPJStandard: "00000000000001",
			AUM:          1_000_000,
			Shareholders: 1000 + i*shareholderStep,
			Movement:     movement,
			Return:       0.001,
		}
	}
	return rows
}

func TestFlowMetricsWindows(t *testing.T) {
	rows := dailyRows(30, 2, 100.0)
	fm := FlowMetrics(rows)
	require.NotNil(t, fm)

	assert.InDelta(t, 100.0, *fm.DailyTransfers, 1e-9)
	assert.InDelta(t, 500.0, *fm.WeeklyTransfers, 1e-9, "5-day sum")
	assert.InDelta(t, 2200.0, *fm.MonthlyTransfers, 1e-9, "22-day sum")

	assert.Equal(t, 2, *fm.DailyInvestors)
	assert.Equal(t, 10, *fm.WeeklyInvestors)
	assert.Equal(t, 44, *fm.MonthlyInvestors)

	// percentage against current AUM
	assert.InDelta(t, 100.0/1_000_000*100, *fm.DailyTransfersPct, 1e-9)
}

func TestFlowMetricsShortHistoryFallback(t *testing.T) {
	rows := dailyRows(3, 1, 50.0)
	fm := FlowMetrics(rows)
	require.NotNil(t, fm)

	// shorter than the weekly window: weekly falls back to daily,
	// monthly falls back to weekly
	assert.Equal(t, *fm.DailyTransfers, *fm.WeeklyTransfers)
	assert.Equal(t, *fm.WeeklyTransfers, *fm.MonthlyTransfers)
	assert.Equal(t, *fm.DailyInvestors, *fm.WeeklyInvestors)
}

func TestFlowMetricsTooShort(t *testing.T) {
	assert.Nil(t, FlowMetrics(dailyRows(1, 0, 0)))
	assert.Nil(t, FlowMetrics(nil))
}

func TestDemoSnapshot(t *testing.T) {
	snap := DemoSnapshot()

	require.Len(t, snap.Funds, demoFunds)
	assert.NotEmpty(t, snap.Categories())
	assert.NotEmpty(t, snap.Benchmarks["CDI"])
	assert.NotEmpty(t, snap.Benchmarks["IBOV"])
	assert.NotEmpty(t, snap.Benchmarks["IHFA"])

	f := snap.Funds[0]
	got, ok := snap.Fund(f.Name)
	require.True(t, ok)
	assert.Equal(t, f.Name, got.Name)

	rets, ok := snap.ReturnsByFundName(f.Name)
	require.True(t, ok)
	assert.Len(t, rets, demoDays)

	subs := snap.Subcategories(f.Category)
	assert.Contains(t, subs, f.Subcategory)
}

func TestSnapshotNames(t *testing.T) {
	snap := DemoSnapshot()

	all := snap.Names("", 10)
	assert.Len(t, all, 10)

	match := snap.Names("demo 001", 50)
	require.NotEmpty(t, match)
	assert.Contains(t, match[0], "Fundo Demo 001")
}

func TestStoreSwapAndClear(t *testing.T) {
	st := NewStore()
	assert.False(t, st.Loaded())
	assert.Nil(t, st.Snapshot())

	st.Swap(DemoSnapshot())
	assert.True(t, st.Loaded())
	require.NotNil(t, st.Snapshot())

	st.Clear()
	assert.False(t, st.Loaded())
}

func TestLoaderCSVRoundtrip(t *testing.T) {
	dir := t.TempDir()

	metrics := filepath.Join(dir, "fund_metrics.csv")
	writeFile(t, metrics,
		"name,cnpj,category,subcategory,aum,shareholders,liquidity,liquidity_days,inception_date,return_12m,return_24m,return_36m,vol_12m,sharpe_12m,max_drawdown,excess_12m,excess_24m,best_month,worst_month\n"+
			"Fundo A,12.345.678/0001-90,Multimercado,Macro,1000000,500,D+5,5,2019-03-01,0.12,0.22,0.35,0.08,1.5,-0.09,0.02,0.02,0.04,-0.03\n"+
			",broken-row-skipped,,,,,,,,,,,,,,,,,\n")

	details := filepath.Join(dir, "fund_details.csv")
	writeFile(t, details,
		"date,cnpj,quota,daily_return,aum,shareholders,movement\n"+
			"2024-01-02,12.345.678/0001-90,100.5,0.005,1000000,500,1500\n"+
			"2024-01-03,12.345.678/0001-90,100.9,0.004,1001000,502,-300\n")

	benchmarks := filepath.Join(dir, "benchmarks.csv")
	writeFile(t, benchmarks,
		"date,CDI,IBOV\n2024-01-02,0.0004,0.01\n2024-01-03,0.0004,-0.004\n")

	l := NewLoader(Paths{FundMetrics: metrics, FundDetails: details, Benchmarks: benchmarks}, nil)
	snap, err := l.Load()
	require.NoError(t, err)

	require.Len(t, snap.Funds, 1)
	f := snap.Funds[0]
	assert.Equal(t, "Fundo A", f.Name)
	assert.Equal(t, "12345678000190", f.CNPJStandard)
	require.NotNil(t, f.InceptionDate)
	require.NotNil(t, f.Sharpe12M)
	assert.InDelta(t, 1.5, *f.Sharpe12M, 1e-12)

	rets, ok := snap.Returns("12345678000190")
	require.True(t, ok)
	require.Len(t, rets, 2)
	assert.InDelta(t, 0.005, rets[0].Value, 1e-12)

	require.Contains(t, snap.Benchmarks, "IBOV")
	assert.Len(t, snap.Benchmarks["IBOV"], 2)
}

func TestLoaderDemoFallback(t *testing.T) {
	l := NewLoader(Paths{}, nil)
	snap, err := l.Load()
	require.NoError(t, err)
	assert.Len(t, snap.Funds, demoFunds)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
