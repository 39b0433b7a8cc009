package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FundLens/internal/domain/models"
)

func fp(v float64) *float64 { return &v }

func TestClassifyReturnBoundaries(t *testing.T) {
	var95, var5 := fp(-0.04), fp(0.03)

	assert.Equal(t, StatusBad, ClassifyReturn(fp(-0.04), var95, var5), "exactly var_95 is bad")
	assert.Equal(t, StatusGood, ClassifyReturn(fp(0.03), var95, var5), "exactly var_5 is good")
	assert.Equal(t, StatusNormal, ClassifyReturn(fp(0.0), var95, var5))
	assert.Equal(t, StatusBad, ClassifyReturn(fp(-0.1), var95, var5))
	assert.Equal(t, StatusGood, ClassifyReturn(fp(0.1), var95, var5))
}

func TestClassifyReturnMissingInputs(t *testing.T) {
	assert.Equal(t, StatusNormal, ClassifyReturn(nil, fp(-0.04), fp(0.03)))
	assert.Equal(t, StatusNormal, ClassifyReturn(fp(0.01), nil, fp(0.03)))
	assert.Equal(t, StatusNormal, ClassifyReturn(fp(0.01), fp(-0.04), nil))
	assert.Equal(t, StatusNormal, ClassifyReturn(fp(math.NaN()), fp(-0.04), fp(0.03)))
	assert.Equal(t, StatusNormal, ClassifyMetric(nil))
}

func TestClassifyFlow(t *testing.T) {
	assert.Equal(t, StatusBad, ClassifyFlow(fp(-2.5), 2.5))
	assert.Equal(t, StatusGood, ClassifyFlow(fp(2.5), 2.5))
	assert.Equal(t, StatusNormal, ClassifyFlow(fp(0), 2.5))
	assert.Equal(t, StatusNormal, ClassifyFlow(nil, 2.5))
	assert.Equal(t, StatusNormal, ClassifyFlow(fp(math.NaN()), 2.5))
	assert.Equal(t, StatusBad, ClassifyFlow(fp(-9.1), 7.5))
}

func TestAggregatePrecedenceAllPermutations(t *testing.T) {
	all := []Status{StatusBad, StatusGood, StatusNormal}
	for _, a := range all {
		for _, b := range all {
			for _, c := range all {
				got := Aggregate(a, b, c)
				want := StatusNormal
				if a == StatusGood || b == StatusGood || c == StatusGood {
					want = StatusGood
				}
				if a == StatusBad || b == StatusBad || c == StatusBad {
					want = StatusBad
				}
				assert.Equalf(t, want, got, "aggregate(%s,%s,%s)", a, b, c)
			}
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	assert.Equal(t, StatusNormal, Aggregate())
}

func TestFrequencyThresholds(t *testing.T) {
	assert.Equal(t, 2.5, FrequencyThreshold(models.FrequencyDaily))
	assert.Equal(t, 5.0, FrequencyThreshold(models.FrequencyWeekly))
	assert.Equal(t, 7.5, FrequencyThreshold(models.FrequencyMonthly))
}

func TestClassifyFundEndToEnd(t *testing.T) {
	rec := &models.FundRiskRecord{
		FundName: "Fundo Teste",
		Daily: &models.FrequencyMetric{
			ReturnValue: fp(-0.05),
			VaR95:       fp(-0.04),
			VaR5:        fp(0.03),
		},
		// weekly and monthly absent: no trade history at those horizons
	}

	fs := ClassifyFund(rec)

	require.Equal(t, StatusBad, fs.Returns[models.FrequencyDaily].Status)
	require.Equal(t, StatusNormal, fs.Returns[models.FrequencyWeekly].Status)
	require.Equal(t, StatusNormal, fs.Returns[models.FrequencyMonthly].Status)
	assert.Equal(t, StatusBad, fs.ReturnAggregate)
	assert.Equal(t, StatusNormal, fs.FlowAggregate)

	// absent frequencies render neutral
	assert.Equal(t, NeutralGray.Hex(), fs.Returns[models.FrequencyWeekly].Color)
}

func TestClassifyFundFlows(t *testing.T) {
	rec := &models.FundRiskRecord{
		FundName: "Fundo Fluxo",
		Flows: &models.FlowMetrics{
			DailyTransfersPct:   fp(-3.0), // beyond the 2.5 daily threshold
			WeeklyTransfersPct:  fp(1.0),
			MonthlyTransfersPct: fp(8.0), // beyond the 7.5 monthly threshold
		},
	}

	fs := ClassifyFund(rec)

	assert.Equal(t, StatusBad, fs.Flows[models.FrequencyDaily].Status)
	assert.Equal(t, StatusNormal, fs.Flows[models.FrequencyWeekly].Status)
	assert.Equal(t, StatusGood, fs.Flows[models.FrequencyMonthly].Status)
	assert.Equal(t, StatusBad, fs.FlowAggregate)
}

func TestGlyphs(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range []Status{StatusBad, StatusGood, StatusNormal} {
		g := s.Glyph()
		assert.NotEmpty(t, g)
		assert.False(t, seen[g], "glyphs must be distinct")
		seen[g] = true
	}
}
