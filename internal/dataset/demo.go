package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"FundLens/internal/analytics"
	"FundLens/internal/domain/models"
)

// Demo data shape: mirrors the production files closely enough that every
// endpoint works without external data.
const (
	demoFunds = 50
	demoDays  = 756 // ~3 years of business days
	demoSeed  = 42
)

var demoSubcategories = map[string][]string{
	"Renda Fixa":   {"Pós-Fixado", "Inflação", "Crédito Privado", "Duration"},
	"Multimercado": {"Macro", "Long Short", "Quantitativo", "Livre"},
	"Ações":        {"Long Only", "Small Caps", "Dividendos", "Value"},
	"Cambial":      {"Dólar", "Euro", "Cesta"},
}

var demoCategories = []string{"Renda Fixa", "Multimercado", "Ações", "Cambial"}

var demoLiquidity = []struct {
	label string
	days  int
}{
	{"D+0", 0}, {"D+1", 1}, {"D+5", 5}, {"D+10", 10}, {"D+30", 30}, {"D+60", 60},
}

// DemoSnapshot generates a deterministic synthetic dataset.
func DemoSnapshot() *Snapshot {
	rng := rand.New(rand.NewSource(demoSeed))
	dates := businessDays(demoDays)

	funds := make([]models.Fund, 0, demoFunds)
	details := make(map[string][]models.FundDaily, demoFunds)

	for i := 0; i < demoFunds; i++ {
		category := demoCategories[rng.Intn(len(demoCategories))]
		subs := demoSubcategories[category]
		subcategory := subs[rng.Intn(len(subs))]
		liq := demoLiquidity[rng.Intn(len(demoLiquidity))]

		baseReturn := rng.NormFloat64()*0.08 + 0.12
		vol := math.Abs(rng.NormFloat64()*0.05 + 0.08)
		aum := rng.ExpFloat64() * 500_000_000
		shareholders := 100 + rng.Intn(49_900)
		cnpj := fmt.Sprintf("%014d", 10_000_000_000_000+rng.Int63n(89_999_999_999_999))

		sharpe := 0.0
		if vol > 0 {
			sharpe = baseReturn / vol
		}
		mdd := -rng.ExpFloat64() * 0.08
		inception := dates[0].AddDate(0, 0, -rng.Intn(2000))

		f := models.Fund{
			Name:          fmt.Sprintf("Fundo Demo %03d - %s", i+1, subcategory),
			CNPJ:          cnpj,
			CNPJStandard:  cnpj,
			Category:      category,
			Subcategory:   subcategory,
			AUM:           &aum,
			Shareholders:  &shareholders,
			Liquidity:     liq.label,
			LiquidityDays: intPtr(liq.days),
			InceptionDate: &inception,
			Return12M:     &baseReturn,
			Return24M:     floatPtr(baseReturn*1.8 + rng.NormFloat64()*0.05),
			Return36M:     floatPtr(baseReturn*2.5 + rng.NormFloat64()*0.08),
			Volatility12M: &vol,
			Sharpe12M:     &sharpe,
			MaxDrawdown:   &mdd,
			Excess12M:     floatPtr(baseReturn - 0.10),
			Excess24M:     floatPtr(baseReturn*1.8 - 0.20),
			BestMonth:     floatPtr(math.Abs(rng.NormFloat64()*0.02 + 0.03)),
			WorstMonth:    floatPtr(-math.Abs(rng.NormFloat64()*0.015 + 0.02)),
		}
		funds = append(funds, f)
		details[cnpj] = demoDailyRows(rng, dates, cnpj, aum, shareholders, vol)
	}

	benchmarks := demoBenchmarks(rng, dates)
	return NewSnapshot(funds, details, benchmarks)
}

func demoDailyRows(rng *rand.Rand, dates []time.Time, cnpj string, baseAUM float64, baseShareholders int, annualVol float64) []models.FundDaily {
	dailyVol := annualVol / math.Sqrt(float64(analytics.TradingDaysPerYear))
	rows := make([]models.FundDaily, 0, len(dates))

	quota := 100.0
	aumDrift := 0.0
	shareDrift := 0.0
	for _, d := range dates {
		ret := rng.NormFloat64()*dailyVol + 0.0004
		quota *= math.Exp(ret)
		aumDrift += rng.NormFloat64() * 0.02
		shareDrift += rng.NormFloat64() * 0.01

		shareholders := int(float64(baseShareholders) * (1 + shareDrift))
		if shareholders < 10 {
			shareholders = 10
		}
		rows = append(rows, models.FundDaily{
			Date:         d,
			CNPJStandard: cnpj,
			Quota:        quota,
			Return:       ret,
			AUM:          baseAUM * (1 + aumDrift),
			Shareholders: shareholders,
			Movement:     rng.NormFloat64() * baseAUM * 0.01,
		})
	}
	return rows
}

func demoBenchmarks(rng *rand.Rand, dates []time.Time) map[string]analytics.Series {
	specs := []struct {
		name string
		mean float64
		vol  float64
	}{
		{"CDI", 0.0004, 0.0001},
		{"IBOV", 0.0005, 0.01},
		{"IHFA", 0.00045, 0.004},
	}
	out := make(map[string]analytics.Series, len(specs))
	for _, spec := range specs {
		series := make(analytics.Series, len(dates))
		for i, d := range dates {
			series[i] = analytics.Point{Date: d, Value: rng.NormFloat64()*spec.vol + spec.mean}
		}
		out[spec.name] = series
	}
	return out
}

// businessDays returns the trailing n weekdays ending today.
func businessDays(n int) []time.Time {
	out := make([]time.Time, 0, n)
	d := time.Now().UTC().Truncate(24 * time.Hour)
	for len(out) < n {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			out = append(out, d)
		}
		d = d.AddDate(0, 0, -1)
	}
	// reverse into chronological order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
