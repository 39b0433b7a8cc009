package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"FundLens/internal/analytics"
	"FundLens/internal/domain/models"
	applogger "FundLens/pkg/logger"
	pkgmetrics "FundLens/pkg/metrics"
	"FundLens/pkg/util"
)

// Paths points the loader at the three data files. Empty paths switch the
// loader to generated demo data.
type Paths struct {
	FundMetrics string
	FundDetails string
	Benchmarks  string
}

// Loader builds snapshots from CSV files or the demo generator.
type Loader struct {
	paths Paths
	log   *applogger.Logger
	rec   *pkgmetrics.Recorder
}

// NewLoader creates a loader.
func NewLoader(paths Paths, log *applogger.Logger) *Loader {
	return &Loader{paths: paths, log: log}
}

// SetRecorder injects a metrics recorder.
func (l *Loader) SetRecorder(rec *pkgmetrics.Recorder) { l.rec = rec }

// Load reads all data sources and assembles a snapshot. When no file paths
// are configured it falls back to seeded demo data.
func (l *Loader) Load() (*Snapshot, error) {
	start := time.Now()
	if l.paths.FundMetrics == "" {
		if l.log != nil {
			l.log.Warn("no data files configured, generating demo data")
		}
		snap := DemoSnapshot()
		l.record("demo", snap, start)
		return snap, nil
	}

	funds, err := l.loadFundMetrics(l.paths.FundMetrics)
	if err != nil {
		l.recordError("fund_metrics")
		return nil, fmt.Errorf("load fund metrics: %w", err)
	}

	details, err := l.loadFundDetails(l.paths.FundDetails)
	if err != nil {
		l.recordError("fund_details")
		return nil, fmt.Errorf("load fund details: %w", err)
	}

	benchmarks, err := l.loadBenchmarks(l.paths.Benchmarks)
	if err != nil {
		l.recordError("benchmarks")
		return nil, fmt.Errorf("load benchmarks: %w", err)
	}

	if l.log != nil {
		l.log.Info("data loaded",
			applogger.Int("funds", len(funds)),
			applogger.Int("detail_series", len(details)),
			applogger.Int("benchmarks", len(benchmarks)),
		)
	}
	snap := NewSnapshot(funds, details, benchmarks)
	l.record("csv", snap, start)
	return snap, nil
}

func (l *Loader) record(source string, snap *Snapshot, start time.Time) {
	if l.rec == nil {
		return
	}
	l.rec.RecordLoad(source)
	l.rec.RecordLatency("data_load", time.Since(start).Seconds())
	l.rec.RecordRows("funds", len(snap.Funds))
	l.rec.RecordRows("benchmarks", len(snap.Benchmarks))
}

func (l *Loader) recordError(kind string) {
	if l.rec != nil {
		l.rec.RecordError(kind)
	}
}

// loadFundMetrics parses the fund catalog CSV. Expected header:
// name,cnpj,category,subcategory,aum,shareholders,liquidity,liquidity_days,
// inception_date,return_12m,return_24m,return_36m,vol_12m,sharpe_12m,
// max_drawdown,excess_12m,excess_24m,best_month,worst_month
func (l *Loader) loadFundMetrics(path string) ([]models.Fund, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	col := indexColumns(header)

	var funds []models.Fund
	for _, row := range rows {
		get := func(name string) string { return cell(row, col, name) }
		f := models.Fund{
			Name:          get("name"),
			CNPJ:          get("cnpj"),
			Category:      get("category"),
			Subcategory:   get("subcategory"),
			Liquidity:     get("liquidity"),
			AUM:           parseFloatPtr(get("aum")),
			Shareholders:  parseIntPtr(get("shareholders")),
			LiquidityDays: parseIntPtr(get("liquidity_days")),
			Return12M:     parseFloatPtr(get("return_12m")),
			Return24M:     parseFloatPtr(get("return_24m")),
			Return36M:     parseFloatPtr(get("return_36m")),
			Volatility12M: parseFloatPtr(get("vol_12m")),
			Sharpe12M:     parseFloatPtr(get("sharpe_12m")),
			MaxDrawdown:   parseFloatPtr(get("max_drawdown")),
			Excess12M:     parseFloatPtr(get("excess_12m")),
			Excess24M:     parseFloatPtr(get("excess_24m")),
			BestMonth:     parseFloatPtr(get("best_month")),
			WorstMonth:    parseFloatPtr(get("worst_month")),
		}
		if f.Name == "" {
			continue
		}
		f.CNPJStandard = StandardizeCNPJ(f.CNPJ)
		if t, ok := util.ParseDate(get("inception_date")); ok {
			f.InceptionDate = &t
		}
		funds = append(funds, f)
	}
	return funds, nil
}

// loadFundDetails parses the daily rows CSV. Expected header:
// date,cnpj,quota,daily_return,aum,shareholders,movement
func (l *Loader) loadFundDetails(path string) (map[string][]models.FundDaily, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	col := indexColumns(header)

	details := make(map[string][]models.FundDaily)
	for _, row := range rows {
		get := func(name string) string { return cell(row, col, name) }
		date, ok := util.ParseDate(get("date"))
		if !ok {
			continue
		}
		cnpj := StandardizeCNPJ(get("cnpj"))
		if cnpj == "" {
			continue
		}
		d := models.FundDaily{
			Date:         date,
			CNPJStandard: cnpj,
			Quota:        parseFloat(get("quota")),
			Return:       parseFloat(get("daily_return")),
			AUM:          parseFloat(get("aum")),
			Shareholders: parseInt(get("shareholders")),
			Movement:     parseFloat(get("movement")),
		}
		details[cnpj] = append(details[cnpj], d)
	}
	return details, nil
}

// loadBenchmarks parses the wide benchmark CSV: date column followed by one
// column per benchmark.
func (l *Loader) loadBenchmarks(path string) (map[string]analytics.Series, error) {
	rows, header, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("benchmark file %s: need a date column plus benchmarks", path)
	}

	out := make(map[string]analytics.Series, len(header)-1)
	for _, row := range rows {
		if len(row) != len(header) {
			continue
		}
		date, ok := util.ParseDate(row[0])
		if !ok {
			continue
		}
		for i := 1; i < len(header); i++ {
			v, err := strconv.ParseFloat(row[i], 64)
			if err != nil {
				continue
			}
			out[header[i]] = append(out[header[i]], analytics.Point{Date: date, Value: v})
		}
	}
	return out, nil
}

func readCSV(path string) (rows [][]string, header []string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	header, err = r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row)
	}
	return rows, header, nil
}

func indexColumns(header []string) map[string]int {
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[h] = i
	}
	return col
}

func cell(row []string, col map[string]int, name string) string {
	i, ok := col[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
