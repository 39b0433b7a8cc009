package models

import "time"

// Fund is one row of the precomputed fund-metrics catalog.
type Fund struct {
	Name          string     `json:"name"`
	CNPJ          string     `json:"cnpj,omitempty"`
	CNPJStandard  string     `json:"-"`
	Category      string     `json:"category,omitempty"`
	Subcategory   string     `json:"subcategory,omitempty"`
	AUM           *float64   `json:"aum,omitempty"`
	Shareholders  *int       `json:"shareholders,omitempty"`
	Liquidity     string     `json:"liquidity,omitempty"`
	LiquidityDays *int       `json:"liquidity_days,omitempty"`
	InceptionDate *time.Time `json:"inception_date,omitempty"`

	Return12M *float64 `json:"return_12m,omitempty"`
	Return24M *float64 `json:"return_24m,omitempty"`
	Return36M *float64 `json:"return_36m,omitempty"`

	Volatility12M *float64 `json:"volatility_12m,omitempty"`
	Sharpe12M     *float64 `json:"sharpe_12m,omitempty"`
	MaxDrawdown   *float64 `json:"max_drawdown,omitempty"`

	Excess12M *float64 `json:"excess_12m,omitempty"`
	Excess24M *float64 `json:"excess_24m,omitempty"`

	BestMonth  *float64 `json:"best_month,omitempty"`
	WorstMonth *float64 `json:"worst_month,omitempty"`
}

// FundDaily is one daily observation for a fund (quota, AUM, flows).
type FundDaily struct {
	Date         time.Time
	CNPJStandard string
	Quota        float64
	Return       float64
	AUM          float64
	Shareholders int
	Movement     float64
}

// FundListItem is the compact projection returned by the list endpoint.
type FundListItem struct {
	Name          string   `json:"name"`
	CNPJ          string   `json:"cnpj,omitempty"`
	Category      string   `json:"category,omitempty"`
	Subcategory   string   `json:"subcategory,omitempty"`
	AUM           *float64 `json:"aum,omitempty"`
	Shareholders  *int     `json:"shareholders,omitempty"`
	Liquidity     string   `json:"liquidity,omitempty"`
	Return12M     *float64 `json:"return_12m,omitempty"`
	Sharpe12M     *float64 `json:"sharpe_12m,omitempty"`
	Volatility12M *float64 `json:"volatility_12m,omitempty"`
	MaxDrawdown   *float64 `json:"max_drawdown,omitempty"`
}

// ListItem builds the list projection from the full catalog row.
func (f *Fund) ListItem() FundListItem {
	return FundListItem{
		Name:          f.Name,
		CNPJ:          f.CNPJ,
		Category:      f.Category,
		Subcategory:   f.Subcategory,
		AUM:           f.AUM,
		Shareholders:  f.Shareholders,
		Liquidity:     f.Liquidity,
		Return12M:     f.Return12M,
		Sharpe12M:     f.Sharpe12M,
		Volatility12M: f.Volatility12M,
		MaxDrawdown:   f.MaxDrawdown,
	}
}

// FundPage is a paginated slice of the catalog.
type FundPage struct {
	Items      []FundListItem `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// FundReturns is a fund's returns time series with cumulative overlay.
type FundReturns struct {
	FundName          string    `json:"fund_name"`
	Dates             []string  `json:"dates"`
	Returns           []float64 `json:"returns"`
	CumulativeReturns []float64 `json:"cumulative_returns"`
}

// FundMetricsResult holds metrics computed from a fund's return series.
// Ratios that can degenerate on short or one-sided series are omitted
// rather than serialized as non-finite numbers.
type FundMetricsResult struct {
	FundName         string   `json:"fund_name"`
	Observations     int      `json:"observations"`
	TotalReturn      float64  `json:"total_return"`
	AnnualizedReturn float64  `json:"annualized_return"`
	Volatility       float64  `json:"volatility"`
	SharpeRatio      float64  `json:"sharpe_ratio"`
	MaxDrawdown      float64  `json:"max_drawdown"`
	VaR95            float64  `json:"var_95"`
	CVaR95           float64  `json:"cvar_95"`
	OmegaRatio       *float64 `json:"omega_ratio,omitempty"`
	SortinoRatio     *float64 `json:"sortino_ratio,omitempty"`
	CalmarRatio      *float64 `json:"calmar_ratio,omitempty"`
}
