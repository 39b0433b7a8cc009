package models

// PortfolioAllocation is one fund weight inside a portfolio.
type PortfolioAllocation struct {
	FundName string  `json:"fund_name" validate:"required"`
	Weight   float64 `json:"weight" validate:"gte=0"`
}

// PortfolioMetricsResult holds the computed performance metrics.
type PortfolioMetricsResult struct {
	TotalReturn      float64  `json:"total_return"`
	AnnualizedReturn float64  `json:"annualized_return"`
	Volatility       float64  `json:"volatility"`
	SharpeRatio      float64  `json:"sharpe_ratio"`
	MaxDrawdown      float64  `json:"max_drawdown"`
	VaR95            float64  `json:"var_95"`
	CVaR95           float64  `json:"cvar_95"`
	OmegaRatio       *float64 `json:"omega_ratio,omitempty"`
	RachevRatio      *float64 `json:"rachev_ratio,omitempty"`
}

// PortfolioReturnsSeries is the portfolio return series plus optional
// benchmark cumulative overlays keyed by benchmark name.
type PortfolioReturnsSeries struct {
	Dates               []string             `json:"dates"`
	Returns             []float64            `json:"returns"`
	CumulativeReturns   []float64            `json:"cumulative_returns"`
	BenchmarkCumulative map[string][]float64 `json:"benchmark_cumulative,omitempty"`
}

// CategoryBreakdown is one weight bucket by category or subcategory.
type CategoryBreakdown struct {
	Category string  `json:"category"`
	Weight   float64 `json:"weight"`
}

// LiquidityBreakdown is one weight bucket by redemption window.
type LiquidityBreakdown struct {
	Liquidity string  `json:"liquidity"`
	Weight    float64 `json:"weight"`
	Days      int     `json:"days"`
}

// PortfolioAnalysis is the full /portfolio/analyze response.
type PortfolioAnalysis struct {
	Metrics              PortfolioMetricsResult `json:"metrics"`
	Returns              PortfolioReturnsSeries `json:"returns"`
	CategoryBreakdown    []CategoryBreakdown    `json:"category_breakdown"`
	SubcategoryBreakdown []CategoryBreakdown    `json:"subcategory_breakdown"`
	FundBreakdown        []PortfolioAllocation  `json:"fund_breakdown"`
	LiquidityBreakdown   []LiquidityBreakdown   `json:"liquidity_breakdown"`
	AverageLiquidityDays int                    `json:"average_liquidity_days"`
}

// SavedMonitor is a persisted risk-monitor fund selection.
type SavedMonitor struct {
	MonitorName string   `json:"monitor_name"`
	UserID      string   `json:"user_id"`
	Funds       []string `json:"funds"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

// SavedPortfolio is a persisted allocation set.
type SavedPortfolio struct {
	PortfolioName string             `json:"portfolio_name"`
	UserID        string             `json:"user_id"`
	Allocations   map[string]float64 `json:"allocations"`
	CreatedAt     string             `json:"created_at,omitempty"`
	UpdatedAt     string             `json:"updated_at,omitempty"`
}

// BenchmarkSeries is one benchmark's return series.
type BenchmarkSeries struct {
	Name              string    `json:"name"`
	Dates             []string  `json:"dates"`
	Returns           []float64 `json:"returns"`
	CumulativeReturns []float64 `json:"cumulative_returns"`
}
