package models

// Requests for the HTTP API. Defined in domain for consistency and reuse.

type FundListRequest struct {
	Category         string   `query:"category" json:"category"`
	Subcategory      string   `query:"subcategory" json:"subcategory"`
	Search           string   `query:"search" json:"search"`
	MinSharpe        *float64 `query:"min_sharpe" json:"min_sharpe"`
	MaxMDD           *float64 `query:"max_mdd" json:"max_mdd"`
	MinAUM           *float64 `query:"min_aum" json:"min_aum"`
	MaxLiquidityDays *int     `query:"max_liquidity_days" json:"max_liquidity_days"`
	Page             int      `query:"page" json:"page" default:"1" validate:"gte=1"`
	PageSize         int      `query:"page_size" json:"page_size" default:"50" validate:"gte=1,lte=200"`
	SortBy           string   `query:"sort_by" json:"sort_by"`
	SortDesc         *bool    `query:"sort_desc" json:"sort_desc"`
}

// Descending reports the sort direction; descending is the default.
func (r *FundListRequest) Descending() bool {
	if r.SortDesc == nil {
		return true
	}
	return *r.SortDesc
}

type FundNamesRequest struct {
	Search string `query:"search" json:"search"`
	Limit  int    `query:"limit" json:"limit" default:"50" validate:"gte=1,lte=200"`
}

type FundCompareRequest struct {
	FundNames []string `json:"fund_names" validate:"required,min=1"`
	Metrics   []string `json:"metrics"`
}

type RiskMonitorRequest struct {
	FundNames []string `json:"fund_names" validate:"required,min=1"`
}

type DistributionRequest struct {
	FundName  string    `json:"fund_name" validate:"required"`
	Frequency Frequency `json:"frequency" validate:"required,oneof=daily weekly monthly"`
}

type SaveMonitorRequest struct {
	MonitorName string   `json:"monitor_name" validate:"required"`
	UserID      string   `json:"user_id" default:"default"`
	Funds       []string `json:"funds" validate:"required,min=1"`
}

type PortfolioRequest struct {
	Allocations  []PortfolioAllocation `json:"allocations" validate:"required,min=1,dive"`
	PeriodMonths *int                  `json:"period_months" validate:"omitempty,gte=1"`
	Benchmark    string                `json:"benchmark"`
}

type PortfolioReturnsRequest struct {
	Allocations  map[string]float64 `json:"allocations" validate:"required,min=1"`
	PeriodMonths *int               `json:"period_months" validate:"omitempty,gte=1"`
}

type SavePortfolioRequest struct {
	PortfolioName string             `json:"portfolio_name" validate:"required"`
	UserID        string             `json:"user_id" default:"default"`
	Allocations   map[string]float64 `json:"allocations" validate:"required,min=1"`
}

type BenchmarkCompareRequest struct {
	BenchmarkNames []string `json:"benchmark_names" validate:"required,min=1"`
	PeriodMonths   *int     `json:"period_months" validate:"omitempty,gte=1"`
}
