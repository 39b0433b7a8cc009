package api

import "github.com/labstack/echo/v4"

// Router bundles all API handlers behind one route registrar.
type Router struct {
	funds      *FundsHandler
	risk       *RiskHandler
	portfolio  *PortfolioHandler
	benchmarks *BenchmarksHandler
	system     *SystemHandler
}

func NewRouter(
	funds *FundsHandler,
	risk *RiskHandler,
	portfolio *PortfolioHandler,
	benchmarks *BenchmarksHandler,
	system *SystemHandler,
) *Router {
	return &Router{
		funds:      funds,
		risk:       risk,
		portfolio:  portfolio,
		benchmarks: benchmarks,
		system:     system,
	}
}

func (r *Router) RegisterRoutes(e *echo.Echo) {
	r.system.RegisterRoutes(e)
	r.funds.RegisterRoutes(e)
	r.risk.RegisterRoutes(e)
	r.portfolio.RegisterRoutes(e)
	r.benchmarks.RegisterRoutes(e)
}
