//go:build wireinject
// +build wireinject

package di

import (
	"FundLens/internal/handler/api"
	"FundLens/internal/usecase"
	"FundLens/pkg/config"
	"FundLens/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient infrastructure
		ProvideLogger,
		ProvideMetricsRecorder,

		// Dataset
		ProvideStore,
		ProvideLoader,

		// Persistence
		ProvideDB,
		ProvideSavedStore,

		// Use cases
		usecase.NewFundsUseCase,
		ProvideRiskUseCase,
		usecase.NewPortfolioUseCase,
		usecase.NewBenchmarksUseCase,
		usecase.NewSavedUseCase,

		// Handlers
		api.NewFundsHandler,
		ProvideRiskHandler,
		api.NewPortfolioHandler,
		api.NewBenchmarksHandler,
		api.NewSystemHandler,
		ProvideRouter,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
