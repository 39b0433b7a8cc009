// Package repository declares the persistence contracts the use cases
// depend on. Implementations live in internal/repository.
package repository

import (
	"context"

	"FundLens/internal/domain/models"
)

// ConfigStore persists named per-user configurations: risk-monitor fund
// selections and portfolio allocations. Names are unique per user; saving
// an existing name overwrites it.
type ConfigStore interface {
	SaveMonitor(ctx context.Context, m models.SavedMonitor) error
	ListMonitors(ctx context.Context, userID string) ([]models.SavedMonitor, error)
	GetMonitor(ctx context.Context, userID, name string) (models.SavedMonitor, error)
	DeleteMonitor(ctx context.Context, userID, name string) error

	SavePortfolio(ctx context.Context, p models.SavedPortfolio) error
	ListPortfolios(ctx context.Context, userID string) ([]models.SavedPortfolio, error)
	GetPortfolio(ctx context.Context, userID, name string) (models.SavedPortfolio, error)
	DeletePortfolio(ctx context.Context, userID, name string) error
}
