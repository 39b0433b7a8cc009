package usecase

import (
	"context"
	"errors"

	"FundLens/internal/dataset"
	"FundLens/internal/domain/models"
	domainrepo "FundLens/internal/domain/repository"
	"FundLens/internal/repository"
	xhttp "FundLens/pkg/http"
)

// SavedUseCase manages persisted risk-monitor selections and portfolios.
// Fund names are validated against the loaded catalog before saving.
type SavedUseCase struct {
	repo  domainrepo.ConfigStore
	store *dataset.Store
}

func NewSavedUseCase(repo domainrepo.ConfigStore, store *dataset.Store) *SavedUseCase {
	return &SavedUseCase{repo: repo, store: store}
}

func (uc *SavedUseCase) checkFunds(names []string) error {
	snap := uc.store.Snapshot()
	if snap == nil {
		return xhttp.DataNotLoadedError()
	}
	for _, name := range names {
		if _, ok := snap.Fund(name); !ok {
			return xhttp.NotFoundErrorf("fund %q not found", name)
		}
	}
	return nil
}

// SaveMonitor validates and persists a monitor selection.
func (uc *SavedUseCase) SaveMonitor(ctx context.Context, req *models.SaveMonitorRequest) (*models.SavedMonitor, error) {
	if err := uc.checkFunds(req.Funds); err != nil {
		return nil, err
	}
	m := models.SavedMonitor{
		MonitorName: req.MonitorName,
		UserID:      req.UserID,
		Funds:       req.Funds,
	}
	if err := uc.repo.SaveMonitor(ctx, m); err != nil {
		return nil, xhttp.InternalError("save monitor").WithError(err)
	}
	saved, err := uc.repo.GetMonitor(ctx, req.UserID, req.MonitorName)
	if err != nil {
		return nil, xhttp.InternalError("read back monitor").WithError(err)
	}
	return &saved, nil
}

// ListMonitors lists a user's saved monitors.
func (uc *SavedUseCase) ListMonitors(ctx context.Context, userID string) ([]models.SavedMonitor, error) {
	out, err := uc.repo.ListMonitors(ctx, userID)
	if err != nil {
		return nil, xhttp.InternalError("list monitors").WithError(err)
	}
	return out, nil
}

// GetMonitor fetches one saved monitor.
func (uc *SavedUseCase) GetMonitor(ctx context.Context, userID, name string) (*models.SavedMonitor, error) {
	m, err := uc.repo.GetMonitor(ctx, userID, name)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, xhttp.NotFoundErrorf("monitor %q not found", name)
	}
	if err != nil {
		return nil, xhttp.InternalError("get monitor").WithError(err)
	}
	return &m, nil
}

// DeleteMonitor removes one saved monitor.
func (uc *SavedUseCase) DeleteMonitor(ctx context.Context, userID, name string) error {
	err := uc.repo.DeleteMonitor(ctx, userID, name)
	if errors.Is(err, repository.ErrNotFound) {
		return xhttp.NotFoundErrorf("monitor %q not found", name)
	}
	if err != nil {
		return xhttp.InternalError("delete monitor").WithError(err)
	}
	return nil
}

// SavePortfolio validates and persists an allocation set.
func (uc *SavedUseCase) SavePortfolio(ctx context.Context, req *models.SavePortfolioRequest) (*models.SavedPortfolio, error) {
	names := make([]string, 0, len(req.Allocations))
	for name := range req.Allocations {
		names = append(names, name)
	}
	if err := uc.checkFunds(names); err != nil {
		return nil, err
	}
	p := models.SavedPortfolio{
		PortfolioName: req.PortfolioName,
		UserID:        req.UserID,
		Allocations:   req.Allocations,
	}
	if err := uc.repo.SavePortfolio(ctx, p); err != nil {
		return nil, xhttp.InternalError("save portfolio").WithError(err)
	}
	saved, err := uc.repo.GetPortfolio(ctx, req.UserID, req.PortfolioName)
	if err != nil {
		return nil, xhttp.InternalError("read back portfolio").WithError(err)
	}
	return &saved, nil
}

// ListPortfolios lists a user's saved portfolios.
func (uc *SavedUseCase) ListPortfolios(ctx context.Context, userID string) ([]models.SavedPortfolio, error) {
	out, err := uc.repo.ListPortfolios(ctx, userID)
	if err != nil {
		return nil, xhttp.InternalError("list portfolios").WithError(err)
	}
	return out, nil
}

// GetPortfolio fetches one saved portfolio.
func (uc *SavedUseCase) GetPortfolio(ctx context.Context, userID, name string) (*models.SavedPortfolio, error) {
	p, err := uc.repo.GetPortfolio(ctx, userID, name)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, xhttp.NotFoundErrorf("portfolio %q not found", name)
	}
	if err != nil {
		return nil, xhttp.InternalError("get portfolio").WithError(err)
	}
	return &p, nil
}

// DeletePortfolio removes one saved portfolio.
func (uc *SavedUseCase) DeletePortfolio(ctx context.Context, userID, name string) error {
	err := uc.repo.DeletePortfolio(ctx, userID, name)
	if errors.Is(err, repository.ErrNotFound) {
		return xhttp.NotFoundErrorf("portfolio %q not found", name)
	}
	if err != nil {
		return xhttp.InternalError("delete portfolio").WithError(err)
	}
	return nil
}
