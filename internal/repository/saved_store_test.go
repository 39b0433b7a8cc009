package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FundLens/internal/domain/models"
)

func newTestStore(t *testing.T) *SavedStore {
	t.Helper()
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	return NewSavedStore(db)
}

func TestSaveMonitorRoundtrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.SaveMonitor(ctx, models.SavedMonitor{
		MonitorName: "meus fundos",
		UserID:      "default",
		Funds:       []string{"Fundo A", "Fundo B"},
	})
	require.NoError(t, err)

	got, err := s.GetMonitor(ctx, "default", "meus fundos")
	require.NoError(t, err)
	assert.Equal(t, []string{"Fundo A", "Fundo B"}, got.Funds)
	assert.NotEmpty(t, got.CreatedAt)
	assert.NotEmpty(t, got.UpdatedAt)
}

func TestSaveMonitorOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	m := models.SavedMonitor{MonitorName: "m", UserID: "u", Funds: []string{"A"}}
	require.NoError(t, s.SaveMonitor(ctx, m))
	m.Funds = []string{"B", "C"}
	require.NoError(t, s.SaveMonitor(ctx, m))

	all, err := s.ListMonitors(ctx, "u")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, []string{"B", "C"}, all[0].Funds)
}

func TestMonitorsScopedPerUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveMonitor(ctx, models.SavedMonitor{MonitorName: "m", UserID: "u1", Funds: []string{"A"}}))
	require.NoError(t, s.SaveMonitor(ctx, models.SavedMonitor{MonitorName: "m", UserID: "u2", Funds: []string{"B"}}))

	got, err := s.GetMonitor(ctx, "u2", "m")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, got.Funds)

	all, err := s.ListMonitors(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, []string{"A"}, all[0].Funds)
}

func TestDeleteMonitor(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveMonitor(ctx, models.SavedMonitor{MonitorName: "m", UserID: "u", Funds: []string{"A"}}))
	require.NoError(t, s.DeleteMonitor(ctx, "u", "m"))

	_, err := s.GetMonitor(ctx, "u", "m")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteMonitor(ctx, "u", "m"), ErrNotFound)
}

func TestSavePortfolioRoundtrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.SavePortfolio(ctx, models.SavedPortfolio{
		PortfolioName: "carteira",
		UserID:        "default",
		Allocations:   map[string]float64{"Fundo A": 60, "Fundo B": 40},
	})
	require.NoError(t, err)

	got, err := s.GetPortfolio(ctx, "default", "carteira")
	require.NoError(t, err)
	assert.InDelta(t, 60, got.Allocations["Fundo A"], 1e-12)
	assert.InDelta(t, 40, got.Allocations["Fundo B"], 1e-12)

	require.NoError(t, s.DeletePortfolio(ctx, "default", "carteira"))
	_, err = s.GetPortfolio(ctx, "default", "carteira")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPortfolioOverwriteAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := models.SavedPortfolio{PortfolioName: "p", UserID: "u", Allocations: map[string]float64{"A": 100}}
	require.NoError(t, s.SavePortfolio(ctx, p))
	p.Allocations = map[string]float64{"A": 50, "B": 50}
	require.NoError(t, s.SavePortfolio(ctx, p))

	all, err := s.ListPortfolios(ctx, "u")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Len(t, all[0].Allocations, 2)
}
