package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"FundLens/internal/domain/models"
	applogger "FundLens/pkg/logger"
)

// ErrNotFound is returned when a saved monitor or portfolio does not exist.
var ErrNotFound = errors.New("not found")

type monitorRow struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"column:user_id;uniqueIndex:idx_monitor_user_name"`
	Name      string `gorm:"column:monitor_name;uniqueIndex:idx_monitor_user_name"`
	Funds     string `gorm:"column:funds"` // JSON array of fund names
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (monitorRow) TableName() string { return "risk_monitor_funds" }

type portfolioRow struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      string `gorm:"column:user_id;uniqueIndex:idx_portfolio_user_name"`
	Name        string `gorm:"column:portfolio_name;uniqueIndex:idx_portfolio_user_name"`
	Allocations string `gorm:"column:allocations"` // JSON object fund name -> weight
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (portfolioRow) TableName() string { return "portfolios" }

// SavedStore persists named risk-monitor selections and portfolio
// allocations, keyed by (user, name). Saving an existing name overwrites.
type SavedStore struct {
	db *gorm.DB
	l  *applogger.Logger
}

// OpenSQLite opens (and migrates) the saved-config database at path. Use
// ":memory:" for an ephemeral store.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := db.AutoMigrate(&monitorRow{}, &portfolioRow{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func NewSavedStore(db *gorm.DB) *SavedStore {
	return &SavedStore{db: db}
}

// SetLogger injects a structured logger.
func (s *SavedStore) SetLogger(l *applogger.Logger) { s.l = l }

// SaveMonitor stores a fund selection under (userID, name), replacing any
// previous selection with that name.
func (s *SavedStore) SaveMonitor(ctx context.Context, m models.SavedMonitor) error {
	funds, err := json.Marshal(m.Funds)
	if err != nil {
		return fmt.Errorf("encode funds: %w", err)
	}
	row := monitorRow{UserID: m.UserID, Name: m.MonitorName, Funds: string(funds)}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "monitor_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"funds", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save monitor: %w", err)
	}
	if s.l != nil {
		s.l.Debug("monitor saved",
			applogger.String("user_id", m.UserID),
			applogger.String("name", m.MonitorName),
			applogger.Int("funds", len(m.Funds)),
		)
	}
	return nil
}

// ListMonitors returns all saved monitors for a user, newest update first.
func (s *SavedStore) ListMonitors(ctx context.Context, userID string) ([]models.SavedMonitor, error) {
	var rows []monitorRow
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list monitors: %w", err)
	}
	out := make([]models.SavedMonitor, 0, len(rows))
	for _, r := range rows {
		m, err := r.model()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// GetMonitor fetches one saved monitor. ErrNotFound when absent.
func (s *SavedStore) GetMonitor(ctx context.Context, userID, name string) (models.SavedMonitor, error) {
	var row monitorRow
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND monitor_name = ?", userID, name).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.SavedMonitor{}, ErrNotFound
	}
	if err != nil {
		return models.SavedMonitor{}, fmt.Errorf("get monitor: %w", err)
	}
	return row.model()
}

// DeleteMonitor removes one saved monitor. ErrNotFound when absent.
func (s *SavedStore) DeleteMonitor(ctx context.Context, userID, name string) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND monitor_name = ?", userID, name).
		Delete(&monitorRow{})
	if res.Error != nil {
		return fmt.Errorf("delete monitor: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SavePortfolio stores an allocation set under (userID, name), replacing any
// previous set with that name.
func (s *SavedStore) SavePortfolio(ctx context.Context, p models.SavedPortfolio) error {
	allocs, err := json.Marshal(p.Allocations)
	if err != nil {
		return fmt.Errorf("encode allocations: %w", err)
	}
	row := portfolioRow{UserID: p.UserID, Name: p.PortfolioName, Allocations: string(allocs)}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "portfolio_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"allocations", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save portfolio: %w", err)
	}
	if s.l != nil {
		s.l.Debug("portfolio saved",
			applogger.String("user_id", p.UserID),
			applogger.String("name", p.PortfolioName),
			applogger.Int("positions", len(p.Allocations)),
		)
	}
	return nil
}

// ListPortfolios returns all saved portfolios for a user, newest update first.
func (s *SavedStore) ListPortfolios(ctx context.Context, userID string) ([]models.SavedPortfolio, error) {
	var rows []portfolioRow
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list portfolios: %w", err)
	}
	out := make([]models.SavedPortfolio, 0, len(rows))
	for _, r := range rows {
		p, err := r.model()
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// GetPortfolio fetches one saved portfolio. ErrNotFound when absent.
func (s *SavedStore) GetPortfolio(ctx context.Context, userID, name string) (models.SavedPortfolio, error) {
	var row portfolioRow
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND portfolio_name = ?", userID, name).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.SavedPortfolio{}, ErrNotFound
	}
	if err != nil {
		return models.SavedPortfolio{}, fmt.Errorf("get portfolio: %w", err)
	}
	return row.model()
}

// DeletePortfolio removes one saved portfolio. ErrNotFound when absent.
func (s *SavedStore) DeletePortfolio(ctx context.Context, userID, name string) error {
	res := s.db.WithContext(ctx).
		Where("user_id = ? AND portfolio_name = ?", userID, name).
		Delete(&portfolioRow{})
	if res.Error != nil {
		return fmt.Errorf("delete portfolio: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r monitorRow) model() (models.SavedMonitor, error) {
	var funds []string
	if err := json.Unmarshal([]byte(r.Funds), &funds); err != nil {
		return models.SavedMonitor{}, fmt.Errorf("decode funds for %q: %w", r.Name, err)
	}
	return models.SavedMonitor{
		MonitorName: r.Name,
		UserID:      r.UserID,
		Funds:       funds,
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (r portfolioRow) model() (models.SavedPortfolio, error) {
	allocs := make(map[string]float64)
	if err := json.Unmarshal([]byte(r.Allocations), &allocs); err != nil {
		return models.SavedPortfolio{}, fmt.Errorf("decode allocations for %q: %w", r.Name, err)
	}
	return models.SavedPortfolio{
		PortfolioName: r.Name,
		UserID:        r.UserID,
		Allocations:   allocs,
		CreatedAt:     r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     r.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}
