// Package dataset holds the precomputed fund data the API serves: the fund
// catalog, daily fund details, and benchmark series. Data is loaded once at
// startup (files or demo generator) into an immutable snapshot that readers
// share; reloads swap the whole snapshot atomically.
package dataset

import (
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"FundLens/internal/analytics"
	"FundLens/internal/domain/models"
)

// Snapshot is one immutable view of all loaded data.
type Snapshot struct {
	Funds      []models.Fund
	byName     map[string]*models.Fund
	Details    map[string][]models.FundDaily // keyed by standardized CNPJ
	returns    map[string]analytics.Series
	Benchmarks map[string]analytics.Series
	LoadedAt   time.Time
}

// NewSnapshot assembles a snapshot: details get date-sorted, duplicate
// observations are dropped (first wins) and the return series are indexed.
func NewSnapshot(funds []models.Fund, details map[string][]models.FundDaily, benchmarks map[string]analytics.Series) *Snapshot {
	s := &Snapshot{
		Funds:      funds,
		byName:     make(map[string]*models.Fund, len(funds)),
		Details:    details,
		returns:    make(map[string]analytics.Series, len(details)),
		Benchmarks: benchmarks,
		LoadedAt:   time.Now(),
	}
	for i := range funds {
		s.byName[funds[i].Name] = &funds[i]
	}
	for cnpj, rows := range details {
		sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
		series := make(analytics.Series, 0, len(rows))
		var last time.Time
		for _, r := range rows {
			if r.Date.Equal(last) {
				continue // duplicate observation, keep first
			}
			series = append(series, analytics.Point{Date: r.Date, Value: r.Return})
			last = r.Date
		}
		s.returns[cnpj] = series
	}
	return s
}

// Fund looks up a catalog row by fund name.
func (s *Snapshot) Fund(name string) (*models.Fund, bool) {
	f, ok := s.byName[name]
	return f, ok
}

// Returns yields the daily return series for a standardized CNPJ.
func (s *Snapshot) Returns(cnpj string) (analytics.Series, bool) {
	r, ok := s.returns[cnpj]
	return r, ok
}

// ReturnsByFundName resolves a fund name to its daily return series.
func (s *Snapshot) ReturnsByFundName(name string) (analytics.Series, bool) {
	f, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return s.Returns(f.CNPJStandard)
}

// Categories lists distinct categories, sorted.
func (s *Snapshot) Categories() []string {
	return s.distinct(func(f *models.Fund) string { return f.Category }, "")
}

// Subcategories lists distinct subcategories, optionally within a category.
func (s *Snapshot) Subcategories(category string) []string {
	return s.distinct(func(f *models.Fund) string { return f.Subcategory }, category)
}

// Names lists fund names matching an optional case-insensitive substring.
func (s *Snapshot) Names(search string, limit int) []string {
	needle := strings.ToLower(search)
	out := make([]string, 0, limit)
	names := make([]string, 0, len(s.Funds))
	for i := range s.Funds {
		name := s.Funds[i].Name
		if needle == "" || strings.Contains(strings.ToLower(name), needle) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, n := range names {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, n)
	}
	return out
}

func (s *Snapshot) distinct(field func(*models.Fund) string, category string) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range s.Funds {
		f := &s.Funds[i]
		if category != "" && f.Category != category {
			continue
		}
		v := field(f)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// Store publishes the current snapshot. A nil snapshot means data is not
// loaded; every read path must tolerate that and answer 503 upstream.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates an empty store.
func NewStore() *Store { return &Store{} }

// Snapshot returns the current snapshot or nil before the first load.
func (st *Store) Snapshot() *Snapshot { return st.current.Load() }

// Swap publishes a new snapshot.
func (st *Store) Swap(s *Snapshot) { st.current.Store(s) }

// Clear drops the current snapshot.
func (st *Store) Clear() { st.current.Store(nil) }

// Loaded reports whether a snapshot is available.
func (st *Store) Loaded() bool { return st.current.Load() != nil }
