package client

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// StateData is everything a dashboard session keeps between runs.
type StateData struct {
	UserID               string             `json:"user_id"`
	MonitorFunds         []string           `json:"monitor_funds,omitempty"`
	PortfolioAllocations map[string]float64 `json:"portfolio_allocations,omitempty"`
	Category             string             `json:"category,omitempty"`
	SortBy               string             `json:"sort_by,omitempty"`
	SortDesc             *bool              `json:"sort_desc,omitempty"`
	PageSize             int                `json:"page_size,omitempty"`
}

// AppState is StateData bound to a JSON file: loaded once at startup and
// rewritten after every change.
type AppState struct {
	path string

	mu   sync.Mutex
	data StateData
}

// LoadState reads the state file, or starts from defaults when the file
// does not exist yet.
func LoadState(path string) (*AppState, error) {
	s := &AppState{
		path: path,
		data: StateData{UserID: "default", PageSize: 50},
	}
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	if s.data.UserID == "" {
		s.data.UserID = "default"
	}
	return s, nil
}

// Data returns a copy of the current state. The slice and map are copied
// too, so callers can mutate the result freely.
func (s *AppState) Data() StateData {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.data
	if s.data.MonitorFunds != nil {
		d.MonitorFunds = append([]string(nil), s.data.MonitorFunds...)
	}
	if s.data.PortfolioAllocations != nil {
		d.PortfolioAllocations = make(map[string]float64, len(s.data.PortfolioAllocations))
		for k, v := range s.data.PortfolioAllocations {
			d.PortfolioAllocations[k] = v
		}
	}
	return d
}

// Update applies fn to the state and writes the file.
func (s *AppState) Update(fn func(*StateData)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.data)
	return s.saveLocked()
}

// saveLocked rewrites the file via a temp-and-rename so a crash mid-write
// never truncates the previous state.
func (s *AppState) saveLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("state dir: %w", err)
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state: %w", err)
	}
	return nil
}
