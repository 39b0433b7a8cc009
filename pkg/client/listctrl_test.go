package client

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FundLens/internal/domain/models"
)

// gatedFetcher hands each fetch call its own response gate so tests can
// decide completion order.
type gatedFetcher struct {
	mu    sync.Mutex
	reqs  []models.FundListRequest
	gates []chan *models.FundPage
}

func (f *gatedFetcher) fetch(ctx context.Context, req *models.FundListRequest) (*models.FundPage, error) {
	f.mu.Lock()
	f.reqs = append(f.reqs, *req)
	gate := make(chan *models.FundPage, 1)
	f.gates = append(f.gates, gate)
	f.mu.Unlock()
	return <-gate, nil
}

func (f *gatedFetcher) waitCalls(t *testing.T, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		f.mu.Lock()
		defer f.mu.Unlock()
		return len(f.gates) >= n
	}, time.Second, time.Millisecond)
}

func (f *gatedFetcher) respond(i int, page *models.FundPage) {
	f.mu.Lock()
	gate := f.gates[i]
	f.mu.Unlock()
	gate <- page
}

func (f *gatedFetcher) request(i int) models.FundListRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reqs[i]
}

func waitState(t *testing.T, c *ListController, want ListState) {
	t.Helper()
	require.Eventually(t, func() bool {
		state, _, _ := c.State()
		return state == want
	}, time.Second, time.Millisecond)
}

func TestListControllerFilterResetsToPageOne(t *testing.T) {
	f := &gatedFetcher{}
	c := NewListController(f.fetch, 50, nil)

	c.SetPage(3)
	f.waitCalls(t, 1)
	f.respond(0, &models.FundPage{Page: 3})
	waitState(t, c, ListSuccess)

	c.SetSearch("alpha")
	f.waitCalls(t, 2)
	req := f.request(1)
	assert.Equal(t, "alpha", req.Search)
	assert.Equal(t, 1, req.Page)

	f.respond(1, &models.FundPage{Page: 1})
	waitState(t, c, ListSuccess)
}

func TestListControllerSortToggle(t *testing.T) {
	f := &gatedFetcher{}
	c := NewListController(f.fetch, 50, nil)

	// New key: descending by default.
	c.SetSort("sharpe_12m")
	f.waitCalls(t, 1)
	req := f.request(0)
	assert.Equal(t, "sharpe_12m", req.SortBy)
	assert.True(t, req.Descending())
	f.respond(0, &models.FundPage{})

	// Same key again: direction flips.
	c.SetSort("sharpe_12m")
	f.waitCalls(t, 2)
	req = f.request(1)
	assert.Equal(t, "sharpe_12m", req.SortBy)
	assert.False(t, req.Descending())
	f.respond(1, &models.FundPage{})

	// Switching keys goes back to descending.
	c.SetSort("aum")
	f.waitCalls(t, 3)
	req = f.request(2)
	assert.Equal(t, "aum", req.SortBy)
	assert.True(t, req.Descending())
	assert.Equal(t, 1, req.Page)
	f.respond(2, &models.FundPage{})
	waitState(t, c, ListSuccess)
}

func TestListControllerSupersedesSlowResponses(t *testing.T) {
	f := &gatedFetcher{}
	c := NewListController(f.fetch, 50, nil)

	c.SetSearch("a")
	f.waitCalls(t, 1)
	c.SetSearch("ab")
	f.waitCalls(t, 2)

	// The newer request resolves first; the older one lands late and must
	// be dropped.
	f.respond(1, &models.FundPage{Total: 2})
	waitState(t, c, ListSuccess)
	f.respond(0, &models.FundPage{Total: 99})

	assert.Never(t, func() bool {
		_, page, _ := c.State()
		return page != nil && page.Total == 99
	}, 50*time.Millisecond, 5*time.Millisecond)

	_, page, err := c.State()
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
}

func TestListControllerErrorState(t *testing.T) {
	fetch := func(ctx context.Context, req *models.FundListRequest) (*models.FundPage, error) {
		return nil, assert.AnError
	}
	done := make(chan struct{}, 4)
	c := NewListController(fetch, 50, func() { done <- struct{}{} })

	c.Reload()
	waitState(t, c, ListError)
	state, page, err := c.State()
	assert.Equal(t, ListError, state)
	assert.Nil(t, page)
	assert.ErrorIs(t, err, assert.AnError)
}
