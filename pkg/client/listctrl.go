package client

import (
	"context"
	"sync"

	"FundLens/internal/domain/models"
)

// ListState is the lifecycle phase of a catalog listing.
type ListState string

const (
	ListIdle    ListState = "idle"
	ListLoading ListState = "loading"
	ListSuccess ListState = "success"
	ListError   ListState = "error"
)

// ListFetcher loads one catalog page.
type ListFetcher func(ctx context.Context, req *models.FundListRequest) (*models.FundPage, error)

// ListController drives a paged, filtered, sorted fund listing. Changing
// any filter snaps back to page one; clicking the active sort key flips
// the direction while a new key starts descending. Each reload carries a
// generation number, so a slow response for an outdated request is
// dropped instead of clobbering newer results.
type ListController struct {
	fetch    ListFetcher
	onChange func()

	mu    sync.Mutex
	req   models.FundListRequest
	state ListState
	page  *models.FundPage
	err   error
	gen   uint64
}

// NewListController builds a controller with the given page size.
// onChange, if not nil, fires after every state transition.
func NewListController(fetch ListFetcher, pageSize int, onChange func()) *ListController {
	return &ListController{
		fetch:    fetch,
		onChange: onChange,
		req:      models.FundListRequest{Page: 1, PageSize: pageSize},
		state:    ListIdle,
	}
}

// Request returns a copy of the current query.
func (c *ListController) Request() models.FundListRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.req
}

// State returns the current phase, page and error.
func (c *ListController) State() (ListState, *models.FundPage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.page, c.err
}

// SetFilter mutates the query through fn and reloads from page one.
func (c *ListController) SetFilter(fn func(*models.FundListRequest)) {
	c.mu.Lock()
	fn(&c.req)
	c.req.Page = 1
	c.reloadLocked()
}

// SetSearch updates the free-text filter.
func (c *ListController) SetSearch(s string) {
	c.SetFilter(func(r *models.FundListRequest) { r.Search = s })
}

// SetCategory updates the category filter and clears the subcategory.
func (c *ListController) SetCategory(category string) {
	c.SetFilter(func(r *models.FundListRequest) {
		r.Category = category
		r.Subcategory = ""
	})
}

// SetSort selects a sort key. Re-selecting the active key toggles the
// direction; a new key starts descending. Sorting resets to page one.
func (c *ListController) SetSort(key string) {
	c.mu.Lock()
	if c.req.SortBy == key {
		flipped := !c.req.Descending()
		c.req.SortDesc = &flipped
	} else {
		c.req.SortBy = key
		c.req.SortDesc = nil // descending by default
	}
	c.req.Page = 1
	c.reloadLocked()
}

// SetPage moves to another page without touching filters.
func (c *ListController) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.req.Page = page
	c.reloadLocked()
}

// Reload refetches the current query.
func (c *ListController) Reload() {
	c.mu.Lock()
	c.reloadLocked()
}

// reloadLocked starts a fetch for the current request and releases the
// lock. The caller must hold c.mu.
func (c *ListController) reloadLocked() {
	c.gen++
	gen := c.gen
	req := c.req
	c.state = ListLoading
	c.mu.Unlock()

	c.notify()
	go c.load(gen, &req)
}

func (c *ListController) load(gen uint64, req *models.FundListRequest) {
	page, err := c.fetch(context.Background(), req)

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return // superseded by a newer request
	}
	if err != nil {
		c.state = ListError
		c.err = err
	} else {
		c.state = ListSuccess
		c.page = page
		c.err = nil
	}
	c.mu.Unlock()

	c.notify()
}

func (c *ListController) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}
