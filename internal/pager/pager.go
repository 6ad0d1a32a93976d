// Package pager implements the generic paginated-resource workflow shared by
// every listing in the console: load one page, track loading/error/page
// state, and run mutations that refetch server truth instead of patching the
// displayed content locally.
package pager

import (
	"context"
	"sync"

	"github.com/rouletteup/admin-console/internal/models"
)

// ReloadCurrent tells Mutate to reload whatever page is currently displayed.
const ReloadCurrent = -1

// FetchFunc loads one 0-based page of the resource.
type FetchFunc[T any] func(ctx context.Context, page, size int) (models.Page[T], error)

// Controller drives one paginated resource. Content is replaced wholesale on
// every successful load; a failed load keeps the last-good content and sets a
// sticky error that only a later load's outcome replaces.
//
// Loads are tagged with a monotonic generation: when loads overlap, a
// completion belonging to a superseded load is discarded, so the displayed
// state always reflects the most recently issued request that settled.
type Controller[T any] struct {
	fetch FetchFunc[T]
	size  int

	mu      sync.Mutex
	gen     uint64
	loading bool
	loaded  bool
	err     error
	page    models.Page[T]
	number  int
}

// New creates a controller over fetch with the given page size.
func New[T any](fetch FetchFunc[T], size int) *Controller[T] {
	return &Controller[T]{fetch: fetch, size: size}
}

// Load requests page pageIndex. While in flight the controller reports
// loading and keeps the previous content visible; the new page then replaces
// it wholesale. On failure the content stays at its last-good value and the
// error is exposed until a subsequent load resolves.
func (c *Controller[T]) Load(ctx context.Context, pageIndex int) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.loading = true
	c.number = pageIndex
	c.mu.Unlock()

	page, err := c.fetch(ctx, pageIndex, c.size)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// A newer load superseded this one; discard the stale result.
		return nil
	}
	c.loading = false
	if err != nil {
		c.err = err
		return err
	}
	c.err = nil
	c.page = page
	c.number = page.Page.Number
	c.loaded = true
	return nil
}

// SetPage requests the given page. Bounds are the server's to enforce; the
// controller only disables navigation at the boundaries it knows about.
func (c *Controller[T]) SetPage(ctx context.Context, pageIndex int) error {
	return c.Load(ctx, pageIndex)
}

// Next loads the following page when the controller knows one exists.
func (c *Controller[T]) Next(ctx context.Context) error {
	c.mu.Lock()
	ok := c.hasNextLocked()
	n := c.number
	c.mu.Unlock()
	if !ok {
		return nil
	}
	return c.Load(ctx, n+1)
}

// Prev loads the preceding page when there is one.
func (c *Controller[T]) Prev(ctx context.Context) error {
	c.mu.Lock()
	ok := c.number > 0
	n := c.number
	c.mu.Unlock()
	if !ok {
		return nil
	}
	return c.Load(ctx, n-1)
}

// Mutate performs the write, and on success reloads reloadPage (or the
// currently displayed page for ReloadCurrent) so the displayed state reflects
// server truth post-mutation. On failure the mutation's error is surfaced and
// no reload occurs.
func (c *Controller[T]) Mutate(ctx context.Context, op func(ctx context.Context) error, reloadPage int) error {
	if err := op(ctx); err != nil {
		c.mu.Lock()
		c.err = err
		c.mu.Unlock()
		return err
	}
	if reloadPage == ReloadCurrent {
		c.mu.Lock()
		reloadPage = c.number
		c.mu.Unlock()
	}
	return c.Load(ctx, reloadPage)
}

// Content returns the currently displayed items.
func (c *Controller[T]) Content() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page.Content
}

// PageInfo returns the pagination metadata of the last-good page.
func (c *Controller[T]) PageInfo() models.PageInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page.Page
}

// Number returns the 0-based index of the displayed (or requested) page.
func (c *Controller[T]) Number() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.number
}

// Loading reports whether a load is in flight.
func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Loaded reports whether at least one page has resolved successfully.
func (c *Controller[T]) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Err returns the sticky error from the last settled load or mutation.
func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// HasNext reports whether a following page is known to exist.
func (c *Controller[T]) HasNext() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasNextLocked()
}

// HasPrev reports whether a preceding page exists.
func (c *Controller[T]) HasPrev() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.number > 0
}

func (c *Controller[T]) hasNextLocked() bool {
	return c.loaded && c.number < c.page.Page.TotalPages-1
}

// Size returns the controller's page size.
func (c *Controller[T]) Size() int {
	return c.size
}
