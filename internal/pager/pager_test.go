package pager

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/rouletteup/admin-console/internal/models"
)

// fakeFetch serves pages out of a fixed dataset of strings.
func fakeFetch(dataset []string, size int) FetchFunc[string] {
	return func(_ context.Context, page, _ int) (models.Page[string], error) {
		total := (len(dataset) + size - 1) / size
		start := page * size
		end := start + size
		if start > len(dataset) {
			start = len(dataset)
		}
		if end > len(dataset) {
			end = len(dataset)
		}
		return models.Page[string]{
			Content: dataset[start:end],
			Page: models.PageInfo{
				Size:          size,
				Number:        page,
				TotalElements: int64(len(dataset)),
				TotalPages:    total,
			},
		}, nil
	}
}

func TestLoadReplacesContentWholesale(t *testing.T) {
	dataset := []string{"a", "b", "c", "d", "e"}
	c := New(fakeFetch(dataset, 2), 2)
	ctx := context.Background()

	if err := c.Load(ctx, 0); err != nil {
		t.Fatalf("Load(0) error = %v", err)
	}
	if got := c.Content(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Content() = %v", got)
	}
	if !c.HasNext() || c.HasPrev() {
		t.Errorf("HasNext=%v HasPrev=%v, want true false", c.HasNext(), c.HasPrev())
	}

	if err := c.Load(ctx, 2); err != nil {
		t.Fatalf("Load(2) error = %v", err)
	}
	if got := c.Content(); !reflect.DeepEqual(got, []string{"e"}) {
		t.Errorf("Content() after page 2 = %v", got)
	}
	if c.HasNext() || !c.HasPrev() {
		t.Errorf("HasNext=%v HasPrev=%v at last page, want false true", c.HasNext(), c.HasPrev())
	}
}

func TestLoadIsIdempotentWithoutMutation(t *testing.T) {
	dataset := []string{"a", "b", "c"}
	c := New(fakeFetch(dataset, 2), 2)
	ctx := context.Background()

	if err := c.Load(ctx, 0); err != nil {
		t.Fatalf("Load error = %v", err)
	}
	first := c.Content()
	if err := c.Load(ctx, 0); err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if !reflect.DeepEqual(first, c.Content()) {
		t.Errorf("re-running Load(0) changed content: %v vs %v", first, c.Content())
	}
}

func TestFailedLoadKeepsLastGoodContentAndStickyError(t *testing.T) {
	boom := errors.New("backend down")
	fail := false
	fetch := func(ctx context.Context, page, size int) (models.Page[string], error) {
		if fail {
			return models.Page[string]{}, boom
		}
		return fakeFetch([]string{"a", "b"}, 2)(ctx, page, size)
	}
	c := New(fetch, 2)
	ctx := context.Background()

	if err := c.Load(ctx, 0); err != nil {
		t.Fatalf("Load error = %v", err)
	}

	fail = true
	if err := c.Load(ctx, 1); !errors.Is(err, boom) {
		t.Fatalf("Load error = %v, want boom", err)
	}
	if got := c.Content(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("content after failure = %v, want last-good", got)
	}
	if !errors.Is(c.Err(), boom) {
		t.Errorf("Err() = %v, want sticky boom", c.Err())
	}

	// The error does not clear on its own; only the next load's outcome
	// replaces it.
	fail = false
	if err := c.Load(ctx, 0); err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if c.Err() != nil {
		t.Errorf("Err() after recovery = %v, want nil", c.Err())
	}
}

func TestStaleLoadCompletionIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	slowPage := models.Page[string]{
		Content: []string{"stale"},
		Page:    models.PageInfo{Size: 2, Number: 0, TotalElements: 1, TotalPages: 1},
	}
	fastPage := models.Page[string]{
		Content: []string{"fresh"},
		Page:    models.PageInfo{Size: 2, Number: 1, TotalElements: 3, TotalPages: 2},
	}
	started := make(chan struct{})
	fetch := func(_ context.Context, page, _ int) (models.Page[string], error) {
		if page == 0 {
			close(started)
			<-release // first request resolves after the second
			return slowPage, nil
		}
		return fastPage, nil
	}
	c := New(fetch, 2)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Load(ctx, 0)
	}()

	// Ensure the slow load is registered before superseding it.
	<-started
	if err := c.Load(ctx, 1); err != nil {
		t.Fatalf("Load(1) error = %v", err)
	}
	close(release)
	wg.Wait()

	if got := c.Content(); !reflect.DeepEqual(got, []string{"fresh"}) {
		t.Errorf("content = %v, want stale completion discarded", got)
	}
	if c.Number() != 1 {
		t.Errorf("Number() = %d, want 1", c.Number())
	}
}

func TestMutateReloadsOnSuccessOnly(t *testing.T) {
	var loads []int
	fetch := func(ctx context.Context, page, size int) (models.Page[string], error) {
		loads = append(loads, page)
		return fakeFetch([]string{"a", "b", "c"}, 2)(ctx, page, size)
	}
	c := New(fetch, 2)
	ctx := context.Background()

	if err := c.Load(ctx, 1); err != nil {
		t.Fatalf("Load error = %v", err)
	}

	// Successful mutation reloads the current page.
	called := false
	err := c.Mutate(ctx, func(context.Context) error {
		called = true
		return nil
	}, ReloadCurrent)
	if err != nil {
		t.Fatalf("Mutate error = %v", err)
	}
	if !called {
		t.Fatal("mutation op not invoked")
	}
	if !reflect.DeepEqual(loads, []int{1, 1}) {
		t.Errorf("loads = %v, want [1 1]", loads)
	}

	// Delete-style mutation reloads the caller-specified page.
	if err := c.Mutate(ctx, func(context.Context) error { return nil }, 0); err != nil {
		t.Fatalf("Mutate error = %v", err)
	}
	if !reflect.DeepEqual(loads, []int{1, 1, 0}) {
		t.Errorf("loads = %v, want [1 1 0]", loads)
	}

	// Failed mutation surfaces the error and does not reload.
	boom := errors.New("mutation rejected")
	if err := c.Mutate(ctx, func(context.Context) error { return boom }, ReloadCurrent); !errors.Is(err, boom) {
		t.Fatalf("Mutate error = %v, want boom", err)
	}
	if !reflect.DeepEqual(loads, []int{1, 1, 0}) {
		t.Errorf("loads after failed mutation = %v, want no reload", loads)
	}
	if !errors.Is(c.Err(), boom) {
		t.Errorf("Err() = %v, want boom", c.Err())
	}
}

func TestNextPrevRespectKnownBounds(t *testing.T) {
	var loads []int
	fetch := func(ctx context.Context, page, size int) (models.Page[string], error) {
		loads = append(loads, page)
		return fakeFetch([]string{"a", "b", "c"}, 2)(ctx, page, size)
	}
	c := New(fetch, 2)
	ctx := context.Background()

	// Prev at page 0 is a no-op.
	if err := c.Load(ctx, 0); err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if err := c.Prev(ctx); err != nil {
		t.Fatalf("Prev error = %v", err)
	}
	if err := c.Next(ctx); err != nil {
		t.Fatalf("Next error = %v", err)
	}
	// Next at the last known page is a no-op.
	if err := c.Next(ctx); err != nil {
		t.Fatalf("Next error = %v", err)
	}
	if !reflect.DeepEqual(loads, []int{0, 1}) {
		t.Errorf("loads = %v, want [0 1]", loads)
	}
}
