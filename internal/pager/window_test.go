package pager

import (
	"reflect"
	"testing"
)

func TestPageWindow(t *testing.T) {
	tests := []struct {
		name       string
		current    int
		totalPages int
		want       Window
	}{
		{
			name:       "empty collection yields no controls",
			current:    0,
			totalPages: 0,
			want:       Window{},
		},
		{
			name:       "fewer pages than the cap shows all",
			current:    1,
			totalPages: 3,
			want:       Window{Pages: []int{0, 1, 2}},
		},
		{
			name:       "window centers on the current page",
			current:    10,
			totalPages: 21,
			want:       Window{Pages: []int{8, 9, 10, 11, 12}, ShowFirst: true, ShowLast: true},
		},
		{
			name:       "window clamps at the start",
			current:    0,
			totalPages: 21,
			want:       Window{Pages: []int{0, 1, 2, 3, 4}, ShowLast: true},
		},
		{
			name:       "window clamps at the end",
			current:    20,
			totalPages: 21,
			want:       Window{Pages: []int{16, 17, 18, 19, 20}, ShowFirst: true},
		},
		{
			name:       "near-start keeps five entries",
			current:    1,
			totalPages: 21,
			want:       Window{Pages: []int{0, 1, 2, 3, 4}, ShowLast: true},
		},
		{
			name:       "out-of-range current is clamped",
			current:    99,
			totalPages: 4,
			want:       Window{Pages: []int{0, 1, 2, 3}},
		},
		{
			name:       "single page",
			current:    0,
			totalPages: 1,
			want:       Window{Pages: []int{0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageWindow(tt.current, tt.totalPages)
			if len(got.Pages) > MaxPageButtons {
				t.Errorf("window has %d entries, cap is %d", len(got.Pages), MaxPageButtons)
			}
			if !reflect.DeepEqual(got.Pages, tt.want.Pages) && !(len(got.Pages) == 0 && len(tt.want.Pages) == 0) {
				t.Errorf("Pages = %v, want %v", got.Pages, tt.want.Pages)
			}
			if got.ShowFirst != tt.want.ShowFirst || got.ShowLast != tt.want.ShowLast {
				t.Errorf("ShowFirst/ShowLast = %v/%v, want %v/%v",
					got.ShowFirst, got.ShowLast, tt.want.ShowFirst, tt.want.ShowLast)
			}
		})
	}
}

func TestPageWindowNeverExceedsCap(t *testing.T) {
	for total := 0; total <= 30; total++ {
		for current := 0; current < total; current++ {
			w := PageWindow(current, total)
			if len(w.Pages) > MaxPageButtons {
				t.Fatalf("PageWindow(%d, %d) has %d entries", current, total, len(w.Pages))
			}
			for _, p := range w.Pages {
				if p < 0 || p >= total {
					t.Fatalf("PageWindow(%d, %d) contains out-of-range page %d", current, total, p)
				}
			}
		}
	}
}

func TestPadGrid(t *testing.T) {
	t.Run("partial page is padded to the grid", func(t *testing.T) {
		items := []string{"a", "b", "c"}
		grid := PadGrid(items, 3, 4)
		if len(grid) != 12 {
			t.Fatalf("len = %d, want 12", len(grid))
		}
		for i := 0; i < 3; i++ {
			if grid[i] == nil || *grid[i] != items[i] {
				t.Errorf("grid[%d] = %v, want %q", i, grid[i], items[i])
			}
		}
		for i := 3; i < 12; i++ {
			if grid[i] != nil {
				t.Errorf("grid[%d] = %v, want placeholder", i, *grid[i])
			}
		}
	})

	t.Run("full page needs no padding", func(t *testing.T) {
		items := make([]string, 12)
		grid := PadGrid(items, 3, 4)
		if len(grid) != 12 {
			t.Fatalf("len = %d, want 12", len(grid))
		}
		for i, slot := range grid {
			if slot == nil {
				t.Errorf("grid[%d] is a placeholder in a full page", i)
			}
		}
	})

	t.Run("overflow is truncated to the grid", func(t *testing.T) {
		items := make([]int, 15)
		grid := PadGrid(items, 3, 4)
		if len(grid) != 12 {
			t.Fatalf("len = %d, want 12", len(grid))
		}
	})
}
