package pager

// MaxPageButtons caps how many page-number controls render regardless of how
// large totalPages grows.
const MaxPageButtons = 5

// Window is the bounded set of page-number controls around the current page.
type Window struct {
	// Pages holds at most MaxPageButtons 0-based page indexes, centered on
	// the current page and clamped to the valid range.
	Pages []int

	// ShowFirst indicates a shortcut to page 0 plus a leading ellipsis
	// should render because the window starts after it.
	ShowFirst bool

	// ShowLast indicates a shortcut to the final page plus a trailing
	// ellipsis should render because the window ends before it.
	ShowLast bool
}

// PageWindow computes the control window for the given current page and page
// count. An empty collection (totalPages <= 0) yields no controls.
func PageWindow(current, totalPages int) Window {
	if totalPages <= 0 {
		return Window{}
	}
	if current < 0 {
		current = 0
	}
	if current > totalPages-1 {
		current = totalPages - 1
	}

	half := MaxPageButtons / 2
	start := current - half
	if start < 0 {
		start = 0
	}
	end := start + MaxPageButtons - 1
	if end > totalPages-1 {
		end = totalPages - 1
	}
	start = end - (MaxPageButtons - 1)
	if start < 0 {
		start = 0
	}

	pages := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return Window{
		Pages:     pages,
		ShowFirst: start > 0,
		ShowLast:  end < totalPages-1,
	}
}

// PadGrid right-pads items with nil placeholder slots up to cols*rows so a
// partially filled final page keeps a stable grid layout. Placeholders are
// never selectable. Overflowing items are truncated to the grid.
func PadGrid[T any](items []T, cols, rows int) []*T {
	need := cols * rows
	padded := make([]*T, 0, need)
	for i := range items {
		if len(padded) == need {
			break
		}
		padded = append(padded, &items[i])
	}
	for len(padded) < need {
		padded = append(padded, nil)
	}
	return padded
}
