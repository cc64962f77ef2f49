// Package view provides the generic search/sort/paginate engine every list
// screen of the console renders through, replacing the per-screen ad hoc
// variants that drifted apart in edge-case handling.
package view

import (
	"sort"
	"strings"
)

// Direction orders a sort ascending or descending. Desc is the mirror of
// Asc, not a separate comparator.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// SortKey projects an item to its comparable key. ok=false marks a
// null/absent key, which sorts last regardless of direction.
type SortKey[T any] func(T) (key string, ok bool)

// Config declares how a collection is searched and sorted.
type Config[T any] struct {
	// Searchable projections are matched against the search term.
	Searchable []func(T) string
	// SortKeys maps sortable field names to their projections.
	SortKeys map[string]SortKey[T]
	// DefaultSort is the initial sort field. Must be a key of SortKeys.
	DefaultSort string
	// PageSize is constant for the lifetime of the collection. Values < 1
	// fall back to 10.
	PageSize int
}

// Page is the visible slice computed from the current state.
type Page[T any] struct {
	Items      []T
	PageIndex  int
	PageCount  int
	PageSize   int
	TotalItems int
}

// Collection turns a raw list of records into a filtered, sorted, paginated
// visible page. State changes only through the transition methods; none of
// them can fail, out-of-range pages are clamped rather than rejected.
type Collection[T any] struct {
	items []T
	cfg   Config[T]

	searchTerm string
	sortField  string
	direction  Direction
	pageIndex  int
}

// NewCollection builds a collection over items with page 1 and the default
// sort ascending.
func NewCollection[T any](items []T, cfg Config[T]) *Collection[T] {
	if cfg.PageSize < 1 {
		cfg.PageSize = 10
	}
	return &Collection[T]{
		items:     items,
		cfg:       cfg,
		sortField: cfg.DefaultSort,
		direction: Asc,
		pageIndex: 1,
	}
}

// SetItems replaces the raw items, keeping search and sort but clamping the
// page into the new result set.
func (c *Collection[T]) SetItems(items []T) {
	c.items = items
	c.pageIndex = clamp(c.pageIndex, 1, c.pageCount())
}

// SetSearchTerm changes the filter and resets to page 1; the old page
// position is meaningless against a different result set.
func (c *Collection[T]) SetSearchTerm(term string) {
	c.searchTerm = term
	c.pageIndex = 1
}

// SetSort sorts by field ascending, or flips the direction when field is
// already the current sort. The page is kept either way.
func (c *Collection[T]) SetSort(field string) {
	if field == c.sortField {
		if c.direction == Asc {
			c.direction = Desc
		} else {
			c.direction = Asc
		}
		return
	}
	c.sortField = field
	c.direction = Asc
}

// SetPage moves to page n, clamped into [1, pageCount].
func (c *Collection[T]) SetPage(n int) {
	c.pageIndex = clamp(n, 1, c.pageCount())
}

// SearchTerm returns the current filter term.
func (c *Collection[T]) SearchTerm() string { return c.searchTerm }

// SortField returns the current sort field.
func (c *Collection[T]) SortField() string { return c.sortField }

// SortDirection returns the current sort direction.
func (c *Collection[T]) SortDirection() Direction { return c.direction }

// Page computes the visible page from the current state.
func (c *Collection[T]) Page() Page[T] {
	visible := c.sorted(c.filtered())

	total := len(visible)
	pageCount := pageCountFor(total, c.cfg.PageSize)
	index := clamp(c.pageIndex, 1, pageCount)

	start := (index - 1) * c.cfg.PageSize
	if start > total {
		start = total
	}
	end := start + c.cfg.PageSize
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      visible[start:end],
		PageIndex:  index,
		PageCount:  pageCount,
		PageSize:   c.cfg.PageSize,
		TotalItems: total,
	}
}

// filtered keeps items whose searchable projections contain the search term,
// case-insensitive. An empty term keeps everything.
func (c *Collection[T]) filtered() []T {
	if c.searchTerm == "" {
		return append([]T(nil), c.items...)
	}
	term := strings.ToLower(c.searchTerm)
	kept := make([]T, 0, len(c.items))
	for _, item := range c.items {
		for _, project := range c.cfg.Searchable {
			if strings.Contains(strings.ToLower(project(item)), term) {
				kept = append(kept, item)
				break
			}
		}
	}
	return kept
}

// sorted stably orders items by the current sort key. Stability is
// load-bearing: ties keep their pre-sort relative order under both
// directions, so flipping direction never scrambles equal keys. Null keys
// sort last regardless of direction.
func (c *Collection[T]) sorted(items []T) []T {
	key, exists := c.cfg.SortKeys[c.sortField]
	if !exists {
		return items
	}
	desc := c.direction == Desc
	sort.SliceStable(items, func(i, j int) bool {
		a, aok := key(items[i])
		b, bok := key(items[j])
		if !aok {
			return false
		}
		if !bok {
			return true
		}
		if desc {
			return a > b
		}
		return a < b
	})
	return items
}

func (c *Collection[T]) pageCount() int {
	return pageCountFor(len(c.filtered()), c.cfg.PageSize)
}

func pageCountFor(total, pageSize int) int {
	count := (total + pageSize - 1) / pageSize
	if count < 1 {
		return 1
	}
	return count
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
