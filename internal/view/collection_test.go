package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name string
	ID   int
	Note *string
}

func recordConfig(pageSize int) Config[record] {
	return Config[record]{
		Searchable: []func(record) string{
			func(r record) string { return r.Name },
		},
		SortKeys: map[string]SortKey[record]{
			"name": func(r record) (string, bool) { return r.Name, true },
			"note": func(r record) (string, bool) {
				if r.Note == nil {
					return "", false
				}
				return *r.Note, true
			},
		},
		DefaultSort: "name",
		PageSize:    pageSize,
	}
}

func names(items []record) []string {
	out := make([]string, 0, len(items))
	for _, r := range items {
		out = append(out, r.Name)
	}
	return out
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	col := NewCollection([]record{{Name: "Apple"}, {Name: "banana"}, {Name: "Apricot"}}, recordConfig(10))
	col.SetSearchTerm("ap")

	page := col.Page()
	assert.Equal(t, []string{"Apple", "Apricot"}, names(page.Items))
	assert.Equal(t, 2, page.TotalItems)
}

func TestFilter_EmptyTermIsIdentity(t *testing.T) {
	col := NewCollection([]record{{Name: "Apple"}, {Name: "banana"}}, recordConfig(10))
	assert.Equal(t, 2, col.Page().TotalItems)
}

func TestSort_StableTies(t *testing.T) {
	items := []record{{Name: "A", ID: 1}, {Name: "A", ID: 2}}
	col := NewCollection(items, recordConfig(10))

	asc := col.Page()
	require.Len(t, asc.Items, 2)
	assert.Equal(t, 1, asc.Items[0].ID)
	assert.Equal(t, 2, asc.Items[1].ID)

	// Flipping direction must not change tie order for equal keys.
	col.SetSort("name")
	assert.Equal(t, Desc, col.SortDirection())
	desc := col.Page()
	assert.Equal(t, 1, desc.Items[0].ID)
	assert.Equal(t, 2, desc.Items[1].ID)
}

func TestSort_NullsLastBothDirections(t *testing.T) {
	note := func(s string) *string { return &s }
	items := []record{
		{Name: "x", Note: nil},
		{Name: "y", Note: note("beta")},
		{Name: "z", Note: note("alpha")},
	}

	col := NewCollection(items, recordConfig(10))
	col.SetSort("note")
	page := col.Page()
	assert.Equal(t, []string{"z", "y", "x"}, names(page.Items))

	col.SetSort("note") // flip to Desc
	page = col.Page()
	assert.Equal(t, []string{"y", "z", "x"}, names(page.Items))
}

func TestPagination_CountAndClamp(t *testing.T) {
	items := make([]record, 23)
	for i := range items {
		items[i] = record{Name: string(rune('a' + i)), ID: i}
	}
	col := NewCollection(items, recordConfig(10))

	page := col.Page()
	assert.Equal(t, 3, page.PageCount)
	assert.Len(t, page.Items, 10)

	col.SetPage(99)
	page = col.Page()
	assert.Equal(t, 3, page.PageIndex)
	assert.Len(t, page.Items, 3)

	col.SetPage(-5)
	assert.Equal(t, 1, col.Page().PageIndex)
}

func TestPagination_EmptyCollection(t *testing.T) {
	col := NewCollection(nil, recordConfig(10))

	page := col.Page()
	assert.Equal(t, 1, page.PageCount)
	assert.Equal(t, 1, page.PageIndex)
	assert.Empty(t, page.Items)
}

func TestSetSearchTerm_ResetsPage(t *testing.T) {
	items := make([]record, 30)
	for i := range items {
		items[i] = record{Name: "item", ID: i}
	}
	col := NewCollection(items, recordConfig(10))
	col.SetPage(3)
	require.Equal(t, 3, col.Page().PageIndex)

	col.SetSearchTerm("item")
	assert.Equal(t, 1, col.Page().PageIndex)
}

func TestSetSort_FlipKeepsPage(t *testing.T) {
	items := make([]record, 30)
	for i := range items {
		items[i] = record{Name: string(rune('a' + i%26)), ID: i}
	}
	col := NewCollection(items, recordConfig(10))
	col.SetPage(2)

	col.SetSort("name")
	assert.Equal(t, Desc, col.SortDirection())
	assert.Equal(t, 2, col.Page().PageIndex, "same-field sort flips direction without resetting the page")

	col.SetSort("note")
	assert.Equal(t, Asc, col.SortDirection())
	assert.Equal(t, "note", col.SortField())
	assert.Equal(t, 2, col.Page().PageIndex)
}

func TestSetItems_ClampsPage(t *testing.T) {
	items := make([]record, 30)
	for i := range items {
		items[i] = record{Name: "n", ID: i}
	}
	col := NewCollection(items, recordConfig(10))
	col.SetPage(3)

	col.SetItems(items[:5])
	page := col.Page()
	assert.Equal(t, 1, page.PageIndex)
	assert.Len(t, page.Items, 5)
}
