package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/billing-admin/internal/api/dto"
	"github.com/spec-kit/billing-admin/internal/view"
)

// parseListQuery reads collection view state from query parameters.
func parseListQuery(c *fiber.Ctx) dto.ListQuery {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	return dto.ListQuery{
		Search: c.Query("search"),
		Sort:   c.Query("sort"),
		Desc:   c.Query("dir") == "desc",
		Page:   page,
	}
}

// applyListQuery replays the screen's transitions onto a fresh collection:
// search first (resets the page), then sort, then the requested page.
// SetSort flips direction when the field is already active, which happens
// when the request names the collection's default sort field, so the sort
// is re-applied until the direction matches the request.
func applyListQuery[T any](col *view.Collection[T], q dto.ListQuery) view.Page[T] {
	if q.Search != "" {
		col.SetSearchTerm(q.Search)
	}
	if q.Sort != "" {
		col.SetSort(q.Sort)
		if (col.SortDirection() == view.Desc) != q.Desc {
			col.SetSort(q.Sort)
		}
	}
	if q.Page > 0 {
		col.SetPage(q.Page)
	}
	return col.Page()
}

func pageMeta[T any](page view.Page[T]) dto.PageMeta {
	return dto.PageMeta{
		PageIndex:  page.PageIndex,
		PageCount:  page.PageCount,
		PageSize:   page.PageSize,
		TotalItems: page.TotalItems,
	}
}
