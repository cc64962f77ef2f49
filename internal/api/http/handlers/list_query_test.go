package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/billing-admin/internal/api/dto"
	"github.com/spec-kit/billing-admin/internal/domain"
	"github.com/spec-kit/billing-admin/internal/view"
)

func listUsers() []domain.User {
	return []domain.User{
		{ID: "u1", FullName: "Bob", Email: "bob@example.com"},
		{ID: "u2", FullName: "Alice", Email: "alice@example.com"},
		{ID: "u3", FullName: "Carol", Email: "carol@example.com"},
	}
}

func names(page view.Page[domain.User]) []string {
	out := make([]string, 0, len(page.Items))
	for _, u := range page.Items {
		out = append(out, u.FullName)
	}
	return out
}

func TestApplyListQuery_SortDirection(t *testing.T) {
	tests := []struct {
		name  string
		query dto.ListQuery
		want  []string
	}{
		{
			name:  "no sort keeps default ascending",
			query: dto.ListQuery{},
			want:  []string{"Alice", "Bob", "Carol"},
		},
		{
			name:  "default field ascending",
			query: dto.ListQuery{Sort: "full_name"},
			want:  []string{"Alice", "Bob", "Carol"},
		},
		{
			name:  "default field descending",
			query: dto.ListQuery{Sort: "full_name", Desc: true},
			want:  []string{"Carol", "Bob", "Alice"},
		},
		{
			name:  "other field ascending",
			query: dto.ListQuery{Sort: "email"},
			want:  []string{"Alice", "Bob", "Carol"},
		},
		{
			name:  "other field descending",
			query: dto.ListQuery{Sort: "email", Desc: true},
			want:  []string{"Carol", "Bob", "Alice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := applyListQuery(userCollection(listUsers(), 10), tt.query)
			assert.Equal(t, tt.want, names(page))
		})
	}
}

func TestApplyListQuery_SearchAndPage(t *testing.T) {
	page := applyListQuery(userCollection(listUsers(), 2), dto.ListQuery{Page: 99})
	assert.Equal(t, 2, page.PageIndex)
	assert.Equal(t, []string{"Carol"}, names(page))

	page = applyListQuery(userCollection(listUsers(), 2), dto.ListQuery{Search: "ali"})
	assert.Equal(t, []string{"Alice"}, names(page))
	assert.Equal(t, 1, page.PageIndex)
}
