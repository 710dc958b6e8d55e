package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageMeta(t *testing.T) {
	cases := []struct {
		name          string
		pageNumber    int32
		pageSize      int32
		totalElements int64
		wantPages     int32
		wantLast      bool
	}{
		{"exact fit", 0, 5, 10, 2, false},
		{"partial last page", 1, 5, 11, 3, false},
		{"on last page", 2, 5, 11, 3, true},
		{"beyond last page", 5, 5, 11, 3, true},
		{"single page", 0, 10, 3, 1, true},
		{"empty", 0, 10, 0, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			meta := NewPageMeta(tc.pageNumber, tc.pageSize, tc.totalElements)

			assert.Equal(t, tc.wantPages, meta.TotalPages)
			assert.Equal(t, tc.wantLast, meta.LastPage)
			assert.Equal(t, tc.totalElements, meta.TotalElements)
		})
	}
}

func TestNewPageQuery(t *testing.T) {
	cases := []struct {
		sortOrder     string
		wantAscending bool
	}{
		{"asc", true},
		{"ASC", true},
		{"Asc", true},
		{"desc", false},
		{"DESC", false},
		{"", false},
		{"garbage", false},
	}

	for _, tc := range cases {
		t.Run("order "+tc.sortOrder, func(t *testing.T) {
			q := NewPageQuery(&PageReq{PageNumber: 1, PageSize: 20, SortBy: "price", SortOrder: tc.sortOrder})

			assert.Equal(t, tc.wantAscending, q.Ascending)
			assert.Equal(t, int32(1), q.PageNumber)
			assert.Equal(t, int32(20), q.PageSize)
			assert.Equal(t, "price", q.SortBy)
		})
	}
}

func TestNewOutboxEvent(t *testing.T) {
	event := NewOutboxEvent(ProductCreated, 7, []byte(`{"productId":7}`))

	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, Pending, event.Status)
	assert.Equal(t, int64(7), event.AggregateID)
	assert.False(t, event.CreatedAt.IsZero())

	other := NewOutboxEvent(ProductCreated, 7, nil)
	assert.NotEqual(t, event.EventID, other.EventID)
}
