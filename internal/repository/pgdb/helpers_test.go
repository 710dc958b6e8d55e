package pgdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorySortColumn(t *testing.T) {
	assert.Equal(t, "name", categorySortColumn("categoryName"))
	assert.Equal(t, "id", categorySortColumn("categoryId"))

	// Всё вне белого списка сворачивается в безопасный id
	assert.Equal(t, "id", categorySortColumn("name; DROP TABLE categories"))
	assert.Equal(t, "id", categorySortColumn(""))
}

func TestProductSortColumn(t *testing.T) {
	cases := map[string]string{
		"productName":  "name",
		"price":        "price",
		"specialPrice": "special_price",
		"discount":     "discount",
		"quantity":     "quantity",
		"productId":    "id",
		"unknown":      "id",
		"":             "id",
	}

	for sortBy, want := range cases {
		assert.Equal(t, want, productSortColumn(sortBy), "sortBy=%q", sortBy)
	}
}

func TestSortDirection(t *testing.T) {
	assert.Equal(t, "ASC", sortDirection(true))
	assert.Equal(t, "DESC", sortDirection(false))
}
