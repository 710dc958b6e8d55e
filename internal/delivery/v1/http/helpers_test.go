package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTPResponse(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"category not found", fmt.Errorf("category with id 5: %w", e.ErrCategoryNotFound), http.StatusNotFound},
		{"product not found", e.ErrProductNotFound, http.StatusNotFound},
		{"no categories", e.ErrNoCategories, http.StatusNotFound},
		{"no products", fmt.Errorf("Phones category does not have any products: %w", e.ErrNoProducts), http.StatusNotFound},
		{"category conflict", e.ErrCategoryExists, http.StatusConflict},
		{"product conflict", e.ErrProductExists, http.StatusConflict},
		{"bad request", e.ErrStatusBadRequest, http.StatusBadRequest},
		{"unsupported media type", e.ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
		{"unknown error", fmt.Errorf("pool exhausted"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := ToHTTPResponse(tc.err)
			assert.Equal(t, tc.wantCode, code)
			if tc.wantCode == http.StatusInternalServerError {
				// Внутренняя ошибка не протекает наружу
				assert.Equal(t, e.ErrInternalServerError.Error(), msg)
			} else {
				assert.Equal(t, tc.err.Error(), msg)
			}
		})
	}
}

func TestWriteErrorValidation(t *testing.T) {
	verr := e.NewValidationError()
	verr.Add("categoryName", "category name must be at least 5 characters long")

	rec := httptest.NewRecorder()
	WriteError(rec, verr)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "categoryName")
}

func TestParsePageReqDefaults(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/public/categories", nil)

	req, err := parsePageReq(r, "categoryId")
	require.NoError(t, err)

	assert.Equal(t, int32(0), req.PageNumber)
	assert.Equal(t, int32(10), req.PageSize)
	assert.Equal(t, "categoryId", req.SortBy)
	assert.Equal(t, "asc", req.SortOrder)
}

func TestParsePageReqExplicit(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/public/products?pageNumber=2&pageSize=25&sortBy=price&sortOrder=DESC", nil)

	req, err := parsePageReq(r, "productId")
	require.NoError(t, err)

	assert.Equal(t, int32(2), req.PageNumber)
	assert.Equal(t, int32(25), req.PageSize)
	assert.Equal(t, "price", req.SortBy)
	assert.Equal(t, "DESC", req.SortOrder)
}

func TestParsePageReqInvalid(t *testing.T) {
	cases := []string{
		"pageNumber=abc",
		"pageNumber=-1",
		"pageSize=0",
		"pageSize=-5",
		"pageSize=abc",
	}

	for _, qs := range cases {
		t.Run(qs, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/v1/public/products?"+qs, nil)

			_, err := parsePageReq(r, "productId")
			assert.ErrorIs(t, err, e.ErrStatusBadRequest)
		})
	}
}
