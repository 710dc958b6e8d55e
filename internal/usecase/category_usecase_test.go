package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryUC(categoryRepo *categoryRepoMock, outboxRepo *outboxRepoMock) *CategoryUseCase {
	return NewCategoryUC(categoryRepo, outboxRepo, &stubTransactor{}, nopLogger{})
}

func TestCreateCategory(t *testing.T) {
	repo := &categoryRepoMock{
		create: func(ctx context.Context, category *domain.Category) (*domain.Category, error) {
			saved := *category
			saved.ID = 7
			return &saved, nil
		},
	}
	outbox := &outboxRepoMock{}
	uc := newCategoryUC(repo, outbox)

	res, err := uc.CreateCategory(context.Background(), &CategoryDTO{CategoryName: "Electronics"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), res.CategoryID)
	assert.Equal(t, "Electronics", res.CategoryName)

	require.Len(t, outbox.events, 1)
	assert.Equal(t, CategoryCreated, outbox.events[0].EventType)
	assert.Equal(t, int64(7), outbox.events[0].AggregateID)

	var payload CategoryDTO
	require.NoError(t, json.Unmarshal(outbox.events[0].Payload, &payload))
	assert.Equal(t, "Electronics", payload.CategoryName)
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	repo := &categoryRepoMock{
		getByName: func(ctx context.Context, name string) (*domain.Category, error) {
			return &domain.Category{ID: 1, Name: name}, nil
		},
	}
	uc := newCategoryUC(repo, &outboxRepoMock{})

	_, err := uc.CreateCategory(context.Background(), &CategoryDTO{CategoryName: "Electronics"})
	require.ErrorIs(t, err, e.ErrCategoryExists)
	assert.Empty(t, repo.created)
}

func TestCreateCategoryValidation(t *testing.T) {
	uc := newCategoryUC(&categoryRepoMock{}, &outboxRepoMock{})

	cases := []struct {
		name         string
		categoryName string
	}{
		{"blank name", "   "},
		{"too short", "Tea"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateCategory(context.Background(), &CategoryDTO{CategoryName: tc.categoryName})

			var verr *e.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, "categoryName")
		})
	}
}

func TestUpdateCategory(t *testing.T) {
	repo := &categoryRepoMock{
		getByID: func(ctx context.Context, id int64) (*domain.Category, error) {
			return &domain.Category{ID: id, Name: "Old name"}, nil
		},
		update: func(ctx context.Context, category *domain.Category) (*domain.Category, error) {
			return category, nil
		},
	}
	outbox := &outboxRepoMock{}
	uc := newCategoryUC(repo, outbox)

	res, err := uc.UpdateCategory(context.Background(), 3, &CategoryDTO{CategoryName: "New name"})
	require.NoError(t, err)

	assert.Equal(t, int64(3), res.CategoryID)
	assert.Equal(t, "New name", res.CategoryName)
	assert.Equal(t, []OutboxEventType{CategoryUpdated}, outbox.types())
}

func TestUpdateCategoryNotFound(t *testing.T) {
	uc := newCategoryUC(&categoryRepoMock{}, &outboxRepoMock{})

	_, err := uc.UpdateCategory(context.Background(), 42, &CategoryDTO{CategoryName: "Whatever"})
	require.ErrorIs(t, err, e.ErrCategoryNotFound)
	assert.Contains(t, err.Error(), "42")
}

func TestUpdateCategoryNameTaken(t *testing.T) {
	repo := &categoryRepoMock{
		getByID: func(ctx context.Context, id int64) (*domain.Category, error) {
			return &domain.Category{ID: id, Name: "Old name"}, nil
		},
		update: func(ctx context.Context, category *domain.Category) (*domain.Category, error) {
			return nil, e.ErrCategoryExists
		},
	}
	outbox := &outboxRepoMock{}
	uc := newCategoryUC(repo, outbox)

	_, err := uc.UpdateCategory(context.Background(), 3, &CategoryDTO{CategoryName: "Taken name"})
	require.ErrorIs(t, err, e.ErrCategoryExists)
	assert.Empty(t, outbox.events)
}

func TestDeleteCategory(t *testing.T) {
	repo := &categoryRepoMock{
		getByID: func(ctx context.Context, id int64) (*domain.Category, error) {
			return &domain.Category{ID: id, Name: "Electronics"}, nil
		},
		delete: func(ctx context.Context, id int64) error {
			return nil
		},
	}
	outbox := &outboxRepoMock{}
	uc := newCategoryUC(repo, outbox)

	res, err := uc.DeleteCategory(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, int64(5), res.CategoryID)
	assert.Equal(t, "Category deleted successfully", res.Message)
	assert.Equal(t, []int64{5}, repo.deleted)
	assert.Equal(t, []OutboxEventType{CategoryDeleted}, outbox.types())
}

func TestDeleteCategoryNotFound(t *testing.T) {
	repo := &categoryRepoMock{}
	uc := newCategoryUC(repo, &outboxRepoMock{})

	_, err := uc.DeleteCategory(context.Background(), 99)
	require.ErrorIs(t, err, e.ErrCategoryNotFound)
	assert.Empty(t, repo.deleted)
}

func TestGetAllCategories(t *testing.T) {
	repo := &categoryRepoMock{
		getPage: func(ctx context.Context, query *PageQuery) ([]*domain.Category, *PageMeta, error) {
			categories := []*domain.Category{
				{ID: 1, Name: "Electronics"},
				{ID: 2, Name: "Groceries"},
			}
			return categories, NewPageMeta(query.PageNumber, query.PageSize, 5), nil
		},
	}
	uc := newCategoryUC(repo, &outboxRepoMock{})

	res, err := uc.GetAllCategories(context.Background(), &PageReq{PageNumber: 0, PageSize: 2, SortBy: "categoryId", SortOrder: "asc"})
	require.NoError(t, err)

	assert.Len(t, res.Content, 2)
	assert.Equal(t, int64(5), res.TotalElements)
	assert.Equal(t, int32(3), res.TotalPages)
	assert.False(t, res.LastPage)
}

func TestGetAllCategoriesEmpty(t *testing.T) {
	repo := &categoryRepoMock{
		getPage: func(ctx context.Context, query *PageQuery) ([]*domain.Category, *PageMeta, error) {
			return nil, NewPageMeta(query.PageNumber, query.PageSize, 0), nil
		},
	}
	uc := newCategoryUC(repo, &outboxRepoMock{})

	_, err := uc.GetAllCategories(context.Background(), &PageReq{PageNumber: 0, PageSize: 10})
	require.ErrorIs(t, err, e.ErrNoCategories)
}

func TestGetCategory(t *testing.T) {
	repo := &categoryRepoMock{
		getByID: func(ctx context.Context, id int64) (*domain.Category, error) {
			return &domain.Category{ID: id, Name: "Electronics"}, nil
		},
	}
	uc := newCategoryUC(repo, &outboxRepoMock{})

	res, err := uc.GetCategory(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Electronics", res.CategoryName)

	uc = newCategoryUC(&categoryRepoMock{}, &outboxRepoMock{})
	_, err = uc.GetCategory(context.Background(), 1)
	require.ErrorIs(t, err, e.ErrCategoryNotFound)
}
