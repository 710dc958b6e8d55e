package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type productUCDeps struct {
	productRepo  *productRepoMock
	categoryRepo *categoryRepoMock
	outbox       *outboxRepoMock
	images       *imagesInfraMock
	cache        *cacheRepoMock
}

func newProductUC(deps *productUCDeps) *ProductUseCase {
	if deps.productRepo == nil {
		deps.productRepo = &productRepoMock{}
	}
	if deps.categoryRepo == nil {
		deps.categoryRepo = &categoryRepoMock{
			getByID: func(ctx context.Context, id int64) (*domain.Category, error) {
				return &domain.Category{ID: id, Name: "Electronics"}, nil
			},
		}
	}
	if deps.outbox == nil {
		deps.outbox = &outboxRepoMock{}
	}
	if deps.images == nil {
		deps.images = newImagesInfraMock("products/test.jpg")
	}
	if deps.cache == nil {
		deps.cache = newCacheRepoMock()
	}

	return NewProductUC(
		deps.productRepo,
		deps.categoryRepo,
		deps.outbox,
		deps.images,
		deps.cache,
		&stubTransactor{},
		nopLogger{},
	)
}

func TestAddProduct(t *testing.T) {
	deps := &productUCDeps{
		productRepo: &productRepoMock{
			create: func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
				saved := *product
				saved.ID = 11
				return &saved, nil
			},
		},
	}
	uc := newProductUC(deps)

	res, err := uc.AddProduct(context.Background(), 1, &ProductDTO{
		ProductName: "Phone",
		Description: "Great phone",
		Quantity:    3,
		Price:       1000,
		Discount:    10,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), res.ProductID)
	assert.Equal(t, domain.DefaultImage, res.Image)
	assert.Equal(t, int64(1), res.CategoryID)
	assert.InDelta(t, 900.0, res.SpecialPrice, 0.001)

	require.Len(t, deps.outbox.events, 1)
	assert.Equal(t, ProductCreated, deps.outbox.events[0].EventType)
}

func TestAddProductCategoryNotFound(t *testing.T) {
	deps := &productUCDeps{categoryRepo: &categoryRepoMock{}}
	uc := newProductUC(deps)

	_, err := uc.AddProduct(context.Background(), 42, &ProductDTO{
		ProductName: "Phone",
		Price:       100,
	})
	require.ErrorIs(t, err, e.ErrCategoryNotFound)
	assert.Empty(t, deps.productRepo.created)
}

func TestAddProductDuplicateName(t *testing.T) {
	deps := &productUCDeps{
		productRepo: &productRepoMock{
			getByName: func(ctx context.Context, name string) (*domain.Product, error) {
				return &domain.Product{ID: 1, Name: name}, nil
			},
		},
	}
	uc := newProductUC(deps)

	_, err := uc.AddProduct(context.Background(), 1, &ProductDTO{
		ProductName: "Phone",
		Price:       100,
	})
	require.ErrorIs(t, err, e.ErrProductExists)
	assert.Empty(t, deps.productRepo.created)
}

func TestAddProductValidation(t *testing.T) {
	uc := newProductUC(&productUCDeps{})

	cases := []struct {
		name  string
		req   *ProductDTO
		field string
	}{
		{"blank name", &ProductDTO{ProductName: " ", Price: 10}, "productName"},
		{"short name", &ProductDTO{ProductName: "Ph", Price: 10}, "productName"},
		{"short description", &ProductDTO{ProductName: "Phone", Description: "abc", Price: 10}, "description"},
		{"negative price", &ProductDTO{ProductName: "Phone", Price: -1}, "price"},
		{"negative quantity", &ProductDTO{ProductName: "Phone", Price: 10, Quantity: -5}, "quantity"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.AddProduct(context.Background(), 1, tc.req)

			var verr *e.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tc.field)
		})
	}
}

func TestComputeSpecialPrice(t *testing.T) {
	cases := []struct {
		price    float64
		discount float64
		want     float64
	}{
		{1000, 10, 900},
		{199.99, 0, 199.99},
		{100, 33.33, 66.67},
		{0, 50, 0},
		{49.99, 25, 37.49},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%.2f-%.2f", tc.price, tc.discount), func(t *testing.T) {
			assert.InDelta(t, tc.want, computeSpecialPrice(tc.price, tc.discount), 0.001)
		})
	}
}

func TestGetAllProductsEmpty(t *testing.T) {
	deps := &productUCDeps{
		productRepo: &productRepoMock{
			getPage: func(ctx context.Context, query *PageQuery) ([]*domain.Product, *PageMeta, error) {
				return nil, NewPageMeta(query.PageNumber, query.PageSize, 0), nil
			},
		},
	}
	uc := newProductUC(deps)

	_, err := uc.GetAllProducts(context.Background(), &PageReq{PageNumber: 0, PageSize: 10})
	require.ErrorIs(t, err, e.ErrNoProducts)
}

func TestGetProductCacheHit(t *testing.T) {
	cache := newCacheRepoMock()
	cache.products[4] = &ProductDTO{ProductID: 4, ProductName: "Cached phone"}

	deps := &productUCDeps{
		cache: cache,
		productRepo: &productRepoMock{
			getByID: func(ctx context.Context, id int64) (*domain.Product, error) {
				t.Fatal("repository must not be queried on cache hit")
				return nil, nil
			},
		},
	}
	uc := newProductUC(deps)

	res, err := uc.GetProduct(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Cached phone", res.ProductName)
}

func TestGetProductCacheMiss(t *testing.T) {
	deps := &productUCDeps{
		productRepo: &productRepoMock{
			getByID: func(ctx context.Context, id int64) (*domain.Product, error) {
				return &domain.Product{ID: id, Name: "Phone", Price: 100, SpecialPrice: 100}, nil
			},
		},
	}
	uc := newProductUC(deps)

	res, err := uc.GetProduct(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Phone", res.ProductName)

	// Кэш дозаполняется в фоне
	select {
	case <-deps.cache.set:
	case <-time.After(time.Second):
		t.Fatal("expected background cache fill")
	}

	cached, _ := deps.cache.GetProduct(context.Background(), 4)
	require.NotNil(t, cached)
	assert.Equal(t, "Phone", cached.ProductName)
}

func TestGetProductNotFound(t *testing.T) {
	uc := newProductUC(&productUCDeps{})

	_, err := uc.GetProduct(context.Background(), 77)
	require.ErrorIs(t, err, e.ErrProductNotFound)
	assert.Contains(t, err.Error(), "77")
}

func TestSearchByCategory(t *testing.T) {
	deps := &productUCDeps{
		productRepo: &productRepoMock{
			getPageByCategory: func(ctx context.Context, categoryID int64, query *PageQuery) ([]*domain.Product, *PageMeta, error) {
				products := []*domain.Product{
					{ID: 1, Name: "Cheap phone", Price: 100, CategoryID: categoryID},
					{ID: 2, Name: "Expensive phone", Price: 500, CategoryID: categoryID},
				}
				return products, NewPageMeta(query.PageNumber, query.PageSize, 2), nil
			},
		},
	}
	uc := newProductUC(deps)

	res, err := uc.SearchByCategory(context.Background(), 1, &PageReq{PageNumber: 0, PageSize: 10})
	require.NoError(t, err)

	assert.Len(t, res.Content, 2)
	assert.Equal(t, int64(2), res.TotalElements)
	assert.True(t, res.LastPage)
}

func TestSearchByCategoryEmpty(t *testing.T) {
	deps := &productUCDeps{
		productRepo: &productRepoMock{
			getPageByCategory: func(ctx context.Context, categoryID int64, query *PageQuery) ([]*domain.Product, *PageMeta, error) {
				return nil, NewPageMeta(query.PageNumber, query.PageSize, 0), nil
			},
		},
	}
	uc := newProductUC(deps)

	_, err := uc.SearchByCategory(context.Background(), 1, &PageReq{PageNumber: 0, PageSize: 10})
	require.ErrorIs(t, err, e.ErrNoProducts)
	assert.Contains(t, err.Error(), "Electronics category does not have any products")
}

func TestSearchByKeyword(t *testing.T) {
	deps := &productUCDeps{
		productRepo: &productRepoMock{
			getPageByKeyword: func(ctx context.Context, keyword string, query *PageQuery) ([]*domain.Product, *PageMeta, error) {
				products := []*domain.Product{{ID: 1, Name: "Gaming laptop", Price: 1500}}
				return products, NewPageMeta(query.PageNumber, query.PageSize, 1), nil
			},
		},
	}
	uc := newProductUC(deps)

	res, err := uc.SearchByKeyword(context.Background(), "laptop", &PageReq{PageNumber: 0, PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.TotalElements)
	assert.Equal(t, int32(1), res.TotalPages)
	assert.True(t, res.LastPage)
}

func TestSearchByKeywordEmpty(t *testing.T) {
	deps := &productUCDeps{
		productRepo: &productRepoMock{
			getPageByKeyword: func(ctx context.Context, keyword string, query *PageQuery) ([]*domain.Product, *PageMeta, error) {
				return nil, NewPageMeta(query.PageNumber, query.PageSize, 0), nil
			},
		},
	}
	uc := newProductUC(deps)

	_, err := uc.SearchByKeyword(context.Background(), "missing", &PageReq{PageNumber: 0, PageSize: 10})
	require.ErrorIs(t, err, e.ErrNoProducts)
	assert.Contains(t, err.Error(), "missing")
}

func TestUpdateProduct(t *testing.T) {
	deps := &productUCDeps{
		productRepo: &productRepoMock{
			getByID: func(ctx context.Context, id int64) (*domain.Product, error) {
				return &domain.Product{
					ID: id, Name: "Phone", Image: "products/old.jpg",
					Description: "Old description", Quantity: 1,
					Price: 100, Discount: 0, SpecialPrice: 100, CategoryID: 2,
				}, nil
			},
			update: func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
				return product, nil
			},
		},
	}
	uc := newProductUC(deps)

	res, err := uc.UpdateProduct(context.Background(), 9, &ProductDTO{
		ProductName: "Phone Pro",
		Description: "New description",
		Quantity:    5,
		Price:       200,
		Discount:    25,
	})
	require.NoError(t, err)

	assert.Equal(t, "Phone Pro", res.ProductName)
	assert.InDelta(t, 150.0, res.SpecialPrice, 0.001)
	// Изображение и категория не затрагиваются
	assert.Equal(t, "products/old.jpg", res.Image)
	assert.Equal(t, int64(2), res.CategoryID)

	assert.Equal(t, []int64{9}, deps.cache.deleted)
	assert.Equal(t, []OutboxEventType{ProductUpdated}, deps.outbox.types())
}

func TestUpdateProductNameTaken(t *testing.T) {
	deps := &productUCDeps{
		productRepo: &productRepoMock{
			getByID: func(ctx context.Context, id int64) (*domain.Product, error) {
				return &domain.Product{ID: id, Name: "Phone", Price: 100}, nil
			},
			getByName: func(ctx context.Context, name string) (*domain.Product, error) {
				return &domain.Product{ID: 33, Name: name}, nil
			},
		},
	}
	uc := newProductUC(deps)

	_, err := uc.UpdateProduct(context.Background(), 9, &ProductDTO{ProductName: "Taken name", Price: 100})
	require.ErrorIs(t, err, e.ErrProductExists)
	assert.Empty(t, deps.productRepo.updated)
	assert.Empty(t, deps.cache.deleted)
}

func TestUpdateProductNotFound(t *testing.T) {
	uc := newProductUC(&productUCDeps{})

	_, err := uc.UpdateProduct(context.Background(), 9, &ProductDTO{ProductName: "Phone", Price: 100})
	require.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	deps := &productUCDeps{
		productRepo: &productRepoMock{
			getByID: func(ctx context.Context, id int64) (*domain.Product, error) {
				return &domain.Product{ID: id, Name: "Phone", Price: 100}, nil
			},
			delete: func(ctx context.Context, id int64) error {
				return nil
			},
		},
	}
	uc := newProductUC(deps)

	res, err := uc.DeleteProduct(context.Background(), 9)
	require.NoError(t, err)

	assert.Equal(t, int64(9), res.ProductID)
	assert.Equal(t, "Phone", res.ProductName)
	assert.Equal(t, []int64{9}, deps.productRepo.deleted)
	assert.Equal(t, []int64{9}, deps.cache.deleted)
	assert.Equal(t, []OutboxEventType{ProductDeleted}, deps.outbox.types())
}

func TestUpdateProductImage(t *testing.T) {
	deps := &productUCDeps{
		productRepo: &productRepoMock{
			getByID: func(ctx context.Context, id int64) (*domain.Product, error) {
				return &domain.Product{ID: id, Name: "Phone", Image: domain.DefaultImage, Price: 100}, nil
			},
			update: func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
				return product, nil
			},
		},
	}
	uc := newProductUC(deps)

	image := NewProductImage([]byte("bytes"), "image/jpeg", 5, "phone.jpg")
	res, err := uc.UpdateProductImage(context.Background(), 9, image)
	require.NoError(t, err)

	assert.Equal(t, "products/test.jpg", res.Image)
	require.Len(t, deps.images.stored, 1)
	assert.Empty(t, deps.images.cleanedUp)
	assert.Equal(t, []int64{9}, deps.cache.deleted)
}

func TestUpdateProductImageUnsupportedType(t *testing.T) {
	images := newImagesInfraMock("")
	images.storeErr = fmt.Errorf("invalid mime type image/gif: %w", e.ErrUnsupportedMediaType)

	deps := &productUCDeps{
		images: images,
		productRepo: &productRepoMock{
			getByID: func(ctx context.Context, id int64) (*domain.Product, error) {
				return &domain.Product{ID: id, Name: "Phone", Price: 100}, nil
			},
		},
	}
	uc := newProductUC(deps)

	image := NewProductImage([]byte("bytes"), "image/gif", 5, "phone.gif")
	_, err := uc.UpdateProductImage(context.Background(), 9, image)
	require.ErrorIs(t, err, e.ErrUnsupportedMediaType)
}

func TestUpdateProductImageCleanupOnFailure(t *testing.T) {
	deps := &productUCDeps{
		productRepo: &productRepoMock{
			getByID: func(ctx context.Context, id int64) (*domain.Product, error) {
				return &domain.Product{ID: id, Name: "Phone", Price: 100}, nil
			},
			update: func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
				return nil, fmt.Errorf("storage gone")
			},
		},
	}
	uc := newProductUC(deps)

	image := NewProductImage([]byte("bytes"), "image/jpeg", 5, "phone.jpg")
	_, err := uc.UpdateProductImage(context.Background(), 9, image)
	require.Error(t, err)

	select {
	case <-deps.images.cleanupSig:
	case <-time.After(time.Second):
		t.Fatal("expected orphaned image cleanup")
	}
	assert.Equal(t, [][]string{{"products/test.jpg"}}, deps.images.cleanedUp)
}
