package usecase

import (
	"context"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
)

// CategoryRepository — хранилище категорий.
// GetByID возвращает e.ErrCategoryNotFound, если категория не найдена;
// GetByName возвращает (nil, nil) при отсутствии совпадения.
type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	GetByName(ctx context.Context, name string) (*domain.Category, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	GetPage(ctx context.Context, query *PageQuery) ([]*domain.Category, *PageMeta, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

// ProductRepository — хранилище товаров.
// GetByID возвращает e.ErrProductNotFound, если товар не найден;
// GetByName возвращает (nil, nil) при отсутствии совпадения.
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetByName(ctx context.Context, name string) (*domain.Product, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	GetPage(ctx context.Context, query *PageQuery) ([]*domain.Product, *PageMeta, error)
	GetPageByCategory(ctx context.Context, categoryID int64, query *PageQuery) ([]*domain.Product, *PageMeta, error)
	GetPageByKeyword(ctx context.Context, keyword string, query *PageQuery) ([]*domain.Product, *PageMeta, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
	Delete(ctx context.Context, key string) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetProduct(ctx context.Context, id int64) (*ProductDTO, error)
	SetProduct(ctx context.Context, product *ProductDTO) error
	DeleteProducts(ctx context.Context, ids []int64) error
}
