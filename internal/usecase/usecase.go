package usecase

import "context"

type CategoryUC interface {
	GetAllCategories(ctx context.Context, req *PageReq) (*CategoryPageRes, error)
	GetCategory(ctx context.Context, categoryID int64) (*CategoryDTO, error)
	CreateCategory(ctx context.Context, req *CategoryDTO) (*CategoryDTO, error)
	UpdateCategory(ctx context.Context, categoryID int64, req *CategoryDTO) (*CategoryDTO, error)
	DeleteCategory(ctx context.Context, categoryID int64) (*DeleteCategoryRes, error)
}

type ProductUC interface {
	AddProduct(ctx context.Context, categoryID int64, req *ProductDTO) (*ProductDTO, error)
	GetAllProducts(ctx context.Context, req *PageReq) (*ProductPageRes, error)
	GetProduct(ctx context.Context, productID int64) (*ProductDTO, error)
	SearchByCategory(ctx context.Context, categoryID int64, req *PageReq) (*ProductPageRes, error)
	SearchByKeyword(ctx context.Context, keyword string, req *PageReq) (*ProductPageRes, error)
	UpdateProduct(ctx context.Context, productID int64, req *ProductDTO) (*ProductDTO, error)
	DeleteProduct(ctx context.Context, productID int64) (*ProductDTO, error)
	UpdateProductImage(ctx context.Context, productID int64, image *ProductImage) (*ProductDTO, error)
}
