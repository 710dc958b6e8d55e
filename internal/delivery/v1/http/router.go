package http

import (
	_ "github.com/DRSN-tech/catalog-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catUC usecase.CategoryUC, prUC usecase.ProductUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		catHandler := NewCategoryHandler(catUC, r.logger)
		prHandler := NewProductHandler(prUC, r.logger)
		registerCategoryRoutes(v1, catHandler, prHandler)
		registerProductRoutes(v1, prHandler)
	})
}

func registerCategoryRoutes(router chi.Router, catHandler *CategoryHandler, prHandler *ProductHandler) {
	router.Route("/public/categories", func(cat chi.Router) {
		cat.Get("/", catHandler.getAllCategories)
		cat.Post("/", catHandler.createCategory)
		cat.Get("/{categoryId}", catHandler.getCategory)
		cat.Put("/{categoryId}", catHandler.updateCategory)
		cat.Get("/{categoryId}/products", prHandler.getProductsByCategory)
	})

	router.Delete("/admin/categories/{categoryId}", catHandler.deleteCategory)
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/public/products", func(pr chi.Router) {
		pr.Get("/", prHandler.getAllProducts)
		pr.Get("/{productId}", prHandler.getProduct)
		pr.Get("/keyword/{keyword}", prHandler.getProductsByKeyword)
	})

	router.Post("/admin/categories/{categoryId}/product", prHandler.addProduct)
	router.Put("/admin/products/{productId}", prHandler.updateProduct)
	router.Delete("/admin/products/{productId}", prHandler.deleteProduct)
	router.Put("/products/{productId}/image", prHandler.updateProductImage)
}
