package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// addProduct
//
//	@Summary		Добавление товара в категорию
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			categoryId	path		int					true	"ID категории"
//	@Param			product		body		usecase.ProductDTO	true	"Новый товар"
//	@Success		201			{object}	usecase.ProductDTO
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Router			/admin/categories/{categoryId}/product [post]
func (p *ProductHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseID(r, "categoryId")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req usecase.ProductDTO
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	res, err := p.productUsecase.AddProduct(r.Context(), categoryID, &req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, res)
}

// getAllProducts
//
//	@Summary		Список товаров
//	@Tags			products
//	@Produce		json
//	@Param			pageNumber	query		int		false	"Номер страницы (с нуля)"
//	@Param			pageSize	query		int		false	"Размер страницы"
//	@Param			sortBy		query		string	false	"Поле сортировки"
//	@Param			sortOrder	query		string	false	"asc или desc"
//	@Success		200			{object}	usecase.ProductPageRes
//	@Failure		404			{object}	ErrorResponse
//	@Router			/public/products [get]
func (p *ProductHandler) getAllProducts(w http.ResponseWriter, r *http.Request) {
	req, err := parsePageReq(r, "productId")
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := p.productUsecase.GetAllProducts(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// getProduct
//
//	@Summary		Товар по ID
//	@Tags			products
//	@Produce		json
//	@Param			productId	path		int	true	"ID товара"
//	@Success		200			{object}	usecase.ProductDTO
//	@Failure		404			{object}	ErrorResponse
//	@Router			/public/products/{productId} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := parseID(r, "productId")
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := p.productUsecase.GetProduct(r.Context(), productID)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// getProductsByCategory
//
//	@Summary		Товары категории
//	@Description	Возвращает страницу товаров категории, базовый порядок — по возрастанию цены
//	@Tags			products
//	@Produce		json
//	@Param			categoryId	path		int		true	"ID категории"
//	@Param			pageNumber	query		int		false	"Номер страницы (с нуля)"
//	@Param			pageSize	query		int		false	"Размер страницы"
//	@Param			sortBy		query		string	false	"Поле сортировки"
//	@Param			sortOrder	query		string	false	"asc или desc"
//	@Success		200			{object}	usecase.ProductPageRes
//	@Failure		404			{object}	ErrorResponse
//	@Router			/public/categories/{categoryId}/products [get]
func (p *ProductHandler) getProductsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseID(r, "categoryId")
	if err != nil {
		WriteError(w, err)
		return
	}

	req, err := parsePageReq(r, "productId")
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := p.productUsecase.SearchByCategory(r.Context(), categoryID, req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// getProductsByKeyword
//
//	@Summary		Поиск товаров по подстроке имени
//	@Tags			products
//	@Produce		json
//	@Param			keyword		path		string	true	"Подстрока для поиска без учёта регистра"
//	@Param			pageNumber	query		int		false	"Номер страницы (с нуля)"
//	@Param			pageSize	query		int		false	"Размер страницы"
//	@Param			sortBy		query		string	false	"Поле сортировки"
//	@Param			sortOrder	query		string	false	"asc или desc"
//	@Success		200			{object}	usecase.ProductPageRes
//	@Failure		404			{object}	ErrorResponse
//	@Router			/public/products/keyword/{keyword} [get]
func (p *ProductHandler) getProductsByKeyword(w http.ResponseWriter, r *http.Request) {
	keyword := chi.URLParam(r, "keyword")
	if keyword == "" {
		WriteError(w, e.Wrap("keyword", e.ErrStatusBadRequest))
		return
	}

	req, err := parsePageReq(r, "productId")
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := p.productUsecase.SearchByKeyword(r.Context(), keyword, req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// updateProduct
//
//	@Summary		Обновление товара
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			productId	path		int					true	"ID товара"
//	@Param			product		body		usecase.ProductDTO	true	"Новое содержимое товара"
//	@Success		200			{object}	usecase.ProductDTO
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Router			/admin/products/{productId} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := parseID(r, "productId")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req usecase.ProductDTO
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	res, err := p.productUsecase.UpdateProduct(r.Context(), productID, &req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// deleteProduct
//
//	@Summary		Удаление товара
//	@Tags			products
//	@Produce		json
//	@Param			productId	path		int	true	"ID товара"
//	@Success		200			{object}	usecase.ProductDTO
//	@Failure		404			{object}	ErrorResponse
//	@Router			/admin/products/{productId} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := parseID(r, "productId")
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := p.productUsecase.DeleteProduct(r.Context(), productID)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// updateProductImage
//
//	@Summary		Обновление изображения товара
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			productId	path		int		true	"ID товара"
//	@Param			image		formData	file	true	"Изображение товара"
//	@Success		200			{object}	usecase.ProductDTO
//	@Failure		400			{object}	ErrorResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		415			{object}	ErrorResponse
//	@Router			/products/{productId}/image [put]
func (p *ProductHandler) updateProductImage(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 16 << 20
	)

	productID, err := parseID(r, "productId")
	if err != nil {
		WriteError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	image, err := parseImage(r.MultipartForm.File["image"])
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := p.productUsecase.UpdateProductImage(r.Context(), productID, image)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}
