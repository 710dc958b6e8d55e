package http

import (
	"net/http"

	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUC
	logger          logger.Logger
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase, logger: logger}
}

// getAllCategories
//
//	@Summary		Список категорий
//	@Description	Возвращает страницу категорий с метаданными пагинации
//	@Tags			categories
//	@Produce		json
//	@Param			pageNumber	query		int		false	"Номер страницы (с нуля)"
//	@Param			pageSize	query		int		false	"Размер страницы"
//	@Param			sortBy		query		string	false	"Поле сортировки"
//	@Param			sortOrder	query		string	false	"asc или desc"
//	@Success		200			{object}	usecase.CategoryPageRes
//	@Failure		404			{object}	ErrorResponse
//	@Router			/public/categories [get]
func (c *CategoryHandler) getAllCategories(w http.ResponseWriter, r *http.Request) {
	req, err := parsePageReq(r, "categoryId")
	if err != nil {
		c.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	res, err := c.categoryUsecase.GetAllCategories(r.Context(), req)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// getCategory
//
//	@Summary		Категория по ID
//	@Tags			categories
//	@Produce		json
//	@Param			categoryId	path		int	true	"ID категории"
//	@Success		200			{object}	usecase.CategoryDTO
//	@Failure		404			{object}	ErrorResponse
//	@Router			/public/categories/{categoryId} [get]
func (c *CategoryHandler) getCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseID(r, "categoryId")
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.categoryUsecase.GetCategory(r.Context(), categoryID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// createCategory
//
//	@Summary		Создание категории
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			category	body		usecase.CategoryDTO	true	"Новая категория"
//	@Success		201			{object}	usecase.CategoryDTO
//	@Failure		400			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Router			/public/categories [post]
func (c *CategoryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req usecase.CategoryDTO
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.categoryUsecase.CreateCategory(r.Context(), &req)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, res)
}

// updateCategory
//
//	@Summary		Обновление категории
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			categoryId	path		int					true	"ID категории"
//	@Param			category	body		usecase.CategoryDTO	true	"Новое содержимое категории"
//	@Success		200			{object}	usecase.CategoryDTO
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse
//	@Router			/public/categories/{categoryId} [put]
func (c *CategoryHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseID(r, "categoryId")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req usecase.CategoryDTO
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.categoryUsecase.UpdateCategory(r.Context(), categoryID, &req)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

// deleteCategory
//
//	@Summary		Удаление категории
//	@Description	Удаляет категорию вместе с её товарами
//	@Tags			categories
//	@Produce		json
//	@Param			categoryId	path		int	true	"ID категории"
//	@Success		200			{object}	usecase.DeleteCategoryRes
//	@Failure		404			{object}	ErrorResponse
//	@Router			/admin/categories/{categoryId} [delete]
func (c *CategoryHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseID(r, "categoryId")
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.categoryUsecase.DeleteCategory(r.Context(), categoryID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}
