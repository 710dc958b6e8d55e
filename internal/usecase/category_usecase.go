package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
)

const minCategoryNameLen = 5

// CategoryUseCase реализует бизнес-логику управления категориями каталога.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	outboxRepo   OutboxRepository
	tx           Transactor
	logger       logger.Logger
}

func NewCategoryUC(
	categoryRepo CategoryRepository,
	outboxRepo OutboxRepository,
	tx Transactor,
	logger logger.Logger,
) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		outboxRepo:   outboxRepo,
		tx:           tx,
		logger:       logger,
	}
}

// GetAllCategories возвращает страницу категорий с метаданными пагинации.
// Возвращает e.ErrNoCategories, если категорий нет вовсе (пустая страница
// за пределами диапазона ошибкой не считается).
func (c *CategoryUseCase) GetAllCategories(ctx context.Context, req *PageReq) (*CategoryPageRes, error) {
	const op = "CategoryUseCase.GetAllCategories"

	categories, meta, err := c.categoryRepo.GetPage(ctx, NewPageQuery(req))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if meta.TotalElements == 0 {
		return nil, e.ErrNoCategories
	}

	return NewCategoryPageRes(categories, meta), nil
}

// GetCategory возвращает категорию по идентификатору.
func (c *CategoryUseCase) GetCategory(ctx context.Context, categoryID int64) (*CategoryDTO, error) {
	const op = "CategoryUseCase.GetCategory"

	category, err := c.getCategory(ctx, op, categoryID)
	if err != nil {
		return nil, err
	}

	dto := ToCategoryDTO(category)
	return &dto, nil
}

// CreateCategory создаёт категорию с уникальным именем.
// Возвращает e.ErrCategoryExists при совпадении имени с существующей категорией.
func (c *CategoryUseCase) CreateCategory(ctx context.Context, req *CategoryDTO) (*CategoryDTO, error) {
	const op = "CategoryUseCase.CreateCategory"

	if err := validateCategory(req); err != nil {
		return nil, err
	}

	existing, err := c.categoryRepo.GetByName(ctx, req.CategoryName)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if existing != nil {
		return nil, categoryConflict(req.CategoryName)
	}

	var created *domain.Category
	err = c.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		saved, err := c.categoryRepo.Create(txCtx, domain.NewCategory(req.CategoryName))
		if err != nil {
			return err
		}
		created = saved

		return c.writeEvent(txCtx, CategoryCreated, saved.ID, ToCategoryDTO(saved))
	})
	if err != nil {
		// Гонка двух одновременных созданий решается уникальным индексом в БД
		if errors.Is(err, e.ErrCategoryExists) {
			return nil, categoryConflict(req.CategoryName)
		}
		return nil, e.Wrap(op, err)
	}

	dto := ToCategoryDTO(created)
	return &dto, nil
}

// UpdateCategory обновляет имя категории; идентификатор неизменяем.
func (c *CategoryUseCase) UpdateCategory(ctx context.Context, categoryID int64, req *CategoryDTO) (*CategoryDTO, error) {
	const op = "CategoryUseCase.UpdateCategory"

	if err := validateCategory(req); err != nil {
		return nil, err
	}

	var updated *domain.Category
	err := c.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		category, err := c.categoryRepo.GetByID(txCtx, categoryID)
		if err != nil {
			return err
		}

		category.Name = req.CategoryName
		saved, err := c.categoryRepo.Update(txCtx, category)
		if err != nil {
			return err
		}
		updated = saved

		return c.writeEvent(txCtx, CategoryUpdated, saved.ID, ToCategoryDTO(saved))
	})
	if err != nil {
		switch {
		case errors.Is(err, e.ErrCategoryNotFound):
			return nil, categoryNotFound(categoryID)
		case errors.Is(err, e.ErrCategoryExists):
			return nil, categoryConflict(req.CategoryName)
		}
		return nil, e.Wrap(op, err)
	}

	dto := ToCategoryDTO(updated)
	return &dto, nil
}

// DeleteCategory удаляет категорию. Товары категории удаляются каскадно
// на уровне хранилища (FK ON DELETE CASCADE).
func (c *CategoryUseCase) DeleteCategory(ctx context.Context, categoryID int64) (*DeleteCategoryRes, error) {
	const op = "CategoryUseCase.DeleteCategory"

	err := c.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		category, err := c.categoryRepo.GetByID(txCtx, categoryID)
		if err != nil {
			return err
		}

		if err := c.categoryRepo.Delete(txCtx, category.ID); err != nil {
			return err
		}

		return c.writeEvent(txCtx, CategoryDeleted, category.ID, ToCategoryDTO(category))
	})
	if err != nil {
		if errors.Is(err, e.ErrCategoryNotFound) {
			c.logger.Warnf("attempted to delete non-existent category, id=%d", categoryID)
			return nil, categoryNotFound(categoryID)
		}
		return nil, e.Wrap(op, err)
	}

	return &DeleteCategoryRes{
		CategoryID: categoryID,
		Message:    "Category deleted successfully",
	}, nil
}

// getCategory возвращает категорию или ошибку с идентификатором в тексте.
func (c *CategoryUseCase) getCategory(ctx context.Context, op string, categoryID int64) (*domain.Category, error) {
	category, err := c.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, e.ErrCategoryNotFound) {
			return nil, categoryNotFound(categoryID)
		}
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

// writeEvent сериализует payload и записывает событие каталога в outbox.
func (c *CategoryUseCase) writeEvent(ctx context.Context, eventType OutboxEventType, aggregateID int64, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = c.outboxRepo.Create(ctx, NewOutboxEvent(eventType, aggregateID, data))
	return err
}

// validateCategory проверяет корректность входных данных категории.
func validateCategory(req *CategoryDTO) error {
	verr := e.NewValidationError()

	name := strings.TrimSpace(req.CategoryName)
	switch {
	case name == "":
		verr.Add("categoryName", "category name must not be blank")
	case len(name) < minCategoryNameLen:
		verr.Add("categoryName", fmt.Sprintf("category name must be at least %d characters long", minCategoryNameLen))
	}

	if verr.HasErrors() {
		return verr
	}

	return nil
}

func categoryNotFound(categoryID int64) error {
	return fmt.Errorf("category with id %d: %w", categoryID, e.ErrCategoryNotFound)
}

func categoryConflict(name string) error {
	return fmt.Errorf("category with name '%s': %w", name, e.ErrCategoryExists)
}
