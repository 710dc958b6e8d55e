package pgdb

import (
	"context"
	"errors"
	"fmt"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

// GetByID возвращает категорию по идентификатору или e.ErrCategoryNotFound.
func (c *CategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM categories
		WHERE id = $1;
	`

	var model converter.CategoryModel
	err := c.row(ctx, query, id).
		Scan(&model.ID, &model.Name, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrCategoryNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// GetByName возвращает категорию по точному совпадению имени.
// Отсутствие совпадения не является ошибкой: возвращается (nil, nil).
func (c *CategoryRepo) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM categories
		WHERE name = $1;
	`

	var model converter.CategoryModel
	err := c.row(ctx, query, name).
		Scan(&model.ID, &model.Name, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CategoryRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := c.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1);`, id).
		Scan(&exists)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}

// GetPage возвращает страницу категорий и метаданные пагинации.
func (c *CategoryRepo) GetPage(ctx context.Context, q *usecase.PageQuery) ([]*domain.Category, *usecase.PageMeta, error) {
	var total int64
	if err := c.pool.QueryRow(ctx, `SELECT COUNT(*) FROM categories;`).Scan(&total); err != nil {
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := fmt.Sprintf(`
		SELECT id, name, created_at, updated_at
		FROM categories
		ORDER BY %s %s
		LIMIT $1 OFFSET $2;
	`, categorySortColumn(q.SortBy), sortDirection(q.Ascending))

	rows, err := c.pool.Query(ctx, query, q.PageSize, pageOffset(q))
	if err != nil {
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.CategoryModel
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(&model.ID, &model.Name, &model.CreatedAt, &model.UpdatedAt); err != nil {
			return nil, nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, &model)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToArrEntity(models), usecase.NewPageMeta(q.PageNumber, q.PageSize, total), nil
}

// Create сохраняет новую категорию.
// Нарушение уникальности имени возвращается как e.ErrCategoryExists.
func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id, name, created_at, updated_at;
	`

	var model converter.CategoryModel
	err = tx.QueryRow(ctx, query, category.Name).
		Scan(&model.ID, &model.Name, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.ErrCategoryExists
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// Update перезаписывает имя категории.
func (c *CategoryRepo) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE categories
		SET name = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, created_at, updated_at;
	`

	var model converter.CategoryModel
	err = tx.QueryRow(ctx, query, category.ID, category.Name).
		Scan(&model.ID, &model.Name, &model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrCategoryNotFound
		}
		if postgresDuplicate(err) {
			return nil, e.ErrCategoryExists
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// Delete удаляет категорию; товары категории удаляются каскадно (FK).
func (c *CategoryRepo) Delete(ctx context.Context, id int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.ErrCategoryNotFound
	}

	return nil
}

// row выполняет запрос через транзакцию из контекста, если она есть,
// иначе через пул.
func (c *CategoryRepo) row(ctx context.Context, query string, args ...any) pgx.Row {
	if tx, err := tr.TxFromCtx(ctx); err == nil {
		return tx.QueryRow(ctx, query, args...)
	}
	return c.pool.QueryRow(ctx, query, args...)
}
