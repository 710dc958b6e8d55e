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

const productColumns = "id, name, image, description, quantity, price, discount, special_price, category_id, created_at, updated_at"

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// GetByID возвращает товар по идентификатору или e.ErrProductNotFound.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1;`, productColumns)

	model, err := scanProduct(p.row(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// GetByName возвращает товар по точному совпадению имени.
// Отсутствие совпадения не является ошибкой: возвращается (nil, nil).
func (p *ProductRepo) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE name = $1;`, productColumns)

	model, err := scanProduct(p.row(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

func (p *ProductRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := p.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1);`, id).
		Scan(&exists)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}

// GetPage возвращает страницу всех товаров и метаданные пагинации.
func (p *ProductRepo) GetPage(ctx context.Context, q *usecase.PageQuery) ([]*domain.Product, *usecase.PageMeta, error) {
	var total int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products;`).Scan(&total); err != nil {
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		ORDER BY %s %s
		LIMIT $1 OFFSET $2;
	`, productColumns, productSortColumn(q.SortBy), sortDirection(q.Ascending))

	products, err := p.queryPage(ctx, query, q.PageSize, pageOffset(q))
	if err != nil {
		return nil, nil, err
	}

	return products, usecase.NewPageMeta(q.PageNumber, q.PageSize, total), nil
}

// GetPageByCategory возвращает страницу товаров категории.
// Базовый порядок — по возрастанию цены, затем запрошенная сортировка.
func (p *ProductRepo) GetPageByCategory(ctx context.Context, categoryID int64, q *usecase.PageQuery) ([]*domain.Product, *usecase.PageMeta, error) {
	var total int64
	err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE category_id = $1;`, categoryID).
		Scan(&total)
	if err != nil {
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE category_id = $1
		ORDER BY price ASC, %s %s
		LIMIT $2 OFFSET $3;
	`, productColumns, productSortColumn(q.SortBy), sortDirection(q.Ascending))

	products, err := p.queryPage(ctx, query, categoryID, q.PageSize, pageOffset(q))
	if err != nil {
		return nil, nil, err
	}

	return products, usecase.NewPageMeta(q.PageNumber, q.PageSize, total), nil
}

// GetPageByKeyword возвращает страницу товаров, имя которых содержит
// подстроку без учёта регистра.
func (p *ProductRepo) GetPageByKeyword(ctx context.Context, keyword string, q *usecase.PageQuery) ([]*domain.Product, *usecase.PageMeta, error) {
	pattern := "%" + keyword + "%"

	var total int64
	err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE name ILIKE $1;`, pattern).
		Scan(&total)
	if err != nil {
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM products
		WHERE name ILIKE $1
		ORDER BY %s %s
		LIMIT $2 OFFSET $3;
	`, productColumns, productSortColumn(q.SortBy), sortDirection(q.Ascending))

	products, err := p.queryPage(ctx, query, pattern, q.PageSize, pageOffset(q))
	if err != nil {
		return nil, nil, err
	}

	return products, usecase.NewPageMeta(q.PageNumber, q.PageSize, total), nil
}

// Create сохраняет новый товар.
// Нарушение уникальности имени возвращается как e.ErrProductExists.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := fmt.Sprintf(`
		INSERT INTO products (name, image, description, quantity, price, discount, special_price, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s;
	`, productColumns)

	model, err := scanProduct(tx.QueryRow(ctx, query,
		product.Name,
		product.Image,
		product.Description,
		product.Quantity,
		product.Price,
		product.Discount,
		product.SpecialPrice,
		product.CategoryID,
	))
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.ErrProductExists
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Update перезаписывает изменяемые поля товара. Категория неизменяема.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := fmt.Sprintf(`
		UPDATE products
		SET name = $2,
			image = $3,
			description = $4,
			quantity = $5,
			price = $6,
			discount = $7,
			special_price = $8,
			updated_at = NOW()
		WHERE id = $1
		RETURNING %s;
	`, productColumns)

	model, err := scanProduct(tx.QueryRow(ctx, query,
		product.ID,
		product.Name,
		product.Image,
		product.Description,
		product.Quantity,
		product.Price,
		product.Discount,
		product.SpecialPrice,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		if postgresDuplicate(err) {
			return nil, e.ErrProductExists
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Delete удаляет товар по идентификатору.
func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM products WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if tag.RowsAffected() == 0 {
		return e.ErrProductNotFound
	}

	return nil
}

// queryPage выполняет страничный запрос и сканирует результат.
func (p *ProductRepo) queryPage(ctx context.Context, query string, args ...any) ([]*domain.Product, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.ProductModel
	for rows.Next() {
		var model converter.ProductModel
		err := rows.Scan(
			&model.ID, &model.Name, &model.Image, &model.Description, &model.Quantity,
			&model.Price, &model.Discount, &model.SpecialPrice, &model.CategoryID,
			&model.CreatedAt, &model.UpdatedAt,
		)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, &model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// row выполняет запрос через транзакцию из контекста, если она есть,
// иначе через пул.
func (p *ProductRepo) row(ctx context.Context, query string, args ...any) pgx.Row {
	if tx, err := tr.TxFromCtx(ctx); err == nil {
		return tx.QueryRow(ctx, query, args...)
	}
	return p.pool.QueryRow(ctx, query, args...)
}

func scanProduct(row pgx.Row) (*converter.ProductModel, error) {
	var model converter.ProductModel
	err := row.Scan(
		&model.ID, &model.Name, &model.Image, &model.Description, &model.Quantity,
		&model.Price, &model.Discount, &model.SpecialPrice, &model.CategoryID,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}

func pageOffset(q *usecase.PageQuery) int64 {
	return int64(q.PageNumber) * int64(q.PageSize)
}
