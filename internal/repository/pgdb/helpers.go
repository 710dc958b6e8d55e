package pgdb

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// postgresDuplicate сообщает, вызвана ли ошибка нарушением уникального индекса.
func postgresDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// categorySortColumn транслирует имя поля сортировки DTO в колонку таблицы.
// Неизвестное поле откатывается к сортировке по идентификатору.
func categorySortColumn(sortBy string) string {
	switch sortBy {
	case "categoryName":
		return "name"
	case "categoryId":
		return "id"
	default:
		return "id"
	}
}

// productSortColumn транслирует имя поля сортировки DTO в колонку таблицы.
func productSortColumn(sortBy string) string {
	switch sortBy {
	case "productName":
		return "name"
	case "price":
		return "price"
	case "specialPrice":
		return "special_price"
	case "discount":
		return "discount"
	case "quantity":
		return "quantity"
	case "productId":
		return "id"
	default:
		return "id"
	}
}

// sortDirection возвращает SQL-направление сортировки.
func sortDirection(ascending bool) string {
	if ascending {
		return "ASC"
	}
	return "DESC"
}
