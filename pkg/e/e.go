package e

import (
	"fmt"
	"sort"
	"strings"
)

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 404 Not Found
	ErrCategoryNotFound = fmt.Errorf("category not found")
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrNoCategories     = fmt.Errorf("no categories found")
	ErrNoProducts       = fmt.Errorf("no products found")

	// 409 Conflict
	ErrCategoryExists = fmt.Errorf("category already exists")
	ErrProductExists  = fmt.Errorf("product already exists")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrNoImage              = fmt.Errorf("no image provided")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 415 Unsupported Media Type
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// ValidationError собирает ошибки валидации по полям.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add добавляет сообщение об ошибке для поля.
func (v *ValidationError) Add(field, message string) {
	v.Fields[field] = message
}

// HasErrors сообщает, была ли зафиксирована хотя бы одна ошибка.
func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

func (v *ValidationError) Error() string {
	fields := make([]string, 0, len(v.Fields))
	for field := range v.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v.Fields[field]))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}
