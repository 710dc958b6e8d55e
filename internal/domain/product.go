package domain

import "time"

// DefaultImage — ключ изображения-заглушки, назначаемый товару при создании.
const DefaultImage = "default.png"

// Product описывает товар каталога.
// SpecialPrice — производное поле: пересчитывается из Price и Discount
// при каждом создании или обновлении, извне не задаётся.
type Product struct {
	ID           int64
	Name         string
	Image        string
	Description  string
	Quantity     int32
	Price        float64
	Discount     float64
	SpecialPrice float64
	CategoryID   int64
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func NewProduct(name, description string, quantity int32, price, discount float64, categoryID int64) *Product {
	return &Product{
		Name:        name,
		Image:       DefaultImage,
		Description: description,
		Quantity:    quantity,
		Price:       price,
		Discount:    discount,
		CategoryID:  categoryID,
	}
}
