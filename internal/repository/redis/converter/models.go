package converter

// ProductDTORedisModel — представление товара в кэше Redis.
type ProductDTORedisModel struct {
	ProductID    int64   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Image        string  `json:"image"`
	Description  string  `json:"description"`
	Quantity     int32   `json:"quantity"`
	Price        float64 `json:"price"`
	Discount     float64 `json:"discount"`
	SpecialPrice float64 `json:"special_price"`
	CategoryID   int64   `json:"category_id"`
}
