package usecase

import (
	"strings"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/google/uuid"
)

// CATEGORY USECASE

// CategoryDTO — проекция категории для внешнего использования.
type CategoryDTO struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// DeleteCategoryRes подтверждает удаление категории.
type DeleteCategoryRes struct {
	CategoryID int64  `json:"categoryId"`
	Message    string `json:"message"`
}

// CategoryPageRes — страница категорий с метаданными пагинации.
type CategoryPageRes struct {
	Content       []CategoryDTO `json:"content"`
	PageNumber    int32         `json:"pageNumber"`
	PageSize      int32         `json:"pageSize"`
	TotalElements int64         `json:"totalElements"`
	TotalPages    int32         `json:"totalPages"`
	LastPage      bool          `json:"lastPage"`
}

// PRODUCT USECASE

// ProductDTO — проекция товара для внешнего использования.
// SpecialPrice заполняется сервисом и игнорируется во входных данных.
type ProductDTO struct {
	ProductID    int64   `json:"productId"`
	ProductName  string  `json:"productName"`
	Image        string  `json:"image"`
	Description  string  `json:"description"`
	Quantity     int32   `json:"quantity"`
	Price        float64 `json:"price"`
	Discount     float64 `json:"discount"`
	SpecialPrice float64 `json:"specialPrice"`
	CategoryID   int64   `json:"categoryId"`
}

// ProductPageRes — страница товаров с метаданными пагинации.
type ProductPageRes struct {
	Content       []ProductDTO `json:"content"`
	PageNumber    int32        `json:"pageNumber"`
	PageSize      int32        `json:"pageSize"`
	TotalElements int64        `json:"totalElements"`
	TotalPages    int32        `json:"totalPages"`
	LastPage      bool         `json:"lastPage"`
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// PAGINATION

// PageReq — параметры пагинации и сортировки запроса.
// PageNumber нумеруется с нуля; SortOrder сравнивается с "asc" без учёта регистра,
// любое другое значение означает сортировку по убыванию.
type PageReq struct {
	PageNumber int32
	PageSize   int32
	SortBy     string
	SortOrder  string
}

// PageQuery — нормализованный запрос страницы к хранилищу.
type PageQuery struct {
	PageNumber int32
	PageSize   int32
	SortBy     string
	Ascending  bool
}

// PageMeta — метаданные страницы, вычисленные хранилищем.
type PageMeta struct {
	PageNumber    int32
	PageSize      int32
	TotalElements int64
	TotalPages    int32
	LastPage      bool
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "PENDING"
	Processing OutboxStatus = "PROCESSING"
	Processed  OutboxStatus = "PROCESSED"
)

type OutboxEventType string

const (
	CategoryCreated OutboxEventType = "category.created"
	CategoryUpdated OutboxEventType = "category.updated"
	CategoryDeleted OutboxEventType = "category.deleted"
	ProductCreated  OutboxEventType = "product.created"
	ProductUpdated  OutboxEventType = "product.updated"
	ProductDeleted  OutboxEventType = "product.deleted"
)

// OutboxEvent — событие изменения каталога, записанное в одной транзакции
// с изменением сущности и доставляемое в Kafka фоновым воркером.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	AggregateID int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	AggregateID int64
	Payload     []byte
}

// MAPPERS

func NewPageQuery(req *PageReq) *PageQuery {
	return &PageQuery{
		PageNumber: req.PageNumber,
		PageSize:   req.PageSize,
		SortBy:     req.SortBy,
		Ascending:  strings.EqualFold(req.SortOrder, "asc"),
	}
}

// NewPageMeta вычисляет метаданные страницы: totalPages == ceil(total/size),
// lastPage истинно на последней (или за последней) странице.
func NewPageMeta(pageNumber, pageSize int32, totalElements int64) *PageMeta {
	var totalPages int32
	if pageSize > 0 {
		totalPages = int32((totalElements + int64(pageSize) - 1) / int64(pageSize))
	}

	return &PageMeta{
		PageNumber:    pageNumber,
		PageSize:      pageSize,
		TotalElements: totalElements,
		TotalPages:    totalPages,
		LastPage:      pageNumber >= totalPages-1,
	}
}

func NewOutboxEvent(eventType OutboxEventType, aggregateID int64, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:     uuid.NewString(),
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     payload,
		Status:      Pending,
		CreatedAt:   time.Now(),
	}
}

func NewWriteRawMessageReq(aggregateID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		AggregateID: aggregateID,
		Payload:     payload,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

// ASSEMBLERS

// ToCategoryDTO проецирует сущность категории в DTO.
func ToCategoryDTO(category *domain.Category) CategoryDTO {
	return CategoryDTO{
		CategoryID:   category.ID,
		CategoryName: category.Name,
	}
}

// ToProductDTO проецирует сущность товара в DTO.
func ToProductDTO(product *domain.Product) ProductDTO {
	return ProductDTO{
		ProductID:    product.ID,
		ProductName:  product.Name,
		Image:        product.Image,
		Description:  product.Description,
		Quantity:     product.Quantity,
		Price:        product.Price,
		Discount:     product.Discount,
		SpecialPrice: product.SpecialPrice,
		CategoryID:   product.CategoryID,
	}
}

// NewCategoryPageRes собирает страницу категорий из сырой выборки и метаданных.
func NewCategoryPageRes(categories []*domain.Category, meta *PageMeta) *CategoryPageRes {
	content := make([]CategoryDTO, 0, len(categories))
	for _, category := range categories {
		content = append(content, ToCategoryDTO(category))
	}

	return &CategoryPageRes{
		Content:       content,
		PageNumber:    meta.PageNumber,
		PageSize:      meta.PageSize,
		TotalElements: meta.TotalElements,
		TotalPages:    meta.TotalPages,
		LastPage:      meta.LastPage,
	}
}

// NewProductPageRes собирает страницу товаров из сырой выборки и метаданных.
func NewProductPageRes(products []*domain.Product, meta *PageMeta) *ProductPageRes {
	content := make([]ProductDTO, 0, len(products))
	for _, product := range products {
		content = append(content, ToProductDTO(product))
	}

	return &ProductPageRes{
		Content:       content,
		PageNumber:    meta.PageNumber,
		PageSize:      meta.PageSize,
		TotalElements: meta.TotalElements,
		TotalPages:    meta.TotalPages,
		LastPage:      meta.LastPage,
	}
}
