package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

const (
	minProductNameLen = 3
	minDescriptionLen = 5
)

// ProductUseCase реализует бизнес-логику управления товарами каталога.
type ProductUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	outboxRepo   OutboxRepository
	imagesInfra  ImagesInfra
	cacheRepo    CacheRepository
	tx           Transactor
	logger       logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	outboxRepo OutboxRepository,
	imagesInfra ImagesInfra,
	cacheRepo CacheRepository,
	tx Transactor,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		outboxRepo:   outboxRepo,
		imagesInfra:  imagesInfra,
		cacheRepo:    cacheRepo,
		tx:           tx,
		logger:       logger,
	}
}

// AddProduct создаёт товар в указанной категории.
// Имя товара уникально; изображение получает ключ-заглушку, специальная цена
// вычисляется из цены и скидки.
func (p *ProductUseCase) AddProduct(ctx context.Context, categoryID int64, req *ProductDTO) (*ProductDTO, error) {
	const op = "ProductUseCase.AddProduct"

	if err := validateProduct(req); err != nil {
		return nil, err
	}

	if _, err := p.categoryRepo.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, e.ErrCategoryNotFound) {
			return nil, categoryNotFound(categoryID)
		}
		return nil, e.Wrap(op, err)
	}

	existing, err := p.productRepo.GetByName(ctx, req.ProductName)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if existing != nil {
		return nil, productConflict(req.ProductName)
	}

	product := domain.NewProduct(req.ProductName, req.Description, req.Quantity, req.Price, req.Discount, categoryID)
	product.SpecialPrice = computeSpecialPrice(product.Price, product.Discount)

	var created *domain.Product
	err = p.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		saved, err := p.productRepo.Create(txCtx, product)
		if err != nil {
			return err
		}
		created = saved

		return p.writeEvent(txCtx, ProductCreated, saved.ID, ToProductDTO(saved))
	})
	if err != nil {
		// Гонка двух одновременных созданий решается уникальным индексом в БД
		if errors.Is(err, e.ErrProductExists) {
			return nil, productConflict(req.ProductName)
		}
		return nil, e.Wrap(op, err)
	}

	dto := ToProductDTO(created)
	return &dto, nil
}

// GetAllProducts возвращает страницу товаров с метаданными пагинации.
// Возвращает e.ErrNoProducts, если товаров нет вовсе.
func (p *ProductUseCase) GetAllProducts(ctx context.Context, req *PageReq) (*ProductPageRes, error) {
	const op = "ProductUseCase.GetAllProducts"

	products, meta, err := p.productRepo.GetPage(ctx, NewPageQuery(req))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if meta.TotalElements == 0 {
		return nil, e.ErrNoProducts
	}

	return NewProductPageRes(products, meta), nil
}

// GetProduct возвращает товар по идентификатору, сначала заглядывая в кэш.
// Промах кэша дозаполняется в фоне и не влияет на результат.
func (p *ProductUseCase) GetProduct(ctx context.Context, productID int64) (*ProductDTO, error) {
	const op = "ProductUseCase.GetProduct"

	cached, err := p.cacheRepo.GetProduct(ctx, productID)
	if err != nil {
		p.logger.Warnf("product cache lookup failed: %v", e.Wrap(op, err))
	}
	if cached != nil {
		return cached, nil
	}

	product, err := p.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, e.ErrProductNotFound) {
			return nil, productNotFound(productID)
		}
		return nil, e.Wrap(op, err)
	}

	dto := ToProductDTO(product)

	// Фоновое добавление товара в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := p.cacheRepo.SetProduct(bgCtx, &dto); err != nil {
			p.logger.Warnf("failed to cache product in background: %v", e.Wrap(op, err))
		}
	}()

	return &dto, nil
}

// SearchByCategory возвращает страницу товаров категории.
// Базовый порядок — по возрастанию цены, поверх применяется запрошенная сортировка.
func (p *ProductUseCase) SearchByCategory(ctx context.Context, categoryID int64, req *PageReq) (*ProductPageRes, error) {
	const op = "ProductUseCase.SearchByCategory"

	category, err := p.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, e.ErrCategoryNotFound) {
			return nil, categoryNotFound(categoryID)
		}
		return nil, e.Wrap(op, err)
	}

	products, meta, err := p.productRepo.GetPageByCategory(ctx, category.ID, NewPageQuery(req))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if meta.TotalElements == 0 {
		return nil, fmt.Errorf("%s category does not have any products: %w", category.Name, e.ErrNoProducts)
	}

	return NewProductPageRes(products, meta), nil
}

// SearchByKeyword возвращает страницу товаров, имя которых содержит подстроку
// без учёта регистра.
func (p *ProductUseCase) SearchByKeyword(ctx context.Context, keyword string, req *PageReq) (*ProductPageRes, error) {
	const op = "ProductUseCase.SearchByKeyword"

	products, meta, err := p.productRepo.GetPageByKeyword(ctx, keyword, NewPageQuery(req))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if meta.TotalElements == 0 {
		return nil, fmt.Errorf("products not found with keyword '%s': %w", keyword, e.ErrNoProducts)
	}

	return NewProductPageRes(products, meta), nil
}

// UpdateProduct обновляет имя, описание, цену, скидку и количество товара,
// пересчитывая специальную цену. Изображение и категория не затрагиваются.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, productID int64, req *ProductDTO) (*ProductDTO, error) {
	const op = "ProductUseCase.UpdateProduct"

	if err := validateProduct(req); err != nil {
		return nil, err
	}

	var updated *domain.Product
	err := p.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		product, err := p.productRepo.GetByID(txCtx, productID)
		if err != nil {
			return err
		}

		// Переименование в занятое имя отклоняется так же, как при создании
		if req.ProductName != product.Name {
			other, err := p.productRepo.GetByName(txCtx, req.ProductName)
			if err != nil {
				return err
			}
			if other != nil {
				return e.ErrProductExists
			}
		}

		product.Name = req.ProductName
		product.Description = req.Description
		product.Price = req.Price
		product.Discount = req.Discount
		product.Quantity = req.Quantity
		product.SpecialPrice = computeSpecialPrice(product.Price, product.Discount)

		saved, err := p.productRepo.Update(txCtx, product)
		if err != nil {
			return err
		}
		updated = saved

		return p.writeEvent(txCtx, ProductUpdated, saved.ID, ToProductDTO(saved))
	})
	if err != nil {
		switch {
		case errors.Is(err, e.ErrProductNotFound):
			return nil, productNotFound(productID)
		case errors.Is(err, e.ErrProductExists):
			return nil, productConflict(req.ProductName)
		}
		return nil, e.Wrap(op, err)
	}

	p.invalidateCache(ctx, productID)

	dto := ToProductDTO(updated)
	return &dto, nil
}

// DeleteProduct удаляет товар и возвращает его DTO.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, productID int64) (*ProductDTO, error) {
	const op = "ProductUseCase.DeleteProduct"

	var deleted *domain.Product
	err := p.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		product, err := p.productRepo.GetByID(txCtx, productID)
		if err != nil {
			return err
		}
		deleted = product

		if err := p.productRepo.Delete(txCtx, product.ID); err != nil {
			return err
		}

		return p.writeEvent(txCtx, ProductDeleted, product.ID, ToProductDTO(product))
	})
	if err != nil {
		if errors.Is(err, e.ErrProductNotFound) {
			return nil, productNotFound(productID)
		}
		return nil, e.Wrap(op, err)
	}

	p.invalidateCache(ctx, productID)

	dto := ToProductDTO(deleted)
	return &dto, nil
}

// UpdateProductImage сохраняет изображение в blob-хранилище и привязывает
// полученный ключ к товару. Загрузка строго предшествует записи сущности;
// при неудачной записи загруженный объект зачищается, чтобы не оставить
// частичную ссылку.
func (p *ProductUseCase) UpdateProductImage(ctx context.Context, productID int64, image *ProductImage) (*ProductDTO, error) {
	const op = "ProductUseCase.UpdateProductImage"

	if _, err := p.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, e.ErrProductNotFound) {
			return nil, productNotFound(productID)
		}
		return nil, e.Wrap(op, err)
	}

	key, err := p.imagesInfra.StoreImage(ctx, image)
	if err != nil {
		if errors.Is(err, e.ErrUnsupportedMediaType) {
			return nil, err
		}
		return nil, e.Wrap(op, err)
	}

	var updated *domain.Product
	err = p.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		product, err := p.productRepo.GetByID(txCtx, productID)
		if err != nil {
			return err
		}

		product.Image = key
		saved, err := p.productRepo.Update(txCtx, product)
		if err != nil {
			return err
		}
		updated = saved

		return p.writeEvent(txCtx, ProductUpdated, saved.ID, ToProductDTO(saved))
	})
	if err != nil {
		p.logger.Warnf("cleaning up orphaned image after failed product update, key=%s: %v", key, err)
		p.imagesInfra.CleanupImages([]string{key})

		if errors.Is(err, e.ErrProductNotFound) {
			return nil, productNotFound(productID)
		}
		return nil, e.Wrap(op, err)
	}

	p.invalidateCache(ctx, productID)

	dto := ToProductDTO(updated)
	return &dto, nil
}

// writeEvent сериализует payload и записывает событие каталога в outbox.
func (p *ProductUseCase) writeEvent(ctx context.Context, eventType OutboxEventType, aggregateID int64, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = p.outboxRepo.Create(ctx, NewOutboxEvent(eventType, aggregateID, data))
	return err
}

// invalidateCache удаляет товар из кэша после мутации; ошибка только логируется.
func (p *ProductUseCase) invalidateCache(ctx context.Context, productID int64) {
	if err := p.cacheRepo.DeleteProducts(ctx, []int64{productID}); err != nil {
		p.logger.Warnf("failed to invalidate product cache, id=%d: %v", productID, err)
	}
}

// computeSpecialPrice вычисляет цену со скидкой: price - (discount/100)*price.
// Расчёт ведётся в decimal, чтобы сохранённое значение было точным до копейки.
func computeSpecialPrice(price, discount float64) float64 {
	base := decimal.NewFromFloat(price)
	cut := decimal.NewFromFloat(discount).Div(decimal.NewFromInt(100)).Mul(base)

	special, _ := base.Sub(cut).Round(2).Float64()
	return special
}

// validateProduct проверяет корректность входных данных товара.
func validateProduct(req *ProductDTO) error {
	verr := e.NewValidationError()

	name := strings.TrimSpace(req.ProductName)
	switch {
	case name == "":
		verr.Add("productName", "product name must not be blank")
	case len(name) < minProductNameLen:
		verr.Add("productName", fmt.Sprintf("product name must be at least %d characters long", minProductNameLen))
	}

	if desc := strings.TrimSpace(req.Description); desc != "" && len(desc) < minDescriptionLen {
		verr.Add("description", fmt.Sprintf("product description must be at least %d characters long", minDescriptionLen))
	}

	if req.Quantity < 0 {
		verr.Add("quantity", "quantity must not be negative")
	}

	if req.Price < 0 {
		verr.Add("price", "price must not be negative")
	}

	if verr.HasErrors() {
		return verr
	}

	return nil
}

func productNotFound(productID int64) error {
	return fmt.Errorf("product with id %d: %w", productID, e.ErrProductNotFound)
}

func productConflict(name string) error {
	return fmt.Errorf("product with name '%s': %w", name, e.ErrProductExists)
}
