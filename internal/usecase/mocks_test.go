package usecase

import (
	"context"
	"sync"

	"github.com/DRSN-tech/catalog-backend/internal/domain"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
)

// nopLogger глушит логи в тестах.
type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

// stubTransactor выполняет fn без настоящей транзакции.
type stubTransactor struct {
	calls int
}

func (s *stubTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.calls++
	return fn(ctx)
}

type categoryRepoMock struct {
	getByID   func(ctx context.Context, id int64) (*domain.Category, error)
	getByName func(ctx context.Context, name string) (*domain.Category, error)
	getPage   func(ctx context.Context, query *PageQuery) ([]*domain.Category, *PageMeta, error)
	create    func(ctx context.Context, category *domain.Category) (*domain.Category, error)
	update    func(ctx context.Context, category *domain.Category) (*domain.Category, error)
	delete    func(ctx context.Context, id int64) error

	created []*domain.Category
	updated []*domain.Category
	deleted []int64
}

func (m *categoryRepoMock) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	if m.getByID == nil {
		return nil, e.ErrCategoryNotFound
	}
	return m.getByID(ctx, id)
}

func (m *categoryRepoMock) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	if m.getByName == nil {
		return nil, nil
	}
	return m.getByName(ctx, name)
}

func (m *categoryRepoMock) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, err := m.GetByID(ctx, id)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (m *categoryRepoMock) GetPage(ctx context.Context, query *PageQuery) ([]*domain.Category, *PageMeta, error) {
	return m.getPage(ctx, query)
}

func (m *categoryRepoMock) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	saved, err := m.create(ctx, category)
	if err == nil {
		m.created = append(m.created, saved)
	}
	return saved, err
}

func (m *categoryRepoMock) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	saved, err := m.update(ctx, category)
	if err == nil {
		m.updated = append(m.updated, saved)
	}
	return saved, err
}

func (m *categoryRepoMock) Delete(ctx context.Context, id int64) error {
	err := m.delete(ctx, id)
	if err == nil {
		m.deleted = append(m.deleted, id)
	}
	return err
}

type productRepoMock struct {
	getByID           func(ctx context.Context, id int64) (*domain.Product, error)
	getByName         func(ctx context.Context, name string) (*domain.Product, error)
	getPage           func(ctx context.Context, query *PageQuery) ([]*domain.Product, *PageMeta, error)
	getPageByCategory func(ctx context.Context, categoryID int64, query *PageQuery) ([]*domain.Product, *PageMeta, error)
	getPageByKeyword  func(ctx context.Context, keyword string, query *PageQuery) ([]*domain.Product, *PageMeta, error)
	create            func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	update            func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	delete            func(ctx context.Context, id int64) error

	created []*domain.Product
	updated []*domain.Product
	deleted []int64
}

func (m *productRepoMock) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if m.getByID == nil {
		return nil, e.ErrProductNotFound
	}
	return m.getByID(ctx, id)
}

func (m *productRepoMock) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	if m.getByName == nil {
		return nil, nil
	}
	return m.getByName(ctx, name)
}

func (m *productRepoMock) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, err := m.GetByID(ctx, id)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (m *productRepoMock) GetPage(ctx context.Context, query *PageQuery) ([]*domain.Product, *PageMeta, error) {
	return m.getPage(ctx, query)
}

func (m *productRepoMock) GetPageByCategory(ctx context.Context, categoryID int64, query *PageQuery) ([]*domain.Product, *PageMeta, error) {
	return m.getPageByCategory(ctx, categoryID, query)
}

func (m *productRepoMock) GetPageByKeyword(ctx context.Context, keyword string, query *PageQuery) ([]*domain.Product, *PageMeta, error) {
	return m.getPageByKeyword(ctx, keyword, query)
}

func (m *productRepoMock) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	saved, err := m.create(ctx, product)
	if err == nil {
		m.created = append(m.created, saved)
	}
	return saved, err
}

func (m *productRepoMock) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	saved, err := m.update(ctx, product)
	if err == nil {
		m.updated = append(m.updated, saved)
	}
	return saved, err
}

func (m *productRepoMock) Delete(ctx context.Context, id int64) error {
	err := m.delete(ctx, id)
	if err == nil {
		m.deleted = append(m.deleted, id)
	}
	return err
}

// outboxRepoMock записывает созданные события в память.
type outboxRepoMock struct {
	mu     sync.Mutex
	events []*OutboxEvent
	fail   error
}

func (m *outboxRepoMock) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	event.ID = int64(len(m.events) + 1)
	m.events = append(m.events, event)
	return event, nil
}

func (m *outboxRepoMock) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (m *outboxRepoMock) MarkAsProcessed(ctx context.Context, id int64) error {
	return nil
}

func (m *outboxRepoMock) types() []OutboxEventType {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]OutboxEventType, 0, len(m.events))
	for _, event := range m.events {
		types = append(types, event.EventType)
	}
	return types
}

// cacheRepoMock — потокобезопасный кэш в памяти.
type cacheRepoMock struct {
	mu       sync.Mutex
	products map[int64]*ProductDTO
	deleted  []int64
	set      chan struct{}
}

func newCacheRepoMock() *cacheRepoMock {
	return &cacheRepoMock{
		products: make(map[int64]*ProductDTO),
		set:      make(chan struct{}, 8),
	}
}

func (m *cacheRepoMock) GetProduct(ctx context.Context, id int64) (*ProductDTO, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products[id], nil
}

func (m *cacheRepoMock) SetProduct(ctx context.Context, product *ProductDTO) error {
	m.mu.Lock()
	m.products[product.ProductID] = product
	m.mu.Unlock()
	select {
	case m.set <- struct{}{}:
	default:
	}
	return nil
}

func (m *cacheRepoMock) DeleteProducts(ctx context.Context, ids []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		delete(m.products, id)
		m.deleted = append(m.deleted, id)
	}
	return nil
}

// imagesInfraMock сохраняет изображения под предсказуемым ключом.
type imagesInfraMock struct {
	storeKey   string
	storeErr   error
	stored     []*ProductImage
	cleanedUp  [][]string
	cleanupSig chan struct{}
}

func newImagesInfraMock(key string) *imagesInfraMock {
	return &imagesInfraMock{
		storeKey:   key,
		cleanupSig: make(chan struct{}, 1),
	}
}

func (m *imagesInfraMock) StoreImage(ctx context.Context, image *ProductImage) (string, error) {
	if m.storeErr != nil {
		return "", m.storeErr
	}
	m.stored = append(m.stored, image)
	return m.storeKey, nil
}

func (m *imagesInfraMock) CleanupImages(keys []string) {
	m.cleanedUp = append(m.cleanedUp, keys)
	select {
	case m.cleanupSig <- struct{}{}:
	default:
	}
}
