package usecase

import "context"

// ImagesInfra — коллаборатор blob-хранилища: сохраняет изображение под
// сгенерированным уникальным ключом и возвращает этот ключ.
type ImagesInfra interface {
	StoreImage(ctx context.Context, image *ProductImage) (string, error)
	CleanupImages(keys []string)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

// Transactor выполняет fn в границах одной транзакции хранилища.
// Транзакция передаётся репозиториям через контекст; ошибка fn откатывает её.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
