package pgdb

import (
	"context"

	"github.com/DRSN-tech/catalog-backend/pkg/e"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

// PgTransactor открывает транзакцию PostgreSQL и пробрасывает её
// репозиториям через контекст (см. pkg/tr).
type PgTransactor struct {
	dbPool transaction.Transactional
}

func NewPgTransactor(dbPool transaction.Transactional) *PgTransactor {
	return &PgTransactor{dbPool: dbPool}
}

// WithinTransaction выполняет fn в транзакции.
// Ошибка fn откатывает транзакцию; успешное завершение коммитит её.
func (t *PgTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, t.dbPool)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	defer func() {
		if tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()

	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err := fn(ctx); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
