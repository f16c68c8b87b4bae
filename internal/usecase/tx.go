package usecase

import (
	"context"

	"github.com/DRSN-tech/store-api/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// runInTx выполняет fn в транзакции. Транзакция передаётся репозиториям через контекст.
// При ошибке fn или коммита транзакция откатывается.
func runInTx(ctx context.Context, db transaction.Transactional, fn func(ctx context.Context) error) (err error) {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, db)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil && tx.IsActive() {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(tr.WithTx(ctx, tx.Transaction())); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
