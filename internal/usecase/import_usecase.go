package usecase

import (
	"context"

	"github.com/DRSN-tech/store-api/internal/domain"
	"github.com/DRSN-tech/store-api/pkg/e"
	"github.com/DRSN-tech/store-api/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
)

const (
	SeedUserName  = "user_1"
	SeedUserEmail = "user_1@eemi.com"
)

// ImportUseCase начально заполняет базу: пересоздаёт схему, добавляет
// тестового пользователя и загружает товары.
type ImportUseCase struct {
	schema      SchemaManager
	userRepo    UserRepository
	productRepo ProductRepository
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewImportUC(
	schema SchemaManager,
	userRepo UserRepository,
	productRepo ProductRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *ImportUseCase {
	return &ImportUseCase{
		schema:      schema,
		userRepo:    userRepo,
		productRepo: productRepo,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// ImportProducts уничтожает все существующие данные.
// Пользователь и товары вставляются в одной транзакции, пользователь первым.
func (i *ImportUseCase) ImportProducts(ctx context.Context, req *ImportProductsReq) (*ImportProductsRes, error) {
	const op = "ImportUseCase.ImportProducts"

	if err := i.schema.ResetSchema(ctx, i.logger); err != nil {
		return nil, e.Wrap(op, err)
	}

	res := &ImportProductsRes{Skipped: req.Skipped}
	err := runInTx(ctx, i.dbPool, func(ctx context.Context) error {
		user, err := i.userRepo.Create(ctx, domain.NewUser(SeedUserName, SeedUserEmail))
		if err != nil {
			return err
		}
		res.SeedUser = user

		if len(req.Products) == 0 {
			return nil
		}

		inserted, err := i.productRepo.CreateBatch(ctx, req.Products)
		if err != nil {
			return err
		}
		res.Inserted = inserted

		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	i.logger.Infof("import finished: inserted=%d skipped=%d seed_user_id=%d", res.Inserted, res.Skipped, res.SeedUser.ID)
	return res, nil
}
