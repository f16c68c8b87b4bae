package usecase

import (
	"context"

	"github.com/DRSN-tech/store-api/internal/domain"
	"github.com/DRSN-tech/store-api/pkg/logger"
)

type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	CreateBatch(ctx context.Context, products []domain.Product) (int64, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type OrderRepository interface {
	List(ctx context.Context) ([]domain.OrderDetails, error)
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
}

// ProductCache — кэш товаров по идентификатору.
type ProductCache interface {
	GetProduct(ctx context.Context, id int64) (*domain.Product, bool, error)
	SetProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id int64) error
}

// SchemaManager удаляет и заново создаёт схему базы.
type SchemaManager interface {
	ResetSchema(ctx context.Context, logger logger.Logger) error
}
