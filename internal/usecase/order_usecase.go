package usecase

import (
	"context"
	"math"

	"github.com/DRSN-tech/store-api/internal/domain"
	"github.com/DRSN-tech/store-api/pkg/e"
	"github.com/DRSN-tech/store-api/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
)

// OrderUseCase реализует бизнес-логику оформления заказов.
type OrderUseCase struct {
	orderRepo   OrderRepository
	userRepo    UserRepository
	productRepo ProductRepository
	dbPool      transaction.Transactional
	publisher   OrderEventPublisher
	logger      logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	userRepo UserRepository,
	productRepo ProductRepository,
	dbPool transaction.Transactional,
	publisher OrderEventPublisher,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		dbPool:      dbPool,
		publisher:   publisher,
		logger:      logger,
	}
}

// ListOrders возвращает все заказы вместе с пользователями и товарами.
func (o *OrderUseCase) ListOrders(ctx context.Context) ([]domain.OrderDetails, error) {
	const op = "OrderUseCase.ListOrders"

	orders, err := o.orderRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// CreateOrder находит пользователя и товар, считает total_price = quantity * price
// и сохраняет заказ. Если пользователя или товара нет, заказ не создаётся.
func (o *OrderUseCase) CreateOrder(ctx context.Context, req *CreateOrderReq) (*domain.OrderDetails, error) {
	const op = "OrderUseCase.CreateOrder"

	if req.UserID == nil || req.ProductID == nil || req.Quantity == nil {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	// Колонка quantity имеет тип INTEGER
	if *req.Quantity > math.MaxInt32 || *req.Quantity < math.MinInt32 {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	var details *domain.OrderDetails
	err := runInTx(ctx, o.dbPool, func(ctx context.Context) error {
		user, err := o.userRepo.GetByID(ctx, *req.UserID)
		if err != nil {
			return err
		}

		product, err := o.productRepo.GetByID(ctx, *req.ProductID)
		if err != nil {
			return err
		}

		total := domain.TotalPrice(*req.Quantity, product.Price)

		order, err := o.orderRepo.Create(ctx, domain.NewOrder(user.ID, product.ID, *req.Quantity, total))
		if err != nil {
			return err
		}

		details = domain.NewOrderDetails(*order, *user, *product)
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := o.publisher.PublishOrderCreated(ctx, details); err != nil {
		o.logger.Warnf("Failed to publish order %d created event: %v", details.Order.ID, e.Wrap(op, err))
	}

	return details, nil
}
