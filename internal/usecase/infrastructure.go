package usecase

import (
	"context"

	"github.com/DRSN-tech/store-api/internal/domain"
)

// OrderEventPublisher публикует события о созданных заказах во внешнюю шину.
type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *domain.OrderDetails) error
}
