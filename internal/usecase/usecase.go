package usecase

import (
	"context"

	"github.com/DRSN-tech/store-api/internal/domain"
)

type ProductUC interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type UserUC interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, req *CreateUserReq) (*domain.User, error)
}

type OrderUC interface {
	ListOrders(ctx context.Context) ([]domain.OrderDetails, error)
	CreateOrder(ctx context.Context, req *CreateOrderReq) (*domain.OrderDetails, error)
}
