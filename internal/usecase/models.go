package usecase

import "github.com/DRSN-tech/store-api/internal/domain"

// PRODUCT USECASE

// CreateProductReq — запрос на создание товара. nil означает, что поле не передано.
type CreateProductReq struct {
	Name          *string
	Category      *string
	Price         *float64
	DiscountPrice *float64
	Rating        *float64
}

// UpdateProductReq — запрос на частичное обновление товара.
type UpdateProductReq struct {
	ID    int64
	Patch domain.ProductPatch
}

// USER USECASE

// CreateUserReq — запрос на создание пользователя.
type CreateUserReq struct {
	Name  *string
	Email *string
}

// ORDER USECASE

// CreateOrderReq — запрос на создание заказа.
type CreateOrderReq struct {
	UserID    *int64
	ProductID *int64
	Quantity  *int64
}

// MAPPERS

func NewCreateProductReq(name, category *string, price, discountPrice, rating *float64) *CreateProductReq {
	return &CreateProductReq{
		Name:          name,
		Category:      category,
		Price:         price,
		DiscountPrice: discountPrice,
		Rating:        rating,
	}
}

func NewUpdateProductReq(id int64, patch domain.ProductPatch) *UpdateProductReq {
	return &UpdateProductReq{
		ID:    id,
		Patch: patch,
	}
}

func NewCreateUserReq(name, email *string) *CreateUserReq {
	return &CreateUserReq{
		Name:  name,
		Email: email,
	}
}

func NewCreateOrderReq(userID, productID, quantity *int64) *CreateOrderReq {
	return &CreateOrderReq{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
}

// IMPORT USECASE

// ImportProductsReq — товары, прочитанные из CSV. Skipped — сколько строк отброшено при разборе.
type ImportProductsReq struct {
	Products []domain.Product
	Skipped  int
}

type ImportProductsRes struct {
	SeedUser *domain.User
	Inserted int64
	Skipped  int
}

func NewImportProductsReq(products []domain.Product, skipped int) *ImportProductsReq {
	return &ImportProductsReq{
		Products: products,
		Skipped:  skipped,
	}
}
