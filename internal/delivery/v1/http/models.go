package http

import (
	"bytes"
	"encoding/json"

	"github.com/DRSN-tech/store-api/internal/domain"
	"github.com/DRSN-tech/store-api/internal/usecase"
	"github.com/DRSN-tech/store-api/pkg/e"
)

// Optional различает отсутствующее поле (Set=false) и явный null (Set=true, Value=nil).
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v

	return nil
}

// REQUESTS

type CreateProductRequest struct {
	Name          *string  `json:"name" example:"Widget"`
	Category      *string  `json:"category" example:"Tools"`
	Price         *float64 `json:"price" example:"10"`
	DiscountPrice *float64 `json:"discount_price" example:"8.5"`
	Rating        *float64 `json:"rating" example:"4.2"`
}

type UpdateProductRequest struct {
	Name          Optional[string]  `json:"name" swaggertype:"string"`
	Category      Optional[string]  `json:"category" swaggertype:"string"`
	Price         Optional[float64] `json:"price" swaggertype:"number"`
	DiscountPrice Optional[float64] `json:"discount_price" swaggertype:"number"`
	Rating        Optional[float64] `json:"rating" swaggertype:"number"`
}

type CreateUserRequest struct {
	Name  *string `json:"name" example:"user_1"`
	Email *string `json:"email" example:"user_1@eemi.com"`
}

type CreateOrderRequest struct {
	UserID    *int64 `json:"user_id" example:"1"`
	ProductID *int64 `json:"product_id" example:"1"`
	Quantity  *int64 `json:"quantity" example:"3"`
}

func (r *CreateProductRequest) toUC() *usecase.CreateProductReq {
	return usecase.NewCreateProductReq(r.Name, r.Category, r.Price, r.DiscountPrice, r.Rating)
}

// toPatch превращает запрос в частичное обновление.
// Явный null допустим только для discount_price и rating.
func (r *UpdateProductRequest) toPatch() (domain.ProductPatch, error) {
	if (r.Name.Set && r.Name.Value == nil) ||
		(r.Category.Set && r.Category.Value == nil) ||
		(r.Price.Set && r.Price.Value == nil) {
		return domain.ProductPatch{}, e.ErrNullField
	}

	return domain.ProductPatch{
		Name:          r.Name.Value,
		Category:      r.Category.Value,
		Price:         r.Price.Value,
		DiscountPrice: domain.NullableFloat{Set: r.DiscountPrice.Set, Value: r.DiscountPrice.Value},
		Rating:        domain.NullableFloat{Set: r.Rating.Set, Value: r.Rating.Value},
	}, nil
}

func (r *CreateUserRequest) toUC() *usecase.CreateUserReq {
	return usecase.NewCreateUserReq(r.Name, r.Email)
}

func (r *CreateOrderRequest) toUC() *usecase.CreateOrderReq {
	return usecase.NewCreateOrderReq(r.UserID, r.ProductID, r.Quantity)
}

// RESPONSES

type ProductResponse struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discount_price"`
	Rating        *float64 `json:"rating"`
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type OrderResponse struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	ProductID  int64           `json:"product_id"`
	Quantity   int64           `json:"quantity"`
	TotalPrice float64         `json:"total_price"`
	User       UserResponse    `json:"user"`
	Product    ProductResponse `json:"product"`
}

func toProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Price:         p.Price,
		DiscountPrice: p.DiscountPrice,
		Rating:        p.Rating,
	}
}

func toArrProductResponse(products []domain.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(products))
	for i := range products {
		result = append(result, toProductResponse(&products[i]))
	}
	return result
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func toArrUserResponse(users []domain.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for i := range users {
		result = append(result, toUserResponse(&users[i]))
	}
	return result
}

func toOrderResponse(o *domain.OrderDetails) OrderResponse {
	return OrderResponse{
		ID:         o.Order.ID,
		UserID:     o.Order.UserID,
		ProductID:  o.Order.ProductID,
		Quantity:   o.Order.Quantity,
		TotalPrice: o.Order.TotalPrice,
		User:       toUserResponse(&o.User),
		Product:    toProductResponse(&o.Product),
	}
}

func toArrOrderResponse(orders []domain.OrderDetails) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, toOrderResponse(&orders[i]))
	}
	return result
}
