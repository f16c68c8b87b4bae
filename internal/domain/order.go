package domain

import "github.com/shopspring/decimal"

// Order описывает заказ. Пользователь и товар хранятся только ссылками.
type Order struct {
	ID         int64
	UserID     int64
	ProductID  int64
	Quantity   int64
	TotalPrice float64
}

// OrderDetails — заказ вместе с пользователем и товаром, на которые он ссылается.
type OrderDetails struct {
	Order   Order
	User    User
	Product Product
}

func NewOrder(userID int64, productID int64, quantity int64, totalPrice float64) *Order {
	return &Order{
		UserID:     userID,
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: totalPrice,
	}
}

func NewOrderDetails(order Order, user User, product Product) *OrderDetails {
	return &OrderDetails{
		Order:   order,
		User:    user,
		Product: product,
	}
}

// TotalPrice считает стоимость заказа как quantity * unitPrice.
// Скидка (discount_price) не учитывается.
func TotalPrice(quantity int64, unitPrice float64) float64 {
	return decimal.NewFromInt(quantity).
		Mul(decimal.NewFromFloat(unitPrice)).
		InexactFloat64()
}
