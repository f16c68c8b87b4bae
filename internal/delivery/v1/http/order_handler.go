package http

import (
	"net/http"

	"github.com/DRSN-tech/store-api/internal/usecase"
	"github.com/DRSN-tech/store-api/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

// listOrders
//
//	@Summary	Список заказов
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}		OrderResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/orders [get]
func (o *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := o.orderUsecase.ListOrders(r.Context())
	if err != nil {
		writeErrorLogged(w, r, o.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrOrderResponse(orders))
}

// createOrder
//
//	@Summary		Оформление заказа
//	@Description	total_price = quantity * price товара
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		CreateOrderRequest	true	"Заказ"
//	@Success		201		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Пользователь или товар не найден"
//	@Router			/orders [post]
func (o *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErrorLogged(w, r, o.logger, err)
		return
	}

	order, err := o.orderUsecase.CreateOrder(r.Context(), req.toUC())
	if err != nil {
		writeErrorLogged(w, r, o.logger, err)
		return
	}

	o.logger.Infof("order created: id=%d total=%.2f", order.Order.ID, order.Order.TotalPrice)
	WriteSuccess(w, http.StatusCreated, toOrderResponse(order))
}
