package http

import (
	"net/http"

	"github.com/DRSN-tech/store-api/internal/usecase"
	"github.com/DRSN-tech/store-api/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// listProducts
//
//	@Summary	Список товаров
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}		ProductResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.productUsecase.ListProducts(r.Context())
	if err != nil {
		writeErrorLogged(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toArrProductResponse(products))
}

// createProduct
//
//	@Summary		Создание товара
//	@Description	name, category и price обязательны; discount_price и rating необязательны
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		CreateProductRequest	true	"Товар"
//	@Success		201		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		500		{object}	ErrorResponse
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErrorLogged(w, r, p.logger, err)
		return
	}

	product, err := p.productUsecase.CreateProduct(r.Context(), req.toUC())
	if err != nil {
		writeErrorLogged(w, r, p.logger, err)
		return
	}

	p.logger.Infof("product created: id=%d", product.ID)
	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// getProduct
//
//	@Summary	Товар по id
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	ProductResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse	"Товар не найден"
//	@Router		/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeErrorLogged(w, r, p.logger, err)
		return
	}

	product, err := p.productUsecase.GetProduct(r.Context(), id)
	if err != nil {
		writeErrorLogged(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// updateProduct
//
//	@Summary		Частичное обновление товара
//	@Description	Меняются только переданные поля. null очищает discount_price и rating
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"ID товара"
//	@Param			product	body		UpdateProductRequest	true	"Изменяемые поля"
//	@Success		200		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse	"Товар не найден"
//	@Router			/products/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeErrorLogged(w, r, p.logger, err)
		return
	}

	var req UpdateProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeErrorLogged(w, r, p.logger, err)
		return
	}

	patch, err := req.toPatch()
	if err != nil {
		writeErrorLogged(w, r, p.logger, err)
		return
	}

	product, err := p.productUsecase.UpdateProduct(r.Context(), usecase.NewUpdateProductReq(id, patch))
	if err != nil {
		writeErrorLogged(w, r, p.logger, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// deleteProduct
//
//	@Summary	Удаление товара
//	@Tags		products
//	@Param		id	path	int	true	"ID товара"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse	"Товар не найден"
//	@Failure	409	{object}	ErrorResponse	"На товар ссылаются заказы"
//	@Router		/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeErrorLogged(w, r, p.logger, err)
		return
	}

	if err := p.productUsecase.DeleteProduct(r.Context(), id); err != nil {
		writeErrorLogged(w, r, p.logger, err)
		return
	}

	p.logger.Infof("product deleted: id=%d", id)
	w.WriteHeader(http.StatusNoContent)
}
