package usecase

import (
	"context"

	"github.com/DRSN-tech/store-api/internal/domain"
	"github.com/DRSN-tech/store-api/pkg/e"
	"github.com/DRSN-tech/store-api/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
)

// ProductUseCase реализует бизнес-логику управления товарами.
type ProductUseCase struct {
	productRepo ProductRepository
	dbPool      transaction.Transactional
	cache       ProductCache
	logger      logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	dbPool transaction.Transactional,
	cache ProductCache,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		dbPool:      dbPool,
		cache:       cache,
		logger:      logger,
	}
}

// ListProducts возвращает все товары.
func (p *ProductUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "ProductUseCase.ListProducts"

	products, err := p.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// GetProduct возвращает товар по идентификатору, сначала заглядывая в кэш.
func (p *ProductUseCase) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "ProductUseCase.GetProduct"

	cached, ok, err := p.cache.GetProduct(ctx, id)
	if err != nil {
		p.logger.Warnf("Failed to read product %d from cache: %v", id, e.Wrap(op, err))
	}
	if ok {
		return cached, nil
	}

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Параллельный PUT/DELETE может инвалидировать ключ раньше этой записи: устаревший товар живёт до истечения TTL.
	if err := p.cache.SetProduct(ctx, product); err != nil {
		p.logger.Warnf("Failed to cache product %d: %v", id, e.Wrap(op, err))
	}

	return product, nil
}

// CreateProduct создаёт товар. name, category и price обязательны.
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.CreateProduct"

	if err := p.validateCreateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := p.productRepo.Create(ctx, domain.NewProduct(*req.Name, *req.Category, *req.Price, req.DiscountPrice, req.Rating))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// UpdateProduct частично обновляет товар: поля, которых нет в запросе, сохраняют прежние значения.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.UpdateProduct"

	var updated *domain.Product
	err := runInTx(ctx, p.dbPool, func(ctx context.Context) error {
		product, err := p.productRepo.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		product.ApplyPatch(req.Patch)

		updated, err = p.productRepo.Update(ctx, product)
		return err
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidate(ctx, req.ID)

	return updated, nil
}

// DeleteProduct удаляет товар. Товар, на который ссылаются заказы, удалить нельзя.
func (p *ProductUseCase) DeleteProduct(ctx context.Context, id int64) error {
	const op = "ProductUseCase.DeleteProduct"

	if err := p.productRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	p.invalidate(ctx, id)

	return nil
}

// invalidate удаляет товар из кэша; ошибка кэша не влияет на результат операции.
func (p *ProductUseCase) invalidate(ctx context.Context, id int64) {
	if err := p.cache.DeleteProduct(ctx, id); err != nil {
		p.logger.Warnf("Failed to delete product %d from cache: %v", id, err)
	}
}

// validateCreateProduct проверяет наличие обязательных полей.
func (p *ProductUseCase) validateCreateProduct(req *CreateProductReq) error {
	if req.Name == nil || req.Category == nil || req.Price == nil {
		return e.ErrMissingFields
	}

	return nil
}
