package converter

import "github.com/DRSN-tech/store-api/internal/domain"

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []ProductModel) []domain.Product
}

// UserConverter преобразует сущности User между domain и моделью PostgreSQL.
type UserConverter interface {
	ToModel(entity *domain.User) *UserModel
	ToEntity(model *UserModel) *domain.User
	ToArrEntity(models []UserModel) []domain.User
}

// OrderConverter преобразует сущности Order и OrderDetails между domain и моделями PostgreSQL.
type OrderConverter interface {
	ToModel(entity *domain.Order) *OrderModel
	ToEntity(model *OrderModel) *domain.Order
	ToDetailsEntity(model *OrderDetailsModel) *domain.OrderDetails
	ToArrDetailsEntity(models []OrderDetailsModel) []domain.OrderDetails
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (c *ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	if entity == nil {
		return nil
	}

	return &ProductModel{
		ID:            entity.ID,
		Name:          entity.Name,
		Category:      entity.Category,
		Price:         entity.Price,
		DiscountPrice: copyFloat(entity.DiscountPrice),
		Rating:        copyFloat(entity.Rating),
	}
}

func (c *ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	if model == nil {
		return nil
	}

	return &domain.Product{
		ID:            model.ID,
		Name:          model.Name,
		Category:      model.Category,
		Price:         model.Price,
		DiscountPrice: copyFloat(model.DiscountPrice),
		Rating:        copyFloat(model.Rating),
	}
}

func (c *ProductConverterImpl) ToArrEntity(models []ProductModel) []domain.Product {
	res := make([]domain.Product, 0, len(models))
	for i := range models {
		res = append(res, *c.ToEntity(&models[i]))
	}

	return res
}

type UserConverterImpl struct{}

func NewUserConverterImpl() *UserConverterImpl {
	return &UserConverterImpl{}
}

func (c *UserConverterImpl) ToModel(entity *domain.User) *UserModel {
	if entity == nil {
		return nil
	}

	return &UserModel{ID: entity.ID, Name: entity.Name, Email: entity.Email}
}

func (c *UserConverterImpl) ToEntity(model *UserModel) *domain.User {
	if model == nil {
		return nil
	}

	return &domain.User{ID: model.ID, Name: model.Name, Email: model.Email}
}

func (c *UserConverterImpl) ToArrEntity(models []UserModel) []domain.User {
	res := make([]domain.User, 0, len(models))
	for i := range models {
		res = append(res, *c.ToEntity(&models[i]))
	}

	return res
}

type OrderConverterImpl struct {
	products ProductConverter
	users    UserConverter
}

func NewOrderConverterImpl(products ProductConverter, users UserConverter) *OrderConverterImpl {
	return &OrderConverterImpl{products: products, users: users}
}

func (c *OrderConverterImpl) ToModel(entity *domain.Order) *OrderModel {
	if entity == nil {
		return nil
	}

	return &OrderModel{
		ID:         entity.ID,
		UserID:     entity.UserID,
		ProductID:  entity.ProductID,
		Quantity:   entity.Quantity,
		TotalPrice: entity.TotalPrice,
	}
}

func (c *OrderConverterImpl) ToEntity(model *OrderModel) *domain.Order {
	if model == nil {
		return nil
	}

	return &domain.Order{
		ID:         model.ID,
		UserID:     model.UserID,
		ProductID:  model.ProductID,
		Quantity:   model.Quantity,
		TotalPrice: model.TotalPrice,
	}
}

func (c *OrderConverterImpl) ToDetailsEntity(model *OrderDetailsModel) *domain.OrderDetails {
	if model == nil {
		return nil
	}

	return domain.NewOrderDetails(
		*c.ToEntity(&model.Order),
		*c.users.ToEntity(&model.User),
		*c.products.ToEntity(&model.Product),
	)
}

func (c *OrderConverterImpl) ToArrDetailsEntity(models []OrderDetailsModel) []domain.OrderDetails {
	res := make([]domain.OrderDetails, 0, len(models))
	for i := range models {
		res = append(res, *c.ToDetailsEntity(&models[i]))
	}

	return res
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}

	c := *v
	return &c
}
