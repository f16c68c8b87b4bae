package converter

import "github.com/DRSN-tech/store-api/internal/domain"

// ProductRedisModel — JSON-представление товара в кэше.
type ProductRedisModel struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discount_price"`
	Rating        *float64 `json:"rating"`
}

func ToRedisModel(entity *domain.Product) *ProductRedisModel {
	return &ProductRedisModel{
		ID:            entity.ID,
		Name:          entity.Name,
		Category:      entity.Category,
		Price:         entity.Price,
		DiscountPrice: entity.DiscountPrice,
		Rating:        entity.Rating,
	}
}

func ToEntity(model *ProductRedisModel) *domain.Product {
	return &domain.Product{
		ID:            model.ID,
		Name:          model.Name,
		Category:      model.Category,
		Price:         model.Price,
		DiscountPrice: model.DiscountPrice,
		Rating:        model.Rating,
	}
}
