package domain

// Product описывает товар каталога
type Product struct {
	ID            int64
	Name          string
	Category      string
	Price         float64
	DiscountPrice *float64 // nil — скидка неизвестна
	Rating        *float64 // nil — рейтинг неизвестен
}

func NewProduct(name string, category string, price float64, discountPrice *float64, rating *float64) *Product {
	return &Product{
		Name:          name,
		Category:      category,
		Price:         price,
		DiscountPrice: discountPrice,
		Rating:        rating,
	}
}

// NullableFloat — значение частичного обновления для поля, допускающего NULL.
// Set=false означает, что поле в запросе отсутствовало.
type NullableFloat struct {
	Set   bool
	Value *float64
}

// ProductPatch — частичное обновление товара. nil/не заданные поля не меняются.
type ProductPatch struct {
	Name          *string
	Category      *string
	Price         *float64
	DiscountPrice NullableFloat
	Rating        NullableFloat
}

// ApplyPatch применяет к товару только переданные поля.
func (p *Product) ApplyPatch(patch ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.DiscountPrice.Set {
		p.DiscountPrice = patch.DiscountPrice.Value
	}
	if patch.Rating.Set {
		p.Rating = patch.Rating.Value
	}
}
