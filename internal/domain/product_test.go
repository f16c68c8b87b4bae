package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestProduct_ApplyPatch(t *testing.T) {
	base := func() *Product {
		return &Product{
			ID:            1,
			Name:          "Widget",
			Category:      "Tools",
			Price:         10,
			DiscountPrice: ptr(8.0),
			Rating:        ptr(4.5),
		}
	}

	t.Run("empty patch keeps everything", func(t *testing.T) {
		p := base()
		p.ApplyPatch(ProductPatch{})
		assert.Equal(t, base(), p)
	})

	t.Run("only supplied fields change", func(t *testing.T) {
		p := base()
		p.ApplyPatch(ProductPatch{Price: ptr(12.5)})

		want := base()
		want.Price = 12.5
		assert.Equal(t, want, p)
	})

	t.Run("explicit null clears nullable field", func(t *testing.T) {
		p := base()
		p.ApplyPatch(ProductPatch{DiscountPrice: NullableFloat{Set: true}})

		assert.Nil(t, p.DiscountPrice)
		assert.Equal(t, ptr(4.5), p.Rating)
	})

	t.Run("all fields", func(t *testing.T) {
		p := base()
		p.ApplyPatch(ProductPatch{
			Name:          ptr("Gadget"),
			Category:      ptr("Toys"),
			Price:         ptr(1.0),
			DiscountPrice: NullableFloat{Set: true, Value: ptr(0.5)},
			Rating:        NullableFloat{Set: true, Value: ptr(3.0)},
		})

		assert.Equal(t, &Product{
			ID:            1,
			Name:          "Gadget",
			Category:      "Toys",
			Price:         1.0,
			DiscountPrice: ptr(0.5),
			Rating:        ptr(3.0),
		}, p)
	})
}
