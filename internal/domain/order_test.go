package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name     string
		quantity int64
		price    float64
		want     float64
	}{
		{name: "three items", quantity: 3, price: 19.99, want: 59.97},
		{name: "single item", quantity: 1, price: 10.0, want: 10.0},
		{name: "zero quantity", quantity: 0, price: 5.5, want: 0},
		{name: "many cents", quantity: 10, price: 0.1, want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPrice(tt.quantity, tt.price))
		})
	}
}
