package loader

import (
	"strings"

	"github.com/shopspring/decimal"
)

var currencyReplacer = strings.NewReplacer(
	"₹", "",
	"$", "",
	"€", "",
	"£", "",
	",", "",
)

// ParsePrice разбирает строку вида "₹1,299" или "$19.99".
// Нераспознанное или пустое значение — nil, а не ошибка.
func ParsePrice(raw string) *float64 {
	return parseNumber(currencyReplacer.Replace(raw))
}

// ParseRating разбирает рейтинг как обычное число; мусор даёт nil.
func ParseRating(raw string) *float64 {
	return parseNumber(raw)
}

func parseNumber(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}

	v := d.InexactFloat64()
	return &v
}
