package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/DRSN-tech/store-api/internal/domain"
	"github.com/DRSN-tech/store-api/pkg/e"
	"github.com/jimlawless/whereami"
)

const (
	columnName          = "name"
	columnCategory      = "main_category"
	columnActualPrice   = "actual_price"
	columnDiscountPrice = "discount_price"
	columnRatings       = "ratings"
)

var ErrMissingColumn = errors.New("csv: missing required column")

// Result — товары, готовые к вставке, и число отброшенных строк.
type Result struct {
	Products []domain.Product
	Skipped  int
}

// ReadProducts читает CSV с заголовком. Строка без цены, названия или
// категории не может быть сохранена и пропускается.
func ReadProducts(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Result{}, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	idx, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, e.Wrap(fmt.Sprintf("csv line %d", line), err)
		}

		product, ok := toProduct(record, idx)
		if !ok {
			res.Skipped++
			continue
		}
		res.Products = append(res.Products, *product)
	}

	return res, nil
}

func indexColumns(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, col := range header {
		col = strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))
		if _, dup := idx[col]; !dup {
			idx[col] = i
		}
	}

	for _, col := range []string{columnName, columnCategory, columnActualPrice, columnDiscountPrice, columnRatings} {
		if _, ok := idx[col]; !ok {
			return nil, e.Wrap(col, ErrMissingColumn)
		}
	}

	return idx, nil
}

func toProduct(record []string, idx map[string]int) (*domain.Product, bool) {
	field := func(col string) string {
		i := idx[col]
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	name := strings.TrimSpace(field(columnName))
	category := strings.TrimSpace(field(columnCategory))
	price := ParsePrice(field(columnActualPrice))

	if name == "" || category == "" || price == nil {
		return nil, false
	}

	return domain.NewProduct(
		name,
		category,
		*price,
		ParsePrice(field(columnDiscountPrice)),
		ParseRating(field(columnRatings)),
	), true
}
