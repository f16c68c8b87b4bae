package pgdb

import (
	"context"

	"github.com/DRSN-tech/store-api/internal/domain"
	"github.com/DRSN-tech/store-api/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/store-api/pkg/e"
	"github.com/DRSN-tech/store-api/pkg/tr"
	"github.com/jimlawless/whereami"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool tr.Querier
	conv converter.OrderConverter
}

func NewOrderRepo(pool tr.Querier, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{
		pool: pool,
		conv: conv,
	}
}

// List возвращает заказы вместе с пользователями и товарами одной выборкой.
func (o *OrderRepo) List(ctx context.Context) ([]domain.OrderDetails, error) {
	query := `
		SELECT o.id, o.user_id, o.product_id, o.quantity, o.total_price,
		       u.id, u.name, u.email,
		       p.id, p.name, p.category, p.price, p.discount_price, p.rating
		FROM orders o
		JOIN users u ON u.id = o.user_id
		JOIN products p ON p.id = o.product_id
		ORDER BY o.id
	`

	rows, err := tr.QuerierFromCtx(ctx, o.pool).Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.OrderDetailsModel, 0)
	for rows.Next() {
		var m converter.OrderDetailsModel
		if err := rows.Scan(
			&m.Order.ID, &m.Order.UserID, &m.Order.ProductID, &m.Order.Quantity, &m.Order.TotalPrice,
			&m.User.ID, &m.User.Name, &m.User.Email,
			&m.Product.ID, &m.Product.Name, &m.Product.Category, &m.Product.Price,
			&m.Product.DiscountPrice, &m.Product.Rating,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, m)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToArrDetailsEntity(models), nil
}

// Create сохраняет заказ.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	query := `
		INSERT INTO orders (user_id, product_id, quantity, total_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	model := o.conv.ToModel(order)
	if err := tr.QuerierFromCtx(ctx, o.pool).QueryRow(ctx, query,
		model.UserID, model.ProductID, model.Quantity, model.TotalPrice,
	).Scan(&model.ID); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(model), nil
}
