package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/store-api/internal/domain"
	"github.com/DRSN-tech/store-api/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/store-api/pkg/e"
	"github.com/DRSN-tech/store-api/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

var productColumns = []string{"name", "category", "price", "discount_price", "rating"}

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool tr.Querier
	conv converter.ProductConverter
}

func NewProductRepo(pool tr.Querier, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// List возвращает все товары в порядке идентификаторов.
func (p *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, category, price, discount_price, rating
		FROM products
		ORDER BY id
	`

	rows, err := tr.QuerierFromCtx(ctx, p.pool).Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.ProductModel, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Category, &model.Price, &model.DiscountPrice, &model.Rating,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// GetByID возвращает товар или e.ErrProductNotFound.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, name, category, price, discount_price, rating
		FROM products
		WHERE id = $1
	`

	var model converter.ProductModel
	err := tr.QuerierFromCtx(ctx, p.pool).QueryRow(ctx, query, id).
		Scan(
			&model.ID, &model.Name, &model.Category, &model.Price, &model.DiscountPrice, &model.Rating,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Create сохраняет товар; идентификатор назначает база.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (name, category, price, discount_price, rating)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	model := p.conv.ToModel(product)
	if err := tr.QuerierFromCtx(ctx, p.pool).QueryRow(ctx, query,
		model.Name, model.Category, model.Price, model.DiscountPrice, model.Rating,
	).Scan(&model.ID); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// CreateBatch вставляет товары через COPY и возвращает количество записанных строк.
func (p *ProductRepo) CreateBatch(ctx context.Context, products []domain.Product) (int64, error) {
	if len(products) == 0 {
		return 0, nil
	}

	src := pgx.CopyFromSlice(len(products), func(i int) ([]any, error) {
		model := p.conv.ToModel(&products[i])
		return []any{model.Name, model.Category, model.Price, model.DiscountPrice, model.Rating}, nil
	})

	n, err := tr.QuerierFromCtx(ctx, p.pool).CopyFrom(ctx, pgx.Identifier{"products"}, productColumns, src)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return n, nil
}

// Update перезаписывает все поля товара.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		UPDATE products
		SET name = $2, category = $3, price = $4, discount_price = $5, rating = $6
		WHERE id = $1
		RETURNING id, name, category, price, discount_price, rating
	`

	in := p.conv.ToModel(product)

	var model converter.ProductModel
	err := tr.QuerierFromCtx(ctx, p.pool).QueryRow(ctx, query,
		in.ID, in.Name, in.Category, in.Price, in.DiscountPrice, in.Rating,
	).Scan(
		&model.ID, &model.Name, &model.Category, &model.Price, &model.DiscountPrice, &model.Rating,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Delete удаляет товар. Если на товар ссылаются заказы, возвращает e.ErrProductInUse.
func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1`

	tag, err := tr.QuerierFromCtx(ctx, p.pool).Exec(ctx, query, id)
	if err != nil {
		if postgresForeignKeyViolation(err) {
			return e.Wrap(whereami.WhereAmI(), e.ErrProductInUse)
		}
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}
