package pgdb

import (
	"context"
	"testing"

	"github.com/DRSN-tech/store-api/internal/domain"
	"github.com/DRSN-tech/store-api/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/store-api/pkg/e"
	"github.com/DRSN-tech/store-api/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productRowColumns = []string{"id", "name", "category", "price", "discount_price", "rating"}

func ptr[T any](v T) *T { return &v }

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})

	return mock
}

func newProductRepo(mock pgxmock.PgxPoolIface) *ProductRepo {
	return NewProductRepo(mock, converter.NewProductConverterImpl())
}

func TestProductRepo_List(t *testing.T) {
	mock := newMock(t)
	repo := newProductRepo(mock)

	mock.ExpectQuery(`SELECT id, name, category, price, discount_price, rating\s+FROM products\s+ORDER BY id`).
		WillReturnRows(pgxmock.NewRows(productRowColumns).
			AddRow(int64(1), "Widget", "Tools", 10.0, (*float64)(nil), (*float64)(nil)).
			AddRow(int64(2), "Gadget", "Toys", 25.5, ptr(20.0), ptr(4.1)))

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, domain.Product{ID: 1, Name: "Widget", Category: "Tools", Price: 10.0}, products[0])
	assert.Equal(t, ptr(20.0), products[1].DiscountPrice)
	assert.Equal(t, ptr(4.1), products[1].Rating)
}

func TestProductRepo_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock := newMock(t)
		repo := newProductRepo(mock)

		mock.ExpectQuery(`FROM products\s+WHERE id = \$1`).
			WithArgs(int64(5)).
			WillReturnRows(pgxmock.NewRows(productRowColumns).
				AddRow(int64(5), "Widget", "Tools", 10.0, ptr(9.0), (*float64)(nil)))

		product, err := repo.GetByID(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, &domain.Product{ID: 5, Name: "Widget", Category: "Tools", Price: 10.0, DiscountPrice: ptr(9.0)}, product)
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMock(t)
		repo := newProductRepo(mock)

		mock.ExpectQuery(`FROM products\s+WHERE id = \$1`).
			WithArgs(int64(404)).
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetByID(context.Background(), 404)
		assert.ErrorIs(t, err, e.ErrProductNotFound)
	})
}

func TestProductRepo_Create(t *testing.T) {
	mock := newMock(t)
	repo := newProductRepo(mock)

	mock.ExpectQuery(`INSERT INTO products`).
		WithArgs("Widget", "Tools", 10.0, (*float64)(nil), (*float64)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

	product, err := repo.Create(context.Background(), domain.NewProduct("Widget", "Tools", 10.0, nil, nil))
	require.NoError(t, err)
	assert.Equal(t, int64(11), product.ID)
	assert.Equal(t, "Widget", product.Name)
	assert.Nil(t, product.DiscountPrice)
	assert.Nil(t, product.Rating)
}

func TestProductRepo_CreateBatch(t *testing.T) {
	mock := newMock(t)
	repo := newProductRepo(mock)

	mock.ExpectCopyFrom(pgx.Identifier{"products"}, productColumns).WillReturnResult(2)

	n, err := repo.CreateBatch(context.Background(), []domain.Product{
		*domain.NewProduct("A", "X", 1, nil, nil),
		*domain.NewProduct("B", "Y", 2, ptr(1.5), ptr(3.9)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestProductRepo_CreateBatchEmpty(t *testing.T) {
	mock := newMock(t)
	repo := newProductRepo(mock)

	n, err := repo.CreateBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProductRepo_Update(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		mock := newMock(t)
		repo := newProductRepo(mock)

		mock.ExpectQuery(`UPDATE products`).
			WithArgs(int64(3), "Widget", "Tools", 12.0, ptr(10.0), (*float64)(nil)).
			WillReturnRows(pgxmock.NewRows(productRowColumns).
				AddRow(int64(3), "Widget", "Tools", 12.0, ptr(10.0), (*float64)(nil)))

		product, err := repo.Update(context.Background(), &domain.Product{
			ID: 3, Name: "Widget", Category: "Tools", Price: 12.0, DiscountPrice: ptr(10.0),
		})
		require.NoError(t, err)
		assert.Equal(t, 12.0, product.Price)
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMock(t)
		repo := newProductRepo(mock)

		mock.ExpectQuery(`UPDATE products`).WillReturnError(pgx.ErrNoRows)

		_, err := repo.Update(context.Background(), &domain.Product{ID: 3})
		assert.ErrorIs(t, err, e.ErrProductNotFound)
	})
}

func TestProductRepo_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		mock := newMock(t)
		repo := newProductRepo(mock)

		mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.Delete(context.Background(), 3))
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMock(t)
		repo := newProductRepo(mock)

		mock.ExpectExec(`DELETE FROM products`).
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 3), e.ErrProductNotFound)
	})

	t.Run("referenced by orders", func(t *testing.T) {
		mock := newMock(t)
		repo := newProductRepo(mock)

		mock.ExpectExec(`DELETE FROM products`).
			WithArgs(int64(3)).
			WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode})

		assert.ErrorIs(t, repo.Delete(context.Background(), 3), e.ErrProductInUse)
	})
}

func TestProductRepo_UsesTransactionFromContext(t *testing.T) {
	mock := newMock(t)
	repo := newProductRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM products`).
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := mock.Begin(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(tr.WithTx(ctx, tx), 1))
	require.NoError(t, tx.Commit(ctx))
}

func TestUserRepo_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		mock := newMock(t)
		repo := NewUserRepo(mock, converter.NewUserConverterImpl())

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("user_1", "user_1@eemi.com").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

		user, err := repo.Create(context.Background(), domain.NewUser("user_1", "user_1@eemi.com"))
		require.NoError(t, err)
		assert.Equal(t, &domain.User{ID: 1, Name: "user_1", Email: "user_1@eemi.com"}, user)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mock := newMock(t)
		repo := NewUserRepo(mock, converter.NewUserConverterImpl())

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("user_1", "user_1@eemi.com").
			WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})

		_, err := repo.Create(context.Background(), domain.NewUser("user_1", "user_1@eemi.com"))
		assert.ErrorIs(t, err, e.ErrEmailTaken)
	})
}

func TestUserRepo_ListAndGet(t *testing.T) {
	mock := newMock(t)
	repo := NewUserRepo(mock, converter.NewUserConverterImpl())

	mock.ExpectQuery(`SELECT id, name, email FROM users ORDER BY id`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email"}).
			AddRow(int64(1), "Alice", "alice@example.com").
			AddRow(int64(2), "Bob", "bob@example.com"))
	mock.ExpectQuery(`SELECT id, name, email FROM users WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "Bob", users[1].Name)

	_, err = repo.GetByID(context.Background(), 9)
	assert.ErrorIs(t, err, e.ErrUserNotFound)
}

func TestOrderRepo_List(t *testing.T) {
	mock := newMock(t)
	conv := converter.NewOrderConverterImpl(converter.NewProductConverterImpl(), converter.NewUserConverterImpl())
	repo := NewOrderRepo(mock, conv)

	cols := []string{
		"id", "user_id", "product_id", "quantity", "total_price",
		"id", "name", "email",
		"id", "name", "category", "price", "discount_price", "rating",
	}
	mock.ExpectQuery(`FROM orders o\s+JOIN users u`).
		WillReturnRows(pgxmock.NewRows(cols).AddRow(
			int64(1), int64(2), int64(3), int64(3), 59.97,
			int64(2), "Alice", "alice@example.com",
			int64(3), "Widget", "Tools", 19.99, (*float64)(nil), ptr(4.0),
		))

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)

	assert.Equal(t, domain.Order{ID: 1, UserID: 2, ProductID: 3, Quantity: 3, TotalPrice: 59.97}, orders[0].Order)
	assert.Equal(t, domain.User{ID: 2, Name: "Alice", Email: "alice@example.com"}, orders[0].User)
	assert.Equal(t, domain.Product{ID: 3, Name: "Widget", Category: "Tools", Price: 19.99, Rating: ptr(4.0)}, orders[0].Product)
}

func TestOrderRepo_Create(t *testing.T) {
	mock := newMock(t)
	conv := converter.NewOrderConverterImpl(converter.NewProductConverterImpl(), converter.NewUserConverterImpl())
	repo := NewOrderRepo(mock, conv)

	mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(int64(1), int64(2), int64(3), 59.97).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(10)))

	order, err := repo.Create(context.Background(), domain.NewOrder(1, 2, 3, 59.97))
	require.NoError(t, err)
	assert.Equal(t, &domain.Order{ID: 10, UserID: 1, ProductID: 2, Quantity: 3, TotalPrice: 59.97}, order)
}
