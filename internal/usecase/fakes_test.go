package usecase

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"

	"github.com/DRSN-tech/store-api/internal/domain"
	"github.com/DRSN-tech/store-api/pkg/e"
	"github.com/DRSN-tech/store-api/pkg/logger"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func testLogger() logger.Logger {
	return logger.NewSlogLoggerWithHandler(slog.NewTextHandler(io.Discard, nil))
}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock
}

type fakeProductRepo struct {
	mu       sync.Mutex
	nextID   int64
	products map[int64]domain.Product
	getCalls int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]domain.Product)}
}

func (f *fakeProductRepo) List(_ context.Context) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	res := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })

	return res, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.getCalls++
	p, ok := f.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}

	return &p, nil
}

func (f *fakeProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	p := *product
	p.ID = f.nextID
	f.products[p.ID] = p

	return &p, nil
}

func (f *fakeProductRepo) CreateBatch(ctx context.Context, products []domain.Product) (int64, error) {
	for i := range products {
		if _, err := f.Create(ctx, &products[i]); err != nil {
			return 0, err
		}
	}

	return int64(len(products)), nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *domain.Product) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.products[product.ID]; !ok {
		return nil, e.ErrProductNotFound
	}
	f.products[product.ID] = *product

	p := *product
	return &p, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.products[id]; !ok {
		return e.ErrProductNotFound
	}
	delete(f.products, id)

	return nil
}

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]domain.User)}
}

func (f *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	res := make([]domain.User, 0, len(f.users))
	for _, u := range f.users {
		res = append(res, u)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })

	return res, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.users[id]
	if !ok {
		return nil, e.ErrUserNotFound
	}

	return &u, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, e.ErrEmailTaken
		}
	}

	f.nextID++
	u := *user
	u.ID = f.nextID
	f.users[u.ID] = u

	return &u, nil
}

type fakeOrderRepo struct {
	mu       sync.Mutex
	nextID   int64
	orders   []domain.Order
	users    *fakeUserRepo
	products *fakeProductRepo
}

func (f *fakeOrderRepo) List(ctx context.Context) ([]domain.OrderDetails, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	res := make([]domain.OrderDetails, 0, len(f.orders))
	for _, o := range f.orders {
		u, err := f.users.GetByID(ctx, o.UserID)
		if err != nil {
			return nil, err
		}
		p, err := f.products.GetByID(ctx, o.ProductID)
		if err != nil {
			return nil, err
		}
		res = append(res, *domain.NewOrderDetails(o, *u, *p))
	}

	return res, nil
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	o := *order
	o.ID = f.nextID
	f.orders = append(f.orders, o)

	return &o, nil
}

type fakeCache struct {
	mu       sync.Mutex
	products map[int64]domain.Product
	deleted  []int64
}

func newFakeCache() *fakeCache {
	return &fakeCache{products: make(map[int64]domain.Product)}
}

func (f *fakeCache) GetProduct(_ context.Context, id int64) (*domain.Product, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.products[id]
	if !ok {
		return nil, false, nil
	}

	return &p, true, nil
}

func (f *fakeCache) SetProduct(_ context.Context, product *domain.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.products[product.ID] = *product
	return nil
}

func (f *fakeCache) DeleteProduct(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.products, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakePublisher struct {
	mu        sync.Mutex
	published []domain.OrderDetails
	err       error
}

func (f *fakePublisher) PublishOrderCreated(_ context.Context, order *domain.OrderDetails) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, *order)
	return nil
}
