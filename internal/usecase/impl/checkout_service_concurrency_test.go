package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"bookstore/config"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/domain/service"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is a minimal serialized transactional store. One mutex plays the
// role of the database's transaction isolation: each Execute holds the lock
// for its whole body and restores a snapshot on error, so interleaved
// checkouts see exactly the all-or-nothing semantics of the real store.
type memStore struct {
	mu    sync.Mutex
	books map[uuid.UUID]*entity.Book
	sales map[uuid.UUID]*entity.Sale
}

func newMemStore(books ...*entity.Book) *memStore {
	store := &memStore{
		books: make(map[uuid.UUID]*entity.Book),
		sales: make(map[uuid.UUID]*entity.Sale),
	}
	for _, book := range books {
		copied := *book
		store.books[book.ID] = &copied
	}

	return store
}

func (s *memStore) snapshot() map[uuid.UUID]entity.Book {
	snap := make(map[uuid.UUID]entity.Book, len(s.books))
	for id, book := range s.books {
		snap[id] = *book
	}

	return snap
}

func (s *memStore) restore(snap map[uuid.UUID]entity.Book) {
	s.books = make(map[uuid.UUID]*entity.Book, len(snap))
	for id, book := range snap {
		copied := book
		s.books[id] = &copied
	}
}

func (s *memStore) stockOf(t *testing.T, id uuid.UUID) int {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	require.True(t, ok)

	return book.StockQuantity
}

type memTxManager struct {
	store *memStore
}

func (m *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	snap := m.store.snapshot()
	if err := fn(&memFactory{store: m.store}); err != nil {
		m.store.restore(snap)

		return err
	}

	return nil
}

type memFactory struct {
	store *memStore
}

func (f *memFactory) NewBookRepository() repository.BookRepository {
	return &memBookRepo{store: f.store}
}

func (f *memFactory) NewSaleRepository() repository.SaleRepository {
	return &memSaleRepo{store: f.store}
}

func (f *memFactory) NewCustomerRepository() repository.CustomerRepository {
	return &memCustomerRepo{}
}

// memBookRepo implements only what the checkout path touches; the embedded
// nil interface panics loudly on anything else.
type memBookRepo struct {
	repository.BookRepository
	store *memStore
}

func (r *memBookRepo) DecrementStock(_ context.Context, id uuid.UUID, quantity int, soldAt time.Time) (*repository.StockDecrement, error) {
	book, ok := r.store.books[id]
	if !ok {
		return nil, repository.ErrBookNotFound
	}
	if book.StockQuantity < quantity {
		return nil, domainerrors.NewInsufficientStockError(book.Title, book.StockQuantity, quantity)
	}

	previous := book.StockQuantity
	book.StockQuantity -= quantity
	book.LastSoldDate = &soldAt

	copied := *book

	return &repository.StockDecrement{Book: &copied, PreviousStock: previous}, nil
}

type memSaleRepo struct {
	repository.SaleRepository
	store *memStore
}

func (r *memSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	sale.ID = uuid.New()
	sale.CreatedAt = time.Now().UTC()

	copied := *sale
	r.store.sales[sale.ID] = &copied

	return nil
}

type memCustomerRepo struct {
	repository.CustomerRepository
}

func (r *memCustomerRepo) ApplyLoyalty(context.Context, uuid.UUID, *repository.LoyaltyAccrual) error {
	return nil
}

type memAuditRepo struct {
	repository.AuditLogRepository
}

func (r *memAuditRepo) Create(context.Context, *entity.AuditLogEntry) error {
	return nil
}

type memPublisher struct{}

func (p *memPublisher) PublishSaleEvent(context.Context, *service.SaleEvent) error { return nil }
func (p *memPublisher) Close() error                                               { return nil }

func newMemCheckoutService(store *memStore) usecase.CheckoutUsecase {
	logger := testLogger()
	cfg := &config.CheckoutConfig{MaxAttempts: 3, RetryDelay: time.Millisecond}

	return NewCheckoutService(&memTxManager{store: store}, NewAuditService(&memAuditRepo{}, logger), &memPublisher{}, cfg, logger)
}

// Many cashiers race over the last copies of one title. Exactly stock-many
// single-copy checkouts may win; the rest fail with an insufficient-stock
// conflict and the final stock is exactly zero, never negative.
func TestCheckoutService_ConcurrentCheckouts_NeverOversell(t *testing.T) {
	const (
		initialStock = 12
		buyers       = 20
	)

	book := &entity.Book{ID: uuid.New(), Title: "Dune", Price: 12.50, StockQuantity: initialStock}
	store := newMemStore(book)
	svc := newMemCheckoutService(store)

	results := make(chan error, buyers)
	var wg sync.WaitGroup
	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := svc.Checkout(context.Background(), &usecase.CheckoutInput{
				CashierID:   uuid.New(),
				Items:       []usecase.CheckoutItemInput{{BookID: book.ID, Quantity: 1, UnitPrice: 12.50}},
				TotalAmount: 12.50,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var won, lost int
	for err := range results {
		if err == nil {
			won++

			continue
		}

		var stockErr *domainerrors.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		lost++
	}

	assert.Equal(t, initialStock, won)
	assert.Equal(t, buyers-initialStock, lost)
	assert.Equal(t, 0, store.stockOf(t, book.ID))
}

// Two cashiers race for three of five copies: exactly one fits, the loser
// gets a conflict, and the shelf ends at two copies.
func TestCheckoutService_TwoRacingCheckoutsOverFiveCopies(t *testing.T) {
	book := &entity.Book{ID: uuid.New(), Title: "Dune", Price: 12.50, StockQuantity: 5}
	store := newMemStore(book)
	svc := newMemCheckoutService(store)

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := svc.Checkout(context.Background(), &usecase.CheckoutInput{
				CashierID:   uuid.New(),
				Items:       []usecase.CheckoutItemInput{{BookID: book.ID, Quantity: 3, UnitPrice: 12.50}},
				TotalAmount: 37.50,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var won, lost int
	for err := range results {
		if err == nil {
			won++
		} else {
			var stockErr *domainerrors.InsufficientStockError
			require.ErrorAs(t, err, &stockErr)
			lost++
		}
	}

	assert.Equal(t, 1, won)
	assert.Equal(t, 1, lost)
	assert.Equal(t, 2, store.stockOf(t, book.ID))
}

// Selling out works; the next request over the empty shelf reports the exact
// shortfall.
func TestCheckoutService_SellOutThenConflict(t *testing.T) {
	book := &entity.Book{ID: uuid.New(), Title: "Dune", Price: 12.50, StockQuantity: 5}
	store := newMemStore(book)
	svc := newMemCheckoutService(store)

	result, err := svc.Checkout(context.Background(), &usecase.CheckoutInput{
		CashierID:   uuid.New(),
		Items:       []usecase.CheckoutItemInput{{BookID: book.ID, Quantity: 5, UnitPrice: 12.50}},
		TotalAmount: 62.50,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCompleted, result.Sale.Status)
	assert.Equal(t, 0, store.stockOf(t, book.ID))

	_, err = svc.Checkout(context.Background(), &usecase.CheckoutInput{
		CashierID:   uuid.New(),
		Items:       []usecase.CheckoutItemInput{{BookID: book.ID, Quantity: 1, UnitPrice: 12.50}},
		TotalAmount: 12.50,
	})
	require.Error(t, err)

	var stockErr *domainerrors.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 0, stockErr.Available)
	assert.Equal(t, 1, stockErr.Requested)
}

// A multi-line checkout that fails on its second line must also undo the
// decrement its first line already applied.
func TestCheckoutService_FailedLineRollsBackEarlierLines(t *testing.T) {
	plenty := &entity.Book{ID: uuid.New(), Title: "Dune", Price: 12.50, StockQuantity: 50}
	scarce := &entity.Book{ID: uuid.New(), Title: "Hyperion", Price: 10.00, StockQuantity: 1}
	store := newMemStore(plenty, scarce)
	svc := newMemCheckoutService(store)

	_, err := svc.Checkout(context.Background(), &usecase.CheckoutInput{
		CashierID: uuid.New(),
		Items: []usecase.CheckoutItemInput{
			{BookID: plenty.ID, Quantity: 2, UnitPrice: 12.50},
			{BookID: scarce.ID, Quantity: 3, UnitPrice: 10.00},
		},
		TotalAmount: 55.00,
	})
	require.Error(t, err)

	var stockErr *domainerrors.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Hyperion", stockErr.BookTitle)

	assert.Equal(t, 50, store.stockOf(t, plenty.ID), "first line rolled back")
	assert.Equal(t, 1, store.stockOf(t, scarce.ID))
}

// An unknown book anywhere in the cart aborts the whole checkout.
func TestCheckoutService_UnknownBookRollsBackCart(t *testing.T) {
	book := &entity.Book{ID: uuid.New(), Title: "Dune", Price: 12.50, StockQuantity: 5}
	store := newMemStore(book)
	svc := newMemCheckoutService(store)

	_, err := svc.Checkout(context.Background(), &usecase.CheckoutInput{
		CashierID: uuid.New(),
		Items: []usecase.CheckoutItemInput{
			{BookID: book.ID, Quantity: 1, UnitPrice: 12.50},
			{BookID: uuid.New(), Quantity: 1, UnitPrice: 10.00},
		},
		TotalAmount: 22.50,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
	assert.Equal(t, 5, store.stockOf(t, book.ID))
}
