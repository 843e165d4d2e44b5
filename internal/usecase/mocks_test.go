package usecase_test

import (
	"context"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListByUser(ctx context.Context, userID int64) ([]model.Product, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type StockRepoMock struct{ mock.Mock }

func (m *StockRepoMock) Adjust(ctx context.Context, productID int64, delta int64) (int64, error) {
	args := m.Called(ctx, productID, delta)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StockRepoMock) AdjustIfEnough(ctx context.Context, productID int64, qty int64) (int64, bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *StockRepoMock) DriftByUser(ctx context.Context, userID int64) ([]repo.StockDriftRow, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]repo.StockDriftRow)
	return rows, args.Error(1)
}

type PurchaseRepoMock struct{ mock.Mock }

func (m *PurchaseRepoMock) Create(ctx context.Context, p model.Purchase) (model.Purchase, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Purchase)
	return created, args.Error(1)
}

func (m *PurchaseRepoMock) ListByUser(ctx context.Context, userID int64) ([]model.Purchase, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.Purchase)
	return items, args.Error(1)
}

func (m *PurchaseRepoMock) SumAmountByUser(ctx context.Context, userID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type SaleRepoMock struct{ mock.Mock }

func (m *SaleRepoMock) Create(ctx context.Context, s model.Sale) (model.Sale, error) {
	args := m.Called(ctx, s)
	created, _ := args.Get(0).(model.Sale)
	return created, args.Error(1)
}

func (m *SaleRepoMock) ListByUser(ctx context.Context, userID int64) ([]model.Sale, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.Sale)
	return items, args.Error(1)
}

func (m *SaleRepoMock) SumAmountByUser(ctx context.Context, userID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *SaleRepoMock) MonthlyByUser(ctx context.Context, userID int64) ([]repo.MonthlySalesRow, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]repo.MonthlySalesRow)
	return rows, args.Error(1)
}

type StoreRepoMock struct{ mock.Mock }

func (m *StoreRepoMock) Create(ctx context.Context, s model.Store) (model.Store, error) {
	args := m.Called(ctx, s)
	created, _ := args.Get(0).(model.Store)
	return created, args.Error(1)
}

func (m *StoreRepoMock) ListByUser(ctx context.Context, userID int64) ([]model.Store, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.Store)
	return items, args.Error(1)
}

func (m *StoreRepoMock) FindByID(ctx context.Context, id int64) (model.Store, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(model.Store)
	return s, args.Error(1)
}

// =====================
// Tx plumbing
// =====================

type txRepos struct {
	products  repo.ProductRepository
	stock     repo.StockRepository
	purchases repo.PurchaseRepository
	sales     repo.SaleRepository
	stores    repo.StoreRepository
}

func (r *txRepos) Products() repo.ProductRepository   { return r.products }
func (r *txRepos) Stock() repo.StockRepository        { return r.stock }
func (r *txRepos) Purchases() repo.PurchaseRepository { return r.purchases }
func (r *txRepos) Sales() repo.SaleRepository         { return r.sales }
func (r *txRepos) Stores() repo.StoreRepository       { return r.stores }

// トランザクションを張らずにそのままfnを呼ぶ
type stubTxManager struct {
	repos repo.TxRepos
}

func (m *stubTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}

// =====================
// In-memory fakes（並行・リプレイ系テスト用）
// =====================

// 在庫加算はロック下の1ステップで行う。
// 本物のDB実装の「原子的UPDATE」に相当する
type memState struct {
	mu        sync.Mutex
	products  map[int64]*model.Product
	purchases []model.Purchase
	sales     []model.Sale
	nextID    int64
}

func newMemState() *memState {
	return &memState{products: map[int64]*model.Product{}}
}

func (s *memState) addProduct(p model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := p
	s.products[p.ID] = &cp
}

func (s *memState) stockOf(id int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].Stock
}

type memProducts struct{ *memState }

func (r memProducts) ListByUser(ctx context.Context, userID int64) ([]model.Product, error) {
	panic("not used")
}

func (r memProducts) FindByID(ctx context.Context, id int64) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return *p, nil
}

func (r memProducts) Create(ctx context.Context, p model.Product) (model.Product, error) {
	panic("not used")
}
func (r memProducts) Update(ctx context.Context, p model.Product) error { panic("not used") }
func (r memProducts) Delete(ctx context.Context, id int64) error        { panic("not used") }

type memStock struct{ *memState }

func (r memStock) Adjust(ctx context.Context, productID int64, delta int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok {
		return 0, repo.ErrNotFound
	}
	p.Stock += delta
	return p.Stock, nil
}

func (r memStock) AdjustIfEnough(ctx context.Context, productID int64, qty int64) (int64, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok || p.Stock < qty {
		return 0, false, nil
	}
	p.Stock -= qty
	return p.Stock, true, nil
}

func (r memStock) DriftByUser(ctx context.Context, userID int64) ([]repo.StockDriftRow, error) {
	panic("not used")
}

type memPurchases struct{ *memState }

func (r memPurchases) Create(ctx context.Context, p model.Purchase) (model.Purchase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p.ID = r.nextID
	r.purchases = append(r.purchases, p)
	return p, nil
}

func (r memPurchases) ListByUser(ctx context.Context, userID int64) ([]model.Purchase, error) {
	panic("not used")
}

func (r memPurchases) SumAmountByUser(ctx context.Context, userID int64) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := decimal.Zero
	for _, p := range r.purchases {
		if p.UserID == userID {
			total = total.Add(p.TotalAmount)
		}
	}
	return total, nil
}

type memSales struct{ *memState }

func (r memSales) Create(ctx context.Context, s model.Sale) (model.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	s.ID = r.nextID
	r.sales = append(r.sales, s)
	return s, nil
}

func (r memSales) ListByUser(ctx context.Context, userID int64) ([]model.Sale, error) {
	panic("not used")
}

func (r memSales) SumAmountByUser(ctx context.Context, userID int64) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := decimal.Zero
	for _, s := range r.sales {
		if s.UserID == userID {
			total = total.Add(s.Amount)
		}
	}
	return total, nil
}

func (r memSales) MonthlyByUser(ctx context.Context, userID int64) ([]repo.MonthlySalesRow, error) {
	panic("not used")
}

type memStores struct{ *memState }

func (r memStores) Create(ctx context.Context, s model.Store) (model.Store, error) {
	panic("not used")
}
func (r memStores) ListByUser(ctx context.Context, userID int64) ([]model.Store, error) {
	panic("not used")
}
func (r memStores) FindByID(ctx context.Context, id int64) (model.Store, error) {
	return model.Store{}, repo.ErrNotFound
}

func newMemTxManager(s *memState) *stubTxManager {
	return &stubTxManager{repos: &txRepos{
		products:  memProducts{s},
		stock:     memStock{s},
		purchases: memPurchases{s},
		sales:     memSales{s},
		stores:    memStores{s},
	}}
}
