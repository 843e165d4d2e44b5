package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	products  repo.ProductRepository
	stock     repo.StockRepository
	purchases repo.PurchaseRepository
	sales     repo.SaleRepository
	stores    repo.StoreRepository
}

func (r *txReposGorm) Products() repo.ProductRepository   { return r.products }
func (r *txReposGorm) Stock() repo.StockRepository        { return r.stock }
func (r *txReposGorm) Purchases() repo.PurchaseRepository { return r.purchases }
func (r *txReposGorm) Sales() repo.SaleRepository         { return r.sales }
func (r *txReposGorm) Stores() repo.StoreRepository       { return r.stores }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			products:  NewProductGormRepository(tx),
			stock:     NewStockGormRepository(tx),
			purchases: NewPurchaseGormRepository(tx),
			sales:     NewSaleGormRepository(tx),
			stores:    NewStoreGormRepository(tx),
		}
		return fn(r)
	})
}
