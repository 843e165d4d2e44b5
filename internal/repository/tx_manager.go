package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Products() ProductRepository
	Stock() StockRepository
	Purchases() PurchaseRepository
	Sales() SaleRepository
	Stores() StoreRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// イベント追記と在庫更新は同一トランザクションで行う。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
