package db

import (
	"app/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect は設定のDSNでPostgresに接続して *gorm.DB を返す。
// 接続先の解決（DATABASE_URL優先、なければPOSTGRES_*）はconfig側に寄せてある。
func Connect(cfg config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
}
