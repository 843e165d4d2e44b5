package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	JWTSecret string // JWT署名シークレット

	FEURL string // フロントURL（CORSで使う）

	// DB接続。DatabaseURLがあれば最優先、なければ個別のPOSTGRES_*を組み立てる
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string

	// refreshトークンCookieのSecure属性（ローカル開発ではfalseにする）
	CookieSecure bool

	// trueなら在庫を下回る売上を400で拒否する。
	// デフォルトはfalse（参照実装どおり、在庫はマイナスになり得る）
	RejectNegativeStock bool
}

// Loadは環境変数から設定を読む
func Load() (Config, error) {
	cfg := Config{
		Port:                getenv("PORT", "8080"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		FEURL:               getenv("FE_URL", "http://localhost:3000"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		DBHost:              getenv("POSTGRES_HOST", "localhost"),
		DBPort:              getenv("POSTGRES_PORT", "5432"),
		DBUser:              getenv("POSTGRES_USER", "postgres"),
		DBPassword:          getenv("POSTGRES_PASSWORD", "postgres"),
		DBName:              getenv("POSTGRES_DB", "app"),
		DBSSLMode:           getenv("POSTGRES_SSLMODE", "disable"),
		CookieSecure:        envBool("COOKIE_SECURE", true),
		RejectNegativeStock: envBool("REJECT_NEGATIVE_STOCK", false),
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

// DSNは接続文字列を返す
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True":
		return true
	case "0", "false", "FALSE", "False":
		return false
	default:
		return def
	}
}
