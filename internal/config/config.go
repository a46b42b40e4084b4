package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	RedisURL   string        // セッションストアの接続URL
	SessionTTL time.Duration // セッションの有効期限

	GoogleClientID string // GoogleサインインのクライアントID

	GoEnv string // dev/prod
}

// Loadは環境変数から設定を読む
// DB接続はinfra/dbが環境変数を直接読む。
func Load() (Config, error) {
	cfg := Config{
		Port:           os.Getenv("PORT"),
		RedisURL:       os.Getenv("REDIS_URL"),
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
		GoEnv:          os.Getenv("GO_ENV"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("REDIS_URL is required")
	}
	if cfg.GoogleClientID == "" {
		return Config{}, fmt.Errorf("GOOGLE_CLIENT_ID is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}

	// セッションTTLは時間数で指定（省略時は7日）
	hours := 24 * 7
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("SESSION_TTL_HOURS must be number: %w", err)
		}
		if h <= 0 {
			return Config{}, fmt.Errorf("SESSION_TTL_HOURS must be positive")
		}
		hours = h
	}
	cfg.SessionTTL = time.Duration(hours) * time.Hour

	return cfg, nil
}
