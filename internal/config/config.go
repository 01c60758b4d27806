package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	JWTSecret        string // JWT署名シークレット
	JWTExpireMinutes int    // アクセストークン有効期限（分）

	AllowedOrigins []string // CORS許可オリジン
}

// Loadは環境変数から設定を読む
func Load() (Config, error) {
	cfg := Config{
		Port:      getenv("PORT", "8080"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	mins, err := getenvInt("JWT_EXPIRE_MINUTES", 60)
	if err != nil {
		return Config{}, err
	}
	cfg.JWTExpireMinutes = mins

	cfg.AllowedOrigins = strings.Split(getenv("ALLOWED_ORIGINS", "*"), ",")

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
