package middleware

import (
	"net/http"
	"strconv"
)

// CORSConfig はクロスオリジンレスポンスヘッダーの設定値。
type CORSConfig struct {
	AllowedOrigin    string
	AllowCredentials bool
	AllowHeaders     string
	ExposeHeaders    string
	AllowMethods     string
}

// DefaultCORSConfig は全オリジンを許可する既定のCORS設定を返す。
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigin:    "*",
		AllowCredentials: true,
		AllowHeaders:     "Content-Type, Authorization",
		ExposeHeaders:    "X-Auth-Token",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
	}
}

// NewCORSMiddleware は全レスポンスにCORSヘッダーを付与するミドルウェアを返す。
// OPTIONSプリフライトリクエストはルーティングに渡さず204で応答する。
func NewCORSMiddleware(cfg CORSConfig) func(next http.Handler) http.Handler {
	allowCredentials := strconv.FormatBool(cfg.AllowCredentials)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", cfg.AllowedOrigin)
			h.Set("Access-Control-Allow-Credentials", allowCredentials)
			if cfg.AllowHeaders != "" {
				h.Set("Access-Control-Allow-Headers", cfg.AllowHeaders)
			}
			if cfg.ExposeHeaders != "" {
				h.Set("Access-Control-Expose-Headers", cfg.ExposeHeaders)
			}
			if cfg.AllowMethods != "" {
				h.Set("Access-Control-Allow-Methods", cfg.AllowMethods)
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
