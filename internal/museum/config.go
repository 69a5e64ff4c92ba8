package museum

import "os"

// Config は博物館APIサーバーの設定。すべて環境変数から読み込まれ、
// 起動時に一度だけ組み立てられる。実行中に変更されることはない。
type Config struct {
	// Port はサーバーのリッスンポート。
	Port string
	// DBPath はSQLiteデータベースファイルのパス。
	DBPath string
	// JWTSecret はアクセストークン署名用の共有シークレット。
	JWTSecret string
	// GoogleClientID はGoogle OAuthクライアントID。
	// 空の場合、Googleログインは利用不可として扱われる。
	GoogleClientID string
	// GoogleClientSecret はGoogle OAuthクライアントシークレット。
	GoogleClientSecret string
	// GoogleRedirectURL はGoogle認証後のリダイレクト先URL。
	GoogleRedirectURL string
	// FrontendURL はCORSで許可するフロントエンドのオリジン。
	FrontendURL string
}

// LoadConfig は環境変数からサーバー設定を読み込む。
// 未設定の項目には開発用の既定値を使う。
func LoadConfig() Config {
	return Config{
		Port:               getEnvOr("PORT", "3000"),
		DBPath:             getEnvOr("DB_PATH", "/data/museum.db"),
		JWTSecret:          getEnvOr("JWT_SECRET", "dev-secret-key"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:  getEnvOr("GOOGLE_REDIRECT_URL", "http://localhost:3000/api/auth/google/callback"),
		FrontendURL:        getEnvOr("FRONTEND_URL", "http://localhost:5173"),
	}
}

// getEnvOr は環境変数の値を返す。未設定の場合はfallbackを返す。
func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
