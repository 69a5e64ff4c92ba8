// Package museum は博物館カタログAPIのHTTPサーバーを提供する。
//
// 展示品・ガイドツアー・職員の公開カタログと、認証ゲートウェイによる
// ログイン、adminロールで保護された更新系エンドポイントを1つのサーバーに
// まとめている。安全なメソッド（GET/HEAD）はトークンなしでも匿名の
// 来館者として通過し、更新系メソッドは有効なトークンを要求する。
package museum

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	_ "modernc.org/sqlite"

	"github.com/palinv/museum/internal/auth"
	"github.com/palinv/museum/internal/auth/google"
	museumdb "github.com/palinv/museum/internal/museum/db"
	"github.com/palinv/museum/pkg/middleware"
)

// Server は博物館APIのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// cfg はサーバー設定。
	cfg Config
	// queries はsqlcが生成したクエリ実行オブジェクト。
	queries *museumdb.Queries
	// db はSQLiteデータベース接続。
	db *sql.DB
	// gateway は認証ゲートウェイ。
	gateway *auth.Gateway
}

// NewServer は新しい博物館APIサーバーを生成する。
// SQLiteデータベースの初期化、スキーマ適用、デモクレデンシャルの
// シードを行う。GOOGLE_CLIENT_IDが設定されている場合はGoogleの
// 検証器を初期化する。
func NewServer(ctx context.Context, cfg Config) (*Server, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)", cfg.DBPath)
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗: %w", err)
	}

	if err := initSchema(sqlDB); err != nil {
		return nil, err
	}

	queries := museumdb.New(sqlDB)
	if err := auth.SeedCredentials(ctx, queries); err != nil {
		return nil, fmt.Errorf("デモクレデンシャルのシードに失敗: %w", err)
	}

	var verifier google.Verifier
	if cfg.GoogleClientID != "" {
		v, err := google.NewOIDCVerifier(ctx, cfg.GoogleClientID)
		if err != nil {
			return nil, fmt.Errorf("Google検証器の初期化に失敗: %w", err)
		}
		verifier = v
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS([]string{cfg.FrontendURL}))

	s := &Server{
		router:  router,
		cfg:     cfg,
		queries: queries,
		db:      sqlDB,
		gateway: auth.NewGateway(queries, verifier, cfg.JWTSecret),
	}
	s.setupRoutes()

	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.cfg.Port))
}

// Close はデータベース接続を閉じる。
func (s *Server) Close() error {
	return s.db.Close()
}

// setupRoutes はAPIルーティングを設定する。
//
// /api以下は2つのグループに分かれる。認証エンドポイントとヘルスチェックは
// トークン検証の外側にあり、それ以外はJWTAuthを通過する。JWTAuthは
// GET/HEADをトークンなしの匿名来館者として通すため、公開カタログの
// 閲覧にログインは不要。admin限定の操作は各ハンドラ内でロールを検査する。
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")

	// 認証とヘルスチェック。トークン検証の対象外。
	{
		// パスワードログイン
		api.POST("/auth/login", s.handleLogin())
		// Google IDトークンによるログイン
		api.POST("/auth/google", s.handleGoogleAuth())
		// Google認証ページへのリダイレクトURL取得
		api.GET("/auth/google/url", s.handleGoogleAuthURL())
		// ヘルスチェック
		api.GET("/health", s.handleHealth())
	}

	protected := s.router.Group("/api")
	protected.Use(middleware.JWTAuth(s.cfg.JWTSecret))
	{
		// ログイン中ユーザーの情報取得
		protected.GET("/auth/me", s.handleGetMe())

		bits := protected.Group("/bits")
		{
			// 展示品一覧取得
			bits.GET("", s.handleListExhibits())
			// 展示品詳細取得
			bits.GET("/:id", s.handleGetExhibit())
			// 担当職員付き展示品詳細取得
			bits.GET("/:id/with-employee", s.handleGetExhibitWithEmployee())
			// 展示品登録（要ログイン）
			bits.POST("", s.handleCreateExhibit())
			// 展示品更新（admin限定）
			bits.PUT("/:id", s.handleUpdateExhibit())
			// 展示品削除（admin限定）
			bits.DELETE("/:id", s.handleDeleteExhibit())
			// 保存状態更新（admin限定）
			bits.PATCH("/:id/conservation", s.handleUpdateConservation())
		}

		tours := protected.Group("/tours")
		{
			// 公開中ツアー一覧取得
			tours.GET("", s.handleListTours())
			// ツアー統計取得
			tours.GET("/stats", s.handleTourStats())
			// ツアー詳細取得
			tours.GET("/:id", s.handleGetTour())
			// ツアー作成（admin限定）
			tours.POST("", s.handleCreateTour())
			// ツアー更新（admin限定）
			tours.PUT("/:id", s.handleUpdateTour())
			// ツアー非公開化（admin限定）
			tours.DELETE("/:id", s.handleDeactivateTour())
		}

		// 職員一覧取得
		protected.GET("/employees", s.handleListEmployees())
		// 全体統計取得
		protected.GET("/stats", s.handleStats())
		// 監査イベント一覧取得（admin限定）
		protected.GET("/events", s.handleListEvents())
		// デモデータ投入（admin限定）
		protected.POST("/seed", s.handleSeed())
	}
}

// handleHealth はヘルスチェックを処理するハンドラを返す。
func (s *Server) handleHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"status":  "ok",
			"service": "museum-api",
		})
	}
}

// respondError は失敗レスポンスの共通エンベロープを返す。
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// requireAdmin はadminロールを要求する。満たさない場合は403を返し、
// falseを返す。ハンドラはfalseを受けたら即座にreturnすること。
func requireAdmin(c *gin.Context) bool {
	if err := auth.Authorize(middleware.GetRole(c), auth.RoleAdmin); err != nil {
		respondError(c, http.StatusForbidden, "この操作には管理者権限が必要です")
		return false
	}
	return true
}
