package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	_ "modernc.org/sqlite"

	"github.com/palinv/museum/internal/auth/google"
	museumdb "github.com/palinv/museum/internal/museum/db"
	"github.com/palinv/museum/pkg/middleware"
)

// testJWTSecret はテスト用のトークン署名シークレット。
const testJWTSecret = "gateway-test-secret"

// testSchema はゲートウェイのテストに必要なテーブル定義。
const testSchema = `
CREATE TABLE users (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL DEFAULT '',
    avatar_url TEXT NOT NULL DEFAULT '',
    google_id TEXT UNIQUE,
    role TEXT NOT NULL DEFAULT 'visitor',
    auth_method TEXT NOT NULL DEFAULT 'local',
    is_active INTEGER NOT NULL DEFAULT 1,
    login_count INTEGER NOT NULL DEFAULT 0,
    last_login_at DATETIME NOT NULL,
    created_at DATETIME NOT NULL,
    updated_at DATETIME NOT NULL
);

CREATE TABLE credentials (
    username TEXT PRIMARY KEY,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL,
    email TEXT NOT NULL,
    display_name TEXT NOT NULL DEFAULT ''
);
`

// fakeVerifier はGoogle検証器のテストダブル。
type fakeVerifier struct {
	// profile はVerifyが返すプロフィール。
	profile *google.Profile
	// err はVerifyが返すエラー。
	err error
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) (*google.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

// setupGateway はインメモリSQLiteを使ったテスト用ゲートウェイを構築する。
// デモクレデンシャル（admin / user / visitor）もシードする。
func setupGateway(t *testing.T, verifier google.Verifier) (*Gateway, *museumdb.Queries, *sql.DB) {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("インメモリDBの作成に失敗: %v", err)
	}
	// インメモリDBはコネクションごとに独立するため1本に固定する
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if _, err := sqlDB.Exec(testSchema); err != nil {
		t.Fatalf("スキーマ適用に失敗: %v", err)
	}

	queries := museumdb.New(sqlDB)
	if err := SeedCredentials(context.Background(), queries); err != nil {
		t.Fatalf("デモクレデンシャルのシードに失敗: %v", err)
	}

	return NewGateway(queries, verifier, testJWTSecret), queries, sqlDB
}

// parseToken はアクセストークンをパースしてクレームを返すヘルパー関数。
func parseToken(t *testing.T, tokenStr string) *middleware.JWTClaims {
	t.Helper()
	claims := &middleware.JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(_ *jwt.Token) (any, error) {
		return []byte(testJWTSecret), nil
	})
	if err != nil {
		t.Fatalf("トークンのパースに失敗: %v", err)
	}
	if !token.Valid {
		t.Fatal("トークンが無効")
	}
	return claims
}

// countUsers はusersテーブルの行数を返すヘルパー関数。
func countUsers(t *testing.T, sqlDB *sql.DB) int {
	t.Helper()
	var count int
	if err := sqlDB.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		t.Fatalf("ユーザー数の取得に失敗: %v", err)
	}
	return count
}

// TestLoginWithCredentials はパスワードログインを検証する。
func TestLoginWithCredentials(t *testing.T) {
	t.Parallel()

	t.Run("adminのログインでadminロールのトークンが発行されること", func(t *testing.T) {
		t.Parallel()
		gateway, _, _ := setupGateway(t, nil)

		profile, err := gateway.LoginWithCredentials(context.Background(), "admin", "admin123")
		if err != nil {
			t.Fatalf("LoginWithCredentials()でエラーが発生: %v", err)
		}

		if profile.Role != RoleAdmin {
			t.Errorf("Role: got %q, want %q", profile.Role, RoleAdmin)
		}
		if profile.AuthMethod != AuthMethodDemo {
			t.Errorf("AuthMethod: got %q, want %q", profile.AuthMethod, AuthMethodDemo)
		}
		if profile.Email != "admin@museum.example" {
			t.Errorf("Email: got %q, want admin@museum.example", profile.Email)
		}

		claims := parseToken(t, profile.Token)
		if claims.Role != RoleAdmin {
			t.Errorf("トークンのRole: got %q, want %q", claims.Role, RoleAdmin)
		}
		if claims.UserID != profile.ID {
			t.Errorf("トークンのUserID: got %q, want %q", claims.UserID, profile.ID)
		}
	})

	t.Run("userとvisitorにはvisitorロールが割り当てられること", func(t *testing.T) {
		t.Parallel()
		gateway, _, _ := setupGateway(t, nil)

		for _, tc := range []struct{ username, password string }{
			{"user", "user123"},
			{"visitor", "visitor123"},
		} {
			profile, err := gateway.LoginWithCredentials(context.Background(), tc.username, tc.password)
			if err != nil {
				t.Fatalf("%s のログインでエラーが発生: %v", tc.username, err)
			}
			if profile.Role != RoleVisitor {
				t.Errorf("%s のRole: got %q, want %q", tc.username, profile.Role, RoleVisitor)
			}
		}
	})

	t.Run("存在しないユーザーはErrUnknownUser", func(t *testing.T) {
		t.Parallel()
		gateway, _, _ := setupGateway(t, nil)

		_, err := gateway.LoginWithCredentials(context.Background(), "nobody", "password")
		if !errors.Is(err, ErrUnknownUser) {
			t.Errorf("err: got %v, want ErrUnknownUser", err)
		}
	})

	t.Run("パスワード不一致はErrInvalidPassword", func(t *testing.T) {
		t.Parallel()
		gateway, _, _ := setupGateway(t, nil)

		_, err := gateway.LoginWithCredentials(context.Background(), "admin", "wrong-password")
		if !errors.Is(err, ErrInvalidPassword) {
			t.Errorf("err: got %v, want ErrInvalidPassword", err)
		}
	})

	t.Run("繰り返しログインしてもユーザー行は1つのまま", func(t *testing.T) {
		t.Parallel()
		gateway, queries, sqlDB := setupGateway(t, nil)

		var userID string
		for i := 0; i < 3; i++ {
			profile, err := gateway.LoginWithCredentials(context.Background(), "admin", "admin123")
			if err != nil {
				t.Fatalf("%d回目のログインでエラーが発生: %v", i+1, err)
			}
			if userID == "" {
				userID = profile.ID
			} else if profile.ID != userID {
				t.Errorf("ユーザーID: got %q, want %q", profile.ID, userID)
			}
		}

		if got := countUsers(t, sqlDB); got != 1 {
			t.Errorf("ユーザー行数: got %d, want 1", got)
		}

		user, err := queries.GetUserByID(context.Background(), userID)
		if err != nil {
			t.Fatalf("ユーザーの取得に失敗: %v", err)
		}
		if user.LoginCount != 3 {
			t.Errorf("LoginCount: got %d, want 3", user.LoginCount)
		}
	})
}

// TestLoginWithGoogle はGoogleログインを検証する。
func TestLoginWithGoogle(t *testing.T) {
	t.Parallel()

	verifiedProfile := func() *google.Profile {
		return &google.Profile{
			Subject:       "google-sub-1",
			Email:         "taro@example.com",
			EmailVerified: true,
			Name:          "山田 太郎",
			Picture:       "https://example.com/taro.png",
		}
	}

	t.Run("初回ログインでvisitorロールのユーザーが作成されること", func(t *testing.T) {
		t.Parallel()
		gateway, _, _ := setupGateway(t, &fakeVerifier{profile: verifiedProfile()})

		profile, err := gateway.LoginWithGoogle(context.Background(), "raw-id-token")
		if err != nil {
			t.Fatalf("LoginWithGoogle()でエラーが発生: %v", err)
		}

		if profile.Role != RoleVisitor {
			t.Errorf("Role: got %q, want %q", profile.Role, RoleVisitor)
		}
		if profile.AuthMethod != AuthMethodGoogle {
			t.Errorf("AuthMethod: got %q, want %q", profile.AuthMethod, AuthMethodGoogle)
		}
		// ユーザー名はメールアドレスのローカル部
		if profile.Username != "taro" {
			t.Errorf("Username: got %q, want taro", profile.Username)
		}
		if profile.Avatar != "https://example.com/taro.png" {
			t.Errorf("Avatar: got %q, want https://example.com/taro.png", profile.Avatar)
		}

		claims := parseToken(t, profile.Token)
		if claims.Role != RoleVisitor {
			t.Errorf("トークンのRole: got %q, want %q", claims.Role, RoleVisitor)
		}
	})

	t.Run("2回目のログインで同じユーザーに合流すること", func(t *testing.T) {
		t.Parallel()
		gateway, _, sqlDB := setupGateway(t, &fakeVerifier{profile: verifiedProfile()})

		first, err := gateway.LoginWithGoogle(context.Background(), "raw-id-token")
		if err != nil {
			t.Fatalf("初回ログインでエラーが発生: %v", err)
		}
		second, err := gateway.LoginWithGoogle(context.Background(), "raw-id-token")
		if err != nil {
			t.Fatalf("2回目のログインでエラーが発生: %v", err)
		}

		if first.ID != second.ID {
			t.Errorf("ユーザーID: got %q, want %q", second.ID, first.ID)
		}
		if got := countUsers(t, sqlDB); got != 1 {
			t.Errorf("ユーザー行数: got %d, want 1", got)
		}
	})

	t.Run("メールアドレスで既存アカウントに合流しロールが維持されること", func(t *testing.T) {
		t.Parallel()
		p := verifiedProfile()
		p.Email = "admin@museum.example"
		gateway, queries, sqlDB := setupGateway(t, &fakeVerifier{profile: p})

		// まずパスワードでログインしてadminのユーザー行を作る
		local, err := gateway.LoginWithCredentials(context.Background(), "admin", "admin123")
		if err != nil {
			t.Fatalf("パスワードログインでエラーが発生: %v", err)
		}

		// 同じメールアドレスのGoogleログインは同じ行に合流する
		merged, err := gateway.LoginWithGoogle(context.Background(), "raw-id-token")
		if err != nil {
			t.Fatalf("Googleログインでエラーが発生: %v", err)
		}

		if merged.ID != local.ID {
			t.Errorf("ユーザーID: got %q, want %q", merged.ID, local.ID)
		}
		// ロールは既存の値が維持される
		if merged.Role != RoleAdmin {
			t.Errorf("Role: got %q, want %q", merged.Role, RoleAdmin)
		}
		if got := countUsers(t, sqlDB); got != 1 {
			t.Errorf("ユーザー行数: got %d, want 1", got)
		}

		user, err := queries.GetUserByID(context.Background(), local.ID)
		if err != nil {
			t.Fatalf("ユーザーの取得に失敗: %v", err)
		}
		if !user.GoogleID.Valid || user.GoogleID.String != "google-sub-1" {
			t.Errorf("GoogleID: got %v, want google-sub-1", user.GoogleID)
		}
	})

	t.Run("一度設定されたGoogleサブジェクトIDは変更されないこと", func(t *testing.T) {
		t.Parallel()
		p := verifiedProfile()
		verifier := &fakeVerifier{profile: p}
		gateway, queries, _ := setupGateway(t, verifier)

		first, err := gateway.LoginWithGoogle(context.Background(), "raw-id-token")
		if err != nil {
			t.Fatalf("初回ログインでエラーが発生: %v", err)
		}

		// 同じメールアドレスで異なるサブジェクトIDのトークンが来ても上書きしない
		verifier.profile = &google.Profile{
			Subject:       "google-sub-other",
			Email:         p.Email,
			EmailVerified: true,
			Name:          p.Name,
		}
		if _, err := gateway.LoginWithGoogle(context.Background(), "raw-id-token"); err != nil {
			t.Fatalf("2回目のログインでエラーが発生: %v", err)
		}

		user, err := queries.GetUserByID(context.Background(), first.ID)
		if err != nil {
			t.Fatalf("ユーザーの取得に失敗: %v", err)
		}
		if user.GoogleID.String != "google-sub-1" {
			t.Errorf("GoogleID: got %q, want google-sub-1", user.GoogleID.String)
		}
	})

	t.Run("メール未確認はErrEmailNotVerified", func(t *testing.T) {
		t.Parallel()
		p := verifiedProfile()
		p.EmailVerified = false
		gateway, _, sqlDB := setupGateway(t, &fakeVerifier{profile: p})

		_, err := gateway.LoginWithGoogle(context.Background(), "raw-id-token")
		if !errors.Is(err, ErrEmailNotVerified) {
			t.Errorf("err: got %v, want ErrEmailNotVerified", err)
		}
		// ユーザー行が作成されないこと
		if got := countUsers(t, sqlDB); got != 0 {
			t.Errorf("ユーザー行数: got %d, want 0", got)
		}
	})

	t.Run("検証失敗はErrInvalidGoogleToken", func(t *testing.T) {
		t.Parallel()
		gateway, _, _ := setupGateway(t, &fakeVerifier{err: errors.New("signature mismatch")})

		_, err := gateway.LoginWithGoogle(context.Background(), "bad-token")
		if !errors.Is(err, ErrInvalidGoogleToken) {
			t.Errorf("err: got %v, want ErrInvalidGoogleToken", err)
		}
	})

	t.Run("検証器が未設定の場合はErrProviderUnavailable", func(t *testing.T) {
		t.Parallel()
		gateway, _, _ := setupGateway(t, nil)

		_, err := gateway.LoginWithGoogle(context.Background(), "raw-id-token")
		if !errors.Is(err, ErrProviderUnavailable) {
			t.Errorf("err: got %v, want ErrProviderUnavailable", err)
		}
	})

	t.Run("プロバイダーへの接続タイムアウトはErrProviderUnavailable", func(t *testing.T) {
		t.Parallel()
		gateway, _, _ := setupGateway(t, &fakeVerifier{
			err: fmt.Errorf("鍵セットの取得に失敗: %w", context.DeadlineExceeded),
		})

		_, err := gateway.LoginWithGoogle(context.Background(), "raw-id-token")
		if !errors.Is(err, ErrProviderUnavailable) {
			t.Errorf("err: got %v, want ErrProviderUnavailable", err)
		}
	})
}

// TestAuthorize はロール認可の判定を検証する。
func TestAuthorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		role     string
		required string
		wantErr  bool
	}{
		{name: "adminはadmin要求を満たす", role: RoleAdmin, required: RoleAdmin, wantErr: false},
		{name: "visitorはadmin要求を満たさない", role: RoleVisitor, required: RoleAdmin, wantErr: true},
		{name: "curatorはadmin要求を満たさない", role: RoleCurator, required: RoleAdmin, wantErr: true},
		{name: "employeeはadmin要求を満たさない", role: RoleEmployee, required: RoleAdmin, wantErr: true},
		{name: "空のロールはadmin要求を満たさない", role: "", required: RoleAdmin, wantErr: true},
		{name: "未知のロールはadmin要求を満たさない", role: "superuser", required: RoleAdmin, wantErr: true},
		{name: "ロールが要求と一致すれば満たす", role: RoleVisitor, required: RoleVisitor, wantErr: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Authorize(tt.role, tt.required)
			if tt.wantErr && !errors.Is(err, ErrForbidden) {
				t.Errorf("err: got %v, want ErrForbidden", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("err: got %v, want nil", err)
			}
		})
	}
}

// TestSeedCredentials はデモクレデンシャルのシードを検証する。
func TestSeedCredentials(t *testing.T) {
	t.Parallel()

	t.Run("2回呼んでも重複して投入されないこと", func(t *testing.T) {
		t.Parallel()
		_, queries, _ := setupGateway(t, nil)

		// setupGatewayの中で1回シード済み。もう1回呼ぶ。
		if err := SeedCredentials(context.Background(), queries); err != nil {
			t.Fatalf("SeedCredentials()でエラーが発生: %v", err)
		}

		count, err := queries.CountCredentials(context.Background())
		if err != nil {
			t.Fatalf("クレデンシャル数の取得に失敗: %v", err)
		}
		if count != int64(len(DemoCredentials())) {
			t.Errorf("クレデンシャル数: got %d, want %d", count, len(DemoCredentials()))
		}
	})
}
