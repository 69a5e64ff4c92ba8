package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	museumdb "github.com/palinv/museum/internal/museum/db"
)

// DemoCredential はシードされるデモ用のクレデンシャル。
type DemoCredential struct {
	// Username はログイン名。
	Username string
	// Password は平文パスワード。保存時にbcryptでハッシュ化される。
	Password string
	// Role は割り当てられるロール。
	Role string
	// Email はメールアドレス。
	Email string
	// DisplayName は表示名。
	DisplayName string
}

// DemoCredentials はデモ環境向けの既定クレデンシャルを返す。
func DemoCredentials() []DemoCredential {
	return []DemoCredential{
		{Username: "admin", Password: "admin123", Role: RoleAdmin, Email: "admin@museum.example", DisplayName: "博物館管理者"},
		{Username: "user", Password: "user123", Role: RoleVisitor, Email: "user@museum.example", DisplayName: "博物館来館者"},
		{Username: "visitor", Password: "visitor123", Role: RoleVisitor, Email: "visitor@museum.example", DisplayName: "テスト来館者"},
	}
}

// SeedCredentials はクレデンシャルテーブルが空の場合にデモクレデンシャルを投入する。
// パスワードはbcryptでハッシュ化して保存する。すでに1件でも存在する場合は何もしない。
func SeedCredentials(ctx context.Context, queries *museumdb.Queries) error {
	count, err := queries.CountCredentials(ctx)
	if err != nil {
		return fmt.Errorf("クレデンシャル数の取得に失敗: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, c := range DemoCredentials() {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("パスワードのハッシュ化に失敗: %w", err)
		}
		if err := queries.CreateCredential(ctx, museumdb.CreateCredentialParams{
			Username:     c.Username,
			PasswordHash: string(hash),
			Role:         c.Role,
			Email:        c.Email,
			DisplayName:  c.DisplayName,
		}); err != nil {
			return fmt.Errorf("クレデンシャル %s の作成に失敗: %w", c.Username, err)
		}
	}
	return nil
}
