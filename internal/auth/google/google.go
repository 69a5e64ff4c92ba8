// Package google はGoogleが発行したIDトークンの検証を提供する。
//
// GoogleのOIDCディスカバリエンドポイントから公開鍵を取得し、
// IDトークンの署名・有効期限・audience（クライアントID）をローカルで検証する。
package google

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

// issuerURL はGoogleのOIDC発行者URL。
const issuerURL = "https://accounts.google.com"

// Profile はIDトークンから抽出したGoogleアカウントのプロフィール。
type Profile struct {
	// Subject はGoogleが割り当てた安定したサブジェクトID。
	Subject string
	// Email はアカウントのメールアドレス。
	Email string
	// EmailVerified はGoogleがメールアドレスを確認済みかどうか。
	EmailVerified bool
	// Name はアカウントの表示名。
	Name string
	// Picture はプロフィール画像のURL。
	Picture string
}

// Verifier はGoogle IDトークンを検証するインターフェース。
// テストではフェイク実装に差し替える。
type Verifier interface {
	// Verify はIDトークン文字列を検証し、プロフィールを返す。
	Verify(ctx context.Context, rawIDToken string) (*Profile, error)
}

// OIDCVerifier はgo-oidcを使ったVerifierの実装。
type OIDCVerifier struct {
	// verifier は署名とaudienceを検証するIDトークン検証器。
	verifier *oidc.IDTokenVerifier
}

// インターフェース実装のコンパイル時チェック。
var _ Verifier = (*OIDCVerifier)(nil)

// NewOIDCVerifier は新しいOIDCVerifierを生成する。
// GoogleのディスカバリドキュメントをHTTPで取得するため、起動時に一度だけ呼び出す。
// clientIDはトークンのaudienceとして検証される。
func NewOIDCVerifier(ctx context.Context, clientID string) (*OIDCVerifier, error) {
	if clientID == "" {
		return nil, errors.New("GoogleクライアントIDが設定されていません")
	}

	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return nil, fmt.Errorf("GoogleのOIDCプロバイダー初期化に失敗: %w", err)
	}

	return &OIDCVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
	}, nil
}

// Verify はIDトークンの署名・有効期限・audienceを検証し、プロフィールを返す。
// 検証に失敗した場合（署名不正、期限切れ、audience不一致）はエラーを返す。
func (v *OIDCVerifier) Verify(ctx context.Context, rawIDToken string) (*Profile, error) {
	idToken, err := v.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("Google IDトークンの検証に失敗: %w", err)
	}

	var claims struct {
		Email         string `json:"email"`
		EmailVerified bool   `json:"email_verified"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("Google IDトークンのクレーム解析に失敗: %w", err)
	}

	if idToken.Subject == "" || claims.Email == "" {
		return nil, errors.New("Google IDトークンに必須クレームがありません")
	}

	return &Profile{
		Subject:       idToken.Subject,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
		Name:          claims.Name,
		Picture:       claims.Picture,
	}, nil
}
