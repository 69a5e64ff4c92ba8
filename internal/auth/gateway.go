// Package auth は博物館APIの認証ゲートウェイを提供する。
//
// パスワード認証とGoogle認証の2つの経路でユーザーの身元を確立し、
// 発行時点のIDとロールを埋め込んだ署名付きアクセストークンを発行する。
// ゲートウェイ自体はリクエスト間で状態を持たない。トークンの状態遷移は
// 発行 → 有効（期限まで） → 期限切れ のみで、サーバー側の失効はない。
package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/palinv/museum/internal/auth/google"
	museumdb "github.com/palinv/museum/internal/museum/db"
	"github.com/palinv/museum/pkg/middleware"
)

// ロールの定数。adminのみが認可判断で特権を持つ。
// curatorとemployeeはデータモデル上の予約値で、現時点では
// どのエンドポイントもこれらを区別しない。
const (
	// RoleVisitor は一般来館者のロール。
	RoleVisitor = "visitor"
	// RoleAdmin は管理者のロール。更新系エンドポイントの操作に必要。
	RoleAdmin = "admin"
	// RoleCurator は学芸員のロール（予約値）。
	RoleCurator = "curator"
	// RoleEmployee は職員のロール（予約値）。
	RoleEmployee = "employee"
)

// 認証方式の定数。
const (
	// AuthMethodLocal はローカルパスワード認証。
	AuthMethodLocal = "local"
	// AuthMethodGoogle はGoogleアカウントによる認証。
	AuthMethodGoogle = "google"
	// AuthMethodDemo はシードされたデモクレデンシャルによる認証。
	AuthMethodDemo = "demo"
)

// 認証・認可の失敗を表すエラー。ハンドラ層でHTTPステータスに変換される。
var (
	// ErrUnknownUser は指定されたユーザー名のクレデンシャルが存在しないことを表す。
	ErrUnknownUser = errors.New("ユーザーが見つかりません")
	// ErrInvalidPassword はパスワードが一致しないことを表す。
	ErrInvalidPassword = errors.New("パスワードが違います")
	// ErrInvalidGoogleToken はGoogle IDトークンの検証失敗（署名不正・期限切れ・audience不一致）を表す。
	ErrInvalidGoogleToken = errors.New("Google IDトークンが無効です")
	// ErrEmailNotVerified はGoogleがメールアドレスを未確認と報告したことを表す。
	ErrEmailNotVerified = errors.New("メールアドレスがGoogleで確認されていません")
	// ErrProviderUnavailable はGoogleの検証サービスに到達できないことを表す。
	ErrProviderUnavailable = errors.New("Google認証サービスを利用できません")
	// ErrForbidden はロールが不足していることを表す。
	ErrForbidden = errors.New("この操作を行う権限がありません")
)

// providerTimeout は外部プロバイダーへの検証呼び出しの上限時間。
// タイムアウト時はリクエストを保留せずErrProviderUnavailableを返す。
const providerTimeout = 5 * time.Second

// Profile は認証成功時にクライアントへ返すユーザーの公開プロフィール。
type Profile struct {
	// ID はユーザーの一意識別子。
	ID string `json:"id"`
	// Username はログイン名。
	Username string `json:"username"`
	// Email はメールアドレス。
	Email string `json:"email"`
	// Name は表示名。
	Name string `json:"name"`
	// Avatar はアバター画像のURL。
	Avatar string `json:"avatar"`
	// Role は発行されたトークンに埋め込まれたロール。
	Role string `json:"role"`
	// Token は発行されたアクセストークン。
	Token string `json:"token"`
	// AuthMethod は今回の認証に使われた方式。
	AuthMethod string `json:"authMethod"`
}

// Gateway は認証ゲートウェイ。身元の確立とトークン発行を担う。
// リクエスト間で共有する可変状態は持たず、並行呼び出しに対して安全。
type Gateway struct {
	// queries はユーザー・クレデンシャルの永続化層。
	queries *museumdb.Queries
	// verifier はGoogle IDトークンの検証器。未設定（nil）の場合、
	// Googleログインは利用不可として扱う。
	verifier google.Verifier
	// jwtSecret はトークン署名用の共有シークレット。
	jwtSecret string
}

// NewGateway は新しい認証ゲートウェイを生成する。
// verifierにはnilを渡せる。その場合Googleログインは常に
// ErrProviderUnavailableを返す。
func NewGateway(queries *museumdb.Queries, verifier google.Verifier, jwtSecret string) *Gateway {
	return &Gateway{
		queries:   queries,
		verifier:  verifier,
		jwtSecret: jwtSecret,
	}
}

// LoginWithCredentials はユーザー名とパスワードで認証し、アクセストークンを発行する。
//
// クレデンシャルが存在しない場合はErrUnknownUser、パスワード不一致の場合は
// ErrInvalidPasswordを返す。成功時は対応するユーザーレコードを一意キー
// （メールアドレス）による単一のアトミックなupsertで作成・更新し、
// 最終ログイン日時を更新する。初回ログインの同時実行で重複行はできない。
func (g *Gateway) LoginWithCredentials(ctx context.Context, username, password string) (*Profile, error) {
	cred, err := g.queries.GetCredentialByUsername(ctx, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUnknownUser
	}
	if err != nil {
		return nil, fmt.Errorf("クレデンシャルの取得に失敗: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidPassword
	}

	now := time.Now().UTC()
	user, err := g.queries.UpsertUserByEmail(ctx, museumdb.UpsertUserByEmailParams{
		ID:          uuid.New().String(),
		Username:    cred.Username,
		Email:       cred.Email,
		Name:        cred.DisplayName,
		AvatarUrl:   defaultAvatarURL(cred.DisplayName),
		GoogleID:    sql.NullString{},
		Role:        cred.Role,
		AuthMethod:  AuthMethodDemo,
		LastLoginAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("ユーザーレコードの更新に失敗: %w", err)
	}

	return g.issueToken(user)
}

// LoginWithGoogle はGoogleのIDトークンで認証し、アクセストークンを発行する。
//
// トークンはGoogleの公開鍵で検証される。検証失敗はErrInvalidGoogleToken、
// メール未確認はErrEmailNotVerified、検証サービスへ到達できない場合は
// ErrProviderUnavailableとなる。ユーザーはGoogleサブジェクトID →
// メールアドレスの順で照合され、どちらにも該当しなければvisitorロールで
// 新規作成される。メール照合で既存のローカルアカウントに合流した場合、
// GoogleサブジェクトIDは一度だけ設定され、以後変更されない。
func (g *Gateway) LoginWithGoogle(ctx context.Context, rawIDToken string) (*Profile, error) {
	if g.verifier == nil {
		return nil, ErrProviderUnavailable
	}

	vctx, cancel := context.WithTimeout(ctx, providerTimeout)
	defer cancel()

	profile, err := g.verifier.Verify(vctx, rawIDToken)
	if err != nil {
		if vctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidGoogleToken, err)
	}
	if !profile.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	googleID := sql.NullString{String: profile.Subject, Valid: true}
	now := time.Now().UTC()

	user, err := g.queries.GetUserByGoogleID(ctx, googleID)
	switch {
	case err == nil:
		// 既知のGoogleユーザー。プロフィールをプロバイダーの値で更新する。
		user, err = g.queries.UpdateGoogleUserLogin(ctx, museumdb.UpdateGoogleUserLoginParams{
			Name:        profile.Name,
			AvatarUrl:   profile.Picture,
			LastLoginAt: now,
			UpdatedAt:   now,
			GoogleID:    googleID,
		})
		if err != nil {
			return nil, fmt.Errorf("ユーザーレコードの更新に失敗: %w", err)
		}
	case errors.Is(err, sql.ErrNoRows):
		// 初回のGoogleログイン。メールアドレスで既存アカウントに合流するか、
		// visitorロールで新規作成する。upsertは単一文でアトミックに行う。
		user, err = g.queries.UpsertUserByEmail(ctx, museumdb.UpsertUserByEmailParams{
			ID:          uuid.New().String(),
			Username:    usernameFromEmail(profile.Email),
			Email:       profile.Email,
			Name:        profile.Name,
			AvatarUrl:   profile.Picture,
			GoogleID:    googleID,
			Role:        RoleVisitor,
			AuthMethod:  AuthMethodGoogle,
			LastLoginAt: now,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return nil, fmt.Errorf("ユーザーレコードの作成に失敗: %w", err)
		}
	default:
		return nil, fmt.Errorf("ユーザーレコードの取得に失敗: %w", err)
	}

	return g.issueToken(user)
}

// Authorize はロールが要求を満たすかを決定的に判定する。
// adminはadminゲートのすべての操作を行える。それ以外のロール
// （空文字列や未知の値を含む）は、要求ロールと完全一致しない限り
// ErrForbiddenで拒否される。ロール階層は存在しない。
func Authorize(role, required string) error {
	if role == RoleAdmin || role == required {
		return nil
	}
	return ErrForbidden
}

// issueToken はユーザーレコードからアクセストークンを発行し、プロフィールを組み立てる。
// トークンに埋め込まれるロールは発行時点のスナップショット。
func (g *Gateway) issueToken(user museumdb.User) (*Profile, error) {
	token, err := middleware.GenerateJWT(g.jwtSecret, user.ID, user.Username, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("アクセストークンの発行に失敗: %w", err)
	}

	return &Profile{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		Name:       user.Name,
		Avatar:     user.AvatarUrl,
		Role:       user.Role,
		Token:      token,
		AuthMethod: user.AuthMethod,
	}, nil
}

// usernameFromEmail はメールアドレスのローカル部をユーザー名として使う。
func usernameFromEmail(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}

// defaultAvatarURL は表示名から生成されるアバター画像のURLを返す。
func defaultAvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}
