package museum

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	oauthgoogle "golang.org/x/oauth2/google"

	"github.com/palinv/museum/internal/auth"
	"github.com/palinv/museum/pkg/event"
	"github.com/palinv/museum/pkg/middleware"
)

// loginRequest はパスワードログインリクエストのJSON構造。
type loginRequest struct {
	// Username はログイン名。
	Username string `json:"username" binding:"required"`
	// Password は平文パスワード。
	Password string `json:"password" binding:"required"`
}

// googleAuthRequest はGoogleログインリクエストのJSON構造。
type googleAuthRequest struct {
	// Credential はGoogleが発行したIDトークン。
	Credential string `json:"credential" binding:"required"`
}

// handleLogin はユーザー名とパスワードによるログインを処理するハンドラを返す。
// 成功時はプロフィールと7日間有効なアクセストークンを返す。
func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "ユーザー名とパスワードを入力してください")
			return
		}

		profile, err := s.gateway.LoginWithCredentials(c.Request.Context(), req.Username, req.Password)
		if errors.Is(err, auth.ErrUnknownUser) {
			respondError(c, http.StatusBadRequest, "ユーザーが見つかりません")
			return
		}
		if errors.Is(err, auth.ErrInvalidPassword) {
			respondError(c, http.StatusBadRequest, "パスワードが違います")
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, "ログイン処理に失敗しました")
			log.Printf("ログインエラー: %v", err)
			return
		}

		s.recordEvent(c, profile.ID, event.AggregateTypeUser, event.TypeUserLoggedIn, profile.ID, event.UserLoggedInData{
			Email:      profile.Email,
			AuthMethod: profile.AuthMethod,
			Role:       profile.Role,
		})

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"user":    profile,
			"message": "ログインに成功しました",
		})
	}
}

// handleGoogleAuth はGoogle IDトークンによるログインを処理するハンドラを返す。
// トークンが無効またはメール未確認の場合は401、Googleの検証サービスへ
// 到達できない場合は503を返す。
func (s *Server) handleGoogleAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req googleAuthRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Google IDトークンを指定してください")
			return
		}

		profile, err := s.gateway.LoginWithGoogle(c.Request.Context(), req.Credential)
		switch {
		case errors.Is(err, auth.ErrProviderUnavailable):
			respondError(c, http.StatusServiceUnavailable, "Google認証は現在利用できません")
			log.Printf("Google認証プロバイダーエラー: %v", err)
			return
		case errors.Is(err, auth.ErrEmailNotVerified):
			respondError(c, http.StatusUnauthorized, "メールアドレスがGoogleで確認されていません")
			return
		case errors.Is(err, auth.ErrInvalidGoogleToken):
			respondError(c, http.StatusUnauthorized, "Google IDトークンが無効です")
			return
		case err != nil:
			respondError(c, http.StatusInternalServerError, "ログイン処理に失敗しました")
			log.Printf("Googleログインエラー: %v", err)
			return
		}

		s.recordEvent(c, profile.ID, event.AggregateTypeUser, event.TypeUserLoggedIn, profile.ID, event.UserLoggedInData{
			Email:      profile.Email,
			AuthMethod: profile.AuthMethod,
			Role:       profile.Role,
		})

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"user":    profile,
			"message": "Googleログインに成功しました",
		})
	}
}

// handleGoogleAuthURL はGoogle認証ページへのリダイレクトURLを返すハンドラを返す。
// OAuthクライアントが設定されていない場合は503を返す。
func (s *Server) handleGoogleAuthURL() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.cfg.GoogleClientID == "" {
			respondError(c, http.StatusServiceUnavailable, "Google認証は現在利用できません")
			return
		}

		conf := &oauth2.Config{
			ClientID:     s.cfg.GoogleClientID,
			ClientSecret: s.cfg.GoogleClientSecret,
			RedirectURL:  s.cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     oauthgoogle.Endpoint,
		}

		// stateはクライアントが保持し、コールバック時に照合する
		state := uuid.New().String()
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"url":     conf.AuthCodeURL(state),
			"state":   state,
		})
	}
}

// handleGetMe はログイン中ユーザーの情報取得を処理するハンドラを返す。
// 匿名の来館者（トークンなしのGET）には401を返す。
func (s *Server) handleGetMe() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" || userID == middleware.AnonymousUserID {
			respondError(c, http.StatusUnauthorized, "認証が必要です")
			return
		}

		user, err := s.queries.GetUserByID(c.Request.Context(), userID)
		if errors.Is(err, sql.ErrNoRows) {
			respondError(c, http.StatusNotFound, "ユーザーが見つかりません")
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, "ユーザーの取得に失敗しました")
			log.Printf("ユーザー取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"user": gin.H{
				"id":         user.ID,
				"username":   user.Username,
				"email":      user.Email,
				"name":       user.Name,
				"avatar":     user.AvatarUrl,
				"role":       user.Role,
				"authMethod": user.AuthMethod,
				"loginCount": user.LoginCount,
				"lastLogin":  formatTime(user.LastLoginAt),
			},
		})
	}
}

// formatTime はレスポンス用にUTCのRFC 3339形式へ整形する。
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
