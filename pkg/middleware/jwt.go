package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWTClaims はアクセストークンのクレーム（ペイロード）を表す。
// 発行時点のユーザーIDとロールをリクエスト処理に伝播するために使用する。
// ロールはトークン発行時のスナップショットであり、ユーザーレコード側の
// ロール変更は有効期限が切れるまで既存トークンに反映されない。
type JWTClaims struct {
	jwt.RegisteredClaims
	// UserID は認証済みユーザーの一意識別子。
	UserID string `json:"user_id"`
	// Username はユーザーのログイン名。
	Username string `json:"username"`
	// Email はユーザーのメールアドレス。
	Email string `json:"email"`
	// Role はトークン発行時点のロール（visitor / admin / curator / employee）。
	Role string `json:"role"`
}

// TokenValidity はアクセストークンの有効期間。発行から7日間。
const TokenValidity = 7 * 24 * time.Hour

// tokenIssuer はトークンのissクレームに設定する発行者名。
const tokenIssuer = "museum-api"

// AnonymousUserID は匿名アクセス時にコンテキストへ設定するユーザーID。
const AnonymousUserID = "guest"

// RoleVisitor は匿名アクセスおよび一般来館者のロール。
const RoleVisitor = "visitor"

// GenerateJWT はユーザー情報からアクセストークンを生成する。
// トークンは自己完結型で、検証には署名と有効期限のチェックのみが必要。
// 認証ゲートウェイがログイン成功後に呼び出す。
func GenerateJWT(secret, userID, username, email, role string) (string, error) {
	claims := JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenValidity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    tokenIssuer,
		},
		UserID:   userID,
		Username: username,
		Email:    email,
		Role:     role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("JWTトークンの署名に失敗: %w", err)
	}
	return signed, nil
}

// JWTAuth はアクセストークンを検証するGinミドルウェアを返す。
//
// 読み取り専用メソッド（GET / HEAD）でトークンが無い場合は拒否せず、
// 匿名のvisitorとして処理を継続する。読み取りはデフォルトで公開。
// 更新系メソッドでトークンが無い場合は401、トークンが不正または
// 期限切れの場合はメソッドを問わず403を返す。不正なトークンを
// ロールへフォールバックさせることはない。
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
				c.Set("user_id", AnonymousUserID)
				c.Set("role", RoleVisitor)
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "認証が必要です",
			})
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Bearer トークン形式が不正です",
			})
			return
		}

		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "トークンが無効または期限切れです",
			})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// GetUserID はGinコンテキストからユーザーIDを取得する。
// JWTAuthミドルウェアが事前に適用されている必要がある。
func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}

// GetRole はGinコンテキストからロールを取得する。
// 未設定の場合は空文字列を返す（visitorへのフォールバックはしない）。
func GetRole(c *gin.Context) string {
	role, _ := c.Get("role")
	if r, ok := role.(string); ok {
		return r
	}
	return ""
}

// GetEmail はGinコンテキストからメールアドレスを取得する。
func GetEmail(c *gin.Context) string {
	email, _ := c.Get("email")
	if e, ok := email.(string); ok {
		return e
	}
	return ""
}
