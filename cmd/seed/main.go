// デモデータ投入用のCLIツール。
// 管理者としてログインしてアクセストークンを取得し、
// デモデータ投入エンドポイントを呼び出す。
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/palinv/museum/pkg/httpclient"
)

// loginResponse はログインレスポンスの必要な部分だけを取り出す。
type loginResponse struct {
	Success bool `json:"success"`
	User    struct {
		Token string `json:"token"`
	} `json:"user"`
	Message string `json:"message"`
}

// seedResponse はデモデータ投入レスポンス。
type seedResponse struct {
	Success bool           `json:"success"`
	Seeded  map[string]int `json:"seeded"`
	Message string         `json:"message"`
}

func main() {
	addr := flag.String("addr", "http://localhost:3000", "博物館APIサーバーのURL")
	username := flag.String("username", "admin", "ログインに使うユーザー名")
	password := flag.String("password", "admin123", "ログインに使うパスワード")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := httpclient.New(*addr)

	var login loginResponse
	if err := client.PostJSON(ctx, "/api/auth/login", map[string]string{
		"username": *username,
		"password": *password,
	}, &login); err != nil {
		log.Fatalf("ログインに失敗: %v", err)
	}
	if login.User.Token == "" {
		log.Fatalf("アクセストークンを取得できませんでした: %s", login.Message)
	}

	var seed seedResponse
	if err := client.PostJSON(httpclient.WithToken(ctx, login.User.Token), "/api/seed", nil, &seed); err != nil {
		log.Fatalf("デモデータの投入に失敗: %v", err)
	}

	log.Printf("デモデータを投入しました: %v", seed.Seeded)
}
