// 博物館カタログAPIサーバーのエントリポイント。
// 展示品・ガイドツアー・職員の公開カタログと、認証ゲートウェイによる
// ログイン、admin限定の更新系エンドポイントを提供する。
package main

import (
	"context"
	"log"

	"github.com/palinv/museum/internal/museum"
)

func main() {
	cfg := museum.LoadConfig()

	server, err := museum.NewServer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("博物館APIサーバーの初期化に失敗: %v", err)
	}
	defer server.Close()

	log.Printf("博物館APIサーバーを起動します: :%s", cfg.Port)
	if err := server.Run(); err != nil {
		log.Fatalf("博物館APIサーバーの起動に失敗: %v", err)
	}
}
