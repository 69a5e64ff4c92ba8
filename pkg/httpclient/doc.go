// Package httpclient は博物館APIへのHTTP通信を行うクライアントを提供する。
//
// シードCLI（cmd/seed）が稼働中のAPIサーバーに対してログインと
// デモデータ投入を行う際に使用する。Bearerトークンはコンテキスト経由で
// 伝播し、各リクエストのAuthorizationヘッダーに設定される。
package httpclient
