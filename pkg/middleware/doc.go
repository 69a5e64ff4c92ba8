// Package middleware は博物館APIのGinルーターで使用する共通ミドルウェアを提供する。
//
// アクセストークン（JWT）の検証、パニックリカバリ、CORS設定を含む。
// 読み取り専用エンドポイントは匿名アクセスを許可し、更新系エンドポイントは
// 有効なBearerトークンを要求するという認可方針をここで一元化する。
package middleware
