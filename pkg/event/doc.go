// Package event は博物館カタログの監査イベントの型定義を提供する。
//
// ログイン、展示品・ツアーの変更、保存状態の更新といった操作は
// 追記専用の監査イベントとして記録される。イベントは生成後に変更されない。
package event
