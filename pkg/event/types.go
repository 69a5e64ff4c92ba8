package event

import (
	"encoding/json"
	"time"
)

// AggregateType はイベントの対象となるエンティティの種類を表す。
type AggregateType string

const (
	// AggregateTypeUser はユーザー（認証主体）を表す。
	AggregateTypeUser AggregateType = "User"
	// AggregateTypeExhibit は展示品を表す。
	AggregateTypeExhibit AggregateType = "Exhibit"
	// AggregateTypeTour はガイドツアーを表す。
	AggregateTypeTour AggregateType = "Tour"
)

// Type はイベントの種類を表す。
type Type string

const (
	// TypeUserLoggedIn はユーザーがログインしたことを表す。
	TypeUserLoggedIn Type = "UserLoggedIn"

	// TypeExhibitCreated は展示品が登録されたことを表す。
	TypeExhibitCreated Type = "ExhibitCreated"
	// TypeExhibitUpdated は展示品が更新されたことを表す。
	TypeExhibitUpdated Type = "ExhibitUpdated"
	// TypeExhibitDeleted は展示品が削除されたことを表す。
	TypeExhibitDeleted Type = "ExhibitDeleted"
	// TypeConservationUpdated は展示品の保存状態が更新されたことを表す。
	TypeConservationUpdated Type = "ConservationUpdated"

	// TypeTourCreated はツアーが作成されたことを表す。
	TypeTourCreated Type = "TourCreated"
	// TypeTourUpdated はツアーが更新されたことを表す。
	TypeTourUpdated Type = "TourUpdated"
	// TypeTourDeactivated はツアーが非公開化されたことを表す。
	TypeTourDeactivated Type = "TourDeactivated"
)

// Event は追記専用の監査イベントレコードを表す。
// 一度記録されたイベントは変更も削除もされない。
type Event struct {
	// ID はイベントの一意識別子（UUID）。
	ID string `json:"id"`
	// AggregateID は対象エンティティの識別子。
	AggregateID string `json:"aggregate_id"`
	// AggregateType は対象エンティティの種類。
	AggregateType AggregateType `json:"aggregate_type"`
	// EventType はイベントの種類。
	EventType Type `json:"event_type"`
	// Data はイベント固有のデータ（JSON形式）。
	Data json.RawMessage `json:"data"`
	// ActorID はイベントを発生させたユーザーのID。
	ActorID string `json:"actor_id"`
	// CreatedAt はイベントの記録日時（UTC）。
	CreatedAt time.Time `json:"created_at"`
}

// UserLoggedInData はUserLoggedInイベントのデータ。
type UserLoggedInData struct {
	// Email はログインしたユーザーのメールアドレス。
	Email string `json:"email"`
	// AuthMethod は認証方式（local / google / demo）。
	AuthMethod string `json:"auth_method"`
	// Role は発行されたトークンに埋め込まれたロール。
	Role string `json:"role"`
}

// ExhibitChangedData はExhibitCreated / ExhibitUpdated / ExhibitDeletedイベントのデータ。
type ExhibitChangedData struct {
	// Name は展示品の名称。
	Name string `json:"name"`
	// Category は展示品のカテゴリ。
	Category string `json:"category"`
}

// ConservationUpdatedData はConservationUpdatedイベントのデータ。
type ConservationUpdatedData struct {
	// State は更新後の保存状態。
	State string `json:"state"`
	// Notes は担当者のメモ。
	Notes string `json:"notes"`
}

// TourChangedData はTourCreated / TourUpdated / TourDeactivatedイベントのデータ。
type TourChangedData struct {
	// Name はツアーの名称。
	Name string `json:"name"`
}
