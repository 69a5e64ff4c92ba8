package event

import (
	"testing"
	"time"
)

// TestNew はイベント生成を検証する。
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("正常にイベントを生成できること", func(t *testing.T) {
		t.Parallel()

		before := time.Now().UTC()
		ev, err := New("exhibit-1", AggregateTypeExhibit, TypeExhibitCreated, "user-1", ExhibitChangedData{
			Name:     "縄文土器",
			Category: "考古",
		})
		if err != nil {
			t.Fatalf("New()でエラーが発生: %v", err)
		}

		if ev.ID == "" {
			t.Error("IDが空です")
		}
		if ev.AggregateID != "exhibit-1" {
			t.Errorf("AggregateID: got %q, want exhibit-1", ev.AggregateID)
		}
		if ev.AggregateType != AggregateTypeExhibit {
			t.Errorf("AggregateType: got %q, want %q", ev.AggregateType, AggregateTypeExhibit)
		}
		if ev.EventType != TypeExhibitCreated {
			t.Errorf("EventType: got %q, want %q", ev.EventType, TypeExhibitCreated)
		}
		if ev.ActorID != "user-1" {
			t.Errorf("ActorID: got %q, want user-1", ev.ActorID)
		}
		if ev.CreatedAt.Before(before) {
			t.Errorf("CreatedAt: got %v, want %v 以降", ev.CreatedAt, before)
		}
	})

	t.Run("シリアライズ不可能なデータはエラー", func(t *testing.T) {
		t.Parallel()

		_, err := New("exhibit-1", AggregateTypeExhibit, TypeExhibitCreated, "user-1", func() {})
		if err == nil {
			t.Error("エラーが返されるべき")
		}
	})
}

// TestDecodeData はイベントデータのデコードを検証する。
func TestDecodeData(t *testing.T) {
	t.Parallel()

	t.Run("生成したイベントからデータを復元できること", func(t *testing.T) {
		t.Parallel()

		ev, err := New("user-1", AggregateTypeUser, TypeUserLoggedIn, "user-1", UserLoggedInData{
			Email:      "admin@museum.example",
			AuthMethod: "demo",
			Role:       "admin",
		})
		if err != nil {
			t.Fatalf("New()でエラーが発生: %v", err)
		}

		data, err := DecodeData[UserLoggedInData](ev)
		if err != nil {
			t.Fatalf("DecodeData()でエラーが発生: %v", err)
		}
		if data.Email != "admin@museum.example" {
			t.Errorf("Email: got %q, want admin@museum.example", data.Email)
		}
		if data.AuthMethod != "demo" {
			t.Errorf("AuthMethod: got %q, want demo", data.AuthMethod)
		}
		if data.Role != "admin" {
			t.Errorf("Role: got %q, want admin", data.Role)
		}
	})

	t.Run("型が一致しないデータはエラー", func(t *testing.T) {
		t.Parallel()

		ev := &Event{Data: []byte(`"not-an-object"`)}
		if _, err := DecodeData[UserLoggedInData](ev); err == nil {
			t.Error("エラーが返されるべき")
		}
	})
}
