package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestPostJSON はPostJSONメソッドを検証する。
func TestPostJSON(t *testing.T) {
	t.Parallel()

	t.Run("JSONボディを送信してレスポンスをデコードできること", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("メソッド: got %s, want POST", r.Method)
			}
			if ct := r.Header.Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type: got %q, want application/json", ct)
			}

			var body map[string]string
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("リクエストボディのデコードに失敗: %v", err)
			}
			if body["username"] != "admin" {
				t.Errorf("username: got %q, want admin", body["username"])
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]any{"success": true})
		}))
		t.Cleanup(server.Close)

		client := New(server.URL)
		var result map[string]any
		err := client.PostJSON(context.Background(), "/api/auth/login", map[string]string{"username": "admin"}, &result)
		if err != nil {
			t.Fatalf("PostJSON()でエラーが発生: %v", err)
		}
		if result["success"] != true {
			t.Errorf("success: got %v, want true", result["success"])
		}
	})

	t.Run("エラーステータスの場合はエラーを返すこと", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		t.Cleanup(server.Close)

		client := New(server.URL)
		if err := client.PostJSON(context.Background(), "/api/seed", nil, nil); err == nil {
			t.Error("エラーが返されるべき")
		}
	})
}

// TestWithToken はコンテキスト経由のトークン伝播を検証する。
func TestWithToken(t *testing.T) {
	t.Parallel()

	t.Run("トークンがAuthorizationヘッダに設定されること", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
				t.Errorf("Authorization: got %q, want %q", got, "Bearer test-token")
			}
			w.WriteHeader(http.StatusOK)
		}))
		t.Cleanup(server.Close)

		client := New(server.URL)
		ctx := WithToken(context.Background(), "test-token")
		if err := client.GetJSON(ctx, "/api/auth/me", nil); err != nil {
			t.Fatalf("GetJSON()でエラーが発生: %v", err)
		}
	})

	t.Run("トークンなしの場合はAuthorizationヘッダを設定しないこと", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.Header.Get("Authorization"); got != "" {
				t.Errorf("Authorization: got %q, want 空", got)
			}
			w.WriteHeader(http.StatusOK)
		}))
		t.Cleanup(server.Close)

		client := New(server.URL)
		if err := client.GetJSON(context.Background(), "/api/bits", nil); err != nil {
			t.Fatalf("GetJSON()でエラーが発生: %v", err)
		}
	})
}
