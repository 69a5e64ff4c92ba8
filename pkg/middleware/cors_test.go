package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// TestCORS はCORSミドルウェアを検証する。
func TestCORS(t *testing.T) {
	t.Parallel()

	setupCORSRouter := func(origins []string) *gin.Engine {
		router := gin.New()
		router.Use(CORS(origins))
		router.GET("/api/bits", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})
		return router
	}

	t.Run("許可されたオリジンにCORSヘッダを付与すること", func(t *testing.T) {
		t.Parallel()
		router := setupCORSRouter([]string{"http://localhost:5173"})

		req := httptest.NewRequest(http.MethodGet, "/api/bits", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Errorf("Access-Control-Allow-Origin: got %q, want %q", got, "http://localhost:5173")
		}
		if got := w.Header().Get("Access-Control-Allow-Methods"); got == "" {
			t.Error("Access-Control-Allow-Methodsが空です")
		}
	})

	t.Run("許可されていないオリジンにはCORSヘッダを付与しないこと", func(t *testing.T) {
		t.Parallel()
		router := setupCORSRouter([]string{"http://localhost:5173"})

		req := httptest.NewRequest(http.MethodGet, "/api/bits", nil)
		req.Header.Set("Origin", "http://evil.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin: got %q, want 空", got)
		}
	})

	t.Run("OPTIONSリクエストには204を返すこと", func(t *testing.T) {
		t.Parallel()
		router := setupCORSRouter([]string{"http://localhost:5173"})

		req := httptest.NewRequest(http.MethodOptions, "/api/bits", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("ステータスコード: got %d, want %d", w.Code, http.StatusNoContent)
		}
		// 保存状態の更新で使うPATCHが許可メソッドに含まれること
		if methods := w.Header().Get("Access-Control-Allow-Methods"); methods == "" {
			t.Error("Access-Control-Allow-Methodsが空です")
		}
	})
}
