package museum

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleStats は博物館全体の統計取得を処理するハンドラを返す。認証不要。
// 展示品のカテゴリ別件数、公開中ツアー数、在籍職員数をまとめて返す。
func (s *Server) handleStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		totalExhibits, err := s.queries.CountExhibits(ctx)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "統計の取得に失敗しました")
			log.Printf("統計取得エラー: %v", err)
			return
		}

		byCategory, err := s.queries.CountExhibitsByCategory(ctx)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "統計の取得に失敗しました")
			log.Printf("統計取得エラー: %v", err)
			return
		}
		categories := make(map[string]int64, len(byCategory))
		for _, row := range byCategory {
			categories[row.Category] = row.Count
		}

		activeTours, err := s.queries.CountActiveTours(ctx)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "統計の取得に失敗しました")
			log.Printf("統計取得エラー: %v", err)
			return
		}

		totalEmployees, err := s.queries.CountEmployees(ctx)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "統計の取得に失敗しました")
			log.Printf("統計取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"stats": gin.H{
				"totalBits":      totalExhibits,
				"bitsByCategory": categories,
				"activeTours":    activeTours,
				"totalEmployees": totalEmployees,
			},
		})
	}
}
