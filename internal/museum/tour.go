package museum

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	museumdb "github.com/palinv/museum/internal/museum/db"
	"github.com/palinv/museum/pkg/event"
	"github.com/palinv/museum/pkg/middleware"
)

// tourRequest はツアーの作成・更新リクエストのJSON構造。
type tourRequest struct {
	// Name はツアーの名称。
	Name string `json:"name" binding:"required"`
	// Description はツアーの説明。
	Description string `json:"description"`
	// Duration は所要時間（分）。
	Duration int64 `json:"duration" binding:"required,min=1"`
	// Price は料金。
	Price float64 `json:"price"`
	// Schedule は開催スケジュール。
	Schedule json.RawMessage `json:"schedule"`
}

// tourResponse はツアーのJSONレスポンス構造。
type tourResponse struct {
	// ID はツアーの一意識別子。
	ID string `json:"id"`
	// Name はツアーの名称。
	Name string `json:"name"`
	// Description はツアーの説明。
	Description string `json:"description"`
	// Duration は所要時間（分）。
	Duration int64 `json:"duration"`
	// Price は料金。
	Price float64 `json:"price"`
	// Schedule は開催スケジュール。
	Schedule json.RawMessage `json:"schedule"`
	// IsActive は公開中かどうか。
	IsActive bool `json:"isActive"`
	// CreatedAt は作成日時。
	CreatedAt string `json:"createdAt"`
	// UpdatedAt は更新日時。
	UpdatedAt string `json:"updatedAt"`
}

// toTourResponse はDB行をJSONレスポンスに変換する。
func toTourResponse(t museumdb.Tour) tourResponse {
	return tourResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Duration:    t.Duration,
		Price:       t.Price,
		Schedule:    json.RawMessage(t.Schedule),
		IsActive:    t.IsActive == 1,
		CreatedAt:   formatTime(t.CreatedAt),
		UpdatedAt:   formatTime(t.UpdatedAt),
	}
}

// handleListTours は公開中ツアーの一覧取得を処理するハンドラを返す。
// 非公開化されたツアーは含まれない。認証不要。
func (s *Server) handleListTours() gin.HandlerFunc {
	return func(c *gin.Context) {
		tours, err := s.queries.ListActiveTours(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, "ツアー一覧の取得に失敗しました")
			log.Printf("ツアー一覧取得エラー: %v", err)
			return
		}

		responses := make([]tourResponse, 0, len(tours))
		for _, t := range tours {
			responses = append(responses, toTourResponse(t))
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"count":   len(responses),
			"tours":   responses,
		})
	}
}

// handleGetTour はツアー詳細取得を処理するハンドラを返す。
// 非公開化されたツアーもIDを知っていれば取得できる。認証不要。
func (s *Server) handleGetTour() gin.HandlerFunc {
	return func(c *gin.Context) {
		tour, err := s.queries.GetTourByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, sql.ErrNoRows) {
			respondError(c, http.StatusNotFound, "ツアーが見つかりません")
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, "ツアーの取得に失敗しました")
			log.Printf("ツアー取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "tour": toTourResponse(tour)})
	}
}

// handleTourStats はツアー統計の取得を処理するハンドラを返す。認証不要。
// 料金と所要時間の集計は公開中のツアーのみを対象とする。
func (s *Server) handleTourStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		total, err := s.queries.CountTours(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, "ツアー統計の取得に失敗しました")
			log.Printf("ツアー統計取得エラー: %v", err)
			return
		}

		active, err := s.queries.ListActiveTours(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, "ツアー統計の取得に失敗しました")
			log.Printf("ツアー統計取得エラー: %v", err)
			return
		}

		var avgPrice, minPrice, maxPrice float64
		var totalDuration int64
		for i, t := range active {
			avgPrice += t.Price
			totalDuration += t.Duration
			if i == 0 || t.Price < minPrice {
				minPrice = t.Price
			}
			if t.Price > maxPrice {
				maxPrice = t.Price
			}
		}
		if len(active) > 0 {
			avgPrice /= float64(len(active))
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"stats": gin.H{
				"totalTours":    total,
				"activeTours":   len(active),
				"inactiveTours": total - int64(len(active)),
				"avgPrice":      avgPrice,
				"minPrice":      minPrice,
				"maxPrice":      maxPrice,
				"totalDuration": totalDuration,
			},
		})
	}
}

// handleCreateTour はツアーの作成を処理するハンドラを返す。admin限定。
func (s *Server) handleCreateTour() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}

		var req tourRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "名称と所要時間は必須です")
			return
		}

		tourID := uuid.New().String()
		now := time.Now().UTC()
		if err := s.queries.CreateTour(c.Request.Context(), museumdb.CreateTourParams{
			ID:          tourID,
			Name:        req.Name,
			Description: req.Description,
			Duration:    req.Duration,
			Price:       req.Price,
			Schedule:    jsonOr(req.Schedule, "[]"),
			CreatedAt:   now,
			UpdatedAt:   now,
		}); err != nil {
			respondError(c, http.StatusInternalServerError, "ツアーの作成に失敗しました")
			log.Printf("ツアー作成エラー: %v", err)
			return
		}

		s.recordEvent(c, tourID, event.AggregateTypeTour, event.TypeTourCreated, middleware.GetUserID(c), event.TourChangedData{Name: req.Name})

		created, err := s.queries.GetTourByID(c.Request.Context(), tourID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "作成したツアーの取得に失敗しました")
			log.Printf("ツアー取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"tour":    toTourResponse(created),
			"message": "ツアーを作成しました",
		})
	}
}

// handleUpdateTour はツアーの更新を処理するハンドラを返す。admin限定。
func (s *Server) handleUpdateTour() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}

		tourID := c.Param("id")
		current, err := s.queries.GetTourByID(c.Request.Context(), tourID)
		if errors.Is(err, sql.ErrNoRows) {
			respondError(c, http.StatusNotFound, "ツアーが見つかりません")
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, "ツアーの取得に失敗しました")
			log.Printf("ツアー取得エラー: %v", err)
			return
		}

		var req tourRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "名称と所要時間は必須です")
			return
		}

		if err := s.queries.UpdateTour(c.Request.Context(), museumdb.UpdateTourParams{
			Name:        req.Name,
			Description: req.Description,
			Duration:    req.Duration,
			Price:       req.Price,
			Schedule:    jsonOr(req.Schedule, current.Schedule),
			UpdatedAt:   time.Now().UTC(),
			ID:          tourID,
		}); err != nil {
			respondError(c, http.StatusInternalServerError, "ツアーの更新に失敗しました")
			log.Printf("ツアー更新エラー: %v", err)
			return
		}

		s.recordEvent(c, tourID, event.AggregateTypeTour, event.TypeTourUpdated, middleware.GetUserID(c), event.TourChangedData{Name: req.Name})

		updated, err := s.queries.GetTourByID(c.Request.Context(), tourID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "更新したツアーの取得に失敗しました")
			log.Printf("ツアー取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"tour":    toTourResponse(updated),
			"message": "ツアーを更新しました",
		})
	}
}

// handleDeactivateTour はツアーの非公開化を処理するハンドラを返す。admin限定。
// レコードは削除せず、is_activeを落として一覧から外すだけ。
// 存在しないツアーへのリクエストはロールに関係なく404を返す。
func (s *Server) handleDeactivateTour() gin.HandlerFunc {
	return func(c *gin.Context) {
		tourID := c.Param("id")
		tour, err := s.queries.GetTourByID(c.Request.Context(), tourID)
		if errors.Is(err, sql.ErrNoRows) {
			respondError(c, http.StatusNotFound, "ツアーが見つかりません")
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, "ツアーの取得に失敗しました")
			log.Printf("ツアー取得エラー: %v", err)
			return
		}

		if !requireAdmin(c) {
			return
		}

		if err := s.queries.DeactivateTour(c.Request.Context(), museumdb.DeactivateTourParams{
			UpdatedAt: time.Now().UTC(),
			ID:        tourID,
		}); err != nil {
			respondError(c, http.StatusInternalServerError, "ツアーの非公開化に失敗しました")
			log.Printf("ツアー非公開化エラー: %v", err)
			return
		}

		s.recordEvent(c, tourID, event.AggregateTypeTour, event.TypeTourDeactivated, middleware.GetUserID(c), event.TourChangedData{Name: tour.Name})

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "ツアーを非公開にしました",
		})
	}
}
