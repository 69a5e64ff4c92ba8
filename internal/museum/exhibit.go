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

// conservationStates は保存状態として受け付ける値。
var conservationStates = map[string]struct{}{
	"excellent": {},
	"good":      {},
	"fair":      {},
	"poor":      {},
	"critical":  {},
}

// exhibitRequest は展示品の登録・更新リクエストのJSON構造。
// location / materials / dimensions は構造をサーバー側で固定せず、
// JSONのまま保存する。
type exhibitRequest struct {
	// Name は展示品の名称。
	Name string `json:"name" binding:"required"`
	// Description は展示品の説明。
	Description string `json:"description"`
	// Category は展示品のカテゴリ。
	Category string `json:"category" binding:"required"`
	// Location は展示場所（建物・階・部屋など）。
	Location json.RawMessage `json:"location"`
	// Status は展示状態（exhibited / stored / restoration など）。
	Status string `json:"status"`
	// ImageURL は展示品画像のURL。
	ImageURL string `json:"imageUrl"`
	// Year は制作年。
	Year int64 `json:"year"`
	// Materials は素材の一覧。
	Materials json.RawMessage `json:"materials"`
	// Dimensions は寸法。
	Dimensions json.RawMessage `json:"dimensions"`
	// Value は評価額の表記。
	Value string `json:"value"`
	// AssignedEmployee は担当職員のID。登録時は必須。
	AssignedEmployee string `json:"assignedEmployee"`
}

// conservationRequest は保存状態更新リクエストのJSON構造。
type conservationRequest struct {
	// ConservationState は更新後の保存状態。
	ConservationState string `json:"conservationState" binding:"required"`
	// Notes は担当者のメモ。
	Notes string `json:"notes"`
}

// conservationNoteResponse は保存状態履歴のJSONレスポンス構造。
type conservationNoteResponse struct {
	// State は記録時点の保存状態。
	State string `json:"state"`
	// Notes は担当者のメモ。
	Notes string `json:"notes"`
	// UpdatedBy は更新したユーザーのID。
	UpdatedBy string `json:"updatedBy"`
	// UpdatedAt は記録日時。
	UpdatedAt string `json:"updatedAt"`
}

// exhibitResponse は展示品のJSONレスポンス構造。
type exhibitResponse struct {
	// ID は展示品の一意識別子。
	ID string `json:"id"`
	// Name は展示品の名称。
	Name string `json:"name"`
	// Description は展示品の説明。
	Description string `json:"description"`
	// Category は展示品のカテゴリ。
	Category string `json:"category"`
	// Location は展示場所。
	Location json.RawMessage `json:"location"`
	// Status は展示状態。
	Status string `json:"status"`
	// ConservationState は現在の保存状態。
	ConservationState string `json:"conservationState"`
	// ImageURL は展示品画像のURL。
	ImageURL string `json:"imageUrl"`
	// Year は制作年。
	Year int64 `json:"year"`
	// Materials は素材の一覧。
	Materials json.RawMessage `json:"materials"`
	// Dimensions は寸法。
	Dimensions json.RawMessage `json:"dimensions"`
	// Value は評価額の表記。
	Value string `json:"value"`
	// AssignedEmployee は担当職員のID。未割り当ての場合は省略される。
	AssignedEmployee string `json:"assignedEmployee,omitempty"`
	// ConservationHistory は保存状態の履歴（古い順）。
	ConservationHistory []conservationNoteResponse `json:"conservationHistory,omitempty"`
	// CreatedAt は登録日時。
	CreatedAt string `json:"createdAt"`
	// UpdatedAt は更新日時。
	UpdatedAt string `json:"updatedAt"`
}

// toExhibitResponse はDB行をJSONレスポンスに変換する。
func toExhibitResponse(e museumdb.Exhibit) exhibitResponse {
	return exhibitResponse{
		ID:                e.ID,
		Name:              e.Name,
		Description:       e.Description,
		Category:          e.Category,
		Location:          json.RawMessage(e.Location),
		Status:            e.Status,
		ConservationState: e.ConservationState,
		ImageURL:          e.ImageUrl,
		Year:              e.Year,
		Materials:         json.RawMessage(e.Materials),
		Dimensions:        json.RawMessage(e.Dimensions),
		Value:             e.Value,
		AssignedEmployee:  e.AssignedEmployeeID.String,
		CreatedAt:         formatTime(e.CreatedAt),
		UpdatedAt:         formatTime(e.UpdatedAt),
	}
}

// jsonOr はリクエストのJSONフィールドが空の場合に既定値へ置き換える。
func jsonOr(raw json.RawMessage, fallback string) string {
	if len(raw) == 0 || string(raw) == "null" {
		return fallback
	}
	return string(raw)
}

// handleListExhibits は展示品一覧取得を処理するハンドラを返す。
// 登録の新しい順に返す。認証不要。
func (s *Server) handleListExhibits() gin.HandlerFunc {
	return func(c *gin.Context) {
		exhibits, err := s.queries.ListExhibits(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, "展示品一覧の取得に失敗しました")
			log.Printf("展示品一覧取得エラー: %v", err)
			return
		}

		responses := make([]exhibitResponse, 0, len(exhibits))
		for _, e := range exhibits {
			responses = append(responses, toExhibitResponse(e))
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"count":   len(responses),
			"bits":    responses,
		})
	}
}

// handleGetExhibit は展示品詳細取得を処理するハンドラを返す。
// 保存状態の履歴を古い順で含める。認証不要。
func (s *Server) handleGetExhibit() gin.HandlerFunc {
	return func(c *gin.Context) {
		exhibit, err := s.queries.GetExhibitByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, sql.ErrNoRows) {
			respondError(c, http.StatusNotFound, "展示品が見つかりません")
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, "展示品の取得に失敗しました")
			log.Printf("展示品取得エラー: %v", err)
			return
		}

		resp := toExhibitResponse(exhibit)
		history, err := s.conservationHistory(c, exhibit.ID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "保存状態履歴の取得に失敗しました")
			log.Printf("保存状態履歴取得エラー: %v", err)
			return
		}
		resp.ConservationHistory = history

		c.JSON(http.StatusOK, gin.H{"success": true, "bit": resp})
	}
}

// handleGetExhibitWithEmployee は担当職員情報付きの展示品詳細取得を
// 処理するハンドラを返す。担当が未割り当ての場合、employeeはnullになる。
func (s *Server) handleGetExhibitWithEmployee() gin.HandlerFunc {
	return func(c *gin.Context) {
		exhibit, err := s.queries.GetExhibitByID(c.Request.Context(), c.Param("id"))
		if errors.Is(err, sql.ErrNoRows) {
			respondError(c, http.StatusNotFound, "展示品が見つかりません")
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, "展示品の取得に失敗しました")
			log.Printf("展示品取得エラー: %v", err)
			return
		}

		var employee *employeeResponse
		if exhibit.AssignedEmployeeID.Valid {
			e, err := s.queries.GetEmployeeByID(c.Request.Context(), exhibit.AssignedEmployeeID.String)
			if err != nil && !errors.Is(err, sql.ErrNoRows) {
				respondError(c, http.StatusInternalServerError, "担当職員の取得に失敗しました")
				log.Printf("職員取得エラー: %v", err)
				return
			}
			if err == nil {
				r := toEmployeeResponse(e)
				employee = &r
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"bit":      toExhibitResponse(exhibit),
			"employee": employee,
		})
	}
}

// handleCreateExhibit は展示品の登録を処理するハンドラを返す。
// ログインが必要だが、adminロールは要求しない。担当職員の指定は必須。
func (s *Server) handleCreateExhibit() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req exhibitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "名称とカテゴリは必須です")
			return
		}
		if req.AssignedEmployee == "" {
			respondError(c, http.StatusBadRequest, "担当職員を指定してください")
			return
		}

		if _, err := s.queries.GetEmployeeByID(c.Request.Context(), req.AssignedEmployee); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respondError(c, http.StatusBadRequest, "指定された担当職員が存在しません")
				return
			}
			respondError(c, http.StatusInternalServerError, "担当職員の確認に失敗しました")
			log.Printf("職員取得エラー: %v", err)
			return
		}

		status := req.Status
		if status == "" {
			status = "exhibited"
		}

		exhibitID := uuid.New().String()
		now := time.Now().UTC()
		if err := s.queries.CreateExhibit(c.Request.Context(), museumdb.CreateExhibitParams{
			ID:                 exhibitID,
			Name:               req.Name,
			Description:        req.Description,
			Category:           req.Category,
			Location:           jsonOr(req.Location, "{}"),
			Status:             status,
			ConservationState:  "good",
			ImageUrl:           req.ImageURL,
			Year:               req.Year,
			Materials:          jsonOr(req.Materials, "[]"),
			Dimensions:         jsonOr(req.Dimensions, "{}"),
			Value:              req.Value,
			AssignedEmployeeID: sql.NullString{String: req.AssignedEmployee, Valid: true},
			CreatedAt:          now,
			UpdatedAt:          now,
		}); err != nil {
			respondError(c, http.StatusInternalServerError, "展示品の登録に失敗しました")
			log.Printf("展示品登録エラー: %v", err)
			return
		}

		s.recordEvent(c, exhibitID, event.AggregateTypeExhibit, event.TypeExhibitCreated, middleware.GetUserID(c), event.ExhibitChangedData{
			Name:     req.Name,
			Category: req.Category,
		})

		created, err := s.queries.GetExhibitByID(c.Request.Context(), exhibitID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "登録した展示品の取得に失敗しました")
			log.Printf("展示品取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"bit":     toExhibitResponse(created),
			"message": "展示品を登録しました",
		})
	}
}

// handleUpdateExhibit は展示品の更新を処理するハンドラを返す。admin限定。
// 保存状態はこのエンドポイントでは変更できない。PATCHを使うこと。
func (s *Server) handleUpdateExhibit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}

		exhibitID := c.Param("id")
		current, err := s.queries.GetExhibitByID(c.Request.Context(), exhibitID)
		if errors.Is(err, sql.ErrNoRows) {
			respondError(c, http.StatusNotFound, "展示品が見つかりません")
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, "展示品の取得に失敗しました")
			log.Printf("展示品取得エラー: %v", err)
			return
		}

		var req exhibitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "名称とカテゴリは必須です")
			return
		}

		assigned := current.AssignedEmployeeID
		if req.AssignedEmployee != "" {
			assigned = sql.NullString{String: req.AssignedEmployee, Valid: true}
		}
		status := req.Status
		if status == "" {
			status = current.Status
		}

		if err := s.queries.UpdateExhibit(c.Request.Context(), museumdb.UpdateExhibitParams{
			Name:               req.Name,
			Description:        req.Description,
			Category:           req.Category,
			Location:           jsonOr(req.Location, current.Location),
			Status:             status,
			ImageUrl:           req.ImageURL,
			Year:               req.Year,
			Materials:          jsonOr(req.Materials, current.Materials),
			Dimensions:         jsonOr(req.Dimensions, current.Dimensions),
			Value:              req.Value,
			AssignedEmployeeID: assigned,
			UpdatedAt:          time.Now().UTC(),
			ID:                 exhibitID,
		}); err != nil {
			respondError(c, http.StatusInternalServerError, "展示品の更新に失敗しました")
			log.Printf("展示品更新エラー: %v", err)
			return
		}

		s.recordEvent(c, exhibitID, event.AggregateTypeExhibit, event.TypeExhibitUpdated, middleware.GetUserID(c), event.ExhibitChangedData{
			Name:     req.Name,
			Category: req.Category,
		})

		updated, err := s.queries.GetExhibitByID(c.Request.Context(), exhibitID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "更新した展示品の取得に失敗しました")
			log.Printf("展示品取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"bit":     toExhibitResponse(updated),
			"message": "展示品を更新しました",
		})
	}
}

// handleDeleteExhibit は展示品の削除を処理するハンドラを返す。admin限定。
// 存在しない展示品へのリクエストはロールに関係なく404を返す。
func (s *Server) handleDeleteExhibit() gin.HandlerFunc {
	return func(c *gin.Context) {
		exhibitID := c.Param("id")
		exhibit, err := s.queries.GetExhibitByID(c.Request.Context(), exhibitID)
		if errors.Is(err, sql.ErrNoRows) {
			respondError(c, http.StatusNotFound, "展示品が見つかりません")
			return
		}
		if err != nil {
			respondError(c, http.StatusInternalServerError, "展示品の取得に失敗しました")
			log.Printf("展示品取得エラー: %v", err)
			return
		}

		if !requireAdmin(c) {
			return
		}

		if err := s.queries.DeleteExhibit(c.Request.Context(), exhibitID); err != nil {
			respondError(c, http.StatusInternalServerError, "展示品の削除に失敗しました")
			log.Printf("展示品削除エラー: %v", err)
			return
		}

		s.recordEvent(c, exhibitID, event.AggregateTypeExhibit, event.TypeExhibitDeleted, middleware.GetUserID(c), event.ExhibitChangedData{
			Name:     exhibit.Name,
			Category: exhibit.Category,
		})

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"bit":     toExhibitResponse(exhibit),
			"message": "展示品を削除しました",
		})
	}
}

// handleUpdateConservation は保存状態の更新を処理するハンドラを返す。admin限定。
// 展示品の現在の状態を上書きし、履歴に追記する。履歴は変更されない。
func (s *Server) handleUpdateConservation() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}

		exhibitID := c.Param("id")
		if _, err := s.queries.GetExhibitByID(c.Request.Context(), exhibitID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				respondError(c, http.StatusNotFound, "展示品が見つかりません")
				return
			}
			respondError(c, http.StatusInternalServerError, "展示品の取得に失敗しました")
			log.Printf("展示品取得エラー: %v", err)
			return
		}

		var req conservationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "保存状態を指定してください")
			return
		}
		if _, ok := conservationStates[req.ConservationState]; !ok {
			respondError(c, http.StatusBadRequest, "保存状態はexcellent / good / fair / poor / criticalのいずれかを指定してください")
			return
		}

		now := time.Now().UTC()
		if err := s.queries.UpdateExhibitConservation(c.Request.Context(), museumdb.UpdateExhibitConservationParams{
			ConservationState: req.ConservationState,
			UpdatedAt:         now,
			ID:                exhibitID,
		}); err != nil {
			respondError(c, http.StatusInternalServerError, "保存状態の更新に失敗しました")
			log.Printf("保存状態更新エラー: %v", err)
			return
		}

		if err := s.queries.CreateConservationNote(c.Request.Context(), museumdb.CreateConservationNoteParams{
			ID:        uuid.New().String(),
			ExhibitID: exhibitID,
			State:     req.ConservationState,
			Notes:     req.Notes,
			UpdatedBy: middleware.GetUserID(c),
			UpdatedAt: now,
		}); err != nil {
			respondError(c, http.StatusInternalServerError, "保存状態履歴の記録に失敗しました")
			log.Printf("保存状態履歴記録エラー: %v", err)
			return
		}

		s.recordEvent(c, exhibitID, event.AggregateTypeExhibit, event.TypeConservationUpdated, middleware.GetUserID(c), event.ConservationUpdatedData{
			State: req.ConservationState,
			Notes: req.Notes,
		})

		updated, err := s.queries.GetExhibitByID(c.Request.Context(), exhibitID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "更新した展示品の取得に失敗しました")
			log.Printf("展示品取得エラー: %v", err)
			return
		}

		resp := toExhibitResponse(updated)
		history, err := s.conservationHistory(c, exhibitID)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "保存状態履歴の取得に失敗しました")
			log.Printf("保存状態履歴取得エラー: %v", err)
			return
		}
		resp.ConservationHistory = history

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"bit":     resp,
			"message": "保存状態を更新しました",
		})
	}
}

// conservationHistory は展示品の保存状態履歴を古い順で取得する。
func (s *Server) conservationHistory(c *gin.Context, exhibitID string) ([]conservationNoteResponse, error) {
	notes, err := s.queries.ListConservationNotesByExhibitID(c.Request.Context(), exhibitID)
	if err != nil {
		return nil, err
	}

	history := make([]conservationNoteResponse, 0, len(notes))
	for _, n := range notes {
		history = append(history, conservationNoteResponse{
			State:     n.State,
			Notes:     n.Notes,
			UpdatedBy: n.UpdatedBy,
			UpdatedAt: formatTime(n.UpdatedAt),
		})
	}
	return history, nil
}
