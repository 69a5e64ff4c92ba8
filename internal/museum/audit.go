package museum

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	museumdb "github.com/palinv/museum/internal/museum/db"
	"github.com/palinv/museum/pkg/event"
)

// recordEvent は監査イベントを記録する。記録はベストエフォートで、
// 失敗してもリクエスト本体の処理結果には影響させない。
func (s *Server) recordEvent(c *gin.Context, aggregateID string, aggregateType event.AggregateType, eventType event.Type, actorID string, data any) {
	ev, err := event.New(aggregateID, aggregateType, eventType, actorID, data)
	if err != nil {
		log.Printf("監査イベント生成エラー: %v", err)
		return
	}

	if err := s.queries.CreateAuditEvent(c.Request.Context(), museumdb.CreateAuditEventParams{
		ID:            ev.ID,
		AggregateID:   ev.AggregateID,
		AggregateType: string(ev.AggregateType),
		EventType:     string(ev.EventType),
		Data:          string(ev.Data),
		ActorID:       ev.ActorID,
		CreatedAt:     ev.CreatedAt,
	}); err != nil {
		log.Printf("監査イベント記録エラー: %v", err)
	}
}

// handleListEvents は監査イベント一覧取得を処理するハンドラを返す。
// admin限定。新しいイベントから順に最大limit件（既定100件）を返す。
func (s *Server) handleListEvents() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}

		limit := int64(100)
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || n < 1 || n > 1000 {
				respondError(c, http.StatusBadRequest, "limitは1から1000の整数で指定してください")
				return
			}
			limit = n
		}

		rows, err := s.queries.ListAuditEvents(c.Request.Context(), limit)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "監査イベントの取得に失敗しました")
			log.Printf("監査イベント取得エラー: %v", err)
			return
		}

		events := make([]event.Event, 0, len(rows))
		for _, r := range rows {
			events = append(events, event.Event{
				ID:            r.ID,
				AggregateID:   r.AggregateID,
				AggregateType: event.AggregateType(r.AggregateType),
				EventType:     event.Type(r.EventType),
				Data:          json.RawMessage(r.Data),
				ActorID:       r.ActorID,
				CreatedAt:     r.CreatedAt,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"count":   len(events),
			"events":  events,
		})
	}
}
