package museum

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	museumdb "github.com/palinv/museum/internal/museum/db"
)

// employeeResponse は職員のJSONレスポンス構造。
type employeeResponse struct {
	// ID は職員の一意識別子。
	ID string `json:"id"`
	// Name は職員の氏名。
	Name string `json:"name"`
	// Position は役職。
	Position string `json:"position"`
	// Email はメールアドレス。
	Email string `json:"email"`
	// Phone は電話番号。
	Phone string `json:"phone"`
	// Department は所属部門。
	Department string `json:"department"`
	// HireDate は入館日。
	HireDate string `json:"hireDate"`
}

// toEmployeeResponse はDB行をJSONレスポンスに変換する。
func toEmployeeResponse(e museumdb.Employee) employeeResponse {
	return employeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Position:   e.Position,
		Email:      e.Email,
		Phone:      e.Phone,
		Department: e.Department,
		HireDate:   formatTime(e.HireDate),
	}
}

// handleListEmployees は在籍中の職員一覧取得を処理するハンドラを返す。
// 氏名順に返す。認証不要。
func (s *Server) handleListEmployees() gin.HandlerFunc {
	return func(c *gin.Context) {
		employees, err := s.queries.ListActiveEmployees(c.Request.Context())
		if err != nil {
			respondError(c, http.StatusInternalServerError, "職員一覧の取得に失敗しました")
			log.Printf("職員一覧取得エラー: %v", err)
			return
		}

		responses := make([]employeeResponse, 0, len(employees))
		for _, e := range employees {
			responses = append(responses, toEmployeeResponse(e))
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"count":     len(responses),
			"employees": responses,
		})
	}
}
