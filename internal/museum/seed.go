package museum

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	museumdb "github.com/palinv/museum/internal/museum/db"
)

// seedEmployee はデモ用の職員データ。
type seedEmployee struct {
	name       string
	position   string
	email      string
	phone      string
	department string
}

// seedExhibit はデモ用の展示品データ。
type seedExhibit struct {
	name        string
	description string
	category    string
	location    string
	year        int64
	materials   string
	dimensions  string
	value       string
}

// seedTour はデモ用のツアーデータ。
type seedTour struct {
	name        string
	description string
	duration    int64
	price       float64
	schedule    string
}

// handleSeed はデモデータの投入を処理するハンドラを返す。admin限定。
// 職員・展示品・ツアーのうち空のテーブルにのみデータを投入する。
// すでにデータがあるテーブルは変更しない。
func (s *Server) handleSeed() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requireAdmin(c) {
			return
		}

		ctx := c.Request.Context()
		seeded := gin.H{}

		employeeIDs, n, err := s.seedEmployees(ctx)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "デモデータの投入に失敗しました")
			log.Printf("職員シードエラー: %v", err)
			return
		}
		seeded["employees"] = n

		n, err = s.seedExhibits(ctx, employeeIDs)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "デモデータの投入に失敗しました")
			log.Printf("展示品シードエラー: %v", err)
			return
		}
		seeded["bits"] = n

		n, err = s.seedTours(ctx)
		if err != nil {
			respondError(c, http.StatusInternalServerError, "デモデータの投入に失敗しました")
			log.Printf("ツアーシードエラー: %v", err)
			return
		}
		seeded["tours"] = n

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"seeded":  seeded,
			"message": "デモデータを投入しました",
		})
	}
}

// seedEmployees はデモ用の職員を投入し、展示品の担当割り当てに使う
// 職員IDの一覧を返す。すでに職員が存在する場合は投入せず、既存の
// 在籍職員のIDを返す。
func (s *Server) seedEmployees(ctx context.Context) ([]string, int, error) {
	count, err := s.queries.CountEmployees(ctx)
	if err != nil {
		return nil, 0, err
	}
	if count > 0 {
		existing, err := s.queries.ListActiveEmployees(ctx)
		if err != nil {
			return nil, 0, err
		}
		ids := make([]string, 0, len(existing))
		for _, e := range existing {
			ids = append(ids, e.ID)
		}
		return ids, 0, nil
	}

	employees := []seedEmployee{
		{name: "佐藤 美咲", position: "主任学芸員", email: "sato@museum.example", phone: "03-0000-0001", department: "学芸部"},
		{name: "田中 健一", position: "保存修復士", email: "tanaka@museum.example", phone: "03-0000-0002", department: "保存科学部"},
		{name: "鈴木 陽子", position: "教育普及担当", email: "suzuki@museum.example", phone: "03-0000-0003", department: "教育普及部"},
	}

	ids := make([]string, 0, len(employees))
	for _, e := range employees {
		id := uuid.New().String()
		if err := s.queries.CreateEmployee(ctx, museumdb.CreateEmployeeParams{
			ID:         id,
			Name:       e.name,
			Position:   e.position,
			Email:      e.email,
			Phone:      e.phone,
			Department: e.department,
			HireDate:   time.Now().UTC().AddDate(-3, 0, 0),
		}); err != nil {
			return nil, 0, fmt.Errorf("職員 %s の作成に失敗: %w", e.name, err)
		}
		ids = append(ids, id)
	}
	return ids, len(ids), nil
}

// seedExhibits はデモ用の展示品を投入する。展示品がすでに存在する場合は
// 何もしない。担当職員はemployeeIDsから順番に割り当てる。
func (s *Server) seedExhibits(ctx context.Context, employeeIDs []string) (int, error) {
	count, err := s.queries.CountExhibits(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 || len(employeeIDs) == 0 {
		return 0, nil
	}

	exhibits := []seedExhibit{
		{
			name:        "縄文土器",
			description: "縄目文様が施された深鉢形土器",
			category:    "考古",
			location:    `{"building":"本館","floor":1,"room":"第1展示室"}`,
			year:        -3000,
			materials:   `["土"]`,
			dimensions:  `{"height":45,"diameter":30,"unit":"cm"}`,
			value:       "評価不能",
		},
		{
			name:        "蒔絵硯箱",
			description: "金蒔絵による秋草文様の硯箱",
			category:    "工芸",
			location:    `{"building":"本館","floor":2,"room":"第3展示室"}`,
			year:        1603,
			materials:   `["木","漆","金粉"]`,
			dimensions:  `{"width":22,"depth":20,"height":5,"unit":"cm"}`,
			value:       "8000万円",
		},
		{
			name:        "山水図屏風",
			description: "六曲一双の水墨山水図",
			category:    "絵画",
			location:    `{"building":"別館","floor":1,"room":"企画展示室"}`,
			year:        1495,
			materials:   `["紙","墨"]`,
			dimensions:  `{"width":360,"height":170,"unit":"cm"}`,
			value:       "2億円",
		},
	}

	now := time.Now().UTC()
	for i, e := range exhibits {
		if err := s.queries.CreateExhibit(ctx, museumdb.CreateExhibitParams{
			ID:                 uuid.New().String(),
			Name:               e.name,
			Description:        e.description,
			Category:           e.category,
			Location:           e.location,
			Status:             "exhibited",
			ConservationState:  "good",
			Year:               e.year,
			Materials:          e.materials,
			Dimensions:         e.dimensions,
			Value:              e.value,
			AssignedEmployeeID: sql.NullString{String: employeeIDs[i%len(employeeIDs)], Valid: true},
			CreatedAt:          now,
			UpdatedAt:          now,
		}); err != nil {
			return 0, fmt.Errorf("展示品 %s の作成に失敗: %w", e.name, err)
		}
	}
	return len(exhibits), nil
}

// seedTours はデモ用のツアーを投入する。ツアーがすでに存在する場合は何もしない。
func (s *Server) seedTours(ctx context.Context) (int, error) {
	count, err := s.queries.CountTours(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	tours := []seedTour{
		{
			name:        "常設展ハイライトツアー",
			description: "学芸員が常設展の見どころを1時間で案内します",
			duration:    60,
			price:       500,
			schedule:    `["10:00","14:00"]`,
		},
		{
			name:        "バックヤードツアー",
			description: "収蔵庫と修復室を見学する特別ツアー",
			duration:    90,
			price:       1500,
			schedule:    `["13:00"]`,
		},
	}

	now := time.Now().UTC()
	for _, t := range tours {
		if err := s.queries.CreateTour(ctx, museumdb.CreateTourParams{
			ID:          uuid.New().String(),
			Name:        t.name,
			Description: t.description,
			Duration:    t.duration,
			Price:       t.price,
			Schedule:    t.schedule,
			CreatedAt:   now,
			UpdatedAt:   now,
		}); err != nil {
			return 0, fmt.Errorf("ツアー %s の作成に失敗: %w", t.name, err)
		}
	}
	return len(tours), nil
}
