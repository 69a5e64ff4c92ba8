package museum

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/palinv/museum/pkg/migration"
)

// migrationsFS はスキーママイグレーションのSQLファイル。
// ファイル名は NNNNNN_name.up.sql 形式で、番号順に適用される。
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

// initSchema はSQLiteデータベースに未適用のマイグレーションを適用する。
func initSchema(db *sql.DB) error {
	if err := migration.Run(db, migrationsFS, "migrations"); err != nil {
		return fmt.Errorf("スキーマ初期化に失敗: %w", err)
	}
	return nil
}
