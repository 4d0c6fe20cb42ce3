package db

import (
	"context"
	"database/sql"
	"fmt"
)

type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Statements are written in the subset shared by postgres and sqlite.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id         BIGINT PRIMARY KEY,
		username   TEXT NOT NULL DEFAULT '',
		full_name  TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_progress (
		user_id         BIGINT NOT NULL,
		language        TEXT NOT NULL,
		lesson_id       INTEGER NOT NULL,
		score           INTEGER NOT NULL,
		total_questions INTEGER NOT NULL,
		completed_at    TIMESTAMP NOT NULL,
		PRIMARY KEY (user_id, language, lesson_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_user_progress_completed
		ON user_progress (user_id, completed_at)`,
	`CREATE TABLE IF NOT EXISTS user_stats (
		user_id           BIGINT PRIMARY KEY,
		total_points      INTEGER NOT NULL DEFAULT 0,
		current_streak    INTEGER NOT NULL DEFAULT 0,
		longest_streak    INTEGER NOT NULL DEFAULT 0,
		lessons_completed INTEGER NOT NULL DEFAULT 0,
		last_activity     TIMESTAMP NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_user_stats_points
		ON user_stats (total_points)`,
}

func Migrate(ctx context.Context, db Execer) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
