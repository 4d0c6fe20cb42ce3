package repository

import (
	"context"
	"fmt"

	"github.com/DanRulev/codehero.git/internal/models"
	"github.com/jmoiron/sqlx"
)

type ProgressR struct {
	db   QueryI
	bind int
}

func NewProgressRepository(db QueryI, bind int) *ProgressR {
	return &ProgressR{
		db:   db,
		bind: bind,
	}
}

func (p *ProgressR) UpsertProgress(ctx context.Context, record models.ProgressRecord) error {
	query := sqlx.Rebind(p.bind, `
		INSERT INTO user_progress (user_id, language, lesson_id, score, total_questions, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, language, lesson_id)
		DO UPDATE SET
			score = EXCLUDED.score,
			total_questions = EXCLUDED.total_questions,
			completed_at = EXCLUDED.completed_at
	`)

	_, err := p.db.ExecContext(ctx, query,
		record.UserID, record.Language, record.LessonID, record.Score, record.TotalQuestions, record.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert progress for user %d: %w", record.UserID, err)
	}

	return nil
}

func (p *ProgressR) RecentProgress(ctx context.Context, userID int64, limit int) ([]models.ProgressRecord, error) {
	query := sqlx.Rebind(p.bind, `
		SELECT user_id, language, lesson_id, score, total_questions, completed_at
		FROM user_progress
		WHERE user_id = ?
		ORDER BY completed_at DESC
		LIMIT ?
	`)

	records := make([]models.ProgressRecord, 0, limit)
	err := p.db.SelectContext(ctx, &records, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent progress for user %d: %w", userID, err)
	}

	return records, nil
}

func (p *ProgressR) ProgressAggregate(ctx context.Context, userID int64) (models.ProgressAggregate, error) {
	query := sqlx.Rebind(p.bind, `
		SELECT
			COUNT(*) AS lessons_completed,
			COALESCE(SUM(score), 0) AS correct_answers
		FROM user_progress
		WHERE user_id = ?
	`)

	var agg models.ProgressAggregate
	err := p.db.GetContext(ctx, &agg, query, userID)
	if err != nil {
		return models.ProgressAggregate{}, fmt.Errorf("failed to aggregate progress for user %d: %w", userID, err)
	}

	return agg, nil
}
