package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DanRulev/codehero.git/internal/models"
	"github.com/jmoiron/sqlx"
)

type StatsR struct {
	db   QueryI
	bind int
}

func NewStatsRepository(db QueryI, bind int) *StatsR {
	return &StatsR{
		db:   db,
		bind: bind,
	}
}

// UserStats returns zero stats when the user has no row yet.
func (s *StatsR) UserStats(ctx context.Context, userID int64) (models.UserStats, error) {
	query := sqlx.Rebind(s.bind, `
		SELECT user_id, total_points, current_streak, longest_streak, lessons_completed, last_activity
		FROM user_stats
		WHERE user_id = ?
	`)

	var stats models.UserStats
	err := s.db.GetContext(ctx, &stats, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserStats{UserID: userID}, nil
		}
		return models.UserStats{}, fmt.Errorf("failed to get stats for user %d: %w", userID, err)
	}

	return stats, nil
}

func (s *StatsR) UpsertStats(ctx context.Context, stats models.UserStats) error {
	query := sqlx.Rebind(s.bind, `
		INSERT INTO user_stats (user_id, total_points, current_streak, longest_streak, lessons_completed, last_activity)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id)
		DO UPDATE SET
			total_points = EXCLUDED.total_points,
			current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak,
			lessons_completed = EXCLUDED.lessons_completed,
			last_activity = EXCLUDED.last_activity
	`)

	_, err := s.db.ExecContext(ctx, query,
		stats.UserID, stats.TotalPoints, stats.CurrentStreak, stats.LongestStreak, stats.LessonsCompleted, stats.LastActivity)
	if err != nil {
		return fmt.Errorf("failed to upsert stats for user %d: %w", stats.UserID, err)
	}

	return nil
}

func (s *StatsR) TopStats(ctx context.Context, limit int) ([]models.UserStats, error) {
	query := sqlx.Rebind(s.bind, `
		SELECT user_id, total_points, current_streak, longest_streak, lessons_completed, last_activity
		FROM user_stats
		ORDER BY total_points DESC, user_id ASC
		LIMIT ?
	`)

	stats := make([]models.UserStats, 0, limit)
	err := s.db.SelectContext(ctx, &stats, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top stats: %w", err)
	}

	return stats, nil
}
