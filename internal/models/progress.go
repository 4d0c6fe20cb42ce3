package models

import (
	"database/sql"
	"time"
)

type ProgressRecord struct {
	UserID         int64     `db:"user_id"`
	Language       string    `db:"language"`
	LessonID       int       `db:"lesson_id"`
	Score          int       `db:"score"`
	TotalQuestions int       `db:"total_questions"`
	CompletedAt    time.Time `db:"completed_at"`
}

// Percentage is the rounded share of correct answers, 0..100.
func (p ProgressRecord) Percentage() int {
	if p.TotalQuestions <= 0 {
		return 0
	}
	return (p.Score*200 + p.TotalQuestions) / (p.TotalQuestions * 2)
}

type ProgressAggregate struct {
	LessonsCompleted int `db:"lessons_completed"`
	CorrectAnswers   int `db:"correct_answers"`
}

type UserStats struct {
	UserID           int64        `db:"user_id"`
	TotalPoints      int          `db:"total_points"`
	CurrentStreak    int          `db:"current_streak"`
	LongestStreak    int          `db:"longest_streak"`
	LessonsCompleted int          `db:"lessons_completed"`
	LastActivity     sql.NullTime `db:"last_activity"`
}

type ProfileSummary struct {
	Stats  UserStats
	Recent []ProgressRecord
}
