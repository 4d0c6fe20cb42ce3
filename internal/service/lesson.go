package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/codehero.git/internal/models"
	"github.com/DanRulev/codehero.git/internal/quiz"
	"go.uber.org/zap"
)

var (
	ErrUnauthenticated    = errors.New("user is not authenticated")
	ErrPersistenceFailure = errors.New("failed to save lesson progress")
)

type ProgressRI interface {
	UpsertProgress(ctx context.Context, record models.ProgressRecord) error
	RecentProgress(ctx context.Context, userID int64, limit int) ([]models.ProgressRecord, error)
	ProgressAggregate(ctx context.Context, userID int64) (models.ProgressAggregate, error)
}

type StatsRI interface {
	UserStats(ctx context.Context, userID int64) (models.UserStats, error)
	UpsertStats(ctx context.Context, stats models.UserStats) error
	TopStats(ctx context.Context, limit int) ([]models.UserStats, error)
}

type LessonS struct {
	catalog          CatalogI
	progress         ProgressRI
	stats            StatsRI
	pointsPerCorrect int
	log              *zap.Logger
}

func NewLessonService(catalog CatalogI, progress ProgressRI, stats StatsRI, pointsPerCorrect int, log *zap.Logger) *LessonS {
	return &LessonS{
		catalog:          catalog,
		progress:         progress,
		stats:            stats,
		pointsPerCorrect: pointsPerCorrect,
		log:              log,
	}
}

func (l *LessonS) Languages() []models.Language {
	return l.catalog.Languages()
}

func (l *LessonS) Language(id string) (models.Language, error) {
	lang, err := l.catalog.Language(id)
	if err != nil {
		l.log.Debug("language not available", zap.String("language", id), zap.Error(err))
		return models.Language{}, err
	}
	return lang, nil
}

// StartLesson opens a new quiz session for an authenticated user.
func (l *LessonS) StartLesson(userID int64, language string, lessonID int) (*quiz.Session, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}

	lesson, err := l.catalog.Lesson(language, lessonID)
	if err != nil {
		l.log.Warn("lesson not available", zap.String("language", language), zap.Int("lesson_id", lessonID), zap.Error(err))
		return nil, err
	}

	session, err := quiz.New(userID, language, lesson)
	if err != nil {
		return nil, fmt.Errorf("failed to start lesson %s/%d: %w", language, lessonID, err)
	}

	l.log.Debug("lesson started",
		zap.Int64("user_id", userID),
		zap.String("language", language),
		zap.Int("lesson_id", lessonID),
		zap.String("session_id", session.ID()),
	)

	return session, nil
}

// CompleteLesson stores the record, refreshes the user's stats and returns
// the change in total points. It is idempotent, so a failed call may be
// repeated with the same record.
func (l *LessonS) CompleteLesson(ctx context.Context, record models.ProgressRecord) (int, error) {
	if record.UserID == 0 {
		return 0, ErrUnauthenticated
	}

	if err := l.progress.UpsertProgress(ctx, record); err != nil {
		l.log.Error("failed to save progress", zap.Int64("user_id", record.UserID), zap.String("language", record.Language), zap.Int("lesson_id", record.LessonID), zap.Error(err))
		return 0, fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
	}

	gained, err := l.refreshStats(ctx, record.UserID, record.CompletedAt)
	if err != nil {
		l.log.Error("failed to refresh stats", zap.Int64("user_id", record.UserID), zap.Error(err))
		return 0, fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
	}

	return gained, nil
}

// refreshStats recomputes the stats row from the progress rows. A replayed
// lesson replaces its old score, so the gain may be zero or negative.
func (l *LessonS) refreshStats(ctx context.Context, userID int64, at time.Time) (int, error) {
	agg, err := l.progress.ProgressAggregate(ctx, userID)
	if err != nil {
		return 0, err
	}

	stats, err := l.stats.UserStats(ctx, userID)
	if err != nil {
		return 0, err
	}

	before := stats.TotalPoints

	stats.UserID = userID
	stats.LessonsCompleted = agg.LessonsCompleted
	stats.TotalPoints = agg.CorrectAnswers * l.pointsPerCorrect
	applyStreak(&stats, at)

	if err := l.stats.UpsertStats(ctx, stats); err != nil {
		return 0, err
	}

	return stats.TotalPoints - before, nil
}

// applyStreak counts consecutive UTC days with a completed lesson.
func applyStreak(stats *models.UserStats, at time.Time) {
	at = at.UTC()

	if !stats.LastActivity.Valid {
		stats.CurrentStreak = 1
	} else {
		last := stats.LastActivity.Time.UTC()
		days := dayNumber(at) - dayNumber(last)

		switch {
		case days < 0:
			// an older record arriving late does not move the streak
			return
		case days == 0:
			if stats.CurrentStreak < 1 {
				stats.CurrentStreak = 1
			}
		case days == 1:
			stats.CurrentStreak++
		default:
			stats.CurrentStreak = 1
		}
	}

	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	stats.LastActivity.Time = at
	stats.LastActivity.Valid = true
}

// activeStreak is the stored streak, or 0 once a whole UTC day has passed
// without a completed lesson.
func activeStreak(stats models.UserStats, now time.Time) int {
	if !stats.LastActivity.Valid {
		return 0
	}
	if dayNumber(now.UTC())-dayNumber(stats.LastActivity.Time.UTC()) > 1 {
		return 0
	}
	return stats.CurrentStreak
}

func dayNumber(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// NextLesson returns the lesson after lessonID in the same track.
func (l *LessonS) NextLesson(language string, lessonID int) (int, bool) {
	lang, err := l.catalog.Language(language)
	if err != nil {
		return 0, false
	}
	if lessonID < 1 || lessonID >= len(lang.Lessons) {
		return 0, false
	}
	return lessonID + 1, true
}

// CompletionSummary renders the result of a lesson and the change in total
// points that saving it caused.
func (l *LessonS) CompletionSummary(record models.ProgressRecord, gained int) string {
	var sb strings.Builder

	sb.WriteString("🏆 *Lesson complete!*\n\n")

	sb.WriteString("🎯 *Score*: ")
	sb.WriteString(strconv.Itoa(record.Score))
	sb.WriteString("/")
	sb.WriteString(strconv.Itoa(record.TotalQuestions))
	sb.WriteString(" (")
	sb.WriteString(strconv.Itoa(record.Percentage()))
	sb.WriteString("%)\n")

	sb.WriteString("💎 *Points*: ")
	if gained >= 0 {
		sb.WriteString("+")
	}
	sb.WriteString(formatPoints(gained))

	return sb.String()
}
