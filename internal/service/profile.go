package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/codehero.git/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const recentProgressLimit = 5

type ProfileRI interface {
	UpsertProfile(ctx context.Context, profile models.Profile) error
	ProfilesByIDs(ctx context.Context, ids []int64) ([]models.Profile, error)
}

type ProfileS struct {
	catalog  CatalogI
	progress ProgressRI
	stats    StatsRI
	profiles ProfileRI
	log      *zap.Logger
	now      func() time.Time
}

func NewProfileService(catalog CatalogI, progress ProgressRI, stats StatsRI, profiles ProfileRI, log *zap.Logger) *ProfileS {
	return &ProfileS{
		catalog:  catalog,
		progress: progress,
		stats:    stats,
		profiles: profiles,
		log:      log,
		now:      time.Now,
	}
}

func (p *ProfileS) RegisterProfile(ctx context.Context, profile models.Profile) error {
	if profile.ID == 0 {
		return ErrUnauthenticated
	}

	err := p.profiles.UpsertProfile(ctx, profile)
	if err != nil {
		p.log.Warn("failed to register profile", zap.Int64("user_id", profile.ID), zap.Error(err))
		return err
	}

	return nil
}

func (p *ProfileS) Profile(ctx context.Context, userID int64) (models.ProfileSummary, error) {
	stats, err := p.stats.UserStats(ctx, userID)
	if err != nil {
		p.log.Warn("failed to get user stats", zap.Int64("user_id", userID), zap.Error(err))
		return models.ProfileSummary{}, err
	}

	recent, err := p.progress.RecentProgress(ctx, userID, recentProgressLimit)
	if err != nil {
		p.log.Warn("failed to get recent progress", zap.Int64("user_id", userID), zap.Error(err))
		return models.ProfileSummary{}, err
	}

	stats.CurrentStreak = activeStreak(stats, p.now())

	return models.ProfileSummary{
		Stats:  stats,
		Recent: recent,
	}, nil
}

func (p *ProfileS) ProfileStats(ctx context.Context, userID int64) (string, error) {
	summary, err := p.Profile(ctx, userID)
	if err != nil {
		return "", err
	}

	return p.profileFormat(summary), nil
}

func (p *ProfileS) profileFormat(summary models.ProfileSummary) string {
	var sb strings.Builder

	sb.WriteString("👤 *Your profile*\n\n")

	sb.WriteString("💎 *Total points*: ")
	sb.WriteString(formatPoints(summary.Stats.TotalPoints))
	sb.WriteString("\n")

	sb.WriteString("🔥 *Current streak*: ")
	sb.WriteString(strconv.Itoa(summary.Stats.CurrentStreak))
	sb.WriteString(" days\n")

	sb.WriteString("🎯 *Longest streak*: ")
	sb.WriteString(strconv.Itoa(summary.Stats.LongestStreak))
	sb.WriteString(" days\n")

	sb.WriteString("📖 *Lessons completed*: ")
	sb.WriteString(strconv.Itoa(summary.Stats.LessonsCompleted))
	sb.WriteString("\n\n")

	sb.WriteString("🕑 *Recent progress*\n")
	if len(summary.Recent) == 0 {
		sb.WriteString("You have not completed any lesson yet. Open 📚 Languages to start learning!")
		return sb.String()
	}

	for _, r := range summary.Recent {
		sb.WriteString("• ")
		sb.WriteString(tgbotapi.EscapeText(tgbotapi.ModeMarkdown, p.languageLabel(r.Language)))
		sb.WriteString(" - Lesson ")
		sb.WriteString(strconv.Itoa(r.LessonID))
		sb.WriteString(": ")
		sb.WriteString(strconv.Itoa(r.Score))
		sb.WriteString("/")
		sb.WriteString(strconv.Itoa(r.TotalQuestions))
		sb.WriteString(" (")
		sb.WriteString(strconv.Itoa(r.Percentage()))
		sb.WriteString("%), ")
		sb.WriteString(r.CompletedAt.UTC().Format("02/01/2006 15:04"))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func (p *ProfileS) languageLabel(id string) string {
	lang, err := p.catalog.Language(id)
	if err != nil {
		return id
	}
	return lang.Name
}
