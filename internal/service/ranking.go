package service

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/DanRulev/codehero.git/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	rankingLimit  = 10
	anonymousName = "Anonymous hero"
)

type RankingS struct {
	stats    StatsRI
	profiles ProfileRI
	log      *zap.Logger
	now      func() time.Time
}

func NewRankingService(stats StatsRI, profiles ProfileRI, log *zap.Logger) *RankingS {
	return &RankingS{
		stats:    stats,
		profiles: profiles,
		log:      log,
		now:      time.Now,
	}
}

// TopUsers joins the best stats rows with their profiles.
func (r *RankingS) TopUsers(ctx context.Context) ([]models.RankingEntry, error) {
	top, err := r.stats.TopStats(ctx, rankingLimit)
	if err != nil {
		r.log.Warn("failed to get top stats", zap.Error(err))
		return nil, err
	}

	if len(top) == 0 {
		return []models.RankingEntry{}, nil
	}

	ids := make([]int64, 0, len(top))
	for _, s := range top {
		ids = append(ids, s.UserID)
	}

	profiles, err := r.profiles.ProfilesByIDs(ctx, ids)
	if err != nil {
		r.log.Warn("failed to get ranking profiles", zap.Int("count", len(ids)), zap.Error(err))
		return nil, err
	}

	byID := make(map[int64]models.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	now := r.now()
	entries := make([]models.RankingEntry, 0, len(top))
	for _, s := range top {
		name := displayName(byID[s.UserID])
		entries = append(entries, models.RankingEntry{
			UserID:           s.UserID,
			DisplayName:      name,
			Initials:         initials(name),
			TotalPoints:      s.TotalPoints,
			CurrentStreak:    activeStreak(s, now),
			LongestStreak:    s.LongestStreak,
			LessonsCompleted: s.LessonsCompleted,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalPoints > entries[j].TotalPoints
	})
	for i := range entries {
		entries[i].Position = i + 1
	}

	return entries, nil
}

func (r *RankingS) Ranking(ctx context.Context) (string, error) {
	entries, err := r.TopUsers(ctx)
	if err != nil {
		return "", err
	}

	return rankingFormat(entries), nil
}

func rankingFormat(entries []models.RankingEntry) string {
	var sb strings.Builder

	sb.WriteString("🏆 *CodeHero ranking*\n\n")

	if len(entries) == 0 {
		sb.WriteString("Nobody is on the board yet. Be the first: complete lessons and earn points!")
		return sb.String()
	}

	for _, e := range entries {
		sb.WriteString(rankBadge(e.Position))
		sb.WriteString(" *")
		sb.WriteString(tgbotapi.EscapeText(tgbotapi.ModeMarkdown, e.DisplayName))
		sb.WriteString("*: ")
		sb.WriteString(formatPoints(e.TotalPoints))
		sb.WriteString(" pts\n")

		sb.WriteString("      🎯 ")
		sb.WriteString(strconv.Itoa(e.LessonsCompleted))
		sb.WriteString(" lessons · 🔥 ")
		sb.WriteString(strconv.Itoa(e.CurrentStreak))
		sb.WriteString(" days\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func rankBadge(position int) string {
	switch position {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return "#" + strconv.Itoa(position)
	}
}

func displayName(p models.Profile) string {
	if name := strings.TrimSpace(p.FullName); name != "" {
		return name
	}
	if name := strings.TrimSpace(p.Username); name != "" {
		return name
	}
	return anonymousName
}

func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			out = append(out, unicode.ToUpper(r))
			break
		}
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
