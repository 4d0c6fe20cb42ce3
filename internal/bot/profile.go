package bot

import (
	"context"
	"strings"
	"time"

	"github.com/DanRulev/codehero.git/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type ProfileSI interface {
	RegisterProfile(ctx context.Context, profile models.Profile) error
	ProfileStats(ctx context.Context, userID int64) (string, error)
}

type ProfileT struct {
	bot     BotSender
	service ProfileSI
	timeout time.Duration
	log     *zap.Logger
}

func NewProfileTAPI(bot BotSender, service ProfileSI, timeout time.Duration, log *zap.Logger) *ProfileT {
	return &ProfileT{
		bot:     bot,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

// registerProfile stores the display data the ranking shows. Failures are
// logged only, the user can still learn.
func (t *ProfileT) registerProfile(user *tgbotapi.User) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	profile := models.Profile{
		ID:       user.ID,
		Username: user.UserName,
		FullName: strings.TrimSpace(user.FirstName + " " + user.LastName),
	}

	if err := t.service.RegisterProfile(ctx, profile); err != nil {
		t.log.Warn("failed to register profile", zap.Int64("user_id", user.ID), zap.Error(err))
	}
}

func (t *ProfileT) sendProfile(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	stats, err := t.service.ProfileStats(ctx, userID)
	if err != nil {
		t.log.Warn("failed to get profile", zap.Int64("user_id", userID), zap.Error(err))
		msg := tgbotapi.NewMessage(chatID, "❌ Could not load your profile. Try again later.")
		sendMessage(t.bot, t.log, msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, stats)
	msg.ParseMode = tgbotapi.ModeMarkdown

	sendMessage(t.bot, t.log, msg)
}
