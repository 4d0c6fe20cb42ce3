package bot

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type RankingSI interface {
	Ranking(ctx context.Context) (string, error)
}

type RankingT struct {
	bot     BotSender
	service RankingSI
	timeout time.Duration
	log     *zap.Logger
}

func NewRankingTAPI(bot BotSender, service RankingSI, timeout time.Duration, log *zap.Logger) *RankingT {
	return &RankingT{
		bot:     bot,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (t *RankingT) sendRanking(chatID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	ranking, err := t.service.Ranking(ctx)
	if err != nil {
		t.log.Warn("failed to get ranking", zap.Error(err))
		msg := tgbotapi.NewMessage(chatID, "❌ Could not load the ranking. Try again later.")
		sendMessage(t.bot, t.log, msg)
		return
	}

	msg := tgbotapi.NewMessage(chatID, ranking)
	msg.ParseMode = tgbotapi.ModeMarkdown

	sendMessage(t.bot, t.log, msg)
}
