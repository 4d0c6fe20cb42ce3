package bot

//go:generate mockgen -destination=mock/service_mock.go -package=mock_bot . ServiceI

import (
	"context"
	"time"

	"github.com/DanRulev/codehero.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type ServiceI interface {
	LessonSI
	ProfileSI
	RankingSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type TelegramAPI struct {
	api     *tgbotapi.BotAPI
	bot     BotSender
	log     *zap.Logger
	lesson  *LessonT
	profile *ProfileT
	ranking *RankingT
}

func NewTelegramAPI(botToken, env string, timeout time.Duration, service ServiceI, cache *cache.Cache, log *zap.Logger) (*TelegramAPI, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	api.Debug = env == "development"

	log.Info("authorized on telegram", zap.String("account", api.Self.UserName))

	return newTelegramAPI(api, api, timeout, service, cache, log), nil
}

func newTelegramAPI(api *tgbotapi.BotAPI, bot BotSender, timeout time.Duration, service ServiceI, cache *cache.Cache, log *zap.Logger) *TelegramAPI {
	return &TelegramAPI{
		api:     api,
		bot:     bot,
		log:     log,
		lesson:  NewLessonTAPI(bot, cache, service, timeout, log),
		profile: NewProfileTAPI(bot, service, timeout, log),
		ranking: NewRankingTAPI(bot, service, timeout, log),
	}
}

// Start processes updates one at a time until ctx is cancelled.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			t.log.Info("stopped receiving updates")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(update)
		}
	}
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(update.Message)
		} else {
			t.handleMessage(update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}
