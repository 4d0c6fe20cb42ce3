package bot

import (
	"testing"
	"time"

	mock_bot "github.com/DanRulev/codehero.git/internal/bot/mock"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRankingT_sendRanking(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		f          func(*mock_bot.MockServiceI)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name: "success",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Ranking(gomock.Any()).Return("🏆 *CodeHero ranking*\n\n🥇 *neo*: 500 pts", nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Equal(t, "🏆 *CodeHero ranking*\n\n🥇 *neo*: 500 pts", msg.Text)
				assert.Equal(t, tgbotapi.ModeMarkdown, msg.ParseMode)
			},
		},
		{
			name: "service error",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Ranking(gomock.Any()).Return("", assert.AnError)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				assert.Equal(t, "❌ Could not load the ranking. Try again later.", mb.SentMessages[0].(tgbotapi.MessageConfig).Text)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := mock_bot.NewMockServiceI(ctrl)
			tt.f(mockService)
			mb := &mock_bot.MockBot{}

			NewRankingTAPI(mb, mockService, time.Second, zap.NewNop()).sendRanking(testChatID)

			tt.assertFunc(t, mb)
		})
	}
}
