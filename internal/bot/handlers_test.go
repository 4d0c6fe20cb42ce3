package bot

import (
	"testing"
	"time"

	mock_bot "github.com/DanRulev/codehero.git/internal/bot/mock"
	"github.com/DanRulev/codehero.git/internal/models"
	"github.com/DanRulev/codehero.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTelegramAPIMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI, *mock_bot.MockBot)) (*TelegramAPI, *mock_bot.MockBot) {
	mockService := mock_bot.NewMockServiceI(ctrl)
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService, mockBot)
	}

	return newTelegramAPI(nil, mockBot, time.Second, mockService, cache.NewCache(), zap.NewNop()), mockBot
}

func commandMessage(command string, from *tgbotapi.User) *tgbotapi.Message {
	return &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: testChatID},
		From: from,
		Text: "/" + command,
		Entities: []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: len(command) + 1},
		},
	}
}

func TestTelegramAPI_handleUpdate(t *testing.T) {
	t.Parallel()

	user := &tgbotapi.User{ID: testUserID, UserName: "neo", FirstName: "Thomas", LastName: "Anderson"}

	tests := []struct {
		name       string
		update     tgbotapi.Update
		f          func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		assertFunc func(*testing.T, *mock_bot.MockBot)
	}{
		{
			name:   "start registers the profile and shows the menu",
			update: tgbotapi.Update{Message: commandMessage("start", user)},
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().RegisterProfile(gomock.Any(), models.Profile{
					ID:       testUserID,
					Username: "neo",
					FullName: "Thomas Anderson",
				}).Return(nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				msg := mb.SentMessages[0].(tgbotapi.MessageConfig)
				assert.Contains(t, msg.Text, "Welcome to CodeHero")

				keyboard, ok := msg.ReplyMarkup.(tgbotapi.ReplyKeyboardMarkup)
				require.True(t, ok)
				assert.Equal(t, ButtonLanguages, keyboard.Keyboard[0][0].Text)
				assert.Equal(t, ButtonProfile, keyboard.Keyboard[1][0].Text)
				assert.Equal(t, ButtonRanking, keyboard.Keyboard[1][1].Text)
				assert.Equal(t, ButtonHelp, keyboard.Keyboard[2][0].Text)
			},
		},
		{
			name:   "start still shows the menu when registration fails",
			update: tgbotapi.Update{Message: commandMessage("start", user)},
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().RegisterProfile(gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				assert.Contains(t, mb.SentMessages[0].(tgbotapi.MessageConfig).Text, "Welcome to CodeHero")
			},
		},
		{
			name:   "help command",
			update: tgbotapi.Update{Message: commandMessage("help", user)},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				assert.Contains(t, mb.SentMessages[0].(tgbotapi.MessageConfig).Text, "/start - open the main menu")
			},
		},
		{
			name:   "unknown command",
			update: tgbotapi.Update{Message: commandMessage("foo", user)},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				assert.Equal(t, "Unknown command. Use /start", mb.SentMessages[0].(tgbotapi.MessageConfig).Text)
			},
		},
		{
			name: "languages button",
			update: tgbotapi.Update{Message: &tgbotapi.Message{
				Chat: &tgbotapi.Chat{ID: testChatID},
				From: user,
				Text: ButtonLanguages,
			}},
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Languages().Return([]models.Language{{ID: "html", Name: "HTML"}})
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				assert.Equal(t, "📚 *Choose a language*", mb.SentMessages[0].(tgbotapi.MessageConfig).Text)
			},
		},
		{
			name: "profile button",
			update: tgbotapi.Update{Message: &tgbotapi.Message{
				Chat: &tgbotapi.Chat{ID: testChatID},
				From: user,
				Text: ButtonProfile,
			}},
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().ProfileStats(gomock.Any(), testUserID).Return("👤 *Your profile*", nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				assert.Equal(t, "👤 *Your profile*", mb.SentMessages[0].(tgbotapi.MessageConfig).Text)
			},
		},
		{
			name: "ranking button",
			update: tgbotapi.Update{Message: &tgbotapi.Message{
				Chat: &tgbotapi.Chat{ID: testChatID},
				From: user,
				Text: ButtonRanking,
			}},
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Ranking(gomock.Any()).Return("🏆 *CodeHero ranking*", nil)
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				assert.Equal(t, "🏆 *CodeHero ranking*", mb.SentMessages[0].(tgbotapi.MessageConfig).Text)
			},
		},
		{
			name: "message without sender is dropped",
			update: tgbotapi.Update{Message: &tgbotapi.Message{
				Chat: &tgbotapi.Chat{ID: testChatID},
				Text: ButtonProfile,
			}},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Empty(t, mb.SentMessages)
			},
		},
		{
			name: "free text",
			update: tgbotapi.Update{Message: &tgbotapi.Message{
				Chat: &tgbotapi.Chat{ID: testChatID},
				From: user,
				Text: "hello?",
			}},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				assert.Equal(t, "I did not get that. Use the buttons below.", mb.SentMessages[0].(tgbotapi.MessageConfig).Text)
			},
		},
		{
			name:   "callback is answered and routed",
			update: tgbotapi.Update{CallbackQuery: callbackQuery(callbackLanguages)},
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().Languages().Return([]models.Language{{ID: "html", Name: "HTML"}})
			},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.Requests, 1)
				_, ok := mb.Requests[0].(tgbotapi.CallbackConfig)
				assert.True(t, ok)
				require.Len(t, mb.SentMessages, 1)
			},
		},
		{
			name:   "main menu callback",
			update: tgbotapi.Update{CallbackQuery: callbackQuery(callbackMainMenu)},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				require.Len(t, mb.SentMessages, 1)
				assert.Equal(t, "🏠 Main menu:", mb.SentMessages[0].(tgbotapi.MessageConfig).Text)
			},
		},
		{
			name:   "unknown callback is only answered",
			update: tgbotapi.Update{CallbackQuery: callbackQuery("quiz_right")},
			assertFunc: func(t *testing.T, mb *mock_bot.MockBot) {
				assert.Len(t, mb.Requests, 1)
				assert.Empty(t, mb.SentMessages)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api, mb := newTelegramAPIMock(t, ctrl, tt.f)

			mock_bot.ClearSentMessages(mb)
			api.handleUpdate(tt.update)

			tt.assertFunc(t, mb)
		})
	}
}
