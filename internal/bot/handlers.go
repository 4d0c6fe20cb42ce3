package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonLanguages = "📚 Languages"
	ButtonProfile   = "👤 Profile"
	ButtonRanking   = "🏆 Ranking"
	ButtonHelp      = "ℹ️ Help"
	ButtonMainMenu  = "🏠 Main menu"
)

const (
	callbackLanguages = "languages"
	callbackMainMenu  = "main_menu"

	prefixLanguage = "lang:"
	prefixLesson   = "lesson:"
	prefixAnswer   = "ans:"
	prefixNext     = "next:"
	prefixRetry    = "retry:"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /start")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	if message.From != nil {
		t.profile.registerProfile(message.From)
	}

	welcomeText := "👋 Welcome to CodeHero!\n\n" +
		"✨ Here you can:\n" +
		"• 📚 Take short lessons in JavaScript, Python, HTML and React\n" +
		"• 🎯 Answer quiz questions and earn points\n" +
		"• 🔥 Keep a daily learning streak\n" +
		"• 🏆 Climb the ranking\n\n" +
		"Press a button below to begin!"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) showMainMenu(message *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(message.Chat.ID, "🏠 Main menu:")
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonLanguages),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonProfile),
			tgbotapi.NewKeyboardButton(ButtonRanking),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📖 Commands:
/start - open the main menu
/help - this message

🎯 Buttons:
• "Languages" - pick a language and a lesson
• "Profile" - your points, streak and recent lessons
• "Ranking" - the top learners
• "Help" - this message

Every correct answer is worth points. Finish a lesson every day to keep your streak!
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Debug("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}
	userID := message.From.ID

	switch message.Text {
	case ButtonLanguages:
		t.lesson.sendLanguages(message.Chat.ID)
	case ButtonProfile:
		t.profile.sendProfile(message.Chat.ID, userID)
	case ButtonRanking:
		t.ranking.sendRanking(message.Chat.ID)
	case ButtonMainMenu:
		t.showMainMenu(message)
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "I did not get that. Use the buttons below.")
		sendMessage(t.bot, t.log, msg)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	if query.From == nil || query.Message == nil {
		t.log.Debug("callback without sender or message", zap.String("callback_id", query.ID))
		return
	}

	data := query.Data

	switch {
	case data == callbackLanguages:
		t.lesson.sendLanguages(query.Message.Chat.ID)

	case strings.HasPrefix(data, prefixRetry) ||
		strings.HasPrefix(data, prefixLanguage) ||
		strings.HasPrefix(data, prefixLesson) ||
		strings.HasPrefix(data, prefixAnswer) ||
		strings.HasPrefix(data, prefixNext):
		t.lesson.handleLessonCallbackQuery(query)

	case data == callbackMainMenu:
		t.showMainMenu(query.Message)

	default:
		t.log.Debug("unknown callback data", zap.String("data", data), zap.Int64("user_id", query.From.ID))
	}
}
