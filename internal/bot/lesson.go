package bot

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/codehero.git/internal/models"
	"github.com/DanRulev/codehero.git/internal/quiz"
	"github.com/DanRulev/codehero.git/internal/service"
	"github.com/DanRulev/codehero.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type LessonSI interface {
	Languages() []models.Language
	Language(id string) (models.Language, error)
	StartLesson(userID int64, language string, lessonID int) (*quiz.Session, error)
	CompleteLesson(ctx context.Context, record models.ProgressRecord) (int, error)
	NextLesson(language string, lessonID int) (int, bool)
	CompletionSummary(record models.ProgressRecord, gained int) string
}

type LessonT struct {
	bot     BotSender
	cache   *cache.Cache
	service LessonSI
	timeout time.Duration
	log     *zap.Logger
}

func NewLessonTAPI(bot BotSender, cache *cache.Cache, service LessonSI, timeout time.Duration, log *zap.Logger) *LessonT {
	return &LessonT{
		bot:     bot,
		cache:   cache,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (t *LessonT) sendLanguages(chatID int64) {
	languages := t.service.Languages()

	var buttons [][]tgbotapi.InlineKeyboardButton
	for _, lang := range languages {
		label := strings.TrimSpace(lang.Icon + " " + lang.Name)
		buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, prefixLanguage+lang.ID),
		))
	}

	text := "📚 *Choose a language*"
	if len(buttons) == 0 {
		text = "No lessons are available right now."
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if len(buttons) > 0 {
		keyboard := tgbotapi.NewInlineKeyboardMarkup(buttons...)
		msg.ReplyMarkup = &keyboard
	}

	sendMessage(t.bot, t.log, msg)
}

func (t *LessonT) handleLessonCallbackQuery(query *tgbotapi.CallbackQuery) {
	data := query.Data
	chatID := query.Message.Chat.ID
	userID := query.From.ID

	switch {
	case strings.HasPrefix(data, prefixLanguage):
		t.sendLessons(chatID, strings.TrimPrefix(data, prefixLanguage))

	case strings.HasPrefix(data, prefixLesson):
		language, lessonID, ok := parseLessonData(strings.TrimPrefix(data, prefixLesson))
		if !ok {
			t.log.Debug("malformed lesson callback", zap.String("data", data))
			return
		}
		t.startLesson(chatID, userID, language, lessonID)

	case strings.HasPrefix(data, prefixAnswer):
		sessionID, optionID, ok := strings.Cut(strings.TrimPrefix(data, prefixAnswer), ":")
		if !ok {
			t.log.Debug("malformed answer callback", zap.String("data", data))
			return
		}
		t.processAnswer(query, sessionID, optionID)

	case strings.HasPrefix(data, prefixNext):
		t.processNext(query, strings.TrimPrefix(data, prefixNext))

	case strings.HasPrefix(data, prefixRetry):
		language, lessonID, ok := parseLessonData(strings.TrimPrefix(data, prefixRetry))
		if !ok {
			t.log.Debug("malformed retry callback", zap.String("data", data))
			return
		}
		t.retrySave(query, language, lessonID)

	default:
		t.log.Debug("unknown lesson callback", zap.String("data", data))
	}
}

func (t *LessonT) sendLessons(chatID int64, languageID string) {
	lang, err := t.service.Language(languageID)
	if err != nil {
		t.log.Debug("language not found", zap.String("language", languageID), zap.Error(err))
		return
	}

	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(lang.Icon + " *" + tgbotapi.EscapeText(tgbotapi.ModeMarkdown, lang.Name) + "*"))
	sb.WriteString("\n")
	if lang.Description != "" {
		sb.WriteString(tgbotapi.EscapeText(tgbotapi.ModeMarkdown, lang.Description))
		sb.WriteString("\n")
	}
	sb.WriteString("\nChoose a lesson:")

	var buttons [][]tgbotapi.InlineKeyboardButton
	for _, lesson := range lang.Lessons {
		label := strconv.Itoa(lesson.ID) + ". " + lesson.Title
		buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, lessonData(lang.ID, lesson.ID)),
		))
	}
	buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⏪ Back", callbackLanguages),
	))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(buttons...)

	msg := tgbotapi.NewMessage(chatID, sb.String())
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, t.log, msg)
}

func (t *LessonT) startLesson(chatID, userID int64, language string, lessonID int) {
	session, err := t.service.StartLesson(userID, language, lessonID)
	if err != nil {
		t.log.Warn("failed to start lesson", zap.Int64("user_id", userID), zap.String("language", language), zap.Int("lesson_id", lessonID), zap.Error(err))
		msg := tgbotapi.NewMessage(chatID, "❌ This lesson is not available. Pick another one.")
		sendMessage(t.bot, t.log, msg)
		return
	}

	t.cache.SetSession(userID, session)
	t.sendQuestion(chatID, session)
}

func (t *LessonT) sendQuestion(chatID int64, session *quiz.Session) {
	question, index, err := session.Current()
	if err != nil {
		t.log.Debug("no current question", zap.String("session_id", session.ID()), zap.Error(err))
		return
	}

	var buttons [][]tgbotapi.InlineKeyboardButton
	for _, option := range question.Options {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option.Text, prefixAnswer+session.ID()+":"+option.ID),
		))
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(buttons...)

	msg := tgbotapi.NewMessage(chatID, questionText(session, question, index))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, t.log, msg)
}

func (t *LessonT) processAnswer(query *tgbotapi.CallbackQuery, sessionID, optionID string) {
	userID := query.From.ID

	session, exists := t.cache.GetSession(userID, sessionID)
	if !exists {
		t.log.Debug("stale lesson session", zap.Int64("user_id", userID), zap.String("session_id", sessionID))
		return
	}
	if session.Answered() {
		t.log.Debug("question already answered", zap.Int64("user_id", userID), zap.String("session_id", sessionID))
		return
	}

	question, index, err := session.Current()
	if err != nil {
		t.log.Debug("answer ignored", zap.Int64("user_id", userID), zap.Error(err))
		return
	}

	correct, err := session.SubmitAnswer(optionID)
	if err != nil {
		t.log.Debug("answer ignored", zap.Int64("user_id", userID), zap.String("option_id", optionID), zap.Error(err))
		return
	}

	var sb strings.Builder
	sb.WriteString(questionText(session, question, index))
	sb.WriteString("\n\n")
	if correct {
		sb.WriteString("✅ *Correct!*")
	} else {
		sb.WriteString("❌ *Incorrect.*")
		if right, ok := question.CorrectOption(); ok {
			sb.WriteString(" The right answer is: ")
			sb.WriteString(tgbotapi.EscapeText(tgbotapi.ModeMarkdown, right.Text))
		}
	}
	if question.Explanation != "" {
		sb.WriteString("\n\n💡 ")
		sb.WriteString(tgbotapi.EscapeText(tgbotapi.ModeMarkdown, question.Explanation))
	}

	label := "➡️ Next question"
	if index+1 == session.Len() {
		label = "🏁 Finish lesson"
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(label, prefixNext+session.ID()),
	))

	editMsg := tgbotapi.NewEditMessageTextAndMarkup(query.Message.Chat.ID, query.Message.MessageID, sb.String(), keyboard)
	editMsg.ParseMode = tgbotapi.ModeMarkdown

	sendMessage(t.bot, t.log, editMsg)
}

func (t *LessonT) processNext(query *tgbotapi.CallbackQuery, sessionID string) {
	userID := query.From.ID
	chatID := query.Message.Chat.ID

	session, exists := t.cache.GetSession(userID, sessionID)
	if !exists {
		t.log.Debug("stale lesson session", zap.Int64("user_id", userID), zap.String("session_id", sessionID))
		return
	}
	if !session.Answered() {
		t.log.Debug("next pressed before answering", zap.Int64("user_id", userID), zap.String("session_id", sessionID))
		return
	}

	record, err := session.Advance()
	if err != nil {
		t.log.Debug("advance ignored", zap.Int64("user_id", userID), zap.Error(err))
		return
	}

	t.removeKeyboard(chatID, query.Message.MessageID)

	if record == nil {
		t.sendQuestion(chatID, session)
		return
	}

	t.log.Info("lesson finished",
		zap.Int64("user_id", session.Subject()),
		zap.String("language", session.Language()),
		zap.Int("lesson_id", session.LessonID()),
		zap.Int("score", record.Score),
	)

	t.cache.DeleteSession(userID)
	t.completeLesson(chatID, *record)
}

func (t *LessonT) completeLesson(chatID int64, record models.ProgressRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	gained, err := t.service.CompleteLesson(ctx, record)
	if err != nil {
		if !errors.Is(err, service.ErrPersistenceFailure) {
			t.log.Warn("lesson completion rejected", zap.Int64("user_id", record.UserID), zap.Error(err))
			return
		}

		t.cache.SetPending(record)

		keyboard := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 Try again", retryData(record.Language, record.LessonID)),
		))
		msg := tgbotapi.NewMessage(chatID, "⚠️ Could not save your progress. Your result is kept, press the button to try again.")
		msg.ReplyMarkup = &keyboard

		sendMessage(t.bot, t.log, msg)
		return
	}

	t.cache.DeletePending(record.UserID, record.Language, record.LessonID)

	text := t.service.CompletionSummary(record, gained)

	var buttons [][]tgbotapi.InlineKeyboardButton
	if next, ok := t.service.NextLesson(record.Language, record.LessonID); ok {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ Next lesson", lessonData(record.Language, next)),
		))
	} else {
		text += "\n\n🎓 You finished every lesson of this module!"
	}
	buttons = append(buttons, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(ButtonLanguages, callbackLanguages),
		tgbotapi.NewInlineKeyboardButtonData(ButtonMainMenu, callbackMainMenu),
	))

	keyboard := tgbotapi.NewInlineKeyboardMarkup(buttons...)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, t.log, msg)
}

func (t *LessonT) retrySave(query *tgbotapi.CallbackQuery, language string, lessonID int) {
	userID := query.From.ID

	record, exists := t.cache.GetPending(userID, language, lessonID)
	if !exists {
		t.log.Debug("nothing to retry", zap.Int64("user_id", userID), zap.String("language", language), zap.Int("lesson_id", lessonID))
		return
	}

	t.removeKeyboard(query.Message.Chat.ID, query.Message.MessageID)
	t.completeLesson(query.Message.Chat.ID, record)
}

// removeKeyboard drops the buttons of an answered message so they cannot be
// pressed again.
func (t *LessonT) removeKeyboard(chatID int64, messageID int) {
	editMsg := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
	})
	sendMessage(t.bot, t.log, editMsg)
}

func questionText(session *quiz.Session, question models.Question, index int) string {
	var sb strings.Builder

	sb.WriteString("📘 *")
	sb.WriteString(tgbotapi.EscapeText(tgbotapi.ModeMarkdown, session.LessonTitle()))
	sb.WriteString("*\nQuestion ")
	sb.WriteString(strconv.Itoa(index + 1))
	sb.WriteString("/")
	sb.WriteString(strconv.Itoa(session.Len()))
	sb.WriteString("\n\n")
	sb.WriteString(tgbotapi.EscapeText(tgbotapi.ModeMarkdown, question.Text))

	if question.Code != "" {
		sb.WriteString("\n\n```\n")
		sb.WriteString(question.Code)
		sb.WriteString("\n```")
	}

	return sb.String()
}

func lessonData(language string, lessonID int) string {
	return prefixLesson + language + ":" + strconv.Itoa(lessonID)
}

func retryData(language string, lessonID int) string {
	return prefixRetry + language + ":" + strconv.Itoa(lessonID)
}

// parseLessonData splits "<language>:<lesson>" once the callback prefix is gone.
func parseLessonData(data string) (string, int, bool) {
	language, rawID, ok := strings.Cut(data, ":")
	if !ok || language == "" {
		return "", 0, false
	}
	lessonID, err := strconv.Atoi(rawID)
	if err != nil {
		return "", 0, false
	}
	return language, lessonID, true
}
