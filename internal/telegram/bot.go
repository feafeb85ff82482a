package telegram

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/manual-labs/quizflow/internal/catalog"
	"github.com/manual-labs/quizflow/internal/quiz"
	"github.com/manual-labs/quizflow/internal/session"
)

// Bot runs quiz sessions over Telegram chats. Each chat maps to one session
// id, so restarting the bot resumes sessions from the store.
type Bot struct {
	api      *tgbotapi.BotAPI
	sessions *session.Service
}

func NewBot(token string, sessions *session.Service) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{api: api, sessions: sessions}, nil
}

func (b *Bot) Start() {
	log.Printf("authorised on account: %s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			switch update.Message.Command() {
			case "start", "quiz":
				b.sendCurrentState(update.Message.Chat.ID)
			default:
				b.sendMessage(update.Message.Chat.ID, "Send /quiz to take the quiz")
			}
		}
		if update.CallbackQuery != nil {
			b.handleCallback(update.CallbackQuery)
		}
	}
}

func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	data := callback.Data

	callbackConfig := tgbotapi.NewCallback(callback.ID, "")
	if _, err := b.api.Request(callbackConfig); err != nil {
		log.Printf("answer callback: %v", err)
	}

	switch {
	case strings.HasPrefix(data, "ans_"):
		b.handleAnswer(chatID, strings.TrimPrefix(data, "ans_"))
	case strings.HasPrefix(data, "back_"):
		b.handleRewind(chatID, strings.TrimPrefix(data, "back_"))
	default:
		b.sendMessage(chatID, "Unknown action")
	}
}

func (b *Bot) handleAnswer(chatID int64, raw string) {
	answerID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		b.sendMessage(chatID, "Unknown answer")
		return
	}
	st, err := b.sessions.Answer(context.Background(), sessionID(chatID), answerID)
	if err != nil {
		b.sendMessage(chatID, "Could not record that answer: "+err.Error())
		return
	}
	b.renderState(chatID, st)
}

func (b *Bot) handleRewind(chatID int64, raw string) {
	questionID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		b.sendMessage(chatID, "Unknown question")
		return
	}
	st, err := b.sessions.Rewind(context.Background(), sessionID(chatID), questionID)
	if err != nil {
		b.sendMessage(chatID, "Could not go back: "+err.Error())
		return
	}
	b.renderState(chatID, st)
}

func (b *Bot) sendCurrentState(chatID int64) {
	st, err := b.sessions.CurrentState(context.Background(), sessionID(chatID), true)
	if err != nil {
		b.sendMessage(chatID, "Something went wrong: "+err.Error())
		return
	}
	b.renderState(chatID, st)
}

func (b *Bot) renderState(chatID int64, st session.State) {
	switch {
	case len(st.RecommendedProducts) > 0:
		var sb strings.Builder
		sb.WriteString("🎯 Recommended for you:\n")
		for _, p := range st.RecommendedProducts {
			fmt.Fprintf(&sb, "• %s — %s\n", p.Name, p.Description)
		}
		b.send(chatID, sb.String(), backRow(st.AnswersGiven))
	case st.CurrentQuestion != nil:
		b.sendQuestion(chatID, *st.CurrentQuestion, backRow(st.AnswersGiven))
	default:
		b.send(chatID, "No more questions — nothing to recommend this time.", backRow(st.AnswersGiven))
	}
}

func (b *Bot) sendQuestion(chatID int64, q catalog.Question, extra []tgbotapi.InlineKeyboardButton) {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, a := range q.Answers {
		if a.Status != catalog.StatusPublished {
			continue
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(a.Text, fmt.Sprintf("ans_%d", a.ID)),
		))
	}
	if len(extra) > 0 {
		rows = append(rows, extra)
	}

	msg := tgbotapi.NewMessage(chatID, q.Text)
	if len(rows) > 0 {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	}
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send question: %v", err)
	}
}

func (b *Bot) send(chatID int64, text string, extra []tgbotapi.InlineKeyboardButton) {
	msg := tgbotapi.NewMessage(chatID, text)
	if len(extra) > 0 {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(extra)
	}
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send msg: %v", err)
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	b.send(chatID, text, nil)
}

// backRow offers a rewind to the most recently answered question.
func backRow(answers []quiz.AnswerGiven) []tgbotapi.InlineKeyboardButton {
	if len(answers) == 0 {
		return nil
	}
	last := answers[len(answers)-1]
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Back", fmt.Sprintf("back_%d", last.QuestionID)),
	)
}

func sessionID(chatID int64) string {
	return fmt.Sprintf("tg-%d", chatID)
}
