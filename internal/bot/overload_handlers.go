package bot

import (
	"errors"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/overload"
)

func overloadMenuAction() overload.Action {
	return overload.Action{State: overload.StateMuscleList}
}

// handleCallback answers the callback and advances the overload flow by the
// decoded action, editing the originating message in place.
func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) {
	ack := tgbotapi.NewCallback(callback.ID, "")
	if _, err := b.api.Request(ack); err != nil {
		log.Printf("Failed to answer callback %s: %v", callback.ID, err)
	}

	action, err := overload.DecodeToken(callback.Data)
	if err != nil {
		b.sendError(callback.Message.Chat.ID, "That button has expired. Run /overload again.", err)
		return
	}

	b.stepOverload(callback.Message.Chat.ID, callback.Message.MessageID, callback.From.ID, action)
}

// stepOverload runs one flow transition and renders the resulting view. A
// zero messageID sends a fresh message; otherwise the existing one is edited.
func (b *Bot) stepOverload(chatID int64, messageID int, userID int64, action overload.Action) {
	view, err := b.flow.Step(userID, action)
	if err != nil {
		var notFound overload.ErrNotFound
		if errors.As(err, &notFound) {
			b.sendError(chatID, "❌ I couldn't find that one anymore. Run /overload again.", err)
			return
		}
		b.sendError(chatID, "Something went wrong. Run /overload again.", err)
		return
	}

	keyboard := renderKeyboard(view)
	if messageID == 0 {
		if keyboard == nil {
			b.sendMessage(chatID, view.Text)
			return
		}
		b.sendMessageWithInlineKeyboard(chatID, view.Text, *keyboard)
		return
	}
	if keyboard == nil {
		// Terminal view: clear the buttons so stale taps stop arriving.
		empty := tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
		keyboard = &empty
	}
	b.editMessage(chatID, messageID, view.Text, keyboard)
}

// renderKeyboard encodes a view's buttons into callback tokens. Terminal
// views render without a keyboard.
func renderKeyboard(view *overload.View) *tgbotapi.InlineKeyboardMarkup {
	if len(view.Buttons) == 0 {
		return nil
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(view.Buttons))
	for _, row := range view.Buttons {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(
				btn.Label, overload.EncodeToken(btn.Action),
			))
		}
		rows = append(rows, buttons)
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &keyboard
}
