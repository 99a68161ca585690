package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telegram-schedule-bot-core/dto"
)

// buildMarkup converts the core's abstract button grid into an inline
// keyboard, preserving row order.
func buildMarkup(prompt dto.Prompt) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(prompt.Buttons))

	for _, row := range prompt.Buttons {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))

		for _, button := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(button.Label, button.Action))
		}

		rows = append(rows, buttons)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
