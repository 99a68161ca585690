package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-schedule-bot-core/dto"
)

func TestBuildMarkup_PreservesGridOrderAndActionCodes(t *testing.T) {
	prompt := dto.Prompt{
		Text: "Меню:",
		Buttons: [][]dto.Button{
			{{Label: "Узнать расписание", Action: "menu:view"}},
			{{Label: "Назад", Action: "buildslot:back:monday"}, {Label: "Меню", Action: "menu:back"}},
		},
	}

	markup := buildMarkup(prompt)

	require.Len(t, markup.InlineKeyboard, 2)
	require.Len(t, markup.InlineKeyboard[0], 1)
	require.Len(t, markup.InlineKeyboard[1], 2)

	assert.Equal(t, "Узнать расписание", markup.InlineKeyboard[0][0].Text)
	require.NotNil(t, markup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "menu:view", *markup.InlineKeyboard[0][0].CallbackData)

	require.NotNil(t, markup.InlineKeyboard[1][1].CallbackData)
	assert.Equal(t, "menu:back", *markup.InlineKeyboard[1][1].CallbackData)
}
