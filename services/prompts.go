package services

import (
	"fmt"
	"strings"

	"telegram-schedule-bot-core/commands"
	"telegram-schedule-bot-core/dto"
	"telegram-schedule-bot-core/util"
)

const (
	textStart         = "Меню.\nУ каждого пользователя своё расписание (Пн–Пт, 4 пары)."
	textMenu          = "Меню:"
	textHelp          = "Команды:\n/start — меню\n/help — помощь\n\nРасписание персональное для каждого пользователя.\nПн–Пт: 4 пары. Сб/Вс: выходной."
	textChooseViewDay = "Выберите день (Пн–Пт):"
	textChooseBuild   = "Составление. Выберите день (Пн–Пт):"
	textChooseEdit    = "Редактирование. Выберите день (Пн–Пт):"
	textChooseSlot    = "Выберите, какую пару заполнить:"
	textChooseEdited  = "Выберите пару для редактирования:"
	textSaved         = "Сохранено."
	textUpdated       = "Обновлено."
	textDesync        = "Состояние сбилось. Нажмите /start."
	textSaveFailed    = "Не удалось сохранить, попробуйте ещё раз."
	textWeekendNote   = "Суббота и воскресенье — выходной."

	labelMenu = "Меню"
	labelBack = "Назад"
)

func menuButtons() [][]dto.Button {
	return [][]dto.Button{
		{{Label: "Узнать расписание", Action: commands.MenuViewAction}},
		{{Label: "Составить расписание", Action: commands.MenuBuildAction}},
		{{Label: "Редактировать расписание", Action: commands.MenuEditAction}},
	}
}

func weekdayButtons(prefix string) [][]dto.Button {
	rows := make([][]dto.Button, 0, len(util.Weekdays)+1)

	for _, day := range util.Weekdays {
		rows = append(rows, []dto.Button{{
			Label:  util.ConvertToHumanReadableWeek(day),
			Action: fmt.Sprintf("%s:%s", prefix, day),
		}})
	}

	rows = append(rows, []dto.Button{{Label: labelMenu, Action: commands.MenuBackAction}})

	return rows
}

func slotButtons(prefix string, day util.Weekday) [][]dto.Button {
	rows := make([][]dto.Button, 0, util.SlotsPerDay+2)

	for i := 0; i < util.SlotsPerDay; i++ {
		rows = append(rows, []dto.Button{{
			Label:  fmt.Sprintf("%d пара", i+1),
			Action: fmt.Sprintf("%s:%s:%d", prefix, day, i),
		}})
	}

	rows = append(rows, []dto.Button{{
		Label:  labelBack,
		Action: fmt.Sprintf("%s:%s:%s", prefix, commands.BackToken, day),
	}})
	rows = append(rows, []dto.Button{{Label: labelMenu, Action: commands.MenuBackAction}})

	return rows
}

func backToMenuButtons() [][]dto.Button {
	return [][]dto.Button{{{Label: labelMenu, Action: commands.MenuBackAction}}}
}

// formatDay renders one day read-only, pairs numbered from 1.
func formatDay(schedule dto.Schedule, day util.Weekday) string {
	lines := []string{"📅 " + util.ConvertToHumanReadableWeek(day)}

	for idx, item := range schedule[day] {
		lines = append(lines, fmt.Sprintf("%d) %s", idx+1, item))
	}

	lines = append(lines, "", textWeekendNote)

	return strings.Join(lines, "\n")
}

func enterSlotText(day util.Weekday, slot int) string {
	return fmt.Sprintf(
		"Введите предмет для:\n%s, %d пара\n\nПример: Математика (ауд. 305)\nМожно отправить «—», чтобы оставить пусто.",
		util.ConvertToHumanReadableWeek(day), slot+1)
}

func replaceSlotText(current string, day util.Weekday, slot int) string {
	return fmt.Sprintf(
		"Текущее значение:\n%s\n\nВведите новое для:\n%s, %d пара\n\nМожно отправить «—», чтобы очистить.",
		current, util.ConvertToHumanReadableWeek(day), slot+1)
}
