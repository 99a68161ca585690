package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"telegram-schedule-bot-core/configuration"
	"telegram-schedule-bot-core/dto"
)

// RenderResult is the explicit outcome of a render attempt. A "message is
// not modified" reply from Telegram is an expected no-op when the core
// re-renders identical content, not an error.
type RenderResult int

const (
	RenderFailed RenderResult = 0
	Rendered     RenderResult = 1
	RenderNoOp   RenderResult = 2
)

type Api struct {
	client *tgbotapi.BotAPI
	cfg    configuration.Configuration
}

func NewApi(cfg configuration.Configuration) (*Api, error) {
	client, err := tgbotapi.NewBotAPI(cfg.TelegramTokenBot)

	if err != nil {
		return nil, err
	}

	return &Api{client: client, cfg: cfg}, nil
}

func (a *Api) UpdatesChan() tgbotapi.UpdatesChannel {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	return a.client.GetUpdatesChan(updateConfig)
}

// SendPrompt posts a prompt as a fresh message.
func (a *Api) SendPrompt(chatId int64, prompt dto.Prompt) RenderResult {
	msg := tgbotapi.NewMessage(chatId, prompt.Text)
	msg.ReplyMarkup = buildMarkup(prompt)

	if _, err := a.client.Send(msg); err != nil {
		logrus.Errorln("Failed send prompt: ", err.Error())
		return RenderFailed
	}

	return Rendered
}

// EditPrompt replaces the previously shown prompt in place.
func (a *Api) EditPrompt(chatId int64, messageId int, prompt dto.Prompt) RenderResult {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatId, messageId, prompt.Text, buildMarkup(prompt))

	if _, err := a.client.Send(edit); err != nil {
		if isNotModified(err) {
			return RenderNoOp
		}

		logrus.Errorln("Failed edit prompt: ", err.Error())
		return RenderFailed
	}

	return Rendered
}

func (a *Api) AnswerCallback(callbackId string) {
	// clears the client-side spinner
	_, _ = a.client.Request(tgbotapi.NewCallback(callbackId, ""))
}

func isNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
