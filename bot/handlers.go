package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"telegram-schedule-bot-core/dto"
	"telegram-schedule-bot-core/services"
)

type Handler struct {
	engine *services.ConversationEngine
	api    *Api
}

func NewHandler(engine *services.ConversationEngine, api *Api) *Handler {
	return &Handler{engine: engine, api: api}
}

// Run consumes updates until the context is cancelled. Each update is
// handled in its own goroutine; one user's failure never takes down the
// loop or other users' sessions.
func (h *Handler) Run(ctx context.Context) {
	updates := h.api.UpdatesChan()

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}

			go h.handleUpdate(update)
		}
	}
}

func (h *Handler) handleUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorln("Recovered from update handler panic: ", r)
		}
	}()

	if update.Message != nil {
		h.handleMessage(update.Message)
	}

	if update.CallbackQuery != nil {
		h.handleCallback(update.CallbackQuery)
	}
}

func (h *Handler) handleMessage(msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	event := dto.Event{Type: dto.EventText, Payload: msg.Text}

	if msg.IsCommand() {
		event = dto.Event{Type: dto.EventCommand, Payload: msg.Command()}
	}

	prompt := h.engine.HandleEvent(msg.From.ID, event)

	if h.api.SendPrompt(msg.Chat.ID, prompt) == RenderFailed {
		logrus.WithField("user_id", msg.From.ID).Warnln("Prompt was not delivered")
	}
}

func (h *Handler) handleCallback(cq *tgbotapi.CallbackQuery) {
	h.api.AnswerCallback(cq.ID)

	if cq.Message == nil {
		return
	}

	prompt := h.engine.HandleEvent(cq.From.ID, dto.Event{Type: dto.EventCallback, Payload: cq.Data})

	// edit the shown menu in place; identical content is a no-op, not a failure
	if h.api.EditPrompt(cq.Message.Chat.ID, cq.Message.MessageID, prompt) == RenderFailed {
		logrus.WithField("user_id", cq.From.ID).Warnln("Prompt was not delivered")
	}
}
