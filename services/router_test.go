package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"telegram-schedule-bot-core/actions"
	"telegram-schedule-bot-core/commands"
	"telegram-schedule-bot-core/dto"
)

func namedHandler(name string, log *[]string) RouteHandler {
	return func(int64, dto.Event) dto.Prompt {
		*log = append(*log, name)
		return dto.Prompt{Text: name}
	}
}

func TestRouter_MenuBackWinsInEveryState(t *testing.T) {
	var log []string

	router := NewRouter(
		Rule{Match: MatchAction(commands.MenuBackAction), Handle: namedHandler("back", &log)},
		namedHandler("fallback", &log),
	)
	router.Register(actions.StateBuildingSlotSelect,
		Rule{Match: MatchCallbackPrefix(commands.BuildSlotPrefix), Handle: namedHandler("slot", &log)},
	)

	prompt := router.Resolve(actions.StateBuildingSlotSelect, dto.Event{
		Type:    dto.EventCallback,
		Payload: commands.MenuBackAction,
	})(0, dto.Event{})

	assert.Equal(t, "back", prompt.Text)
}

func TestRouter_RegistrationOrderDecidesPrecedence(t *testing.T) {
	var log []string

	router := NewRouter(
		Rule{Match: MatchAction(commands.MenuBackAction), Handle: namedHandler("back", &log)},
		namedHandler("fallback", &log),
	)
	router.Register(actions.StateBuildingSlotSelect,
		Rule{Match: MatchCallbackPrefix(commands.BuildSlotPrefix + ":" + commands.BackToken), Handle: namedHandler("slot-back", &log)},
		Rule{Match: MatchCallbackPrefix(commands.BuildSlotPrefix), Handle: namedHandler("slot", &log)},
	)

	ev := dto.Event{Type: dto.EventCallback, Payload: "buildslot:back:monday"}
	assert.Equal(t, "slot-back", router.Resolve(actions.StateBuildingSlotSelect, ev)(0, ev).Text)

	ev = dto.Event{Type: dto.EventCallback, Payload: "buildslot:monday:1"}
	assert.Equal(t, "slot", router.Resolve(actions.StateBuildingSlotSelect, ev)(0, ev).Text)
}

func TestRouter_UnmatchedEventFallsThrough(t *testing.T) {
	var log []string

	router := NewRouter(
		Rule{Match: MatchAction(commands.MenuBackAction), Handle: namedHandler("back", &log)},
		namedHandler("fallback", &log),
	)
	router.Register(actions.StateViewingDaySelect,
		Rule{Match: MatchCallbackPrefix(commands.ViewDayPrefix), Handle: namedHandler("view", &log)},
	)

	// explicit rules of another state do not leak in
	ev := dto.Event{Type: dto.EventCallback, Payload: "editday:monday"}
	assert.Equal(t, "fallback", router.Resolve(actions.StateViewingDaySelect, ev)(0, ev).Text)

	// text events do not match callback rules
	ev = dto.Event{Type: dto.EventText, Payload: "viewday:monday"}
	assert.Equal(t, "fallback", router.Resolve(actions.StateViewingDaySelect, ev)(0, ev).Text)
}

func TestMatchers(t *testing.T) {
	assert.True(t, MatchAction("menu:view")(dto.Event{Type: dto.EventCallback, Payload: "menu:view"}))
	assert.False(t, MatchAction("menu:view")(dto.Event{Type: dto.EventCallback, Payload: "menu:viewday"}))
	assert.False(t, MatchAction("menu:view")(dto.Event{Type: dto.EventText, Payload: "menu:view"}))

	assert.True(t, MatchCallbackPrefix("viewday")(dto.Event{Type: dto.EventCallback, Payload: "viewday:monday"}))
	assert.False(t, MatchCallbackPrefix("viewday")(dto.Event{Type: dto.EventCallback, Payload: "viewday"}))

	assert.True(t, MatchText()(dto.Event{Type: dto.EventText, Payload: "любой текст"}))
	assert.False(t, MatchText()(dto.Event{Type: dto.EventCallback, Payload: "любой текст"}))
}
