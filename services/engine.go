package services

import (
	"strings"

	"github.com/sirupsen/logrus"

	"telegram-schedule-bot-core/abstractions"
	"telegram-schedule-bot-core/actions"
	"telegram-schedule-bot-core/commands"
	"telegram-schedule-bot-core/dto"
	"telegram-schedule-bot-core/exceptions"
	"telegram-schedule-bot-core/util"
)

// ConversationEngine is the per-user state machine behind the menu flow.
// Every event resolves through the route table to a handler that decides the
// next state, the optional store mutation and the prompt to render. The
// engine never touches transport types, it only produces dto.Prompt values.
type ConversationEngine struct {
	schedules abstractions.IScheduleService
	sessions  abstractions.ISessionService
	router    *Router
}

func NewConversationEngine(schedules abstractions.IScheduleService, sessions abstractions.ISessionService) *ConversationEngine {
	e := &ConversationEngine{schedules: schedules, sessions: sessions}

	e.router = NewRouter(
		Rule{Match: MatchAction(commands.MenuBackAction), Handle: e.handleMenuBack},
		e.handleMenuBack,
	)

	e.router.Register(actions.StateMenu,
		Rule{Match: MatchAction(commands.MenuViewAction), Handle: e.handleMenuView},
		Rule{Match: MatchAction(commands.MenuBuildAction), Handle: e.handleMenuBuild},
		Rule{Match: MatchAction(commands.MenuEditAction), Handle: e.handleMenuEdit},
	)

	e.router.Register(actions.StateViewingDaySelect,
		Rule{Match: MatchCallbackPrefix(commands.ViewDayPrefix), Handle: e.handleViewDay},
	)

	e.router.Register(actions.StateBuildingDaySelect,
		Rule{Match: MatchCallbackPrefix(commands.BuildDayPrefix), Handle: e.handleBuildDay},
	)
	e.router.Register(actions.StateBuildingSlotSelect,
		// the back rule has to win over the slot-index rule
		Rule{Match: MatchCallbackPrefix(commands.BuildSlotPrefix + ":" + commands.BackToken), Handle: e.handleBuildSlotBack},
		Rule{Match: MatchCallbackPrefix(commands.BuildSlotPrefix), Handle: e.handleBuildSlot},
	)
	e.router.Register(actions.StateBuildingTextEntry,
		Rule{Match: MatchText(), Handle: e.handleBuildText},
	)

	e.router.Register(actions.StateEditingDaySelect,
		Rule{Match: MatchCallbackPrefix(commands.EditDayPrefix), Handle: e.handleEditDay},
	)
	e.router.Register(actions.StateEditingSlotSelect,
		Rule{Match: MatchCallbackPrefix(commands.EditSlotPrefix + ":" + commands.BackToken), Handle: e.handleEditSlotBack},
		Rule{Match: MatchCallbackPrefix(commands.EditSlotPrefix), Handle: e.handleEditSlot},
	)
	e.router.Register(actions.StateEditingTextEntry,
		Rule{Match: MatchText(), Handle: e.handleEditText},
	)

	return e
}

// HandleEvent routes one inbound event for one user and returns the prompt
// to render. It never panics on malformed payloads; anything unparseable is
// treated as a desynchronized session.
func (e *ConversationEngine) HandleEvent(userId int64, event dto.Event) dto.Prompt {
	if event.Type == dto.EventCommand {
		return e.handleCommand(userId, event)
	}

	session := e.sessions.GetSession(userId)

	logrus.WithFields(logrus.Fields{
		"user_id":    userId,
		"session_id": session.Id,
		"state":      session.State.String(),
	}).Debugln("Routing event: ", event.Payload)

	return e.router.Resolve(session.State, event)(userId, event)
}

func (e *ConversationEngine) handleCommand(userId int64, event dto.Event) dto.Prompt {
	switch commands.CommandType(event.Payload) {
	case commands.StartCommand:
		e.sessions.ResetSession(userId)

		if err := e.schedules.EnsureSchedule(userId); err != nil {
			return dto.Prompt{Text: textSaveFailed, Buttons: menuButtons()}
		}

		return dto.Prompt{Text: textStart, Buttons: menuButtons()}
	case commands.HelpCommand:
		// reachable from every state, leaves the state untouched
		return dto.Prompt{Text: textHelp, Buttons: menuButtons()}
	default:
		return e.handleMenuBack(userId, event)
	}
}

func (e *ConversationEngine) handleMenuBack(userId int64, _ dto.Event) dto.Prompt {
	e.sessions.ResetSession(userId)
	return dto.Prompt{Text: textMenu, Buttons: menuButtons()}
}

func (e *ConversationEngine) handleMenuView(userId int64, _ dto.Event) dto.Prompt {
	e.setState(userId, actions.StateViewingDaySelect, nil)
	return dto.Prompt{Text: textChooseViewDay, Buttons: weekdayButtons(commands.ViewDayPrefix)}
}

func (e *ConversationEngine) handleMenuBuild(userId int64, _ dto.Event) dto.Prompt {
	e.setState(userId, actions.StateBuildingDaySelect, nil)
	return dto.Prompt{Text: textChooseBuild, Buttons: weekdayButtons(commands.BuildDayPrefix)}
}

func (e *ConversationEngine) handleMenuEdit(userId int64, _ dto.Event) dto.Prompt {
	e.setState(userId, actions.StateEditingDaySelect, nil)
	return dto.Prompt{Text: textChooseEdit, Buttons: weekdayButtons(commands.EditDayPrefix)}
}

// handleViewDay is a one-shot display: render the day read-only and land
// back on the menu state.
func (e *ConversationEngine) handleViewDay(userId int64, event dto.Event) dto.Prompt {
	day, err := parseDayPayload(commands.ViewDayPrefix, event.Payload)

	if err != nil {
		return e.desync(userId)
	}

	schedule, err := e.schedules.GetSchedule(userId)

	if err != nil {
		return e.saveFailed(userId)
	}

	e.setState(userId, actions.StateMenu, nil)

	return dto.Prompt{Text: formatDay(schedule, day), Buttons: backToMenuButtons()}
}

func (e *ConversationEngine) handleBuildDay(userId int64, event dto.Event) dto.Prompt {
	return e.openSlotSelect(userId, commands.BuildDayPrefix, commands.BuildSlotPrefix,
		actions.StateBuildingSlotSelect, textChooseSlot, event)
}

func (e *ConversationEngine) handleEditDay(userId int64, event dto.Event) dto.Prompt {
	return e.openSlotSelect(userId, commands.EditDayPrefix, commands.EditSlotPrefix,
		actions.StateEditingSlotSelect, textChooseEdited, event)
}

func (e *ConversationEngine) openSlotSelect(userId int64, dayPrefix string, slotPrefix string,
	next actions.ConversationState, chooseLine string, event dto.Event) dto.Prompt {

	day, err := parseDayPayload(dayPrefix, event.Payload)

	if err != nil {
		return e.desync(userId)
	}

	schedule, err := e.schedules.GetSchedule(userId)

	if err != nil {
		return e.saveFailed(userId)
	}

	e.setState(userId, next, &dto.PendingSlot{Day: day, Slot: -1})

	return dto.Prompt{
		Text:    formatDay(schedule, day) + "\n\n" + chooseLine,
		Buttons: slotButtons(slotPrefix, day),
	}
}

func (e *ConversationEngine) handleBuildSlot(userId int64, event dto.Event) dto.Prompt {
	day, slot, err := parseSlotPayload(commands.BuildSlotPrefix, event.Payload)

	if err != nil {
		return e.desync(userId)
	}

	e.setState(userId, actions.StateBuildingTextEntry, &dto.PendingSlot{Day: day, Slot: slot})

	return dto.Prompt{Text: enterSlotText(day, slot), Buttons: backToMenuButtons()}
}

func (e *ConversationEngine) handleEditSlot(userId int64, event dto.Event) dto.Prompt {
	day, slot, err := parseSlotPayload(commands.EditSlotPrefix, event.Payload)

	if err != nil {
		return e.desync(userId)
	}

	schedule, err := e.schedules.GetSchedule(userId)

	if err != nil {
		return e.saveFailed(userId)
	}

	e.setState(userId, actions.StateEditingTextEntry, &dto.PendingSlot{Day: day, Slot: slot})

	return dto.Prompt{Text: replaceSlotText(schedule[day][slot], day, slot), Buttons: backToMenuButtons()}
}

func (e *ConversationEngine) handleBuildSlotBack(userId int64, _ dto.Event) dto.Prompt {
	e.setState(userId, actions.StateBuildingDaySelect, nil)
	return dto.Prompt{Text: textChooseBuild, Buttons: weekdayButtons(commands.BuildDayPrefix)}
}

func (e *ConversationEngine) handleEditSlotBack(userId int64, _ dto.Event) dto.Prompt {
	e.setState(userId, actions.StateEditingDaySelect, nil)
	return dto.Prompt{Text: textChooseEdit, Buttons: weekdayButtons(commands.EditDayPrefix)}
}

func (e *ConversationEngine) handleBuildText(userId int64, event dto.Event) dto.Prompt {
	return e.writePendingSlot(userId, event.Payload, textSaved)
}

func (e *ConversationEngine) handleEditText(userId int64, event dto.Event) dto.Prompt {
	return e.writePendingSlot(userId, event.Payload, textUpdated)
}

// writePendingSlot stores free text into the remembered (day, slot). A lost
// or out-of-range pending selection means the session desynchronized from
// the shown prompt; storage stays untouched in that case.
func (e *ConversationEngine) writePendingSlot(userId int64, text string, confirmation string) dto.Prompt {
	session := e.sessions.GetSession(userId)
	pending := session.Pending

	if pending == nil || !isValidPending(*pending) {
		return e.desync(userId)
	}

	schedule, err := e.schedules.SetSlot(userId, pending.Day, pending.Slot, text)

	if err != nil {
		return e.saveFailed(userId)
	}

	e.setState(userId, actions.StateMenu, nil)

	return dto.Prompt{
		Text:    confirmation + "\n\n" + formatDay(schedule, pending.Day),
		Buttons: menuButtons(),
	}
}

func (e *ConversationEngine) desync(userId int64) dto.Prompt {
	e.sessions.ResetSession(userId)
	return dto.Prompt{Text: textDesync, Buttons: menuButtons()}
}

func (e *ConversationEngine) saveFailed(userId int64) dto.Prompt {
	e.sessions.ResetSession(userId)
	return dto.Prompt{Text: textSaveFailed, Buttons: menuButtons()}
}

func (e *ConversationEngine) setState(userId int64, state actions.ConversationState, pending *dto.PendingSlot) {
	session := e.sessions.GetSession(userId)
	session.State = state
	session.Pending = pending
	e.sessions.SaveSession(userId, session)
}

func isValidPending(pending dto.PendingSlot) bool {
	if _, err := util.ParseWeekday(string(pending.Day)); err != nil {
		return false
	}

	return pending.Slot >= 0 && pending.Slot < util.SlotsPerDay
}

func parseDayPayload(prefix string, payload string) (util.Weekday, error) {
	return util.ParseWeekday(strings.TrimPrefix(payload, prefix+":"))
}

func parseSlotPayload(prefix string, payload string) (util.Weekday, int, error) {
	parts := strings.Split(payload, ":")

	if len(parts) != 3 || parts[0] != prefix {
		return "", 0, exceptions.SessionDesync
	}

	day, err := util.ParseWeekday(parts[1])

	if err != nil {
		return "", 0, err
	}

	slot, err := util.ParseSlotIndex(parts[2])

	if err != nil {
		return "", 0, err
	}

	return day, slot, nil
}
