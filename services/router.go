package services

import (
	"strings"

	"telegram-schedule-bot-core/actions"
	"telegram-schedule-bot-core/dto"
)

// RouteHandler computes the reply prompt for one routed event.
type RouteHandler func(userId int64, event dto.Event) dto.Prompt

// Rule pairs an event matcher with its handler. Rules are evaluated in
// registration order, so precedence is explicit and auditable.
type Rule struct {
	Match  func(event dto.Event) bool
	Handle RouteHandler
}

// Router dispatches an event by the user's current state. The menu-back rule
// is checked before any state rules, so the menu stays reachable from every
// state; an event nothing matches falls through to the fallback.
type Router struct {
	menuBack Rule
	rules    map[actions.ConversationState][]Rule
	fallback RouteHandler
}

func NewRouter(menuBack Rule, fallback RouteHandler) *Router {
	return &Router{
		menuBack: menuBack,
		rules:    map[actions.ConversationState][]Rule{},
		fallback: fallback,
	}
}

func (r *Router) Register(state actions.ConversationState, rules ...Rule) {
	r.rules[state] = append(r.rules[state], rules...)
}

func (r *Router) Resolve(state actions.ConversationState, event dto.Event) RouteHandler {
	if r.menuBack.Match(event) {
		return r.menuBack.Handle
	}

	for _, rule := range r.rules[state] {
		if rule.Match(event) {
			return rule.Handle
		}
	}

	return r.fallback
}

func MatchAction(code string) func(event dto.Event) bool {
	return func(event dto.Event) bool {
		return event.Type == dto.EventCallback && event.Payload == code
	}
}

func MatchCallbackPrefix(prefix string) func(event dto.Event) bool {
	return func(event dto.Event) bool {
		return event.Type == dto.EventCallback && strings.HasPrefix(event.Payload, prefix+":")
	}
}

func MatchText() func(event dto.Event) bool {
	return func(event dto.Event) bool {
		return event.Type == dto.EventText
	}
}
