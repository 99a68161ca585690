package abstractions

import (
	"telegram-schedule-bot-core/dto"
	"telegram-schedule-bot-core/util"
)

type IScheduleService interface {
	GetSchedule(userId int64) (dto.Schedule, error)
	SetSlot(userId int64, day util.Weekday, slot int, value string) (dto.Schedule, error)
	EnsureSchedule(userId int64) error
}

type ISessionService interface {
	GetSession(userId int64) dto.Session
	SaveSession(userId int64, session dto.Session)
	ResetSession(userId int64) dto.Session
}
