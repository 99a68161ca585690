package abstractions

import (
	"telegram-schedule-bot-core/dao"
	"telegram-schedule-bot-core/dto"
	"telegram-schedule-bot-core/util"
)

type IScheduleProvider interface {
	LoadAll() dao.RawTable
	SaveAll(table map[string]dto.Schedule) error
	GetUserSchedule(userId int64) (dto.Schedule, error)
	SetUserSchedule(userId int64, schedule dto.Schedule) error
	SetSlot(userId int64, day util.Weekday, slot int, value string) (dto.Schedule, error)
}

type ISessionProvider interface {
	StoreData(sessions map[int64]dto.Session) error
	RestoreData() (map[int64]dto.Session, error)
}
