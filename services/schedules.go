package services

import (
	"github.com/sirupsen/logrus"

	"telegram-schedule-bot-core/abstractions"
	"telegram-schedule-bot-core/dto"
	"telegram-schedule-bot-core/util"
)

type ScheduleService struct {
	provider abstractions.IScheduleProvider
}

func NewScheduleService(provider abstractions.IScheduleProvider) *ScheduleService {
	return &ScheduleService{provider: provider}
}

// GetSchedule always goes back to the store, never a cached copy, so edits
// from another device of the same user are reflected immediately.
func (s *ScheduleService) GetSchedule(userId int64) (dto.Schedule, error) {
	schedule, err := s.provider.GetUserSchedule(userId)

	if err != nil {
		logrus.WithField("user_id", userId).Errorln("Failed load schedule: ", err.Error())
		return nil, err
	}

	return schedule, nil
}

func (s *ScheduleService) SetSlot(userId int64, day util.Weekday, slot int, value string) (dto.Schedule, error) {
	schedule, err := s.provider.SetSlot(userId, day, slot, value)

	if err != nil {
		logrus.WithField("user_id", userId).Errorln("Failed save slot: ", err.Error())
		return nil, err
	}

	return schedule, nil
}

// EnsureSchedule makes a default week exist for a first-time user.
func (s *ScheduleService) EnsureSchedule(userId int64) error {
	_, err := s.provider.GetUserSchedule(userId)
	return err
}
