package dto

import "telegram-schedule-bot-core/util"

// Schedule is one user's normalized week: every workday present, exactly
// util.SlotsPerDay entries per day.
type Schedule map[util.Weekday][]string

func DefaultSchedule() Schedule {
	out := make(Schedule, len(util.Weekdays))

	for _, day := range util.Weekdays {
		slots := make([]string, util.SlotsPerDay)
		for i := range slots {
			slots[i] = util.EmptySlot
		}
		out[day] = slots
	}

	return out
}

func (s Schedule) Clone() Schedule {
	out := make(Schedule, len(s))

	for day, slots := range s {
		copied := make([]string, len(slots))
		copy(copied, slots)
		out[day] = copied
	}

	return out
}

// Equal reports whether two schedules hold identical content.
func (s Schedule) Equal(other Schedule) bool {
	if len(s) != len(other) {
		return false
	}

	for day, slots := range s {
		otherSlots, ok := other[day]

		if !ok || len(slots) != len(otherSlots) {
			return false
		}

		for i := range slots {
			if slots[i] != otherSlots[i] {
				return false
			}
		}
	}

	return true
}
