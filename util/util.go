package util

import (
	"errors"
	"strconv"
	"strings"
)

// Weekday is the storage token for a workday ("monday".."friday").
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
)

const (
	// SlotsPerDay is the fixed number of pairs per workday.
	SlotsPerDay = 4

	// EmptySlot marks a pair with no class assigned.
	EmptySlot = "—"
)

// Weekdays is the fixed display and storage order. Weekends are never stored.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

func ConvertFromHumanReadableWeek(data string) (Weekday, error) {
	values := map[string]Weekday{
		"Понедельник": Monday,
		"Вторник":     Tuesday,
		"Среда":       Wednesday,
		"Четверг":     Thursday,
		"Пятница":     Friday,
	}

	converted, ok := values[data]

	if !ok {
		return "", errors.New("InvalidDayOfWeek")
	}

	return converted, nil
}

func ConvertToHumanReadableWeek(weekday Weekday) string {
	switch weekday {
	case Monday:
		return "Понедельник"
	case Tuesday:
		return "Вторник"
	case Wednesday:
		return "Среда"
	case Thursday:
		return "Четверг"
	case Friday:
		return "Пятница"
	default:
		return ""
	}
}

// ParseWeekday validates a raw callback token against the workday set.
func ParseWeekday(data string) (Weekday, error) {
	for _, d := range Weekdays {
		if string(d) == data {
			return d, nil
		}
	}

	return "", errors.New("InvalidDayOfWeek")
}

// ParseSlotIndex validates a raw callback token against 0..SlotsPerDay-1.
func ParseSlotIndex(data string) (int, error) {
	slot, err := strconv.Atoi(data)

	if err != nil {
		return 0, errors.New("InvalidSlotIndex")
	}

	if slot < 0 || slot >= SlotsPerDay {
		return 0, errors.New("InvalidSlotIndex")
	}

	return slot, nil
}

// NormalizeSlotValue trims free text and collapses blank input to the
// empty marker.
func NormalizeSlotValue(value string) string {
	value = strings.TrimSpace(value)

	if value == "" {
		return EmptySlot
	}

	return value
}
