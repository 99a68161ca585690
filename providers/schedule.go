package providers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"telegram-schedule-bot-core/configuration"
	"telegram-schedule-bot-core/dao"
	"telegram-schedule-bot-core/dto"
	"telegram-schedule-bot-core/exceptions"
	"telegram-schedule-bot-core/util"
)

// ScheduleProvider keeps every user's week in one JSON file. Every mutation
// is a whole-table read-modify-write, serialized by a single mutex so two
// concurrent saves can never lose each other's entry. Plain reads skip the
// mutex: the file swap in saveAllDataToStorage is atomic.
type ScheduleProvider struct {
	common *CommonProvider
	mutex  sync.Mutex
}

func NewScheduleProvider(cfg configuration.Configuration) *ScheduleProvider {
	return &ScheduleProvider{common: newCommonProvider(cfg.StorageSettings.Directory, "schedules")}
}

// LoadAll reads the full table. Missing or corrupt storage degrades to an
// empty table, it never fails the caller.
func (s *ScheduleProvider) LoadAll() dao.RawTable {
	data, err := s.common.getAllDataFromStorage()

	if err != nil {
		if !os.IsNotExist(err) {
			logrus.Warnln("Failed read schedule storage, starting empty: ", err.Error())
		}
		return dao.RawTable{}
	}

	var table dao.RawTable

	if err = json.Unmarshal(data, &table); err != nil {
		logrus.Warnln("Malformed schedule storage, starting empty: ", err.Error())
		return dao.RawTable{}
	}

	if table == nil {
		return dao.RawTable{}
	}

	return table
}

func (s *ScheduleProvider) SaveAll(table map[string]dto.Schedule) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	raw := make(dao.RawTable, len(table))

	for key, schedule := range table {
		entry, err := json.Marshal(NormalizeSchedule(schedule))

		if err != nil {
			return exceptions.InternalError
		}

		raw[key] = entry
	}

	return s.persistLocked(raw)
}

func (s *ScheduleProvider) GetUserSchedule(userId int64) (dto.Schedule, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.getUserScheduleLocked(userId)
}

func (s *ScheduleProvider) SetUserSchedule(userId int64, schedule dto.Schedule) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.setUserScheduleLocked(userId, NormalizeSchedule(schedule))
}

// SetSlot writes one slot of one day and returns the resulting week for
// immediate display.
func (s *ScheduleProvider) SetSlot(userId int64, day util.Weekday, slot int, value string) (dto.Schedule, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	schedule, err := s.getUserScheduleLocked(userId)

	if err != nil {
		return nil, err
	}

	slots, ok := schedule[day]

	if !ok || slot < 0 || slot >= len(slots) {
		return nil, exceptions.InternalError
	}

	slots[slot] = util.NormalizeSlotValue(value)

	if err = s.setUserScheduleLocked(userId, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

func (s *ScheduleProvider) getUserScheduleLocked(userId int64) (dto.Schedule, error) {
	table := s.LoadAll()
	key := strconv.FormatInt(userId, 10)

	raw, ok := table[key]

	if !ok {
		schedule := dto.DefaultSchedule()

		if err := s.persistEntryLocked(table, key, schedule); err != nil {
			return nil, err
		}

		return schedule, nil
	}

	schedule := NormalizeRawSchedule(raw)

	var stored dto.Schedule

	if err := json.Unmarshal(raw, &stored); err == nil && stored.Equal(schedule) {
		// already in normalized shape, no rewrite needed
		return schedule, nil
	}

	if err := s.persistEntryLocked(table, key, schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

func (s *ScheduleProvider) setUserScheduleLocked(userId int64, schedule dto.Schedule) error {
	table := s.LoadAll()
	return s.persistEntryLocked(table, strconv.FormatInt(userId, 10), schedule)
}

func (s *ScheduleProvider) persistEntryLocked(table dao.RawTable, key string, schedule dto.Schedule) error {
	entry, err := json.Marshal(schedule)

	if err != nil {
		return exceptions.InternalError
	}

	table[key] = entry

	return s.persistLocked(table)
}

func (s *ScheduleProvider) persistLocked(table dao.RawTable) error {
	data, err := encodeTable(table)

	if err != nil {
		return exceptions.InternalError
	}

	if err = s.common.saveAllDataToStorage(data); err != nil {
		return fmt.Errorf("%w: %v", exceptions.StorageWrite, err)
	}

	return nil
}

// encodeTable pretty-prints the table for human inspection and keeps
// unicode content readable instead of \u-escaped.
func encodeTable(table dao.RawTable) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(table); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// NormalizeRawSchedule repairs a raw persisted entry of any shape: a non-map
// entry becomes an empty week, a non-list day becomes empty-marker slots,
// short days are padded and long days truncated to util.SlotsPerDay.
// Applying it twice yields the same result as once.
func NormalizeRawSchedule(raw json.RawMessage) dto.Schedule {
	var days map[string]json.RawMessage

	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &days)
	}

	out := make(dto.Schedule, len(util.Weekdays))

	for _, day := range util.Weekdays {
		var slots []string

		if dayRaw, ok := days[string(day)]; ok {
			_ = json.Unmarshal(dayRaw, &slots)
		}

		out[day] = normalizeSlots(slots)
	}

	return out
}

// NormalizeSchedule is the in-memory counterpart of NormalizeRawSchedule,
// applied to caller-supplied schedules before they are persisted.
func NormalizeSchedule(schedule dto.Schedule) dto.Schedule {
	out := make(dto.Schedule, len(util.Weekdays))

	for _, day := range util.Weekdays {
		out[day] = normalizeSlots(schedule[day])
	}

	return out
}

func normalizeSlots(slots []string) []string {
	out := make([]string, util.SlotsPerDay)

	for i := range out {
		if i < len(slots) {
			out[i] = util.NormalizeSlotValue(slots[i])
		} else {
			out[i] = util.EmptySlot
		}
	}

	return out
}
