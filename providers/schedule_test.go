package providers

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-schedule-bot-core/configuration"
	"telegram-schedule-bot-core/dto"
	"telegram-schedule-bot-core/util"
)

func newTestProvider(t *testing.T) (*ScheduleProvider, string) {
	t.Helper()

	dir := t.TempDir()

	var cfg configuration.Configuration
	cfg.StorageSettings.Directory = dir

	return NewScheduleProvider(cfg), filepath.Join(dir, "schedules.json")
}

func readStoredTable(t *testing.T, path string) map[string]map[string][]string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var table map[string]map[string][]string
	require.NoError(t, json.Unmarshal(data, &table))

	return table
}

func TestGetUserSchedule_CreatesDefaultForNewUser(t *testing.T) {
	provider, path := newTestProvider(t)

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))

	schedule, err := provider.GetUserSchedule(42)
	require.NoError(t, err)

	require.Len(t, schedule, len(util.Weekdays))
	for _, day := range util.Weekdays {
		require.Len(t, schedule[day], util.SlotsPerDay)
		for _, slot := range schedule[day] {
			assert.Equal(t, util.EmptySlot, slot)
		}
	}

	// the default must be durably persisted under the user's key
	table := readStoredTable(t, path)
	require.Contains(t, table, "42")
	for _, day := range util.Weekdays {
		assert.Equal(t, []string{util.EmptySlot, util.EmptySlot, util.EmptySlot, util.EmptySlot}, table["42"][string(day)])
	}
}

func TestNormalizeRawSchedule_RepairsAnyShape(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not an object", `"just a string"`},
		{"empty object", `{}`},
		{"day is not a list", `{"monday": "math"}`},
		{"short day", `{"tuesday": ["a", "b"]}`},
		{"long day", `{"wednesday": ["a", "b", "c", "d", "e", "f"]}`},
		{"numbers in a day", `{"thursday": [1, 2, 3, 4]}`},
		{"weekend entry", `{"saturday": ["a", "b", "c", "d"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized := NormalizeRawSchedule(json.RawMessage(tt.raw))

			require.Len(t, normalized, len(util.Weekdays))
			for _, day := range util.Weekdays {
				require.Len(t, normalized[day], util.SlotsPerDay)
				for _, slot := range normalized[day] {
					assert.NotEmpty(t, slot)
				}
			}

			_, hasWeekend := normalized[util.Weekday("saturday")]
			assert.False(t, hasWeekend)
		})
	}
}

func TestNormalizeRawSchedule_Idempotent(t *testing.T) {
	raw := json.RawMessage(`{"monday": ["  math  ", ""], "tuesday": "oops", "friday": ["a", "b", "c", "d", "e"]}`)

	once := NormalizeRawSchedule(raw)

	encoded, err := json.Marshal(once)
	require.NoError(t, err)

	twice := NormalizeRawSchedule(encoded)
	assert.True(t, once.Equal(twice))

	// trimming happens during the first pass
	assert.Equal(t, "math", once[util.Monday][0])
	assert.Equal(t, util.EmptySlot, once[util.Monday][1])
}

func TestSetUserSchedule_RoundTripEqualsNormalized(t *testing.T) {
	provider, _ := newTestProvider(t)

	input := dto.Schedule{
		util.Monday: {"Математика (ауд. 305)", "", "Физика"},
		util.Friday: {"a", "b", "c", "d", "e", "f"},
	}

	require.NoError(t, provider.SetUserSchedule(7, input))

	got, err := provider.GetUserSchedule(7)
	require.NoError(t, err)

	assert.True(t, got.Equal(NormalizeSchedule(input)))
	assert.Equal(t, "Математика (ауд. 305)", got[util.Monday][0])
	assert.Equal(t, util.EmptySlot, got[util.Monday][1])
	assert.Len(t, got[util.Friday], util.SlotsPerDay)
}

func TestGetUserSchedule_RepersistsNormalizedForm(t *testing.T) {
	provider, path := newTestProvider(t)

	seeded := []byte(`{"9": {"monday": ["only one"]}}`)
	require.NoError(t, os.WriteFile(path, seeded, 0o644))

	_, err := provider.GetUserSchedule(9)
	require.NoError(t, err)

	table := readStoredTable(t, path)
	require.Len(t, table["9"]["monday"], util.SlotsPerDay)
	assert.Equal(t, "only one", table["9"]["monday"][0])
	assert.Equal(t, util.EmptySlot, table["9"]["monday"][3])
}

func TestSetSlot_ChangesOnlyThatSlot(t *testing.T) {
	provider, _ := newTestProvider(t)

	_, err := provider.GetUserSchedule(1)
	require.NoError(t, err)
	_, err = provider.GetUserSchedule(2)
	require.NoError(t, err)

	before2, err := provider.GetUserSchedule(2)
	require.NoError(t, err)

	got, err := provider.SetSlot(1, util.Tuesday, 2, "Химия")
	require.NoError(t, err)

	assert.Equal(t, "Химия", got[util.Tuesday][2])

	for _, day := range util.Weekdays {
		for i, slot := range got[day] {
			if day == util.Tuesday && i == 2 {
				continue
			}
			assert.Equal(t, util.EmptySlot, slot)
		}
	}

	after2, err := provider.GetUserSchedule(2)
	require.NoError(t, err)
	assert.True(t, before2.Equal(after2))
}

func TestSetSlot_BlankInputCollapsesToEmptyMarker(t *testing.T) {
	provider, _ := newTestProvider(t)

	got, err := provider.SetSlot(5, util.Monday, 0, "")
	require.NoError(t, err)
	assert.Equal(t, util.EmptySlot, got[util.Monday][0])

	got, err = provider.SetSlot(5, util.Monday, 1, "   ")
	require.NoError(t, err)
	assert.Equal(t, util.EmptySlot, got[util.Monday][1])

	got, err = provider.SetSlot(5, util.Monday, 2, "  История  ")
	require.NoError(t, err)
	assert.Equal(t, "История", got[util.Monday][2])
}

func TestLoadAll_CorruptStorageDegradesToEmpty(t *testing.T) {
	provider, path := newTestProvider(t)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	assert.Empty(t, provider.LoadAll())

	// the store still works after degradation
	schedule, err := provider.GetUserSchedule(3)
	require.NoError(t, err)
	assert.Equal(t, util.EmptySlot, schedule[util.Monday][0])
}

func TestLoadAll_NonObjectTopLevelDegradesToEmpty(t *testing.T) {
	provider, path := newTestProvider(t)

	require.NoError(t, os.WriteFile(path, []byte(`["not", "an", "object"]`), 0o644))

	assert.Empty(t, provider.LoadAll())
}

func TestConcurrentSetSlot_NoLostUpdate(t *testing.T) {
	provider, _ := newTestProvider(t)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		_, err := provider.SetSlot(100, util.Monday, 0, "Алгебра")
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		_, err := provider.SetSlot(200, util.Friday, 3, "Геометрия")
		assert.NoError(t, err)
	}()

	wg.Wait()

	first, err := provider.GetUserSchedule(100)
	require.NoError(t, err)
	second, err := provider.GetUserSchedule(200)
	require.NoError(t, err)

	assert.Equal(t, "Алгебра", first[util.Monday][0])
	assert.Equal(t, "Геометрия", second[util.Friday][3])
}

func TestSaveAll_OverwritesWholeTable(t *testing.T) {
	provider, path := newTestProvider(t)

	_, err := provider.GetUserSchedule(1)
	require.NoError(t, err)

	table := map[string]dto.Schedule{
		"11": {util.Monday: {"a"}},
	}
	require.NoError(t, provider.SaveAll(table))

	stored := readStoredTable(t, path)
	require.Len(t, stored, 1)
	require.Contains(t, stored, "11")
	assert.Len(t, stored["11"]["monday"], util.SlotsPerDay)
}
