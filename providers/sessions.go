package providers

import (
	"encoding/json"
	"os"

	"telegram-schedule-bot-core/configuration"
	"telegram-schedule-bot-core/dto"
)

// SessionProvider snapshots the in-memory session map to a JSON file so
// in-flight build/edit flows survive a restart.
type SessionProvider struct {
	common *CommonProvider
}

func NewSessionProvider(cfg configuration.Configuration) *SessionProvider {
	return &SessionProvider{common: newCommonProvider(cfg.StorageSettings.Directory, "sessions")}
}

func (s *SessionProvider) StoreData(sessions map[int64]dto.Session) error {
	data, err := json.MarshalIndent(sessions, "", "  ")

	if err != nil {
		return err
	}

	return s.common.saveAllDataToStorage(data)
}

func (s *SessionProvider) RestoreData() (map[int64]dto.Session, error) {
	data, err := s.common.getAllDataFromStorage()

	if err != nil {
		if os.IsNotExist(err) {
			return map[int64]dto.Session{}, nil
		}
		return nil, err
	}

	sessions := map[int64]dto.Session{}

	if err = json.Unmarshal(data, &sessions); err != nil {
		return nil, err
	}

	return sessions, nil
}
