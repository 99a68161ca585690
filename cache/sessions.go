package cache

import (
	"encoding/json"
	"strconv"

	"telegram-schedule-bot-core/dto"
	"telegram-schedule-bot-core/exceptions"
)

const userSessionHashKey = "user:session"

// SessionCacheProvider keeps session snapshots in a redis hash keyed by
// user id, an alternative to the file snapshot for multi-instance setups.
type SessionCacheProvider struct {
	common *CommonProvider
}

func NewSessionCacheProvider(common *CommonProvider) *SessionCacheProvider {
	return &SessionCacheProvider{common: common}
}

func (s *SessionCacheProvider) StoreData(sessions map[int64]dto.Session) error {
	for userId, session := range sessions {
		data, err := json.Marshal(session)

		if err != nil {
			return exceptions.InternalError
		}

		if err = s.common.saveIntoHash(userSessionHashKey, strconv.FormatInt(userId, 10), data); err != nil {
			return err
		}
	}

	return nil
}

func (s *SessionCacheProvider) RestoreData() (map[int64]dto.Session, error) {
	values, err := s.common.getAllFromHash(userSessionHashKey)

	if err != nil {
		return nil, err
	}

	sessions := make(map[int64]dto.Session, len(values))

	for key, value := range values {
		userId, err := strconv.ParseInt(key, 10, 64)

		if err != nil {
			continue
		}

		var session dto.Session

		if err = json.Unmarshal([]byte(value), &session); err != nil {
			continue
		}

		sessions[userId] = session
	}

	return sessions, nil
}
