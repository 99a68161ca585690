package services

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"telegram-schedule-bot-core/abstractions"
	"telegram-schedule-bot-core/actions"
	"telegram-schedule-bot-core/dto"
)

// SessionService owns one Session per user for the process lifetime. The map
// is the source of truth; the provider only snapshots it asynchronously so a
// restart can pick up in-flight build/edit flows. A nil provider means
// memory-only sessions.
type SessionService struct {
	mutex    sync.Mutex
	sessions map[int64]dto.Session
	provider abstractions.ISessionProvider
}

func NewSessionService(provider abstractions.ISessionProvider) *SessionService {
	sessions := map[int64]dto.Session{}

	if provider != nil {
		restored, err := provider.RestoreData()

		if err != nil {
			logrus.Warnln("Failed restore sessions, starting empty: ", err.Error())
		} else {
			sessions = restored
		}
	}

	return &SessionService{sessions: sessions, provider: provider}
}

func (s *SessionService) GetSession(userId int64) dto.Session {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	session, ok := s.sessions[userId]

	if !ok {
		session = dto.Session{Id: uuid.NewString(), State: actions.StateMenu}
		s.saveLocked(userId, session)
	}

	return session
}

func (s *SessionService) SaveSession(userId int64, session dto.Session) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.saveLocked(userId, session)
}

// ResetSession parks the user back on the menu. The session keeps its id,
// it is never deleted.
func (s *SessionService) ResetSession(userId int64) dto.Session {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	session, ok := s.sessions[userId]

	if !ok {
		session = dto.Session{Id: uuid.NewString()}
	}

	session.State = actions.StateMenu
	session.Pending = nil

	s.saveLocked(userId, session)

	return session
}

func (s *SessionService) saveLocked(userId int64, session dto.Session) {
	s.sessions[userId] = session

	if s.provider == nil {
		return
	}

	snapshot := make(map[int64]dto.Session, len(s.sessions))
	for id, sess := range s.sessions {
		snapshot[id] = sess
	}

	go func() {
		if err := s.provider.StoreData(snapshot); err != nil {
			logrus.Warnln("Failed snapshot sessions: ", err.Error())
		}
	}()
}
