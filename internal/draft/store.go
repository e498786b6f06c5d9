package draft

import (
	"sync"

	"github.com/google/uuid"
)

// Store - сессии редактирования правок. Черновик живет от открытия
// модального окна до сохранения или отмены; при отмене он просто
// выбрасывается. Один черновик - одна сессия.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*AdjustmentDraft
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*AdjustmentDraft),
	}
}

// Put регистрирует черновик и возвращает идентификатор сессии
func (s *Store) Put(d *AdjustmentDraft) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	sid := uuid.NewString()
	s.sessions[sid] = d
	return sid
}

// Get возвращает черновик сессии, если она еще жива
func (s *Store) Get(sid string) (*AdjustmentDraft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.sessions[sid]
	return d, ok
}

// Delete завершает сессию и выбрасывает черновик
func (s *Store) Delete(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sid)
}
