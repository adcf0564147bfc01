package checkin

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/PawsCheckinService/internal/domain"
)

// Repository хранилище сессий заезда в памяти процесса.
// Черновики не переживают рестарт и не сохраняются частично.
type Repository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.CheckinSession
}

// NewRepository создает пустое хранилище сессий
func NewRepository() *Repository {
	return &Repository{sessions: make(map[uuid.UUID]*domain.CheckinSession)}
}

// Create сохраняет новую сессию
func (r *Repository) Create(ctx context.Context, session *domain.CheckinSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; ok {
		return fmt.Errorf("%w: id=%s", ErrSessionExists, session.ID)
	}
	r.sessions[session.ID] = session.Clone()
	return nil
}

// Get возвращает копию сессии
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*domain.CheckinSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session.Clone(), nil
}

// Update атомарно изменяет сессию функцией fn.
// Если fn вернула ошибку, сохраненная сессия не меняется.
func (r *Repository) Update(
	ctx context.Context,
	id uuid.UUID,
	fn func(session *domain.CheckinSession) error,
) (*domain.CheckinSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}

	r.sessions[id] = next
	return next.Clone(), nil
}

// Delete удаляет сессию
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Sweep удаляет сессии, не изменявшиеся дольше ttl.
// Сессии с отправкой в процессе не удаляются. Возвращает ID удаленных сессий.
func (r *Repository) Sweep(now time.Time, ttl time.Duration) []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := make([]uuid.UUID, 0)
	for id, session := range r.sessions {
		if session.Submitting {
			continue
		}
		if now.Sub(session.UpdatedAt) > ttl {
			delete(r.sessions, id)
			removed = append(removed, id)
		}
	}
	return removed
}

// Len количество сессий в хранилище
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
