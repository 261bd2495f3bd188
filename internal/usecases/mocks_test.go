package usecases

import (
	"context"
	"time"

	"sdp-site.backend/internal/domain/entities"
	domainerrors "sdp-site.backend/internal/domain/errors"
	"sdp-site.backend/pkg/redis"
)

type userRepoStub struct {
	createFn     func(ctx context.Context, user *entities.User) error
	getByEmailFn func(ctx context.Context, email string) (*entities.User, error)
	getByIDFn    func(ctx context.Context, id uint) (*entities.User, error)
	countFn      func(ctx context.Context) (int64, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

type contactRepoStub struct {
	createFn     func(ctx context.Context, msg *entities.ContactMessage) error
	listLatestFn func(ctx context.Context, limit int) ([]*entities.ContactMessage, error)
	deleteFn     func(ctx context.Context, id uint) error
	countFn      func(ctx context.Context) (int64, error)
}

func (s *contactRepoStub) Create(ctx context.Context, msg *entities.ContactMessage) error {
	if s.createFn != nil {
		return s.createFn(ctx, msg)
	}
	msg.ID = 1
	return nil
}

func (s *contactRepoStub) ListLatest(ctx context.Context, limit int) ([]*entities.ContactMessage, error) {
	if s.listLatestFn != nil {
		return s.listLatestFn(ctx, limit)
	}
	return nil, nil
}

func (s *contactRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *contactRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

// memSessionStore keeps sessions in a map so auth tests need no Redis.
type memSessionStore struct {
	sessions map[string]*redis.SessionData
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*redis.SessionData)}
}

func (m *memSessionStore) CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error {
	m.sessions[sessionID] = data
	return nil
}

func (m *memSessionStore) GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error) {
	data, ok := m.sessions[sessionID]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return data, nil
}

func (m *memSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

type mailerStub struct {
	sendFn func(ctx context.Context, to, subject, html, text string) error
	sent   []string
}

func (m *mailerStub) Send(ctx context.Context, to, subject, html, text string) error {
	m.sent = append(m.sent, subject)
	if m.sendFn != nil {
		return m.sendFn(ctx, to, subject, html, text)
	}
	return nil
}
