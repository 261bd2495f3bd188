package handlers

import (
	"context"
	"time"

	"sdp-site.backend/internal/domain/entities"
	domainerrors "sdp-site.backend/internal/domain/errors"
	"sdp-site.backend/pkg/redis"
)

type eventRepoStub struct {
	createFn       func(ctx context.Context, event *entities.Event) error
	getByIDFn      func(ctx context.Context, id uint) (*entities.Event, error)
	listUpcomingFn func(ctx context.Context, now time.Time) ([]*entities.Event, error)
	updateFn       func(ctx context.Context, event *entities.Event) error
	deleteFn       func(ctx context.Context, id uint) error
	countFn        func(ctx context.Context) (int64, error)
}

func (s *eventRepoStub) Create(ctx context.Context, event *entities.Event) error {
	if s.createFn != nil {
		return s.createFn(ctx, event)
	}
	event.ID = 1
	return nil
}

func (s *eventRepoStub) GetByID(ctx context.Context, id uint) (*entities.Event, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *eventRepoStub) ListUpcoming(ctx context.Context, now time.Time) ([]*entities.Event, error) {
	if s.listUpcomingFn != nil {
		return s.listUpcomingFn(ctx, now)
	}
	return nil, nil
}

func (s *eventRepoStub) Update(ctx context.Context, event *entities.Event) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, event)
	}
	return nil
}

func (s *eventRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *eventRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

type teamRepoStub struct {
	createFn  func(ctx context.Context, member *entities.TeamMember) error
	getByIDFn func(ctx context.Context, id uint) (*entities.TeamMember, error)
	listFn    func(ctx context.Context) ([]*entities.TeamMember, error)
	updateFn  func(ctx context.Context, member *entities.TeamMember) error
	deleteFn  func(ctx context.Context, id uint) error
	countFn   func(ctx context.Context) (int64, error)
}

func (s *teamRepoStub) Create(ctx context.Context, member *entities.TeamMember) error {
	if s.createFn != nil {
		return s.createFn(ctx, member)
	}
	member.ID = 1
	return nil
}

func (s *teamRepoStub) GetByID(ctx context.Context, id uint) (*entities.TeamMember, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *teamRepoStub) List(ctx context.Context) ([]*entities.TeamMember, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return nil, nil
}

func (s *teamRepoStub) Update(ctx context.Context, member *entities.TeamMember) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, member)
	}
	return nil
}

func (s *teamRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *teamRepoStub) Count(ctx context.Context) (int64, error) {
	if s.countFn != nil {
		return s.countFn(ctx)
	}
	return 0, nil
}

type faqRepoStub struct {
	createFn  func(ctx context.Context, faq *entities.FAQ) error
	getByIDFn func(ctx context.Context, id uint) (*entities.FAQ, error)
	listFn    func(ctx context.Context, includeInactive bool) ([]*entities.FAQ, error)
	updateFn  func(ctx context.Context, faq *entities.FAQ) error
	deleteFn  func(ctx context.Context, id uint) error
	countFn   func(ctx context.Context) (int64, error)
}

func (s *faqRepoStub) Create(ctx context.Context, faq *entities.FAQ) error {
	if s.createFn != nil {
		return s.createFn(ctx, faq)
	}
	faq.ID = 1
	return nil
}

func (s *faqRepoStub) GetByID(ctx context.Context, id uint) (*entities.FAQ, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, domainerrors.ErrNotFound
}

func (s *faqRepoStub) List(ctx context.Context, includeInactive bool) ([]*entities.FAQ, error) {
	if s.listFn != nil {
		return s.listFn(ctx, includeInactive)
	}
	return nil, nil
}

func (s *faqRepoStub) Update(ctx context.Context, faq *entities.FAQ) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, faq)
	}
	return nil
}

func (s *faqRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *faqRepoStub) Count(ctx context.Context) (int64, error) {
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

type userRepoStub struct {
	createFn     func(ctx context.Context, user *entities.User) error
	getByEmailFn func(ctx context.Context, email string) (*entities.User, error)
	getByIDFn    func(ctx context.Context, id uint) (*entities.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *entities.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	user.ID = 1
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
	return 0, nil
}

// memSessionStore keeps sessions in a map so auth handler tests need no
// Redis.
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

type noopMailer struct{}

func (noopMailer) Send(ctx context.Context, to, subject, html, text string) error {
	return nil
}
