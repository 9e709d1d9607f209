package service

import (
	"context"
	"sync"

	"storefront/pkg/domain/model"
)

// SessionService mirrors the data service's authentication state and
// enriches it with the profile row for the signed-in user. Loading starts
// true and flips false exactly once, at the first resolution of the initial
// session lookup; later session changes apply silently.
type SessionService interface {
	Start(ctx context.Context)
	Close()
	Snapshot() (session *model.Session, profile *model.Profile, loading bool)
	SignIn(ctx context.Context, email, password string) error
	SignUp(ctx context.Context, email, password, fullName string) error
	SignOut(ctx context.Context) error
}

func NewSessionService(auth model.AuthGateway, profiles model.ProfileRepository) SessionService {
	return &sessionService{
		auth:     auth,
		profiles: profiles,
		loading:  true,
	}
}

type sessionService struct {
	auth     model.AuthGateway
	profiles model.ProfileRepository

	mu      sync.Mutex
	session *model.Session
	profile *model.Profile
	loading bool

	unsubscribe func()
}

// Start resolves the current session, fetches the matching profile when one
// exists, flips loading false, and subscribes to session change
// notifications. It is called once at application start.
func (s *sessionService) Start(ctx context.Context) {
	session, err := s.auth.CurrentSession(ctx)
	if err == nil {
		s.mu.Lock()
		s.session = session
		s.mu.Unlock()

		if session != nil {
			profile := s.fetchProfile(ctx, session.UserID)
			s.mu.Lock()
			s.profile = profile
			s.mu.Unlock()
		}
	}

	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()

	s.unsubscribe = s.auth.OnSessionChange(s.onSessionChange)
}

func (s *sessionService) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

// onSessionChange records the new session synchronously, then refreshes the
// profile in a task deliberately deferred until after this handler returns,
// so the auth gateway is never re-entered from its own notification path.
// Loading is not re-armed. When several refreshes are in flight the last one
// to resolve wins, even if it carries the older value.
func (s *sessionService) onSessionChange(session *model.Session) {
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	go func() {
		var profile *model.Profile
		if session != nil {
			profile = s.fetchProfile(context.Background(), session.UserID)
		}
		s.mu.Lock()
		s.profile = profile
		s.mu.Unlock()
	}()
}

// fetchProfile collapses every outcome to a profile or nil: a missing row
// and a failed lookup are both treated as "no profile".
func (s *sessionService) fetchProfile(ctx context.Context, userID string) *model.Profile {
	profile, err := s.profiles.Find(ctx, userID)
	if err != nil {
		return nil
	}
	return profile
}

func (s *sessionService) Snapshot() (*model.Session, *model.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session, s.profile, s.loading
}

func (s *sessionService) SignIn(ctx context.Context, email, password string) error {
	_, err := s.auth.SignIn(ctx, email, password)
	return err
}

func (s *sessionService) SignUp(ctx context.Context, email, password, fullName string) error {
	_, err := s.auth.SignUp(ctx, email, password, fullName)
	return err
}

func (s *sessionService) SignOut(ctx context.Context) error {
	return s.auth.SignOut(ctx)
}
