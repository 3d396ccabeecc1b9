package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/grantsphere/internal/app/models/dto"
	"github.com/yigit/grantsphere/internal/pkg/apperrors"
)

// StatePublisher receives every state change of a browse session
type StatePublisher interface {
	Publish(sessionID string, state *dto.BrowseState)
	CloseSession(sessionID string)
}

// BrowseService manages per-client browse sessions
type BrowseService interface {
	Create(ctx context.Context) (*dto.BrowseState, error)
	State(ctx context.Context, sessionID string) (*dto.BrowseState, error)
	Dispatch(ctx context.Context, sessionID string, cmd Command) (*dto.BrowseState, error)
	Delete(ctx context.Context, sessionID string) error
	Exists(sessionID string) bool
	Count() int
	Sweep(now time.Time) int
	Run(ctx context.Context)
}

// BrowseServiceConfig tunes session behavior
type BrowseServiceConfig struct {
	FilterDebounce time.Duration
	TTL            time.Duration
	SweepInterval  time.Duration
	MaxSessions    int
}

// browseServiceImpl implements BrowseService
type browseServiceImpl struct {
	catalog   ScholarshipService
	cfg       BrowseServiceConfig
	publisher StatePublisher
	logger    zerolog.Logger

	mu       sync.RWMutex
	sessions map[string]*browseSession
}

// NewBrowseService creates a new BrowseService. publisher may be nil.
func NewBrowseService(
	catalogService ScholarshipService,
	cfg BrowseServiceConfig,
	publisher StatePublisher,
	logger zerolog.Logger,
) BrowseService {
	return &browseServiceImpl{
		catalog:   catalogService,
		cfg:       cfg,
		publisher: publisher,
		logger:    logger,
		sessions:  make(map[string]*browseSession),
	}
}

// Create opens a new session showing the full catalog
func (s *browseServiceImpl) Create(ctx context.Context) (*dto.BrowseState, error) {
	records, err := s.catalog.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	recommended, err := s.catalog.Recommendations(ctx)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	session := newBrowseSession(id, records, recommended, sessionOptions{
		searchLimit: s.catalog.SearchLimit(),
		groupSize:   s.catalog.GroupSize(),
		debounce:    s.cfg.FilterDebounce,
		onChange:    s.publishFunc(id),
	})

	s.mu.Lock()
	if s.cfg.MaxSessions > 0 && len(s.sessions) >= s.cfg.MaxSessions {
		s.mu.Unlock()
		session.close()
		s.logger.Warn().Int("maxSessions", s.cfg.MaxSessions).Msg("Browse session limit reached")
		return nil, apperrors.ErrSessionLimit
	}
	s.sessions[id] = session
	s.mu.Unlock()

	s.logger.Info().Str("sessionID", id).Msg("Browse session created")
	return session.snapshot()
}

func (s *browseServiceImpl) publishFunc(id string) func(*dto.BrowseState) {
	if s.publisher == nil {
		return nil
	}
	return func(state *dto.BrowseState) {
		s.publisher.Publish(id, state)
	}
}

func (s *browseServiceImpl) get(sessionID string) (*browseSession, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, apperrors.NewCustomError(apperrors.ErrSessionNotFound,
			fmt.Sprintf("browse session %s not found", sessionID))
	}
	return session, nil
}

// State returns the current snapshot of a session
func (s *browseServiceImpl) State(ctx context.Context, sessionID string) (*dto.BrowseState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	session, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}
	return session.snapshot()
}

// Dispatch applies one command to a session
func (s *browseServiceImpl) Dispatch(ctx context.Context, sessionID string, cmd Command) (*dto.BrowseState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	session, err := s.get(sessionID)
	if err != nil {
		return nil, err
	}

	state, err := session.apply(cmd)
	if err != nil {
		s.logger.Debug().
			Err(err).
			Str("sessionID", sessionID).
			Str("command", string(cmd.Kind)).
			Msg("Browse command rejected")
		return nil, err
	}
	return state, nil
}

// Delete closes a session
func (s *browseServiceImpl) Delete(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	if !ok {
		return apperrors.NewCustomError(apperrors.ErrSessionNotFound,
			fmt.Sprintf("browse session %s not found", sessionID))
	}

	s.closeSession(sessionID, session)
	s.logger.Info().Str("sessionID", sessionID).Msg("Browse session deleted")
	return nil
}

func (s *browseServiceImpl) closeSession(id string, session *browseSession) {
	session.close()
	if s.publisher != nil {
		s.publisher.CloseSession(id)
	}
}

// Exists reports whether a session is open
func (s *browseServiceImpl) Exists(sessionID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[sessionID]
	return ok
}

// Count returns the number of open sessions
func (s *browseServiceImpl) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep closes sessions idle for longer than the TTL and returns how many
// were closed
func (s *browseServiceImpl) Sweep(now time.Time) int {
	if s.cfg.TTL <= 0 {
		return 0
	}

	expired := make(map[string]*browseSession)
	s.mu.Lock()
	for id, session := range s.sessions {
		if now.Sub(session.idleSince()) > s.cfg.TTL {
			expired[id] = session
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for id, session := range expired {
		s.closeSession(id, session)
	}
	if len(expired) > 0 {
		s.logger.Info().Int("expired", len(expired)).Msg("Idle browse sessions swept")
	}
	return len(expired)
}

// Run sweeps idle sessions until ctx is cancelled
func (s *browseServiceImpl) Run(ctx context.Context) {
	if s.cfg.TTL <= 0 || s.cfg.SweepInterval <= 0 {
		return
	}

	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Browse session sweeper stopped")
			return
		case now := <-ticker.C:
			s.Sweep(now)
		}
	}
}
