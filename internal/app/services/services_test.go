package services

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/yigit/grantsphere/internal/app/models/dto"
	"github.com/yigit/grantsphere/internal/app/repositories"
	"github.com/yigit/grantsphere/internal/seed"
)

func newCatalogService(t *testing.T, cfg ScholarshipServiceConfig) ScholarshipService {
	t.Helper()
	records, err := seed.LoadScholarships("", zerolog.Nop())
	require.NoError(t, err)
	repo, err := repositories.NewScholarshipRepository(records)
	require.NoError(t, err)
	return NewScholarshipService(repo, cfg, zerolog.Nop())
}

// recordingPublisher keeps every published state
type recordingPublisher struct {
	mu     sync.Mutex
	states []*dto.BrowseState
	closed []string
}

func (p *recordingPublisher) Publish(sessionID string, state *dto.BrowseState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.states = append(p.states, state)
}

func (p *recordingPublisher) CloseSession(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = append(p.closed, sessionID)
}

func (p *recordingPublisher) last() *dto.BrowseState {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.states) == 0 {
		return nil
	}
	return p.states[len(p.states)-1]
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.states)
}

func (p *recordingPublisher) closedSessions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.closed...)
}

func rowIDs(rows []dto.ScholarshipRow) []int64 {
	out := make([]int64, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}
