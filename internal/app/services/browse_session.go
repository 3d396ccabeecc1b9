package services

import (
	"sync"
	"time"

	"github.com/yigit/grantsphere/internal/app/models"
	"github.com/yigit/grantsphere/internal/app/models/dto"
	"github.com/yigit/grantsphere/internal/catalog"
	"github.com/yigit/grantsphere/internal/pkg/apperrors"
)

// CommandKind names a browse command
type CommandKind string

// Browse commands
const (
	CommandToggleFilter       CommandKind = "toggleFilter"
	CommandClearFilters       CommandKind = "clearFilters"
	CommandSetQuery           CommandKind = "setQuery"
	CommandFocusSearch        CommandKind = "focusSearch"
	CommandDismissSearch      CommandKind = "dismissSearch"
	CommandPressKey           CommandKind = "pressKey"
	CommandSelectSearchResult CommandKind = "selectSearchResult"
	CommandSelect             CommandKind = "select"
	CommandCloseDetail        CommandKind = "closeDetail"
	CommandCarousel           CommandKind = "carousel"
	CommandDrag               CommandKind = "drag"
)

// Carousel actions
const (
	CarouselNext = "next"
	CarouselPrev = "prev"
	CarouselGoTo = "goto"
)

// Drag phases
const (
	DragStart = "start"
	DragMove  = "move"
	DragEnd   = "end"
)

// Command is one user interaction applied to a browse session. Only the
// fields relevant to Kind are read.
type Command struct {
	Kind     CommandKind
	Category string
	Value    string
	Checked  bool
	Query    string
	Key      string
	ID       int64
	Action   string
	Index    int
	Phase    string
	Position float64
}

// NewCommand converts the generic request body into a Command
func NewCommand(req dto.CommandRequest) Command {
	return Command{
		Kind:     CommandKind(req.Kind),
		Category: req.Category,
		Value:    req.Value,
		Checked:  req.Checked,
		Query:    req.Query,
		Key:      req.Key,
		ID:       req.ID,
		Action:   req.Action,
		Index:    req.Index,
		Phase:    req.Phase,
		Position: req.Position,
	}
}

// browseSession owns the view state of one client. Every field below mu is
// guarded by it.
type browseSession struct {
	id       string
	debounce time.Duration
	onChange func(*dto.BrowseState)

	mu        sync.Mutex
	records   []*models.Scholarship
	byID      map[int64]*models.Scholarship
	filters   catalog.Selection
	filtered  []*models.Scholarship
	displayed []*models.Scholarship
	selected  *models.Scholarship
	search    *catalog.SearchBox
	carousel  *catalog.Carousel
	pending   bool
	timer     *time.Timer
	version   uint64
	lastSeen  time.Time
	closed    bool
}

type sessionOptions struct {
	searchLimit int
	groupSize   int
	debounce    time.Duration
	onChange    func(*dto.BrowseState)
}

func newBrowseSession(id string, records, recommended []*models.Scholarship, opts sessionOptions) *browseSession {
	byID := make(map[int64]*models.Scholarship, len(records))
	for _, rec := range records {
		byID[rec.ID] = rec
	}

	s := &browseSession{
		id:        id,
		debounce:  opts.debounce,
		onChange:  opts.onChange,
		records:   records,
		byID:      byID,
		filters:   catalog.Selection{},
		filtered:  records,
		displayed: records,
		search:    catalog.NewSearchBox(opts.searchLimit),
		carousel:  catalog.NewCarousel(opts.groupSize),
		lastSeen:  time.Now(),
	}
	s.carousel.SetItems(recommended)
	return s
}

// apply runs one command and returns the resulting snapshot
func (s *browseSession) apply(cmd Command) (*dto.BrowseState, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, apperrors.ErrSessionNotFound
	}
	s.lastSeen = time.Now()

	changed, err := s.applyLocked(cmd)
	if changed {
		s.version++
	}
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	state := s.snapshotLocked()
	s.mu.Unlock()

	if changed && s.onChange != nil {
		s.onChange(state)
	}
	return state, nil
}

func (s *browseSession) applyLocked(cmd Command) (bool, error) {
	switch cmd.Kind {
	case CommandToggleFilter:
		category, err := catalog.ParseCategory(cmd.Category)
		if err != nil {
			return false, err
		}
		if !s.filters.Toggle(category, cmd.Value, cmd.Checked) {
			return false, nil
		}
		s.scheduleLocked()
		return true, nil

	case CommandClearFilters:
		if s.filters.IsEmpty() {
			return false, nil
		}
		s.filters = catalog.Selection{}
		s.scheduleLocked()
		return true, nil
	}

	// Everything else observes the filtered list, so pending filter changes
	// land first.
	flushed := s.flushLocked()

	switch cmd.Kind {
	case CommandSetQuery:
		s.search.SetQuery(s.records, cmd.Query)
		return true, nil

	case CommandFocusSearch:
		open := s.search.Open
		s.search.Focus()
		return flushed || open != s.search.Open, nil

	case CommandDismissSearch:
		open := s.search.Open
		s.search.Dismiss()
		return flushed || open != s.search.Open, nil

	case CommandPressKey:
		key := catalog.Key(cmd.Key)
		if !key.IsValid() {
			return flushed, apperrors.NewCustomError(apperrors.ErrUnknownSearchKey, "unsupported key: "+cmd.Key)
		}
		if rec := s.search.Press(key); rec != nil {
			s.showSearchResultLocked(rec)
		}
		return true, nil

	case CommandSelectSearchResult:
		rec := s.searchResultLocked(cmd.ID)
		if rec == nil {
			return flushed, apperrors.ErrScholarshipNotFound
		}
		s.search.Commit(rec)
		s.showSearchResultLocked(rec)
		return true, nil

	case CommandSelect:
		rec, ok := s.byID[cmd.ID]
		if !ok {
			return flushed, apperrors.ErrScholarshipNotFound
		}
		s.selected = rec
		return true, nil

	case CommandCloseDetail:
		if s.selected == nil {
			return flushed, nil
		}
		s.selected = nil
		return true, nil

	case CommandCarousel:
		switch cmd.Action {
		case CarouselNext:
			s.carousel.Next()
		case CarouselPrev:
			s.carousel.Prev()
		case CarouselGoTo:
			s.carousel.GoTo(cmd.Index)
		default:
			return flushed, apperrors.NewCustomError(apperrors.ErrUnknownCarouselAction, "unsupported carousel action: "+cmd.Action)
		}
		return true, nil

	case CommandDrag:
		switch cmd.Phase {
		case DragStart:
			s.carousel.BeginDrag(cmd.Position)
		case DragMove:
			s.carousel.DragTo(cmd.Position)
		case DragEnd:
			s.carousel.EndDrag()
		default:
			return flushed, apperrors.NewCustomError(apperrors.ErrUnknownCarouselAction, "unsupported drag phase: "+cmd.Phase)
		}
		return true, nil
	}

	return flushed, apperrors.NewBadRequestError("unsupported command: " + string(cmd.Kind))
}

func (s *browseSession) searchResultLocked(id int64) *models.Scholarship {
	for _, rec := range s.search.Results {
		if rec.ID == id {
			return rec
		}
	}
	return nil
}

// showSearchResultLocked narrows the table to the chosen record and opens it
func (s *browseSession) showSearchResultLocked(rec *models.Scholarship) {
	s.selected = rec
	s.displayed = []*models.Scholarship{rec}
}

// scheduleLocked marks the filtered list stale and (re)arms the debounce
// timer. A zero debounce recomputes immediately.
func (s *browseSession) scheduleLocked() {
	s.pending = true
	if s.debounce <= 0 {
		s.flushLocked()
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.onDebounce)
}

func (s *browseSession) onDebounce() {
	s.mu.Lock()
	if s.closed || !s.pending {
		s.mu.Unlock()
		return
	}
	changed := s.flushLocked()
	if changed {
		s.version++
	}
	state := s.snapshotLocked()
	s.mu.Unlock()

	if changed && s.onChange != nil {
		s.onChange(state)
	}
}

// flushLocked recomputes the filtered list if a filter change is pending.
// The table is only replaced when the filtered result actually differs.
func (s *browseSession) flushLocked() bool {
	if !s.pending {
		return false
	}
	s.pending = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	next := catalog.Filter(s.records, s.filters)
	if sameList(s.filtered, next) {
		return false
	}
	s.filtered = next
	s.displayed = next
	return true
}

func sameList(a, b []*models.Scholarship) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// snapshot flushes pending filter changes and returns the current state
func (s *browseSession) snapshot() (*dto.BrowseState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, apperrors.ErrSessionNotFound
	}
	s.lastSeen = time.Now()
	if s.flushLocked() {
		s.version++
	}
	return s.snapshotLocked(), nil
}

func (s *browseSession) snapshotLocked() *dto.BrowseState {
	filters := make(map[string][]string, len(s.filters))
	active := make(map[string]int, len(s.filters))
	for c, values := range s.filters {
		filters[string(c)] = append([]string(nil), values...)
		active[string(c)] = len(values)
	}

	return &dto.BrowseState{
		SessionID:      s.id,
		Version:        s.version,
		Filters:        filters,
		ActiveFilters:  active,
		FiltersPending: s.pending,
		Items:          dto.NewScholarshipRows(s.displayed),
		Total:          len(s.displayed),
		Selected:       dto.NewScholarshipDetail(s.selected),
		Search: dto.SearchState{
			Query:     s.search.Query,
			Results:   dto.NewScholarshipRows(s.search.Results),
			Open:      s.search.Open,
			Highlight: s.search.Highlight,
			NotFound:  s.search.NotFound(),
		},
		Carousel: dto.CarouselState{
			Groups:     dto.NewCarouselGroups(s.carousel.Groups()),
			GroupCount: s.carousel.GroupCount(),
			Index:      s.carousel.Index(),
			Offset:     s.carousel.Offset(),
			Dragging:   s.carousel.Dragging(),
		},
	}
}

func (s *browseSession) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *browseSession) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
