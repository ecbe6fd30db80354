package conditionsearch

import (
	"sync"
	"time"

	"prosedur-service/internal/pkg/constvars"
	"prosedur-service/internal/pkg/dto/responses"
)

// searchSession is the server-side state of one incremental complication
// search. All fields are guarded by mu; seq is a monotonic counter bumped on
// every query change so in-flight EMR responses can be recognized as stale.
type searchSession struct {
	mu             sync.Mutex
	id             string
	query          string
	debouncedQuery string
	state          string
	candidates     []responses.ConditionCandidate
	listVisible    bool
	selected       []responses.SelectedComplication
	seq            uint64
	timer          *time.Timer
	lastActive     time.Time
}

func newSearchSession(id string) *searchSession {
	return &searchSession{
		id:         id,
		state:      constvars.SearchStateIdle,
		lastActive: time.Now(),
	}
}

// snapshot must be called with mu held.
func (s *searchSession) snapshot() *responses.SearchSessionState {
	candidates := make([]responses.ConditionCandidate, len(s.candidates))
	copy(candidates, s.candidates)
	selected := make([]responses.SelectedComplication, len(s.selected))
	copy(selected, s.selected)

	return &responses.SearchSessionState{
		ID:                     s.id,
		Query:                  s.query,
		DebouncedQuery:         s.debouncedQuery,
		State:                  s.state,
		IsSearching:            s.state == constvars.SearchStateSearching,
		Candidates:             candidates,
		IsCandidateListVisible: s.listVisible,
		Selected:               selected,
	}
}

// reset returns the session to idle and invalidates any pending or in-flight
// search. Must be called with mu held.
func (s *searchSession) reset() {
	s.seq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.query = ""
	s.debouncedQuery = ""
	s.candidates = nil
	s.listVisible = false
	s.state = constvars.SearchStateIdle
}
