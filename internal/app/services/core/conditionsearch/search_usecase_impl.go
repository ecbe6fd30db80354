package conditionsearch

import (
	"context"
	"sync"
	"time"

	"prosedur-service/internal/app/config"
	"prosedur-service/internal/app/contracts"
	"prosedur-service/internal/pkg/constvars"
	"prosedur-service/internal/pkg/dto/requests"
	"prosedur-service/internal/pkg/dto/responses"
	"prosedur-service/internal/pkg/exceptions"
	"prosedur-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type searchUsecase struct {
	ConditionEmrClient contracts.ConditionEmrClient
	InternalConfig     *config.InternalConfig
	Registry           *searchSessionRegistry
	Log                *zap.Logger
}

var (
	searchUsecaseInstance contracts.SearchUsecase
	searchUsecaseStop     func()
	onceSearchUsecase     sync.Once
)

// NewSearchUsecase builds the search usecase and returns a stop function
// that halts the session sweeper on shutdown.
func NewSearchUsecase(
	conditionEmrClient contracts.ConditionEmrClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) (contracts.SearchUsecase, func()) {
	onceSearchUsecase.Do(func() {
		registry := newSearchSessionRegistry(time.Duration(internalConfig.App.SearchSessionTTLInMinutes) * time.Minute)
		searchUsecaseInstance = &searchUsecase{
			ConditionEmrClient: conditionEmrClient,
			InternalConfig:     internalConfig,
			Registry:           registry,
			Log:                logger,
		}
		searchUsecaseStop = registry.stop
	})
	return searchUsecaseInstance, searchUsecaseStop
}

func (uc *searchUsecase) CreateSearchSession(ctx context.Context) (*responses.SearchSessionState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("searchUsecase.CreateSearchSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session := newSearchSession(utils.GenerateSessionID())
	uc.Registry.add(session)

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.snapshot(), nil
}

func (uc *searchUsecase) GetSearchSession(ctx context.Context, searchSessionID string) (*responses.SearchSessionState, error) {
	session, ok := uc.Registry.get(searchSessionID)
	if !ok {
		return nil, exceptions.ErrSearchSessionNotFound(nil)
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return session.snapshot(), nil
}

// UpdateQuery is the typed input-changed message. A non-empty query starts a
// fresh debounce window; an empty query resets the session to idle from any
// state. Either way the sequence counter is bumped so a search still in
// flight for the previous query can never overwrite newer state.
func (uc *searchUsecase) UpdateQuery(ctx context.Context, searchSessionID string, request *requests.UpdateSearchQueryRequest) (*responses.SearchSessionState, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, ok := uc.Registry.get(searchSessionID)
	if !ok {
		return nil, exceptions.ErrSearchSessionNotFound(nil)
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.lastActive = time.Now()

	if request.Query == "" {
		session.reset()
		return session.snapshot(), nil
	}

	session.seq++
	if session.timer != nil {
		session.timer.Stop()
	}

	session.query = request.Query
	session.state = constvars.SearchStateDebouncing
	session.listVisible = true

	seq := session.seq
	debounce := time.Duration(uc.InternalConfig.App.SearchDebounceInMilliseconds) * time.Millisecond
	session.timer = time.AfterFunc(debounce, func() {
		uc.dispatchSearch(session, seq, requestID)
	})

	return session.snapshot(), nil
}

// dispatchSearch runs after the debounce window settles. The sequence number
// captured at scheduling time gates every state write: if the session moved
// on, both the dispatch and the eventual result are dropped.
func (uc *searchUsecase) dispatchSearch(session *searchSession, seq uint64, requestID string) {
	session.mu.Lock()
	if session.seq != seq {
		session.mu.Unlock()
		return
	}
	session.state = constvars.SearchStateSearching
	session.debouncedQuery = session.query
	query := session.query
	session.mu.Unlock()

	uc.Log.Info("searchUsecase.dispatchSearch searching",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, query),
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(uc.InternalConfig.EMR.RequestTimeoutInSeconds)*time.Second)
	defer cancel()

	emrCandidates, err := uc.ConditionEmrClient.SearchConditionConcepts(ctx, query)

	session.mu.Lock()
	defer session.mu.Unlock()

	if session.seq != seq {
		return
	}

	if err != nil {
		uc.Log.Error("searchUsecase.dispatchSearch error searching condition concepts",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		session.candidates = nil
		session.state = constvars.SearchStateResultsVisible
		return
	}

	candidates := make([]responses.ConditionCandidate, 0, len(emrCandidates))
	for _, emrCandidate := range emrCandidates {
		candidates = append(candidates, responses.ConditionCandidate{
			Display:     emrCandidate.Display,
			ConceptUUID: emrCandidate.Concept.UUID,
		})
	}

	session.candidates = candidates
	session.state = constvars.SearchStateResultsVisible
	session.listVisible = true
}

// SelectComplication appends the chosen candidate without de-duplication;
// picking the same concept twice yields two entries, each with its own
// selection ID. The session then returns to idle with its query cleared.
func (uc *searchUsecase) SelectComplication(ctx context.Context, searchSessionID string, request *requests.SelectComplicationRequest) (*responses.SearchSessionState, error) {
	session, ok := uc.Registry.get(searchSessionID)
	if !ok {
		return nil, exceptions.ErrSearchSessionNotFound(nil)
	}

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrSearchCandidateIncomplete(err)
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.lastActive = time.Now()
	session.selected = append(session.selected, responses.SelectedComplication{
		SelectionID: utils.GenerateSelectionID(),
		Display:     request.Display,
		ConceptUUID: request.ConceptUUID,
	})
	session.reset()

	return session.snapshot(), nil
}

// RemoveComplication filters by selection ID so duplicate concepts can be
// removed one at a time. No state transition happens.
func (uc *searchUsecase) RemoveComplication(ctx context.Context, searchSessionID, selectionID string) (*responses.SearchSessionState, error) {
	session, ok := uc.Registry.get(searchSessionID)
	if !ok {
		return nil, exceptions.ErrSearchSessionNotFound(nil)
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	session.lastActive = time.Now()
	kept := session.selected[:0]
	for _, selection := range session.selected {
		if selection.SelectionID != selectionID {
			kept = append(kept, selection)
		}
	}
	session.selected = kept

	return session.snapshot(), nil
}

func (uc *searchUsecase) SelectedComplications(ctx context.Context, searchSessionID string) ([]responses.SelectedComplication, error) {
	session, ok := uc.Registry.get(searchSessionID)
	if !ok {
		return nil, exceptions.ErrSearchSessionNotFound(nil)
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	selected := make([]responses.SelectedComplication, len(session.selected))
	copy(selected, session.selected)
	return selected, nil
}
