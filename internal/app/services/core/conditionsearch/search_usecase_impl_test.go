package conditionsearch

import (
	"context"
	"sync"
	"testing"
	"time"

	"prosedur-service/internal/app/config"
	"prosedur-service/internal/pkg/constvars"
	"prosedur-service/internal/pkg/dto/requests"
	"prosedur-service/internal/pkg/emr_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeConditionClient struct {
	mu      sync.Mutex
	results map[string][]emr_dto.ConditionCandidate
	err     error
}

func (f *fakeConditionClient) SearchConditionConcepts(ctx context.Context, query string) ([]emr_dto.ConditionCandidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.results[query], nil
}

func newTestSearchUsecase(client *fakeConditionClient, debounceMs int) (*searchUsecase, func()) {
	registry := newSearchSessionRegistry(30 * time.Minute)
	uc := &searchUsecase{
		ConditionEmrClient: client,
		InternalConfig: &config.InternalConfig{
			App: config.App{SearchDebounceInMilliseconds: debounceMs},
			EMR: config.EMR{RequestTimeoutInSeconds: 5},
		},
		Registry: registry,
		Log:      zap.NewNop(),
	}
	return uc, registry.stop
}

func TestSearchSessionLifecycle(t *testing.T) {
	client := &fakeConditionClient{
		results: map[string][]emr_dto.ConditionCandidate{
			"bleed": {{Display: "Bleeding", Concept: emr_dto.Concept{UUID: "bleeding-concept"}}},
		},
	}
	uc, stop := newTestSearchUsecase(client, 5)
	defer stop()

	ctx := context.Background()

	state, err := uc.CreateSearchSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, constvars.SearchStateIdle, state.State)
	assert.False(t, state.IsCandidateListVisible)

	state, err = uc.UpdateQuery(ctx, state.ID, &requests.UpdateSearchQueryRequest{Query: "bleed"})
	require.NoError(t, err)
	assert.Equal(t, constvars.SearchStateDebouncing, state.State)
	assert.True(t, state.IsCandidateListVisible)
	assert.Equal(t, "bleed", state.Query)

	sessionID := state.ID
	assert.Eventually(t, func() bool {
		current, err := uc.GetSearchSession(ctx, sessionID)
		return err == nil && current.State == constvars.SearchStateResultsVisible
	}, time.Second, 5*time.Millisecond)

	state, err = uc.GetSearchSession(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, "bleed", state.DebouncedQuery)
	require.Len(t, state.Candidates, 1)
	assert.Equal(t, "Bleeding", state.Candidates[0].Display)
	assert.Equal(t, "bleeding-concept", state.Candidates[0].ConceptUUID)
}

func TestSearchSessionNotFound(t *testing.T) {
	uc, stop := newTestSearchUsecase(&fakeConditionClient{}, 5)
	defer stop()

	_, err := uc.GetSearchSession(context.Background(), "missing")
	assert.Error(t, err)
}

func TestClearQueryResetsFromAnyState(t *testing.T) {
	client := &fakeConditionClient{
		results: map[string][]emr_dto.ConditionCandidate{
			"ble": {{Display: "Bleeding", Concept: emr_dto.Concept{UUID: "bleeding-concept"}}},
		},
	}
	uc, stop := newTestSearchUsecase(client, 5)
	defer stop()

	ctx := context.Background()

	state, err := uc.CreateSearchSession(ctx)
	require.NoError(t, err)
	sessionID := state.ID

	_, err = uc.UpdateQuery(ctx, sessionID, &requests.UpdateSearchQueryRequest{Query: "ble"})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		current, err := uc.GetSearchSession(ctx, sessionID)
		return err == nil && current.State == constvars.SearchStateResultsVisible
	}, time.Second, 5*time.Millisecond)

	state, err = uc.UpdateQuery(ctx, sessionID, &requests.UpdateSearchQueryRequest{Query: ""})
	require.NoError(t, err)
	assert.Equal(t, constvars.SearchStateIdle, state.State)
	assert.False(t, state.IsCandidateListVisible)
	assert.Empty(t, state.Candidates)
	assert.Empty(t, state.Query)
	assert.Empty(t, state.DebouncedQuery)
}

func TestStaleSearchResponseDiscarded(t *testing.T) {
	client := &fakeConditionClient{
		results: map[string][]emr_dto.ConditionCandidate{
			"old": {{Display: "Old", Concept: emr_dto.Concept{UUID: "old-concept"}}},
			"new": {{Display: "New", Concept: emr_dto.Concept{UUID: "new-concept"}}},
		},
	}
	uc, stop := newTestSearchUsecase(client, 5)
	defer stop()

	ctx := context.Background()

	state, err := uc.CreateSearchSession(ctx)
	require.NoError(t, err)
	sessionID := state.ID

	session, ok := uc.Registry.get(sessionID)
	require.True(t, ok)

	// Capture the sequence of the first query, then move the session on
	// before the first search completes.
	_, err = uc.UpdateQuery(ctx, sessionID, &requests.UpdateSearchQueryRequest{Query: "old"})
	require.NoError(t, err)

	session.mu.Lock()
	staleSeq := session.seq
	session.timer.Stop()
	session.mu.Unlock()

	_, err = uc.UpdateQuery(ctx, sessionID, &requests.UpdateSearchQueryRequest{Query: "new"})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		current, err := uc.GetSearchSession(ctx, sessionID)
		return err == nil && current.State == constvars.SearchStateResultsVisible
	}, time.Second, 5*time.Millisecond)

	// The stale dispatch arrives late and must not overwrite the results.
	uc.dispatchSearch(session, staleSeq, "test")

	current, err := uc.GetSearchSession(ctx, sessionID)
	require.NoError(t, err)
	require.Len(t, current.Candidates, 1)
	assert.Equal(t, "new-concept", current.Candidates[0].ConceptUUID)
	assert.Equal(t, "new", current.DebouncedQuery)
}

func TestSelectComplicationAppendsWithoutDeduplication(t *testing.T) {
	uc, stop := newTestSearchUsecase(&fakeConditionClient{}, 5)
	defer stop()

	ctx := context.Background()

	state, err := uc.CreateSearchSession(ctx)
	require.NoError(t, err)
	sessionID := state.ID

	candidate := &requests.SelectComplicationRequest{Display: "Bleeding", ConceptUUID: "bleeding-concept"}

	state, err = uc.SelectComplication(ctx, sessionID, candidate)
	require.NoError(t, err)
	assert.Equal(t, constvars.SearchStateIdle, state.State)
	assert.False(t, state.IsCandidateListVisible)
	assert.Empty(t, state.Query)

	state, err = uc.SelectComplication(ctx, sessionID, candidate)
	require.NoError(t, err)

	require.Len(t, state.Selected, 2)
	assert.Equal(t, "bleeding-concept", state.Selected[0].ConceptUUID)
	assert.Equal(t, "bleeding-concept", state.Selected[1].ConceptUUID)
	assert.NotEqual(t, state.Selected[0].SelectionID, state.Selected[1].SelectionID)
}

func TestSelectComplicationRequiresCompleteCandidate(t *testing.T) {
	uc, stop := newTestSearchUsecase(&fakeConditionClient{}, 5)
	defer stop()

	ctx := context.Background()

	state, err := uc.CreateSearchSession(ctx)
	require.NoError(t, err)

	_, err = uc.SelectComplication(ctx, state.ID, &requests.SelectComplicationRequest{Display: "Bleeding"})
	assert.Error(t, err)

	_, err = uc.SelectComplication(ctx, state.ID, &requests.SelectComplicationRequest{ConceptUUID: "bleeding-concept"})
	assert.Error(t, err)
}

func TestRemoveComplicationByIdentity(t *testing.T) {
	uc, stop := newTestSearchUsecase(&fakeConditionClient{}, 5)
	defer stop()

	ctx := context.Background()

	state, err := uc.CreateSearchSession(ctx)
	require.NoError(t, err)
	sessionID := state.ID

	candidate := &requests.SelectComplicationRequest{Display: "Bleeding", ConceptUUID: "bleeding-concept"}
	_, err = uc.SelectComplication(ctx, sessionID, candidate)
	require.NoError(t, err)
	state, err = uc.SelectComplication(ctx, sessionID, candidate)
	require.NoError(t, err)
	require.Len(t, state.Selected, 2)

	removed := state.Selected[0].SelectionID
	kept := state.Selected[1].SelectionID

	state, err = uc.RemoveComplication(ctx, sessionID, removed)
	require.NoError(t, err)
	require.Len(t, state.Selected, 1)
	assert.Equal(t, kept, state.Selected[0].SelectionID)

	// Unknown selection IDs are a no-op.
	state, err = uc.RemoveComplication(ctx, sessionID, "unknown")
	require.NoError(t, err)
	assert.Len(t, state.Selected, 1)
}

func TestSelectedComplications(t *testing.T) {
	uc, stop := newTestSearchUsecase(&fakeConditionClient{}, 5)
	defer stop()

	ctx := context.Background()

	state, err := uc.CreateSearchSession(ctx)
	require.NoError(t, err)

	_, err = uc.SelectComplication(ctx, state.ID, &requests.SelectComplicationRequest{Display: "Bleeding", ConceptUUID: "bleeding-concept"})
	require.NoError(t, err)

	selected, err := uc.SelectedComplications(ctx, state.ID)
	require.NoError(t, err)
	require.Len(t, selected, 1)
	assert.Equal(t, "Bleeding", selected[0].Display)
}
