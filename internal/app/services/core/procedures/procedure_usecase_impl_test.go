package procedures

import (
	"context"
	"errors"
	"testing"

	"prosedur-service/internal/app/config"
	"prosedur-service/internal/app/models"
	"prosedur-service/internal/pkg/constvars"
	"prosedur-service/internal/pkg/dto/requests"
	"prosedur-service/internal/pkg/dto/responses"
	"prosedur-service/internal/pkg/emr_dto"
	"prosedur-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeOrderClient struct {
	order *emr_dto.ProcedureOrder
	err   error
	calls int
}

func (f *fakeOrderClient) FindOrderByUUID(ctx context.Context, orderUUID string) (*emr_dto.ProcedureOrder, error) {
	f.calls++
	return f.order, f.err
}

type fakeProcedureClient struct {
	err         error
	calls       int
	lastPayload *emr_dto.ProcedurePayload
}

func (f *fakeProcedureClient) CreateProcedure(ctx context.Context, payload *emr_dto.ProcedurePayload) error {
	f.calls++
	f.lastPayload = payload
	return f.err
}

type fakeSearchUsecase struct {
	selected []responses.SelectedComplication
	err      error
}

func (f *fakeSearchUsecase) CreateSearchSession(ctx context.Context) (*responses.SearchSessionState, error) {
	return nil, nil
}
func (f *fakeSearchUsecase) GetSearchSession(ctx context.Context, searchSessionID string) (*responses.SearchSessionState, error) {
	return nil, nil
}
func (f *fakeSearchUsecase) UpdateQuery(ctx context.Context, searchSessionID string, request *requests.UpdateSearchQueryRequest) (*responses.SearchSessionState, error) {
	return nil, nil
}
func (f *fakeSearchUsecase) SelectComplication(ctx context.Context, searchSessionID string, request *requests.SelectComplicationRequest) (*responses.SearchSessionState, error) {
	return nil, nil
}
func (f *fakeSearchUsecase) RemoveComplication(ctx context.Context, searchSessionID, selectionID string) (*responses.SearchSessionState, error) {
	return nil, nil
}
func (f *fakeSearchUsecase) SelectedComplications(ctx context.Context, searchSessionID string) ([]responses.SelectedComplication, error) {
	return f.selected, f.err
}

type fakeSessionService struct{}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (f *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

type fakeSubmissionRepo struct {
	records []*models.SubmissionRecord
	err     error
}

func (f *fakeSubmissionRepo) InsertSubmission(ctx context.Context, record *models.SubmissionRecord) error {
	f.records = append(f.records, record)
	return f.err
}

func (f *fakeSubmissionRepo) FindSubmissionsByOrderUUID(ctx context.Context, orderUUID string) ([]models.SubmissionRecord, error) {
	return nil, nil
}

type fakePublisher struct {
	messages []*models.NotificationMessage
	err      error
}

func (f *fakePublisher) Publish(ctx context.Context, message *models.NotificationMessage) error {
	f.messages = append(f.messages, message)
	return f.err
}

type fakeArchive struct {
	calls      int
	lastReport string
	err        error
}

func (f *fakeArchive) ArchiveReport(ctx context.Context, orderUUID string, report string) (string, error) {
	f.calls++
	f.lastReport = report
	return "reports/" + orderUUID + "/1.txt", f.err
}

type usecaseFixture struct {
	usecase     *procedureUsecase
	orderClient *fakeOrderClient
	saveClient  *fakeProcedureClient
	search      *fakeSearchUsecase
	repo        *fakeSubmissionRepo
	publisher   *fakePublisher
	archive     *fakeArchive
}

func newUsecaseFixture(closeOnFailure bool) *usecaseFixture {
	orderClient := &fakeOrderClient{order: testOrder()}
	saveClient := &fakeProcedureClient{}
	search := &fakeSearchUsecase{}
	repo := &fakeSubmissionRepo{}
	publisher := &fakePublisher{}
	archive := &fakeArchive{}

	uc := &procedureUsecase{
		OrderEmrClient:        orderClient,
		ProcedureEmrClient:    saveClient,
		SearchUsecase:         search,
		SessionService:        &fakeSessionService{},
		SubmissionRepository:  repo,
		NotificationPublisher: publisher,
		ReportArchive:         archive,
		InternalConfig: &config.InternalConfig{
			App: config.App{CloseWorkspaceOnFailure: closeOnFailure},
		},
		ConceptConfig: testConceptConfig(),
		Log:           zap.NewNop(),
	}

	return &usecaseFixture{
		usecase:     uc,
		orderClient: orderClient,
		saveClient:  saveClient,
		search:      search,
		repo:        repo,
		publisher:   publisher,
		archive:     archive,
	}
}

const testSessionData = `{"session_id":"s1","provider_uuid":"prov-1","location_uuid":"location-1"}`

func TestCompleteProcedureValidation(t *testing.T) {
	fixture := newUsecaseFixture(true)

	request := &requests.CompleteProcedureRequest{
		StartDatetime: "2024-01-01T09:00:00Z",
	}

	result, err := fixture.usecase.CompleteProcedure(context.Background(), testSessionData, "order-1", request)

	require.Error(t, err)
	assert.Nil(t, result)

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Contains(t, customErr.FieldErrors, "endDatetime")
	assert.Contains(t, customErr.FieldErrors, "outcome")
	assert.Contains(t, customErr.FieldErrors, "procedureReport")
	assert.Contains(t, customErr.FieldErrors, "participants")

	// Validation failure must perform no side effects.
	assert.Zero(t, fixture.orderClient.calls)
	assert.Zero(t, fixture.saveClient.calls)
	assert.Empty(t, fixture.publisher.messages)
	assert.Empty(t, fixture.repo.records)
	assert.Zero(t, fixture.archive.calls)
}

func TestCompleteProcedureSuccess(t *testing.T) {
	fixture := newUsecaseFixture(true)

	result, err := fixture.usecase.CompleteProcedure(context.Background(), testSessionData, "order-1", testRequest())

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, constvars.SubmissionStateSucceeded, result.State)
	assert.True(t, result.CloseWorkspace)
	assert.Equal(t, constvars.NotificationKindSuccess, result.Notification.Kind)
	assert.Equal(t, constvars.ProcedureSavedSuccessMessage, result.Notification.Title)

	require.NotNil(t, fixture.saveClient.lastPayload)
	assert.Equal(t, constvars.ProcedureStatusCompleted, fixture.saveClient.lastPayload.Status)
	assert.Equal(t, "location-1", fixture.saveClient.lastPayload.Location)

	require.Len(t, fixture.publisher.messages, 1)
	assert.Equal(t, constvars.NotificationKindSuccess, fixture.publisher.messages[0].Kind)

	assert.Equal(t, 1, fixture.archive.calls)
	assert.Equal(t, "No issues", fixture.archive.lastReport)

	require.Len(t, fixture.repo.records, 1)
	assert.Equal(t, constvars.SubmissionStateSucceeded, fixture.repo.records[0].State)
	assert.Equal(t, "patient-1", fixture.repo.records[0].PatientUUID)
}

func TestCompleteProcedureSaveRejected(t *testing.T) {
	t.Run("close on failure enabled", func(t *testing.T) {
		fixture := newUsecaseFixture(true)
		fixture.saveClient.err = exceptions.ErrCreateEmrResource(errors.New("duplicate"), constvars.ResourceProcedure)

		result, err := fixture.usecase.CompleteProcedure(context.Background(), testSessionData, "order-1", testRequest())

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, constvars.SubmissionStateFailed, result.State)
		assert.True(t, result.CloseWorkspace)
		assert.Equal(t, constvars.NotificationKindError, result.Notification.Kind)
		assert.Equal(t, constvars.ProcedureFailedErrorMessage, result.Notification.Title)

		// Exactly one error notification.
		require.Len(t, fixture.publisher.messages, 1)
		assert.Equal(t, constvars.NotificationKindError, fixture.publisher.messages[0].Kind)

		assert.Zero(t, fixture.archive.calls)

		require.Len(t, fixture.repo.records, 1)
		assert.Equal(t, constvars.SubmissionStateFailed, fixture.repo.records[0].State)
		assert.NotEmpty(t, fixture.repo.records[0].FailureReason)
	})

	t.Run("close on failure disabled", func(t *testing.T) {
		fixture := newUsecaseFixture(false)
		fixture.saveClient.err = exceptions.ErrCreateEmrResource(errors.New("duplicate"), constvars.ResourceProcedure)

		result, err := fixture.usecase.CompleteProcedure(context.Background(), testSessionData, "order-1", testRequest())

		require.NoError(t, err)
		assert.Equal(t, constvars.SubmissionStateFailed, result.State)
		assert.False(t, result.CloseWorkspace)
	})
}

func TestCompleteProcedureOrderLoadFailure(t *testing.T) {
	fixture := newUsecaseFixture(true)
	fixture.orderClient.order = nil
	fixture.orderClient.err = exceptions.ErrGetEmrResource(errors.New("not found"), constvars.ResourceOrder)

	result, err := fixture.usecase.CompleteProcedure(context.Background(), testSessionData, "order-1", testRequest())

	require.NoError(t, err)
	assert.Equal(t, constvars.SubmissionStateFailed, result.State)
	assert.Zero(t, fixture.saveClient.calls)
	require.Len(t, fixture.publisher.messages, 1)
	assert.Equal(t, constvars.NotificationKindError, fixture.publisher.messages[0].Kind)
}

func TestCompleteProcedureWithComplications(t *testing.T) {
	fixture := newUsecaseFixture(true)
	fixture.search.selected = []responses.SelectedComplication{
		{SelectionID: "sel-1", Display: "Bleeding", ConceptUUID: "bleeding-concept"},
	}

	request := testRequest()
	request.SearchSessionID = "search-1"

	result, err := fixture.usecase.CompleteProcedure(context.Background(), testSessionData, "order-1", request)

	require.NoError(t, err)
	assert.Equal(t, constvars.SubmissionStateSucceeded, result.State)

	require.NotNil(t, fixture.saveClient.lastPayload)
	require.Len(t, fixture.saveClient.lastPayload.Encounters, 1)
	require.Len(t, fixture.saveClient.lastPayload.Encounters[0].Obs, 1)
	assert.Equal(t, "bleeding-concept", fixture.saveClient.lastPayload.Encounters[0].Obs[0].GroupMembers[0].Value)
}
