package procedures

import (
	"context"
	"sync"

	"prosedur-service/internal/app/config"
	"prosedur-service/internal/app/contracts"
	"prosedur-service/internal/app/models"
	"prosedur-service/internal/pkg/constvars"
	"prosedur-service/internal/pkg/dto/requests"
	"prosedur-service/internal/pkg/dto/responses"
	"prosedur-service/internal/pkg/emr_dto"
	"prosedur-service/internal/pkg/exceptions"
	"prosedur-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type procedureUsecase struct {
	OrderEmrClient        contracts.OrderEmrClient
	ProcedureEmrClient    contracts.ProcedureEmrClient
	SearchUsecase         contracts.SearchUsecase
	SessionService        contracts.SessionService
	SubmissionRepository  contracts.SubmissionRepository
	NotificationPublisher contracts.NotificationPublisher
	ReportArchive         contracts.ReportArchive
	InternalConfig        *config.InternalConfig
	ConceptConfig         *config.ConceptConfig
	Log                   *zap.Logger
}

var (
	procedureUsecaseInstance contracts.ProcedureUsecase
	onceProcedureUsecase     sync.Once
)

func NewProcedureUsecase(
	orderEmrClient contracts.OrderEmrClient,
	procedureEmrClient contracts.ProcedureEmrClient,
	searchUsecase contracts.SearchUsecase,
	sessionService contracts.SessionService,
	submissionRepository contracts.SubmissionRepository,
	notificationPublisher contracts.NotificationPublisher,
	reportArchive contracts.ReportArchive,
	internalConfig *config.InternalConfig,
	conceptConfig *config.ConceptConfig,
	logger *zap.Logger,
) contracts.ProcedureUsecase {
	onceProcedureUsecase.Do(func() {
		procedureUsecaseInstance = &procedureUsecase{
			OrderEmrClient:        orderEmrClient,
			ProcedureEmrClient:    procedureEmrClient,
			SearchUsecase:         searchUsecase,
			SessionService:        sessionService,
			SubmissionRepository:  submissionRepository,
			NotificationPublisher: notificationPublisher,
			ReportArchive:         reportArchive,
			InternalConfig:        internalConfig,
			ConceptConfig:         conceptConfig,
			Log:                   logger,
		}
	})
	return procedureUsecaseInstance
}

// CompleteProcedure runs the submission state machine for one order:
// idle, submitting, then exactly one of succeeded or failed. Validation
// happens before anything else touches the EMR, the queue, the archive or
// the audit log.
func (uc *procedureUsecase) CompleteProcedure(ctx context.Context, sessionData, orderUUID string, request *requests.CompleteProcedureRequest) (*responses.CompletionResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("procedureUsecase.CompleteProcedure called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderUUID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	var selected []responses.SelectedComplication
	if request.SearchSessionID != "" {
		selected, err = uc.SearchUsecase.SelectedComplications(ctx, request.SearchSessionID)
		if err != nil {
			return nil, err
		}
	}

	uc.Log.Info("procedureUsecase.CompleteProcedure submitting",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderUUID),
	)

	order, err := uc.OrderEmrClient.FindOrderByUUID(ctx, orderUUID)
	if err != nil {
		return uc.failSubmission(ctx, requestID, orderUUID, session, nil, err), nil
	}

	payload := BuildProcedurePayload(request, order, session.LocationUUID, selected, uc.ConceptConfig)

	if err := uc.ProcedureEmrClient.CreateProcedure(ctx, payload); err != nil {
		return uc.failSubmission(ctx, requestID, orderUUID, session, payload, err), nil
	}

	return uc.succeedSubmission(ctx, requestID, orderUUID, session, payload), nil
}

func (uc *procedureUsecase) succeedSubmission(ctx context.Context, requestID, orderUUID string, session *models.Session, payload *emr_dto.ProcedurePayload) *responses.CompletionResult {
	uc.Log.Info("procedureUsecase.CompleteProcedure succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderUUID),
	)

	notification := responses.Notification{
		Title:                 constvars.ProcedureSavedSuccessMessage,
		Subtitle:              constvars.ProcedureSavedSuccessSubtitle,
		Kind:                  constvars.NotificationKindSuccess,
		TimeoutInMilliseconds: constvars.NotificationDefaultTimeoutInMilliseconds,
	}

	uc.publishNotification(ctx, requestID, orderUUID, notification)

	objectName, err := uc.ReportArchive.ArchiveReport(ctx, orderUUID, payload.ProcedureReport)
	if err != nil {
		uc.Log.Error("procedureUsecase.CompleteProcedure error archiving report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	} else {
		uc.Log.Info("procedureUsecase.CompleteProcedure report archived",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("object_name", objectName),
		)
	}

	uc.recordSubmission(ctx, requestID, orderUUID, session, payload, constvars.SubmissionStateSucceeded, "")

	return &responses.CompletionResult{
		State:          constvars.SubmissionStateSucceeded,
		Notification:   notification,
		CloseWorkspace: true,
	}
}

func (uc *procedureUsecase) failSubmission(ctx context.Context, requestID, orderUUID string, session *models.Session, payload *emr_dto.ProcedurePayload, cause error) *responses.CompletionResult {
	uc.Log.Error("procedureUsecase.CompleteProcedure failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderUUID),
		zap.Error(cause),
	)

	subtitle := constvars.ErrClientProcedureSaveFailed
	failureReason := cause.Error()
	if customErr, ok := cause.(*exceptions.CustomError); ok {
		subtitle = customErr.ClientMessage
		failureReason = customErr.DevMessage
	}

	notification := responses.Notification{
		Title:                 constvars.ProcedureFailedErrorMessage,
		Subtitle:              subtitle,
		Kind:                  constvars.NotificationKindError,
		TimeoutInMilliseconds: constvars.NotificationDefaultTimeoutInMilliseconds,
	}

	uc.publishNotification(ctx, requestID, orderUUID, notification)
	uc.recordSubmission(ctx, requestID, orderUUID, session, payload, constvars.SubmissionStateFailed, failureReason)

	return &responses.CompletionResult{
		State:          constvars.SubmissionStateFailed,
		Notification:   notification,
		CloseWorkspace: uc.InternalConfig.App.CloseWorkspaceOnFailure,
	}
}

func (uc *procedureUsecase) publishNotification(ctx context.Context, requestID, orderUUID string, notification responses.Notification) {
	message := &models.NotificationMessage{
		ID:                    utils.GenerateNotificationID(),
		Title:                 notification.Title,
		Subtitle:              notification.Subtitle,
		Kind:                  notification.Kind,
		TimeoutInMilliseconds: notification.TimeoutInMilliseconds,
		OrderUUID:             orderUUID,
	}
	if err := uc.NotificationPublisher.Publish(ctx, message); err != nil {
		uc.Log.Error("procedureUsecase.CompleteProcedure error publishing notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func (uc *procedureUsecase) recordSubmission(ctx context.Context, requestID, orderUUID string, session *models.Session, payload *emr_dto.ProcedurePayload, state, failureReason string) {
	record := &models.SubmissionRecord{
		ID:            utils.GenerateSubmissionID(),
		OrderUUID:     orderUUID,
		ProviderUUID:  session.ProviderUUID,
		LocationUUID:  session.LocationUUID,
		State:         state,
		FailureReason: failureReason,
	}
	if payload != nil {
		record.PatientUUID = payload.Patient
		record.Payload = *payload
	}

	if err := uc.SubmissionRepository.InsertSubmission(ctx, record); err != nil {
		uc.Log.Error("procedureUsecase.CompleteProcedure error recording submission",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}
