package contracts

import (
	"context"
	"prosedur-service/internal/app/models"
	"prosedur-service/internal/pkg/dto/requests"
	"prosedur-service/internal/pkg/dto/responses"
	"prosedur-service/internal/pkg/emr_dto"
)

type ProcedureEmrClient interface {
	CreateProcedure(ctx context.Context, payload *emr_dto.ProcedurePayload) error
}

type ProcedureUsecase interface {
	CompleteProcedure(ctx context.Context, sessionData, orderUUID string, request *requests.CompleteProcedureRequest) (*responses.CompletionResult, error)
}

type SubmissionRepository interface {
	InsertSubmission(ctx context.Context, record *models.SubmissionRecord) error
	FindSubmissionsByOrderUUID(ctx context.Context, orderUUID string) ([]models.SubmissionRecord, error)
}
