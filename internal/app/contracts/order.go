package contracts

import (
	"context"
	"prosedur-service/internal/pkg/emr_dto"
)

type OrderEmrClient interface {
	FindOrderByUUID(ctx context.Context, orderUUID string) (*emr_dto.ProcedureOrder, error)
}
