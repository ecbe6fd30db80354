package contracts

import (
	"context"
	"prosedur-service/internal/pkg/emr_dto"
)

type ConditionEmrClient interface {
	SearchConditionConcepts(ctx context.Context, query string) ([]emr_dto.ConditionCandidate, error)
}
