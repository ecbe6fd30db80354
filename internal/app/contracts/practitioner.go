package contracts

import (
	"context"
	"prosedur-service/internal/pkg/dto/responses"
	"prosedur-service/internal/pkg/emr_dto"
)

type ProviderEmrClient interface {
	ListProviders(ctx context.Context) ([]emr_dto.Provider, error)
}

type PractitionerUsecase interface {
	GetProviders(ctx context.Context) ([]responses.Provider, error)
}
