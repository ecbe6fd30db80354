package practitioners

import (
	"context"
	"sync"

	"prosedur-service/internal/app/contracts"
	"prosedur-service/internal/pkg/constvars"
	"prosedur-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type practitionerUsecase struct {
	ProviderEmrClient contracts.ProviderEmrClient
	Log               *zap.Logger
}

var (
	practitionerUsecaseInstance contracts.PractitionerUsecase
	oncePractitionerUsecase     sync.Once
)

func NewPractitionerUsecase(
	providerEmrClient contracts.ProviderEmrClient,
	logger *zap.Logger,
) contracts.PractitionerUsecase {
	oncePractitionerUsecase.Do(func() {
		practitionerUsecaseInstance = &practitionerUsecase{
			ProviderEmrClient: providerEmrClient,
			Log:               logger,
		}
	})
	return practitionerUsecaseInstance
}

// GetProviders lists the clinical staff selectable as procedure participants.
func (uc *practitionerUsecase) GetProviders(ctx context.Context) ([]responses.Provider, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("practitionerUsecase.GetProviders called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	emrProviders, err := uc.ProviderEmrClient.ListProviders(ctx)
	if err != nil {
		uc.Log.Error("practitionerUsecase.GetProviders error fetching providers",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	providers := make([]responses.Provider, 0, len(emrProviders))
	for _, emrProvider := range emrProviders {
		providers = append(providers, responses.Provider{
			UUID:    emrProvider.UUID,
			Display: emrProvider.Display,
			Person: responses.PersonRef{
				UUID:    emrProvider.Person.UUID,
				Display: emrProvider.Person.Display,
			},
		})
	}

	return providers, nil
}
