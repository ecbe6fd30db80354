package sessions

import (
	"context"
	"sync"
	"time"

	"prosedur-service/internal/app/config"
	"prosedur-service/internal/app/contracts"
	"prosedur-service/internal/app/models"
	"prosedur-service/internal/pkg/constvars"
	"prosedur-service/internal/pkg/dto/requests"
	"prosedur-service/internal/pkg/dto/responses"
	"prosedur-service/internal/pkg/exceptions"
	"prosedur-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type sessionUsecase struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	sessionUsecaseInstance contracts.SessionUsecase
	onceSessionUsecase     sync.Once
)

func NewSessionUsecase(
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SessionUsecase {
	onceSessionUsecase.Do(func() {
		sessionUsecaseInstance = &sessionUsecase{
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return sessionUsecaseInstance
}

// CreateSession registers the clinician and location a form client works
// under and returns a bearer token scoped to that session.
func (uc *sessionUsecase) CreateSession(ctx context.Context, request *requests.CreateSessionRequest) (*responses.CreateSessionResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("sessionUsecase.CreateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	sessionID := utils.GenerateSessionID()
	sessionTTL := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour

	session := models.Session{
		SessionID:    sessionID,
		ProviderUUID: request.ProviderUUID,
		LocationUUID: request.LocationUUID,
		ExpiresAt:    time.Now().Add(sessionTTL),
	}

	err := uc.RedisRepository.Set(ctx, sessionID, session, sessionTTL)
	if err != nil {
		uc.Log.Error("sessionUsecase.CreateSession error storing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrRedisStoreSession(err)
	}

	token, err := utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	return &responses.CreateSessionResponse{
		Token:        token,
		ProviderUUID: request.ProviderUUID,
		LocationUUID: request.LocationUUID,
	}, nil
}
