package contracts

import (
	"context"
	"prosedur-service/internal/app/models"
	"prosedur-service/internal/pkg/dto/requests"
	"prosedur-service/internal/pkg/dto/responses"
)

type SessionUsecase interface {
	CreateSession(ctx context.Context, request *requests.CreateSessionRequest) (*responses.CreateSessionResponse, error)
}

type SessionService interface {
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	GetSessionData(ctx context.Context, sessionID string) (sessionData string, err error)
}
