package contracts

import (
	"context"
	"prosedur-service/internal/pkg/dto/requests"
	"prosedur-service/internal/pkg/dto/responses"
)

type SearchUsecase interface {
	CreateSearchSession(ctx context.Context) (*responses.SearchSessionState, error)
	GetSearchSession(ctx context.Context, searchSessionID string) (*responses.SearchSessionState, error)
	UpdateQuery(ctx context.Context, searchSessionID string, request *requests.UpdateSearchQueryRequest) (*responses.SearchSessionState, error)
	SelectComplication(ctx context.Context, searchSessionID string, request *requests.SelectComplicationRequest) (*responses.SearchSessionState, error)
	RemoveComplication(ctx context.Context, searchSessionID, selectionID string) (*responses.SearchSessionState, error)
	SelectedComplications(ctx context.Context, searchSessionID string) ([]responses.SelectedComplication, error)
}
