package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"prosedur-service/internal/app/contracts"
	"prosedur-service/internal/pkg/constvars"
	"prosedur-service/internal/pkg/dto/requests"
	"prosedur-service/internal/pkg/exceptions"
	"prosedur-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SearchController struct {
	Log           *zap.Logger
	SearchUsecase contracts.SearchUsecase
}

var (
	searchControllerInstance *SearchController
	onceSearchController     sync.Once
)

func NewSearchController(logger *zap.Logger, searchUsecase contracts.SearchUsecase) *SearchController {
	onceSearchController.Do(func() {
		searchControllerInstance = &SearchController{
			Log:           logger,
			SearchUsecase: searchUsecase,
		}
	})
	return searchControllerInstance
}

func (ctrl *SearchController) CreateSearchSession(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("SearchController.CreateSearchSession requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("SearchController.CreateSearchSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SearchUsecase.CreateSearchSession(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSearchSessionSuccessMessage, result)
}

func (ctrl *SearchController) GetSearchSession(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("SearchController.GetSearchSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	searchSessionID := chi.URLParam(r, constvars.URLParamSearchSessionID)
	result, err := ctrl.SearchUsecase.GetSearchSession(ctx, searchSessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSearchSessionSuccessMessage, result)
}

// UpdateQuery receives the typed input-changed message from the form.
func (ctrl *SearchController) UpdateQuery(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("SearchController.UpdateQuery called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.UpdateSearchQueryRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	searchSessionID := chi.URLParam(r, constvars.URLParamSearchSessionID)
	result, err := ctrl.SearchUsecase.UpdateQuery(ctx, searchSessionID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSearchQuerySuccessMessage, result)
}

func (ctrl *SearchController) SelectComplication(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("SearchController.SelectComplication called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.SelectComplicationRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	searchSessionID := chi.URLParam(r, constvars.URLParamSearchSessionID)
	result, err := ctrl.SearchUsecase.SelectComplication(ctx, searchSessionID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SelectComplicationSuccessMessage, result)
}

func (ctrl *SearchController) RemoveComplication(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("SearchController.RemoveComplication called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	searchSessionID := chi.URLParam(r, constvars.URLParamSearchSessionID)
	selectionID := chi.URLParam(r, constvars.URLParamSelectionID)
	result, err := ctrl.SearchUsecase.RemoveComplication(ctx, searchSessionID, selectionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RemoveComplicationSuccessMessage, result)
}
