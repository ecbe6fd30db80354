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

type ProcedureController struct {
	Log              *zap.Logger
	ProcedureUsecase contracts.ProcedureUsecase
}

var (
	procedureControllerInstance *ProcedureController
	onceProcedureController     sync.Once
)

func NewProcedureController(logger *zap.Logger, procedureUsecase contracts.ProcedureUsecase) *ProcedureController {
	onceProcedureController.Do(func() {
		procedureControllerInstance = &ProcedureController{
			Log:              logger,
			ProcedureUsecase: procedureUsecase,
		}
	})
	return procedureControllerInstance
}

// CompleteProcedure accepts the submitted form for an order and returns the
// completion result with the workspace close directive.
func (ctrl *ProcedureController) CompleteProcedure(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ProcedureController.CompleteProcedure requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	orderUUID := chi.URLParam(r, constvars.URLParamOrderID)
	ctrl.Log.Info("ProcedureController.CompleteProcedure called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderUUID),
	)

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidSession(nil))
		return
	}

	request := new(requests.CompleteProcedureRequest)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.ProcedureUsecase.CompleteProcedure(ctx, sessionData, orderUUID, request)
	if err != nil {
		ctrl.Log.Error("ProcedureController.CompleteProcedure error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CompleteProcedureSuccessMessage, result)
}
