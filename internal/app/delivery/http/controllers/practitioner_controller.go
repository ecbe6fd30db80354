package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"prosedur-service/internal/app/contracts"
	"prosedur-service/internal/pkg/constvars"
	"prosedur-service/internal/pkg/exceptions"
	"prosedur-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type PractitionerController struct {
	Log                 *zap.Logger
	PractitionerUsecase contracts.PractitionerUsecase
}

var (
	practitionerControllerInstance *PractitionerController
	oncePractitionerController     sync.Once
)

func NewPractitionerController(logger *zap.Logger, practitionerUsecase contracts.PractitionerUsecase) *PractitionerController {
	oncePractitionerController.Do(func() {
		practitionerControllerInstance = &PractitionerController{
			Log:                 logger,
			PractitionerUsecase: practitionerUsecase,
		}
	})
	return practitionerControllerInstance
}

func (ctrl *PractitionerController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PractitionerController.FindAll requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PractitionerController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.PractitionerUsecase.GetProviders(ctx)
	if err != nil {
		ctrl.Log.Error("PractitionerController.FindAll error from usecase",
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

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProvidersSuccessMessage, result)
}
