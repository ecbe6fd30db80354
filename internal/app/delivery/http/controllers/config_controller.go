package controllers

import (
	"net/http"
	"sync"

	"prosedur-service/internal/app/config"
	"prosedur-service/internal/pkg/constvars"
	"prosedur-service/internal/pkg/dto/responses"
	"prosedur-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ConfigController struct {
	Log           *zap.Logger
	ConceptConfig *config.ConceptConfig
}

var (
	configControllerInstance *ConfigController
	onceConfigController     sync.Once
)

func NewConfigController(logger *zap.Logger, conceptConfig *config.ConceptConfig) *ConfigController {
	onceConfigController.Do(func() {
		configControllerInstance = &ConfigController{
			Log:           logger,
			ConceptConfig: conceptConfig,
		}
	})
	return configControllerInstance
}

// GetProcedureConfig exposes the configuration schema and the merged values
// so form clients resolve the same identifiers the payload assembler uses.
func (ctrl *ConfigController) GetProcedureConfig(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("ConfigController.GetProcedureConfig called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	schema := make(map[string]responses.ConfigProperty, len(config.ConceptSchema))
	for key, property := range config.ConceptSchema {
		schema[key] = responses.ConfigProperty{
			Type:        property.Type,
			Description: property.Description,
			Default:     property.Default,
		}
	}

	result := responses.ProcedureConfigResponse{
		Schema: schema,
		Values: ctrl.ConceptConfig.Values(),
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProcedureConfigSuccessMessage, result)
}
