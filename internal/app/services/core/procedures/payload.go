package procedures

import (
	"prosedur-service/internal/app/config"
	"prosedur-service/internal/pkg/constvars"
	"prosedur-service/internal/pkg/dto/requests"
	"prosedur-service/internal/pkg/dto/responses"
	"prosedur-service/internal/pkg/emr_dto"
	"prosedur-service/internal/pkg/utils"
)

// BuildProcedurePayload assembles the one-shot submission object from the
// validated form, the source order, the active location and the configured
// concept UUIDs. It is a pure mapping: inputs have already been validated,
// and the result is never mutated afterwards.
func BuildProcedurePayload(
	request *requests.CompleteProcedureRequest,
	order *emr_dto.ProcedureOrder,
	locationUUID string,
	selected []responses.SelectedComplication,
	conceptConfig *config.ConceptConfig,
) *emr_dto.ProcedurePayload {
	startDatetime, _ := utils.ParseFormDatetime(request.StartDatetime)
	endDatetime, _ := utils.ParseFormDatetime(request.EndDatetime)

	encounterProviders := make([]emr_dto.EncounterProvider, 0, len(request.Participants))
	for _, participant := range request.Participants {
		encounterProviders = append(encounterProviders, emr_dto.EncounterProvider{
			Provider:      participant.UUID,
			EncounterRole: conceptConfig.EncounterRoleUuid,
		})
	}

	// One observation group per selected complication; none selected means
	// no obs at all.
	obs := make([]emr_dto.ObsPayload, 0, len(selected))
	for _, selection := range selected {
		obs = append(obs, emr_dto.ObsPayload{
			Concept: conceptConfig.ProcedureComplicationGroupingConceptUuid,
			GroupMembers: []emr_dto.ObsPayload{
				{
					Concept: conceptConfig.ProcedureComplicationConceptUuid,
					Value:   selection.ConceptUUID,
				},
			},
		})
	}

	payload := &emr_dto.ProcedurePayload{
		Patient:         order.Patient.UUID,
		ProcedureOrder:  order.UUID,
		Concept:         order.Concept.UUID,
		Status:          constvars.ProcedureStatusCompleted,
		Outcome:         request.Outcome,
		Location:        locationUUID,
		StartDatetime:   utils.FormatEmrDatetime(startDatetime),
		EndDatetime:     utils.FormatEmrDatetime(endDatetime),
		ProcedureReport: request.ProcedureReport,
		Encounters: []emr_dto.EncounterPayload{
			{
				EncounterDatetime:  utils.FormatEmrDatetime(startDatetime),
				Patient:            order.Patient.UUID,
				EncounterType:      conceptConfig.ProcedureEncounterTypeUuid,
				Location:           locationUUID,
				EncounterProviders: encounterProviders,
				Obs:                obs,
			},
		},
	}

	if order.Category != nil {
		payload.Category = order.Category.UUID
	}
	if order.OrderReason != nil {
		payload.ProcedureReason = order.OrderReason.UUID
	}

	return payload
}
