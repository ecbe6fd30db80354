package procedures

import (
	"testing"

	"prosedur-service/internal/app/config"
	"prosedur-service/internal/pkg/dto/requests"
	"prosedur-service/internal/pkg/dto/responses"
	"prosedur-service/internal/pkg/emr_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConceptConfig() *config.ConceptConfig {
	return &config.ConceptConfig{
		ProcedureOrderTypeUuid:                   "order-type-uuid",
		TestOrderTypeUuid:                        "test-order-type-uuid",
		ProcedureComplicationGroupingConceptUuid: "grouping-concept-uuid",
		ProcedureComplicationConceptUuid:         "complication-concept-uuid",
		EncounterRoleUuid:                        "encounter-role-uuid",
		ProcedureEncounterTypeUuid:               "encounter-type-uuid",
	}
}

func testOrder() *emr_dto.ProcedureOrder {
	return &emr_dto.ProcedureOrder{
		UUID:    "order-1",
		Patient: emr_dto.Reference{UUID: "patient-1"},
		Concept: emr_dto.Concept{UUID: "procedure-concept-1"},
	}
}

func testRequest() *requests.CompleteProcedureRequest {
	return &requests.CompleteProcedureRequest{
		StartDatetime:   "2024-01-01T09:00:00Z",
		EndDatetime:     "2024-01-01T10:00:00Z",
		Outcome:         "SUCCESSFUL",
		ProcedureReport: "No issues",
		Participants: []requests.Participant{
			{UUID: "p1", Display: "Dr. One", Person: requests.PersonRef{UUID: "person-1"}},
		},
	}
}

func TestBuildProcedurePayload(t *testing.T) {
	t.Run("no complications yields empty obs", func(t *testing.T) {
		payload := BuildProcedurePayload(testRequest(), testOrder(), "location-1", nil, testConceptConfig())

		require.Len(t, payload.Encounters, 1)
		assert.Empty(t, payload.Encounters[0].Obs)
		assert.NotNil(t, payload.Encounters[0].Obs)
	})

	t.Run("one complication yields one obs group with single member", func(t *testing.T) {
		selected := []responses.SelectedComplication{
			{SelectionID: "sel-1", Display: "Bleeding", ConceptUUID: "bleeding-concept"},
		}

		payload := BuildProcedurePayload(testRequest(), testOrder(), "location-1", selected, testConceptConfig())

		require.Len(t, payload.Encounters, 1)
		obs := payload.Encounters[0].Obs
		require.Len(t, obs, 1)
		assert.Equal(t, "grouping-concept-uuid", obs[0].Concept)
		require.Len(t, obs[0].GroupMembers, 1)
		assert.Equal(t, "complication-concept-uuid", obs[0].GroupMembers[0].Concept)
		assert.Equal(t, "bleeding-concept", obs[0].GroupMembers[0].Value)
	})

	t.Run("each selection yields its own group", func(t *testing.T) {
		selected := []responses.SelectedComplication{
			{SelectionID: "sel-1", Display: "Bleeding", ConceptUUID: "bleeding-concept"},
			{SelectionID: "sel-2", Display: "Bleeding", ConceptUUID: "bleeding-concept"},
		}

		payload := BuildProcedurePayload(testRequest(), testOrder(), "location-1", selected, testConceptConfig())

		require.Len(t, payload.Encounters, 1)
		assert.Len(t, payload.Encounters[0].Obs, 2)
	})

	t.Run("end to end assembly", func(t *testing.T) {
		payload := BuildProcedurePayload(testRequest(), testOrder(), "location-1", nil, testConceptConfig())

		assert.Equal(t, "patient-1", payload.Patient)
		assert.Equal(t, "order-1", payload.ProcedureOrder)
		assert.Equal(t, "procedure-concept-1", payload.Concept)
		assert.Equal(t, "COMPLETED", payload.Status)
		assert.Equal(t, "SUCCESSFUL", payload.Outcome)
		assert.Equal(t, "location-1", payload.Location)
		assert.Equal(t, "2024-01-01T09:00:00.000+0000", payload.StartDatetime)
		assert.Equal(t, "2024-01-01T10:00:00.000+0000", payload.EndDatetime)
		assert.Equal(t, "No issues", payload.ProcedureReport)

		require.Len(t, payload.Encounters, 1)
		encounter := payload.Encounters[0]
		assert.Equal(t, "2024-01-01T09:00:00.000+0000", encounter.EncounterDatetime)
		assert.Equal(t, "patient-1", encounter.Patient)
		assert.Equal(t, "encounter-type-uuid", encounter.EncounterType)
		assert.Equal(t, "location-1", encounter.Location)
		require.Len(t, encounter.EncounterProviders, 1)
		assert.Equal(t, "p1", encounter.EncounterProviders[0].Provider)
		assert.Equal(t, "encounter-role-uuid", encounter.EncounterProviders[0].EncounterRole)
		assert.Empty(t, encounter.Obs)
	})

	t.Run("category and reason pass through from the order", func(t *testing.T) {
		order := testOrder()
		order.Category = &emr_dto.Concept{UUID: "category-uuid"}
		order.OrderReason = &emr_dto.Concept{UUID: "reason-uuid"}

		payload := BuildProcedurePayload(testRequest(), order, "location-1", nil, testConceptConfig())

		assert.Equal(t, "category-uuid", payload.Category)
		assert.Equal(t, "reason-uuid", payload.ProcedureReason)
	})
}
