package config

import (
	"fmt"
	"prosedur-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

// ConfigProperty describes one tunable identifier: its type, what it is
// for, and the value used when no override is given.
type ConfigProperty struct {
	Type        string
	Description string
	Default     string
}

const (
	KeyProcedureOrderTypeUuid                   = "procedureOrderTypeUuid"
	KeyTestOrderTypeUuid                        = "testOrderTypeUuid"
	KeyProcedureComplicationGroupingConceptUuid = "procedureComplicationGroupingConceptUuid"
	KeyProcedureComplicationConceptUuid         = "procedureComplicationConceptUuid"
	KeyEncounterRoleUuid                        = "encounterRoleUuid"
	KeyProcedureEncounterTypeUuid               = "procedureEncounterTypeUuid"
)

// ConceptSchema is the declarative configuration schema consumed by this
// and other features. Read-only after initialization.
var ConceptSchema = map[string]ConfigProperty{
	KeyProcedureOrderTypeUuid: {
		Type:        "UUID",
		Description: "UUID for the procedure order type",
		Default:     "4237a01f-29c5-4167-9d8e-96d6e590aa33",
	},
	KeyTestOrderTypeUuid: {
		Type:        "UUID",
		Description: "UUID for the test order type",
		Default:     "52a447d3-a64a-11e3-9aeb-50e549534c5e",
	},
	KeyProcedureComplicationGroupingConceptUuid: {
		Type:        "UUID",
		Description: "Grouping concept for procedure complication observations",
		Default:     "120216AAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
	},
	KeyProcedureComplicationConceptUuid: {
		Type:        "UUID",
		Description: "Concept recording a single procedure complication",
		Default:     "161879AAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
	},
	KeyEncounterRoleUuid: {
		Type:        "UUID",
		Description: "Encounter role assigned to every participating provider",
		Default:     "a0b03050-c99b-11e0-9572-0800200c9a66",
	},
	KeyProcedureEncounterTypeUuid: {
		Type:        "UUID",
		Description: "Encounter type of the procedure completion encounter",
		Default:     "d1059fb9-a079-4feb-a749-eedd709ae542",
	},
}

// ConceptConfig is the merged (defaults + overrides) runtime configuration
// object handed to the usecases.
type ConceptConfig struct {
	ProcedureOrderTypeUuid                   string
	TestOrderTypeUuid                        string
	ProcedureComplicationGroupingConceptUuid string
	ProcedureComplicationConceptUuid         string
	EncounterRoleUuid                        string
	ProcedureEncounterTypeUuid               string
}

// NewConceptConfig merges the schema defaults with the JSON override map
// from PROCEDURE_CONCEPT_OVERRIDES. Values are coerced to strings; anything
// beyond type coercion is the caller's responsibility.
func NewConceptConfig() (*ConceptConfig, error) {
	overridesJSON := utils.GetEnvString("PROCEDURE_CONCEPT_OVERRIDES", "")
	return BuildConceptConfig(overridesJSON)
}

func BuildConceptConfig(overridesJSON string) (*ConceptConfig, error) {
	merged := MergeConceptValues(nil)

	if overridesJSON != "" {
		overrides := make(map[string]interface{})
		if err := json.Unmarshal([]byte(overridesJSON), &overrides); err != nil {
			return nil, fmt.Errorf("invalid concept overrides: %w", err)
		}
		merged = MergeConceptValues(overrides)
	}

	return &ConceptConfig{
		ProcedureOrderTypeUuid:                   merged[KeyProcedureOrderTypeUuid],
		TestOrderTypeUuid:                        merged[KeyTestOrderTypeUuid],
		ProcedureComplicationGroupingConceptUuid: merged[KeyProcedureComplicationGroupingConceptUuid],
		ProcedureComplicationConceptUuid:         merged[KeyProcedureComplicationConceptUuid],
		EncounterRoleUuid:                        merged[KeyEncounterRoleUuid],
		ProcedureEncounterTypeUuid:               merged[KeyProcedureEncounterTypeUuid],
	}, nil
}

// Values renders the merged configuration as the key/value map served by
// the configuration endpoint.
func (c *ConceptConfig) Values() map[string]string {
	return map[string]string{
		KeyProcedureOrderTypeUuid:                   c.ProcedureOrderTypeUuid,
		KeyTestOrderTypeUuid:                        c.TestOrderTypeUuid,
		KeyProcedureComplicationGroupingConceptUuid: c.ProcedureComplicationGroupingConceptUuid,
		KeyProcedureComplicationConceptUuid:         c.ProcedureComplicationConceptUuid,
		KeyEncounterRoleUuid:                        c.EncounterRoleUuid,
		KeyProcedureEncounterTypeUuid:               c.ProcedureEncounterTypeUuid,
	}
}

// MergeConceptValues overlays overrides on the schema defaults. Unknown
// override keys are ignored; override values are string-coerced.
func MergeConceptValues(overrides map[string]interface{}) map[string]string {
	merged := make(map[string]string, len(ConceptSchema))
	for key, property := range ConceptSchema {
		merged[key] = property.Default
	}
	for key, value := range overrides {
		if _, known := merged[key]; !known {
			continue
		}
		merged[key] = fmt.Sprintf("%v", value)
	}
	return merged
}
