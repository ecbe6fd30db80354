package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConceptConfigDefaults(t *testing.T) {
	conceptConfig, err := BuildConceptConfig("")
	require.NoError(t, err)

	assert.Equal(t, ConceptSchema[KeyProcedureOrderTypeUuid].Default, conceptConfig.ProcedureOrderTypeUuid)
	assert.Equal(t, ConceptSchema[KeyEncounterRoleUuid].Default, conceptConfig.EncounterRoleUuid)
	assert.Equal(t, ConceptSchema[KeyProcedureEncounterTypeUuid].Default, conceptConfig.ProcedureEncounterTypeUuid)
}

func TestBuildConceptConfigOverrides(t *testing.T) {
	overrides := `{"encounterRoleUuid":"custom-role","procedureComplicationConceptUuid":"custom-complication"}`

	conceptConfig, err := BuildConceptConfig(overrides)
	require.NoError(t, err)

	assert.Equal(t, "custom-role", conceptConfig.EncounterRoleUuid)
	assert.Equal(t, "custom-complication", conceptConfig.ProcedureComplicationConceptUuid)
	// Untouched keys keep their defaults.
	assert.Equal(t, ConceptSchema[KeyProcedureOrderTypeUuid].Default, conceptConfig.ProcedureOrderTypeUuid)
}

func TestBuildConceptConfigInvalidJSON(t *testing.T) {
	_, err := BuildConceptConfig(`{not json`)
	assert.Error(t, err)
}

func TestMergeConceptValuesIgnoresUnknownKeys(t *testing.T) {
	merged := MergeConceptValues(map[string]interface{}{
		"unknownKey":         "value",
		KeyTestOrderTypeUuid: "custom-test-order-type",
	})

	assert.NotContains(t, merged, "unknownKey")
	assert.Equal(t, "custom-test-order-type", merged[KeyTestOrderTypeUuid])
	assert.Len(t, merged, len(ConceptSchema))
}

func TestMergeConceptValuesCoercesToString(t *testing.T) {
	merged := MergeConceptValues(map[string]interface{}{
		KeyTestOrderTypeUuid: 12345,
	})

	assert.Equal(t, "12345", merged[KeyTestOrderTypeUuid])
}

func TestConceptConfigValues(t *testing.T) {
	conceptConfig, err := BuildConceptConfig("")
	require.NoError(t, err)

	values := conceptConfig.Values()
	require.Len(t, values, len(ConceptSchema))
	for key, property := range ConceptSchema {
		assert.Equal(t, property.Default, values[key])
	}
}
