package procedures

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"prosedur-service/internal/pkg/emr_dto"
	"prosedur-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProcedure(t *testing.T) {
	payload := &emr_dto.ProcedurePayload{
		Patient:        "patient-uuid",
		ProcedureOrder: "order-uuid",
		Concept:        "concept-uuid",
		Status:         "COMPLETED",
		Outcome:        "SUCCESSFUL",
	}

	t.Run("201 created is the only success", func(t *testing.T) {
		var gotBody []byte
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotBody, _ = io.ReadAll(r.Body)
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := NewProcedureEmrClient(server.URL)

		err := client.CreateProcedure(context.Background(), payload)
		require.NoError(t, err)

		var sent emr_dto.ProcedurePayload
		require.NoError(t, json.Unmarshal(gotBody, &sent))
		assert.Equal(t, "COMPLETED", sent.Status)
		assert.Equal(t, "order-uuid", sent.ProcedureOrder)
	})

	t.Run("200 without created body is a rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"error":{"message":"validation queued"}}`))
		}))
		defer server.Close()

		client := NewProcedureEmrClient(server.URL)

		err := client.CreateProcedure(context.Background(), payload)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Contains(t, customErr.DevMessage, "validation queued")
	})

	t.Run("emr error envelope reaches dev message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"startDatetime after endDatetime"}}`))
		}))
		defer server.Close()

		client := NewProcedureEmrClient(server.URL)

		err := client.CreateProcedure(context.Background(), payload)
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
		assert.Contains(t, customErr.DevMessage, "startDatetime after endDatetime")
	})
}
