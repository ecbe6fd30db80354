package conditions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"prosedur-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchConditionConcepts(t *testing.T) {
	t.Run("sends query and decodes results", func(t *testing.T) {
		var gotQuery, gotClasses string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("q")
			gotClasses = r.URL.Query().Get("conceptClasses")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"results":[{"display":"Postoperative hemorrhage","concept":{"uuid":"concept-1"}},{"display":"Surgical site infection","concept":{"uuid":"concept-2"}}]}`))
		}))
		defer server.Close()

		client := NewConditionEmrClient(server.URL)

		candidates, err := client.SearchConditionConcepts(context.Background(), "hemo")
		require.NoError(t, err)

		assert.Equal(t, "hemo", gotQuery)
		assert.Equal(t, "Diagnosis", gotClasses)
		require.Len(t, candidates, 2)
		assert.Equal(t, "Postoperative hemorrhage", candidates[0].Display)
		assert.Equal(t, "concept-1", candidates[0].Concept.UUID)
	})

	t.Run("surfaces emr error envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"lucene index unavailable"}}`))
		}))
		defer server.Close()

		client := NewConditionEmrClient(server.URL)

		_, err := client.SearchConditionConcepts(context.Background(), "hemo")
		require.Error(t, err)

		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
		assert.Contains(t, customErr.DevMessage, "lucene index unavailable")
	})

	t.Run("empty result set", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"results":[]}`))
		}))
		defer server.Close()

		client := NewConditionEmrClient(server.URL)

		candidates, err := client.SearchConditionConcepts(context.Background(), "zzzz")
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})
}
