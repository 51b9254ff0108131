package mlclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetsentry/riskml-console/internal/core/models"
)

func TestListModels_Success(t *testing.T) {
	mockModels := []models.TrainedModel{
		{ModelID: "m2", ModelType: "svm", TestingAccuracy: 0.91, DatasetID: "d1"},
		{ModelID: "m1", ModelType: "random_forest", TestingAccuracy: 0.94, DatasetID: "d1"},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ml/list_models/", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"models": mockModels,
			"count":  len(mockModels),
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	trained, err := client.ListModels(context.Background())
	require.NoError(t, err)
	require.Len(t, trained, 2)
	assert.Equal(t, "m2", trained[0].ModelID)
	assert.Equal(t, "d1", trained[0].DatasetID)
}

func TestListModels_MissingKeyResolvesEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"count": 0})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	trained, err := client.ListModels(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, trained)
	assert.Empty(t, trained)
}

func TestListModels_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to list models: boom"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	trained, err := client.ListModels(context.Background())
	assert.Empty(t, trained)

	var fErr *FetchError
	require.ErrorAs(t, err, &fErr)
	assert.Equal(t, "Failed to list models: boom", err.Error())
}
