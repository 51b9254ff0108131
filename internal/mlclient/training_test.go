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

func TestTrain_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ml/train_models/", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req struct {
			DatasetID string   `json:"dataset_id"`
			Models    []string `json:"models"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "d1", req.DatasetID)
		assert.Equal(t, []string{"svm"}, req.Models)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":    "Models trained successfully",
			"dataset_id": "d1",
			"results": map[string]models.TrainedModel{
				"svm": {
					ModelID:          "d1_svm_1",
					ModelType:        "svm",
					TrainingAccuracy: 0.95,
					TestingAccuracy:  0.91,
					CVAccuracy:       0.9,
					TrainingSamples:  80,
					TestingSamples:   20,
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.Train(context.Background(), "d1", []string{"svm"})
	require.NoError(t, err)
	assert.Equal(t, "d1", result.DatasetID)
	require.Contains(t, result.Results, "svm")
	assert.Equal(t, 0.91, result.Results["svm"].TestingAccuracy)
}

func TestTrain_EmptyKindsRequestsDefaultSet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Models []string `json:"models"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.DefaultModelKinds(), req.Models)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"dataset_id": "d1",
			"results":    map[string]models.TrainedModel{},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Train(context.Background(), "d1", nil)
	assert.NoError(t, err)
}

func TestTrain_BackendErrorSurfacesMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"insufficient data"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.Train(context.Background(), "d1", []string{"svm"})
	assert.Nil(t, result)

	var tErr *TrainingError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, "insufficient data", err.Error())
}
