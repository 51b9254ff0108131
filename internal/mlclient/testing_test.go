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

func TestTestModel_Success(t *testing.T) {
	row := map[string]float64{"confidentiality": 3, "integrity": 2, "availability": 1}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ml/test_model/", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req struct {
			ModelID  string               `json:"model_id"`
			TestData []map[string]float64 `json:"test_data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "m1", req.ModelID)
		require.Len(t, req.TestData, 1)
		assert.Equal(t, row, req.TestData[0])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"model_id": "m1",
			"predictions": []models.Prediction{
				{
					Input:         map[string]interface{}{"confidentiality": 3.0},
					Prediction:    "A",
					Probabilities: map[string]float64{"A": 0.7, "B": 0.3},
				},
			},
			"model_info": models.ModelInfo{
				ModelType:     "svm",
				TargetClasses: []string{"A", "B"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.TestModel(context.Background(), "m1", []map[string]float64{row})
	require.NoError(t, err)
	require.Len(t, result.Predictions, 1)

	p := result.Predictions[0]

	// The predicted class carries the highest probability and the mapping
	// normalizes to 1.
	var sum float64
	best, bestProb := "", -1.0
	for class, prob := range p.Probabilities {
		sum += prob
		if prob > bestProb {
			best, bestProb = class, prob
		}
	}
	assert.Equal(t, best, p.Prediction)
	assert.InDelta(t, 1.0, sum, 1e-6)
	assert.Equal(t, "svm", result.ModelInfo.ModelType)
}

func TestTestModel_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Model m9 not found"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.TestModel(context.Background(), "m9", nil)
	assert.Nil(t, result)

	var tErr *TestingError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, "Model m9 not found", err.Error())
}

func TestTestModel_WholeBatchFails(t *testing.T) {
	// Partial success is not representable: a failed call yields no
	// predictions at all.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Testing failed: bad row"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	rows := []map[string]float64{
		{"confidentiality": 1},
		{"confidentiality": 2},
	}

	result, err := client.TestModel(context.Background(), "m1", rows)
	assert.Nil(t, result)
	assert.Error(t, err)
}
