package mlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/assetsentry/riskml-console/internal/core/models"
)

// TestResult is the payload of one prediction batch.
type TestResult struct {
	ModelID     string              `json:"model_id"`
	Predictions []models.Prediction `json:"predictions"`
	ModelInfo   models.ModelInfo    `json:"model_info"`
}

// TestModel submits the feature rows to a trained model in one round trip.
// Partial success is not representable: either every row comes back with a
// prediction or the whole call fails.
func (c *Client) TestModel(ctx context.Context, modelID string, rows []map[string]float64) (*TestResult, error) {
	body, err := json.Marshal(map[string]interface{}{
		"model_id":  modelID,
		"test_data": rows,
	})
	if err != nil {
		return nil, newTestingError("failed to build test request", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/ml/test_model/", bytes.NewReader(body))
	if err != nil {
		return nil, newTestingError("failed to create test request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newTestingError(fmt.Sprintf("test request failed: %v", err), err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, newTestingError(errorMessage(resp, "failed to test model"), nil)
	}

	var result TestResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, newTestingError("failed to decode test response", err)
	}

	c.log.Debug().
		Str("model_id", result.ModelID).
		Int("predictions", len(result.Predictions)).
		Msg("Model tested")

	return &result, nil
}
