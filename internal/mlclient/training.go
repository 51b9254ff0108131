package mlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/assetsentry/riskml-console/internal/core/models"
)

// TrainResult is the payload of a successful training request: one
// TrainedModel per requested kind, keyed by kind.
type TrainResult struct {
	DatasetID string                         `json:"dataset_id"`
	Results   map[string]models.TrainedModel `json:"results"`
}

// Train submits one training request for the dataset against the given model
// kinds. The backend trains every requested kind and returns them together;
// there is no per-kind fan-out on this side. An empty kinds slice requests
// the default set.
func (c *Client) Train(ctx context.Context, datasetID string, kinds []string) (*TrainResult, error) {
	if len(kinds) == 0 {
		kinds = models.DefaultModelKinds()
	}

	body, err := json.Marshal(map[string]interface{}{
		"dataset_id": datasetID,
		"models":     kinds,
	})
	if err != nil {
		return nil, newTrainingError("failed to build training request", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/ml/train_models/", bytes.NewReader(body))
	if err != nil {
		return nil, newTrainingError("failed to create training request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newTrainingError(fmt.Sprintf("training request failed: %v", err), err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, newTrainingError(errorMessage(resp, "failed to train models"), nil)
	}

	var result TrainResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, newTrainingError("failed to decode training response", err)
	}

	c.log.Debug().
		Str("dataset_id", result.DatasetID).
		Int("models_trained", len(result.Results)).
		Msg("Training complete")

	return &result, nil
}
