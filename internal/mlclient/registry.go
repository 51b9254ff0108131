package mlclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/assetsentry/riskml-console/internal/core/models"
)

// ListModels fetches every trained model, newest first. Failure policy
// matches ListDatasets: empty slice plus a FetchError.
func (c *Client) ListModels(ctx context.Context) ([]models.TrainedModel, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/ml/list_models/", nil)
	if err != nil {
		return nil, newFetchError("failed to create list request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newFetchError(fmt.Sprintf("failed to fetch models: %v", err), err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, newFetchError(errorMessage(resp, "failed to fetch models"), nil)
	}

	var payload struct {
		Models []models.TrainedModel `json:"models"`
		Count  int                   `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, newFetchError("failed to decode model list", err)
	}

	if payload.Models == nil {
		return []models.TrainedModel{}, nil
	}
	return payload.Models, nil
}
