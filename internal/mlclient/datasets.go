package mlclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/assetsentry/riskml-console/internal/core/models"
)

// ListDatasets fetches every uploaded dataset, newest first. On any failure
// the returned slice is empty and the error carries the reason; a well-formed
// body without a datasets key is treated as an empty registry, not a failure.
func (c *Client) ListDatasets(ctx context.Context) ([]models.Dataset, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/ml/list_datasets/", nil)
	if err != nil {
		return nil, newFetchError("failed to create list request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newFetchError(fmt.Sprintf("failed to fetch datasets: %v", err), err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, newFetchError(errorMessage(resp, "failed to fetch datasets"), nil)
	}

	var payload struct {
		Datasets []models.Dataset `json:"datasets"`
		Count    int              `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, newFetchError("failed to decode dataset list", err)
	}

	if payload.Datasets == nil {
		return []models.Dataset{}, nil
	}
	return payload.Datasets, nil
}

// GetStatistics returns the statistics of one dataset by re-listing and
// scanning for the identifier. Collections stay small enough that the linear
// scan is fine.
func (c *Client) GetStatistics(ctx context.Context, datasetID string) (*models.Dataset, error) {
	datasets, err := c.ListDatasets(ctx)
	if err != nil {
		return nil, err
	}

	for i := range datasets {
		if datasets[i].DatasetID == datasetID {
			return &datasets[i], nil
		}
	}
	return nil, newFetchError(fmt.Sprintf("dataset %s not found", datasetID), nil)
}
