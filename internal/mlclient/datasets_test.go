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

func TestListDatasets_Success(t *testing.T) {
	mockDatasets := []models.Dataset{
		{DatasetID: "d2", DatasetType: models.DatasetTypeTraining, TotalRecords: 20},
		{DatasetID: "d1", DatasetType: models.DatasetTypeTesting, TotalRecords: 10},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ml/list_datasets/", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"datasets": mockDatasets,
			"count":    len(mockDatasets),
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	datasets, err := client.ListDatasets(context.Background())
	require.NoError(t, err)
	require.Len(t, datasets, 2)
	assert.Equal(t, "d2", datasets[0].DatasetID)
}

func TestListDatasets_MissingKeyResolvesEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"count": 0})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	datasets, err := client.ListDatasets(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, datasets)
	assert.Empty(t, datasets)
}

func TestListDatasets_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	datasets, err := client.ListDatasets(context.Background())
	assert.Empty(t, datasets)

	var fErr *FetchError
	assert.ErrorAs(t, err, &fErr)
}

func TestListDatasets_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to list datasets: disk error"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	datasets, err := client.ListDatasets(context.Background())
	assert.Empty(t, datasets)
	require.Error(t, err)
	assert.Equal(t, "Failed to list datasets: disk error", err.Error())
}

func TestGetStatistics_FindsMatchingDataset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"datasets": []models.Dataset{
				{DatasetID: "d1", TotalRecords: 10},
				{DatasetID: "d2", TotalRecords: 20},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ds, err := client.GetStatistics(context.Background(), "d2")
	require.NoError(t, err)
	assert.Equal(t, "d2", ds.DatasetID)
	assert.Equal(t, 20, ds.TotalRecords)
}

func TestGetStatistics_AbsentID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"datasets": []models.Dataset{{DatasetID: "d1"}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ds, err := client.GetStatistics(context.Background(), "missing")
	assert.Nil(t, ds)

	var fErr *FetchError
	assert.ErrorAs(t, err, &fErr)
	assert.Contains(t, err.Error(), "missing")
}

func TestGetStatistics_ListFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ds, err := client.GetStatistics(context.Background(), "d1")
	assert.Nil(t, ds)
	assert.Error(t, err)
}
