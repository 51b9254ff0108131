package mlclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/assetsentry/riskml-console/internal/core/models"
)

// DefaultModelName is applied when an upload names no owning model.
const DefaultModelName = "Asset_Classification_Model"

// UploadResult is the payload of a successful dataset upload.
type UploadResult struct {
	DatasetID  string         `json:"dataset_id"`
	Statistics models.Dataset `json:"statistics"`
}

// UploadDataset validates the candidate file and, when it passes, submits it
// as a multipart payload together with its metadata. The returned statistics
// are the backend's own summary of the stored dataset.
func (c *Client) UploadDataset(ctx context.Context, file io.Reader, filename string, size int64, modelName string, datasetType models.DatasetType) (*UploadResult, error) {
	if err := ValidateUpload(filename, size); err != nil {
		return nil, err
	}
	if modelName == "" {
		modelName = DefaultModelName
	}
	if datasetType == "" {
		datasetType = models.DatasetTypeTraining
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("csv_file", filename)
	if err != nil {
		return nil, newUploadError("failed to build upload payload", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, newUploadError("failed to read upload file", err)
	}
	if err := writer.WriteField("dataset_type", string(datasetType)); err != nil {
		return nil, newUploadError("failed to build upload payload", err)
	}
	if err := writer.WriteField("model_name", modelName); err != nil {
		return nil, newUploadError("failed to build upload payload", err)
	}
	if err := writer.Close(); err != nil {
		return nil, newUploadError("failed to build upload payload", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/ml/upload_dataset/", &buf)
	if err != nil {
		return nil, newUploadError("failed to create upload request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, newUploadError(fmt.Sprintf("upload request failed: %v", err), err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, newUploadError(errorMessage(resp, "failed to upload dataset"), nil)
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, newUploadError("failed to decode upload response", err)
	}

	c.log.Debug().
		Str("dataset_id", result.DatasetID).
		Int("total_records", result.Statistics.TotalRecords).
		Msg("Dataset uploaded")

	return &result, nil
}
