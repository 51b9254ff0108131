package mlclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
)

// DownloadReport retrieves the performance report artifact for a trained
// model and writes it into dir under the backend's advertised filename,
// "<model_id>_report.json". Returns the saved path. Network faults and
// file-save faults are not distinguished beyond the error message.
func (c *Client) DownloadReport(ctx context.Context, modelID, dir string) (string, error) {
	path := "/api/ml/download_model_report/?model_id=" + url.QueryEscape(modelID)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", newDownloadError("failed to create report request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", newDownloadError(fmt.Sprintf("report request failed: %v", err), err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return "", newDownloadError(errorMessage(resp, "failed to download report"), nil)
	}

	artifact, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", newDownloadError("failed to read report body", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", newDownloadError(fmt.Sprintf("failed to create reports directory: %v", err), err)
	}

	target := filepath.Join(dir, modelID+"_report.json")
	if err := os.WriteFile(target, artifact, 0o644); err != nil {
		return "", newDownloadError(fmt.Sprintf("failed to save report: %v", err), err)
	}

	c.log.Debug().
		Str("model_id", modelID).
		Str("path", target).
		Msg("Report saved")

	return target, nil
}
