package mlclient

import (
	"encoding/json"
	"io"
	"net/http"
)

// apiError is the shared shape of every operation error. Message holds the
// backend's structured error string when one was returned, otherwise a generic
// per-operation fallback; Error() yields it verbatim so callers can show it to
// the user unchanged.
type apiError struct {
	message string
	cause   error
}

func (e apiError) Error() string { return e.message }
func (e apiError) Unwrap() error { return e.cause }

// ValidationError is a pre-flight rejection; it never reaches the network.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// UploadError covers dataset upload failures.
type UploadError struct{ apiError }

// FetchError covers dataset/model listing and statistics lookup failures.
type FetchError struct{ apiError }

// TrainingError covers training request failures.
type TrainingError struct{ apiError }

// TestingError covers prediction batch failures.
type TestingError struct{ apiError }

// DownloadError covers report retrieval and file-save failures.
type DownloadError struct{ apiError }

func newUploadError(msg string, cause error) *UploadError {
	return &UploadError{apiError{message: msg, cause: cause}}
}

func newFetchError(msg string, cause error) *FetchError {
	return &FetchError{apiError{message: msg, cause: cause}}
}

func newTrainingError(msg string, cause error) *TrainingError {
	return &TrainingError{apiError{message: msg, cause: cause}}
}

func newTestingError(msg string, cause error) *TestingError {
	return &TestingError{apiError{message: msg, cause: cause}}
}

func newDownloadError(msg string, cause error) *DownloadError {
	return &DownloadError{apiError{message: msg, cause: cause}}
}

// errorMessage extracts the backend's structured error field from a non-2xx
// response body, falling back to the supplied generic message.
func errorMessage(resp *http.Response, fallback string) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || len(body) == 0 {
		return fallback
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return fallback
}
