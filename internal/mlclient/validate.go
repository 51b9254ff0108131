package mlclient

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// UploadExtension is the only tabular format the backend accepts.
	UploadExtension = ".csv"

	// MaxUploadSize is the upload ceiling in bytes (50 MiB).
	MaxUploadSize = 50 << 20
)

// ValidateUpload performs the pre-flight checks on a candidate upload before
// any network call is issued: extension first, then size. No schema
// validation happens client-side. Returns nil when the file is acceptable,
// otherwise a *ValidationError naming the reason.
func ValidateUpload(filename string, size int64) error {
	if !strings.EqualFold(filepath.Ext(filename), UploadExtension) {
		return &ValidationError{Reason: fmt.Sprintf("file must be a CSV file, got %q", filename)}
	}
	if size > MaxUploadSize {
		return &ValidationError{Reason: fmt.Sprintf("file exceeds the %d MiB upload limit", MaxUploadSize>>20)}
	}
	return nil
}
