package models

// DatasetType distinguishes training uploads from held-out testing uploads.
type DatasetType string

const (
	DatasetTypeTraining DatasetType = "training"
	DatasetTypeTesting  DatasetType = "testing"
)

// FeatureStats carries the summary the backend computes for one numeric column.
type FeatureStats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// Dataset mirrors the statistics record the backend stores for an uploaded
// CSV. Records are owned by the backend; the client never mutates them.
type Dataset struct {
	DatasetID         string                  `json:"dataset_id"`
	DatasetType       DatasetType             `json:"dataset_type"`
	ModelName         string                  `json:"model_name"`
	UploadDate        string                  `json:"upload_date"`
	TotalRecords      int                     `json:"total_records"`
	FeaturesCount     int                     `json:"features_count"`
	TargetClasses     []string                `json:"target_classes"`
	ClassDistribution map[string]int          `json:"class_distribution"`
	FeatureStatistics map[string]FeatureStats `json:"feature_statistics,omitempty"`
	FilePath          string                  `json:"file_path,omitempty"`
}
