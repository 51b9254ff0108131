package models

// Model kinds the backend knows how to train.
const (
	ModelKindRandomForest = "random_forest"
	ModelKindSVM          = "svm"
	ModelKindDecisionTree = "decision_tree"
)

// DefaultModelKinds returns the set trained when a request names none.
func DefaultModelKinds() []string {
	return []string{ModelKindRandomForest, ModelKindSVM, ModelKindDecisionTree}
}

// TrainedModel is the outcome of one training run for one model kind against
// one dataset. All accuracy fields are raw fractions in [0,1].
type TrainedModel struct {
	ModelID          string   `json:"model_id"`
	DatasetID        string   `json:"dataset_id,omitempty"`
	ModelType        string   `json:"model_type"`
	TrainingAccuracy float64  `json:"training_accuracy"`
	TestingAccuracy  float64  `json:"testing_accuracy"`
	CVAccuracy       float64  `json:"cv_accuracy"`
	CVStd            float64  `json:"cv_std"`
	TrainingSamples  int      `json:"training_samples"`
	TestingSamples   int      `json:"testing_samples"`
	FeaturesUsed     []string `json:"features_used"`
	TargetClasses    []string `json:"target_classes"`
	TrainingTime     float64  `json:"training_time"`
	TrainingDate     string   `json:"training_date,omitempty"`
	ModelPath        string   `json:"model_path,omitempty"`
}
