package models

// Prediction is one classified row. Input echoes the submitted feature
// mapping; Probabilities maps each target class to its score and sums to 1
// within floating tolerance.
type Prediction struct {
	Input         map[string]interface{} `json:"input"`
	Prediction    string                 `json:"prediction"`
	Probabilities map[string]float64     `json:"probabilities"`
}

// ModelInfo describes the model a batch of predictions came from.
type ModelInfo struct {
	ModelType     string   `json:"model_type"`
	FeaturesUsed  []string `json:"features_used"`
	TargetClasses []string `json:"target_classes"`
	TrainingDate  string   `json:"training_date"`
}
