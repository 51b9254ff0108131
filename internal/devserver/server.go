// Package devserver is an in-memory stand-in for the asset-risk ML backend.
// It implements the same six endpoints with the same payload shapes so the
// client and dashboard can be exercised without the real service. Metrics are
// simulated deterministically; nothing is actually trained.
package devserver

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"net/http"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/theblitlabs/gologger"

	"github.com/assetsentry/riskml-console/internal/core/models"
)

const maxUploadMemory = 50 << 20

// Server handles the ML API surface over an in-memory store.
type Server struct {
	router *mux.Router
	store  *store
	log    zerolog.Logger
}

func NewServer() *Server {
	s := &Server{
		router: mux.NewRouter(),
		store:  newStore(),
		log:    gologger.Get().With().Str("component", "devserver").Logger(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) registerRoutes() {
	api := s.router.PathPrefix("/api/ml").Subrouter()
	api.HandleFunc("/upload_dataset/", s.handleUploadDataset).Methods(http.MethodPost)
	api.HandleFunc("/list_datasets/", s.handleListDatasets).Methods(http.MethodGet)
	api.HandleFunc("/train_models/", s.handleTrainModels).Methods(http.MethodPost)
	api.HandleFunc("/list_models/", s.handleListModels).Methods(http.MethodGet)
	api.HandleFunc("/test_model/", s.handleTestModel).Methods(http.MethodPost)
	api.HandleFunc("/download_model_report/", s.handleDownloadReport).Methods(http.MethodGet)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func (s *Server) handleUploadDataset(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart payload")
		return
	}

	file, header, err := r.FormFile("csv_file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "csv_file is required")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		writeError(w, http.StatusBadRequest, "File must be a CSV file")
		return
	}

	datasetType := r.FormValue("dataset_type")
	if datasetType == "" {
		datasetType = string(models.DatasetTypeTraining)
	}
	modelName := r.FormValue("model_name")
	if modelName == "" {
		modelName = "Asset_Classification_Model"
	}

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Error reading CSV file: %v", err))
		return
	}

	rows, err := parseRecords(records)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	datasetID := fmt.Sprintf("%s_%s_%s", modelName, datasetType, uuid.NewString()[:8])
	total, classes, distribution, featureStats := computeStatistics(rows)

	meta := models.Dataset{
		DatasetID:         datasetID,
		DatasetType:       models.DatasetType(datasetType),
		ModelName:         modelName,
		UploadDate:        time.Now().UTC().Format(time.RFC3339),
		TotalRecords:      total,
		FeaturesCount:     len(records[0]) - 1,
		TargetClasses:     classes,
		ClassDistribution: distribution,
		FeatureStatistics: featureStats,
	}
	s.store.putDataset(meta, rows)

	s.log.Info().
		Str("dataset_id", datasetID).
		Int("records", total).
		Msg("Dataset stored")

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Dataset uploaded successfully",
		"dataset_id": datasetID,
		"statistics": meta,
	})
}

func (s *Server) handleListDatasets(w http.ResponseWriter, r *http.Request) {
	datasets := s.store.listDatasets()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"datasets": datasets,
		"count":    len(datasets),
	})
}

func (s *Server) handleTrainModels(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DatasetID string   `json:"dataset_id"`
		Models    []string `json:"models"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.DatasetID == "" {
		writeError(w, http.StatusBadRequest, "dataset_id is required")
		return
	}

	ds, ok := s.store.dataset(req.DatasetID)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Dataset %s not found", req.DatasetID))
		return
	}
	if len(ds.rows) < 2 {
		writeError(w, http.StatusBadRequest, "insufficient data")
		return
	}

	kinds := req.Models
	if len(kinds) == 0 {
		kinds = models.DefaultModelKinds()
	}

	features := availableFeatures(ds.rows)
	trainSamples := len(ds.rows) * 8 / 10
	if trainSamples == 0 {
		trainSamples = 1
	}

	results := make(map[string]models.TrainedModel)
	for _, kind := range kinds {
		if !knownKind(kind) {
			continue
		}
		m := simulateTraining(req.DatasetID, kind, ds.meta, features, trainSamples, len(ds.rows)-trainSamples)
		results[kind] = m
	}
	s.store.putResults(req.DatasetID, results)

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Models trained successfully",
		"dataset_id": req.DatasetID,
		"results":    results,
	})
}

func knownKind(kind string) bool {
	switch kind {
	case models.ModelKindRandomForest, models.ModelKindSVM, models.ModelKindDecisionTree:
		return true
	}
	return false
}

// simulateTraining fabricates plausible, deterministic metrics from the
// dataset and kind so repeated runs agree and accuracies stay inside [0,1].
func simulateTraining(datasetID, kind string, meta models.Dataset, features []string, trainSamples, testSamples int) models.TrainedModel {
	h := fnv.New64a()
	h.Write([]byte(datasetID + "|" + kind))
	seed := h.Sum64()

	testing := 0.80 + float64(seed%150)/1000  // [0.80, 0.95)
	training := testing + 0.03
	if training > 0.99 {
		training = 0.99
	}
	cv := testing - 0.01
	cvStd := 0.005 + float64(seed%20)/1000

	return models.TrainedModel{
		ModelID:          fmt.Sprintf("%s_%s_%s", datasetID, kind, uuid.NewString()[:8]),
		ModelType:        kind,
		TrainingAccuracy: round4(training),
		TestingAccuracy:  round4(testing),
		CVAccuracy:       round4(cv),
		CVStd:            round4(cvStd),
		TrainingSamples:  trainSamples,
		TestingSamples:   testSamples,
		FeaturesUsed:     features,
		TargetClasses:    meta.TargetClasses,
		TrainingTime:     round2(0.5 + float64(seed%200)/100),
		TrainingDate:     time.Now().UTC().Format(time.RFC3339),
	}
}

func round4(v float64) float64 { return float64(int64(v*10000+0.5)) / 10000 }
func round2(v float64) float64 { return float64(int64(v*100+0.5)) / 100 }

func (s *Server) handleTestModel(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ModelID  string                   `json:"model_id"`
		TestData []map[string]interface{} `json:"test_data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ModelID == "" {
		writeError(w, http.StatusBadRequest, "model_id is required")
		return
	}

	model, ok := s.store.model(req.ModelID)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Model %s not found", req.ModelID))
		return
	}

	datasetID, _, _ := s.store.resultsFor(req.ModelID)
	ds, ok := s.store.dataset(datasetID)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Dataset for model %s not found", req.ModelID))
		return
	}

	predictions := make([]models.Prediction, 0, len(req.TestData))
	for _, row := range req.TestData {
		predictions = append(predictions, s.predict(model, ds.meta, row))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"model_id":    req.ModelID,
		"predictions": predictions,
		"model_info": models.ModelInfo{
			ModelType:     model.ModelType,
			FeaturesUsed:  model.FeaturesUsed,
			TargetClasses: model.TargetClasses,
			TrainingDate:  model.TrainingDate,
		},
	})
}

// predict scores a row from the training class distribution, nudged by the
// row's feature magnitude so different inputs produce different scores.
// Probabilities always normalize to 1.
func (s *Server) predict(model models.TrainedModel, meta models.Dataset, row map[string]interface{}) models.Prediction {
	classes := model.TargetClasses
	if len(classes) == 0 {
		classes = meta.TargetClasses
	}

	var featureSum float64
	for _, col := range model.FeaturesUsed {
		if v, ok := row[col]; ok {
			featureSum += cast.ToFloat64(v)
		}
	}

	weights := make(map[string]float64, len(classes))
	var total float64
	for i, class := range classes {
		w := float64(meta.ClassDistribution[class] + 1)
		// Bias toward later classes as the aggregate feature signal grows.
		w += featureSum * float64(i) / 10
		weights[class] = w
		total += w
	}

	probabilities := make(map[string]float64, len(classes))
	best := ""
	bestScore := -1.0
	ordered := append([]string(nil), classes...)
	sort.Strings(ordered)
	for _, class := range ordered {
		p := weights[class] / total
		probabilities[class] = p
		if p > bestScore {
			best = class
			bestScore = p
		}
	}

	return models.Prediction{
		Input:         row,
		Prediction:    best,
		Probabilities: probabilities,
	}
}

func (s *Server) handleListModels(w http.ResponseWriter, r *http.Request) {
	trained := s.store.listModels()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"models": trained,
		"count":  len(trained),
	})
}

func (s *Server) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	modelID := r.URL.Query().Get("model_id")
	if modelID == "" {
		writeError(w, http.StatusBadRequest, "model_id parameter is required")
		return
	}

	datasetID, results, ok := s.store.resultsFor(modelID)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Training results for model %s not found", modelID))
		return
	}

	report := map[string]interface{}{
		"model_performance_report": map[string]interface{}{
			"generated_at":     time.Now().UTC().Format(time.RFC3339),
			"model_id":         modelID,
			"dataset_id":       datasetID,
			"training_results": results,
		},
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", modelID+"_report.json"))
	writeJSON(w, http.StatusOK, report)
}
