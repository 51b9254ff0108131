package devserver

import (
	"sort"
	"sync"

	"github.com/assetsentry/riskml-console/internal/core/models"
)

type storedDataset struct {
	meta models.Dataset
	rows []map[string]string
}

// store is the in-memory registry behind the development server. Everything
// is lost on restart, which is the point.
type store struct {
	mu         sync.Mutex
	datasets   map[string]*storedDataset
	results    map[string]map[string]models.TrainedModel
	modelIndex map[string]string // model id -> dataset id
}

func newStore() *store {
	return &store{
		datasets:   make(map[string]*storedDataset),
		results:    make(map[string]map[string]models.TrainedModel),
		modelIndex: make(map[string]string),
	}
}

func (s *store) putDataset(meta models.Dataset, rows []map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets[meta.DatasetID] = &storedDataset{meta: meta, rows: rows}
}

func (s *store) dataset(id string) (*storedDataset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ds, ok := s.datasets[id]
	return ds, ok
}

func (s *store) listDatasets() []models.Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Dataset, 0, len(s.datasets))
	for _, ds := range s.datasets {
		out = append(out, ds.meta)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UploadDate > out[j].UploadDate
	})
	return out
}

func (s *store) putResults(datasetID string, results map[string]models.TrainedModel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.results[datasetID] == nil {
		s.results[datasetID] = make(map[string]models.TrainedModel)
	}
	for kind, m := range results {
		s.results[datasetID][kind] = m
		s.modelIndex[m.ModelID] = datasetID
	}
}

func (s *store) model(modelID string) (models.TrainedModel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	datasetID, ok := s.modelIndex[modelID]
	if !ok {
		return models.TrainedModel{}, false
	}
	for _, m := range s.results[datasetID] {
		if m.ModelID == modelID {
			return m, true
		}
	}
	return models.TrainedModel{}, false
}

func (s *store) resultsFor(modelID string) (string, map[string]models.TrainedModel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	datasetID, ok := s.modelIndex[modelID]
	if !ok {
		return "", nil, false
	}
	return datasetID, s.results[datasetID], true
}

func (s *store) listModels() []models.TrainedModel {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.TrainedModel
	for datasetID, byKind := range s.results {
		for _, m := range byKind {
			m.DatasetID = datasetID
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TrainingDate > out[j].TrainingDate
	})
	return out
}
