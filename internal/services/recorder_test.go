package services

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeinsight/resume-analyzer/internal/models"
)

type memoryAnalysisRepo struct {
	mu      sync.Mutex
	records []*models.AnalysisRecord
}

func (m *memoryAnalysisRepo) Create(record *models.AnalysisRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return nil
}

func (m *memoryAnalysisRepo) FindByID(id uuid.UUID) (*models.AnalysisRecord, error) {
	return nil, nil
}

func (m *memoryAnalysisRepo) FindRecent(limit int) ([]models.AnalysisRecord, error) {
	return nil, nil
}

func (m *memoryAnalysisRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

func TestRecorder_PersistsEnqueuedRecords(t *testing.T) {
	repo := &memoryAnalysisRepo{}
	recorder := NewRecorder(repo, 2)
	recorder.Start()

	for i := 0; i < 5; i++ {
		recorder.Enqueue(&models.AnalysisRecord{
			ID:       uuid.New(),
			Filename: "resume.pdf",
			Kind:     models.KindGeneral,
		})
	}

	require.Eventually(t, func() bool {
		return repo.count() == 5
	}, 2*time.Second, 10*time.Millisecond)

	recorder.Stop()
}

func TestRecorder_StopDrainsQueue(t *testing.T) {
	repo := &memoryAnalysisRepo{}
	recorder := NewRecorder(repo, 1)

	// Queue before any writer runs, then start and immediately stop
	for i := 0; i < 3; i++ {
		recorder.Enqueue(&models.AnalysisRecord{ID: uuid.New(), Kind: models.KindMatch})
	}

	recorder.Start()
	recorder.Stop()

	assert.Equal(t, 3, repo.count())
}

func TestRecorder_DropsRecordsAfterStop(t *testing.T) {
	repo := &memoryAnalysisRepo{}
	rec := NewRecorder(repo, 1).(*recorder)
	rec.Start()
	rec.Stop()

	rec.Enqueue(&models.AnalysisRecord{ID: uuid.New(), Filename: "late.pdf", Kind: models.KindGeneral})

	assert.Equal(t, 0, repo.count())
	assert.Empty(t, rec.queue)
}
