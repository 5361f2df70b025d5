package services

import (
	"log"
	"sync"

	"resumeinsight/resume-analyzer/internal/models"
	"resumeinsight/resume-analyzer/internal/repositories"
)

// Recorder persists analysis records off the request path.
type Recorder interface {
	Start()
	Stop()
	Enqueue(record *models.AnalysisRecord)
}

type recorder struct {
	analysisRepo repositories.AnalysisRepository
	queue        chan *models.AnalysisRecord
	concurrency  int
	wg           sync.WaitGroup
	stopChan     chan struct{}
}

func NewRecorder(analysisRepo repositories.AnalysisRepository, concurrency int) Recorder {
	return &recorder{
		analysisRepo: analysisRepo,
		queue:        make(chan *models.AnalysisRecord, 100),
		concurrency:  concurrency,
		stopChan:     make(chan struct{}),
	}
}

// Start implements Recorder.
func (r *recorder) Start() {
	log.Printf("🚀 Starting recorder with %d writers\n", r.concurrency)

	for i := 0; i < r.concurrency; i++ {
		r.wg.Add(1)
		go r.writeRecords(i + 1)
	}
}

// Stop implements Recorder.
func (r *recorder) Stop() {
	log.Println("🛑 Stopping recorder...")
	close(r.stopChan)
	r.wg.Wait()
	log.Println("✅ Recorder stopped")
}

// Enqueue implements Recorder.
func (r *recorder) Enqueue(record *models.AnalysisRecord) {
	// Once stopped, drop instead of landing in the reader-less queue
	select {
	case <-r.stopChan:
		log.Printf("⚠️  Recorder stopped, dropping record for %s\n", record.Filename)
		return
	default:
	}

	select {
	case r.queue <- record:
	case <-r.stopChan:
		log.Printf("⚠️  Recorder stopped, dropping record for %s\n", record.Filename)
	}
}

func (r *recorder) writeRecords(writerID int) {
	defer r.wg.Done()

	for {
		select {
		case <-r.stopChan:
			// Drain whatever is already queued before exiting
			for {
				select {
				case record := <-r.queue:
					r.persist(writerID, record)
				default:
					return
				}
			}
		case record := <-r.queue:
			r.persist(writerID, record)
		}
	}
}

func (r *recorder) persist(writerID int, record *models.AnalysisRecord) {
	if err := r.analysisRepo.Create(record); err != nil {
		log.Printf("❌ Writer #%d failed to persist record %s: %v\n", writerID, record.ID, err)
		return
	}
	log.Printf("💾 Writer #%d persisted analysis record %s\n", writerID, record.ID)
}
