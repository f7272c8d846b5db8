package workers

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hawkeyemusic/hawkeyebackend/catalog"
)

// run status constants
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusDone       = "done"
	StatusError      = "error"
)

// CatalogImporter is the part of catalog.Importer the runner needs
type CatalogImporter interface {
	Run(ctx context.Context, csvURL string) (catalog.Summary, error)
}

type ImportJob struct {
	RunID     string
	SourceURL string
}

// RunStatus records the lifecycle of one import run. The HTTP trigger stays
// fire-and-forget; this registry is the only way to observe completion.
type RunStatus struct {
	RunID      string           `json:"run_id"`
	SourceURL  string           `json:"source_url"`
	Status     string           `json:"status"`
	Error      *string          `json:"error,omitempty"`
	Summary    *catalog.Summary `json:"summary,omitempty"`
	EnqueuedAt int64            `json:"enqueued_at"`
	StartedAt  *int64           `json:"started_at,omitempty"`
	FinishedAt *int64           `json:"finished_at,omitempty"`
}

type ImportRunner struct {
	JobQueue chan ImportJob
	Importer CatalogImporter
	Wg       sync.WaitGroup
	StopChan chan struct{}
	Runs     map[string]*RunStatus
	Mutex    sync.Mutex
}

func NewImportRunner(importer CatalogImporter, queueSize, numWorkers int) *ImportRunner {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	if queueSize <= 0 {
		queueSize = 16
	}
	runner := &ImportRunner{
		JobQueue: make(chan ImportJob, queueSize),
		Importer: importer,
		StopChan: make(chan struct{}),
		Runs:     make(map[string]*RunStatus),
	}
	runner.Wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go runner.worker(i)
	}
	log.Printf("Started %d import worker(s) with queue size %d", numWorkers, queueSize)
	return runner
}

func (ir *ImportRunner) worker(id int) {
	defer ir.Wg.Done()

	log.Printf("Import worker %d started", id)
	for {
		select {
		case job, ok := <-ir.JobQueue:
			if !ok {
				log.Printf("Import worker %d stopping: Job queue closed", id)
				return
			}

			log.Printf("Worker %d: starting import run %s from %s", id, job.RunID, job.SourceURL)
			ir.markProcessing(job.RunID)

			summary, err := ir.Importer.Run(context.Background(), job.SourceURL)
			ir.setResult(job.RunID, summary, err)
			if err != nil {
				log.Printf("Worker %d: import run %s failed: %v", id, job.RunID, err)
			} else {
				log.Printf("Worker %d: import run %s done (%d albums, %d tracks, %d merch, %d row errors)",
					id, job.RunID, summary.AlbumsCreated, summary.TracksCreated, summary.MerchCreated, summary.RowErrors)
			}

		case <-ir.StopChan:
			log.Printf("Import worker %d stopping: Stop signal received", id)
			return
		}
	}
}

// QueueImport registers a new run and enqueues it; returns the run ID and
// whether the job was accepted
func (ir *ImportRunner) QueueImport(sourceURL string) (string, bool) {
	runID := uuid.NewString()
	status := &RunStatus{
		RunID:      runID,
		SourceURL:  sourceURL,
		Status:     StatusPending,
		EnqueuedAt: time.Now().Unix(),
	}

	ir.Mutex.Lock()
	ir.Runs[runID] = status
	ir.Mutex.Unlock()

	select {
	case ir.JobQueue <- ImportJob{RunID: runID, SourceURL: sourceURL}:
		log.Printf("Queued import run %s for: %s", runID, sourceURL)
		return runID, true
	default:
		log.Printf("WARNING: Import job queue full. Rejected run for: %s", sourceURL)
		ir.Mutex.Lock()
		delete(ir.Runs, runID)
		ir.Mutex.Unlock()
		return "", false
	}
}

// GetRun returns a copy of the status record for runID
func (ir *ImportRunner) GetRun(runID string) (RunStatus, bool) {
	ir.Mutex.Lock()
	defer ir.Mutex.Unlock()

	status, ok := ir.Runs[runID]
	if !ok {
		return RunStatus{}, false
	}
	return *status, true
}

func (ir *ImportRunner) markProcessing(runID string) {
	now := time.Now().Unix()
	ir.Mutex.Lock()
	if status, ok := ir.Runs[runID]; ok {
		status.Status = StatusProcessing
		status.StartedAt = &now
	}
	ir.Mutex.Unlock()
}

func (ir *ImportRunner) setResult(runID string, summary catalog.Summary, runErr error) {
	now := time.Now().Unix()
	ir.Mutex.Lock()
	if status, ok := ir.Runs[runID]; ok {
		status.FinishedAt = &now
		if runErr != nil {
			status.Status = StatusError
			errStr := runErr.Error()
			status.Error = &errStr
		} else {
			status.Status = StatusDone
			status.Summary = &summary
		}
	}
	ir.Mutex.Unlock()
}

func (ir *ImportRunner) Stop() {
	log.Println("Stopping import workers...")
	close(ir.StopChan)
	ir.Wg.Wait()
	log.Println("All import workers stopped")
}
