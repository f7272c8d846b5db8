package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hawkeyemusic/hawkeyebackend/catalog"
)

// mockImporter is a test double for the CatalogImporter interface.
type mockImporter struct {
	mu      sync.Mutex
	calls   []string
	summary catalog.Summary
	err     error
	release chan struct{} // when set, Run blocks until closed
}

func (m *mockImporter) Run(ctx context.Context, csvURL string) (catalog.Summary, error) {
	m.mu.Lock()
	m.calls = append(m.calls, csvURL)
	release := m.release
	m.mu.Unlock()
	if release != nil {
		<-release
	}
	return m.summary, m.err
}

func (m *mockImporter) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func waitForStatus(t *testing.T, runner *ImportRunner, runID, want string) RunStatus {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if status, ok := runner.GetRun(runID); ok && status.Status == want {
			return status
		}
		select {
		case <-deadline:
			status, _ := runner.GetRun(runID)
			t.Fatalf("run %s never reached status %q (last: %+v)", runID, want, status)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestQueueImportRunsToCompletion(t *testing.T) {
	importer := &mockImporter{summary: catalog.Summary{AlbumsCreated: 4, TracksCreated: 12, MerchCreated: 3}}
	runner := NewImportRunner(importer, 4, 1)
	defer runner.Stop()

	runID, ok := runner.QueueImport("http://example.com/catalog.csv")
	if !ok {
		t.Fatal("expected job to be accepted")
	}

	status := waitForStatus(t, runner, runID, StatusDone)
	if status.Summary == nil || status.Summary.AlbumsCreated != 4 {
		t.Errorf("expected importer summary on the run record, got %+v", status.Summary)
	}
	if status.StartedAt == nil || status.FinishedAt == nil {
		t.Errorf("expected start/finish timestamps, got %+v", status)
	}
	if importer.callCount() != 1 {
		t.Errorf("expected importer called once, got %d", importer.callCount())
	}
}

func TestQueueImportFailureRecorded(t *testing.T) {
	importer := &mockImporter{err: errors.New("fetch blew up")}
	runner := NewImportRunner(importer, 4, 1)
	defer runner.Stop()

	runID, ok := runner.QueueImport("http://example.com/catalog.csv")
	if !ok {
		t.Fatal("expected job to be accepted")
	}

	status := waitForStatus(t, runner, runID, StatusError)
	if status.Error == nil || *status.Error != "fetch blew up" {
		t.Errorf("expected run error recorded, got %+v", status.Error)
	}
	if status.Summary != nil {
		t.Errorf("failed run must carry no summary, got %+v", status.Summary)
	}
}

func TestQueueImportRejectsWhenFull(t *testing.T) {
	release := make(chan struct{})
	importer := &mockImporter{release: release}
	runner := NewImportRunner(importer, 1, 1)
	defer runner.Stop()
	defer close(release)

	// first job occupies the single worker
	first, ok := runner.QueueImport("http://example.com/one.csv")
	if !ok {
		t.Fatal("first job must be accepted")
	}
	waitForStatus(t, runner, first, StatusProcessing)

	// second job fills the queue buffer
	if _, ok := runner.QueueImport("http://example.com/two.csv"); !ok {
		t.Fatal("second job must be accepted into the buffer")
	}

	// third has nowhere to go
	runID, ok := runner.QueueImport("http://example.com/three.csv")
	if ok {
		t.Fatal("expected rejection when the queue is full")
	}
	if _, found := runner.GetRun(runID); found {
		t.Error("rejected runs must not linger in the registry")
	}
}

func TestGetRunUnknownID(t *testing.T) {
	runner := NewImportRunner(&mockImporter{}, 1, 1)
	defer runner.Stop()

	if _, ok := runner.GetRun("definitely-not-a-run"); ok {
		t.Error("expected unknown run id to report not found")
	}
}
