package jobs

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestCreateAndGetJob(t *testing.T) {
	m := NewManager()

	job := m.CreateJob("cross_validation", "feature set naive")
	if job.ID == "" {
		t.Fatal("job has no ID")
	}
	if job.GetStatus() != JobPending {
		t.Errorf("expected pending status, got %s", job.GetStatus())
	}

	got, exists := m.GetJob(job.ID)
	if !exists {
		t.Fatal("created job not found")
	}
	if got != job {
		t.Error("GetJob returned a different job")
	}

	if _, exists := m.GetJob("nonexistent"); exists {
		t.Error("found a job that was never created")
	}
}

func TestJobLifecycle(t *testing.T) {
	m := NewManager()
	job := m.CreateJob("cross_validation", "feature set total")

	job.SetStatus(JobRunning)
	job.SetProgress(0.5)
	job.AddLog("selected winner")

	if job.GetStatus() != JobRunning {
		t.Errorf("expected running, got %s", job.GetStatus())
	}
	if job.GetProgress() != 0.5 {
		t.Errorf("expected progress 0.5, got %f", job.GetProgress())
	}

	logs := job.GetLogs()
	if len(logs) != 1 || !strings.Contains(logs[0], "selected winner") {
		t.Errorf("unexpected logs: %v", logs)
	}

	job.SetStatus(JobCompleted)
	if job.EndTime == nil {
		t.Error("completed job has no end time")
	}
}

func TestJobSetError(t *testing.T) {
	m := NewManager()
	job := m.CreateJob("cross_validation", "feature set policy")

	job.SetError(errors.New("fit failed"))

	if job.GetStatus() != JobFailed {
		t.Errorf("expected failed, got %s", job.GetStatus())
	}
	if job.Error == nil {
		t.Error("error not recorded")
	}
	if job.EndTime == nil {
		t.Error("failed job has no end time")
	}
}

func TestListJobs(t *testing.T) {
	m := NewManager()
	m.CreateJob("cross_validation", "a")
	m.CreateJob("cross_validation", "b")

	if got := len(m.ListJobs()); got != 2 {
		t.Errorf("expected 2 jobs, got %d", got)
	}
}

func TestJobConcurrentUpdates(t *testing.T) {
	m := NewManager()
	job := m.CreateJob("cross_validation", "concurrent")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			job.AddLog("update")
			job.SetProgress(0.1)
			job.GetLogs()
		}()
	}
	wg.Wait()

	if got := len(job.GetLogs()); got != 10 {
		t.Errorf("expected 10 log entries, got %d", got)
	}
}
