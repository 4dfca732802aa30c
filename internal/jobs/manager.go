package jobs

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// Job tracks one per-feature-set cross-validation run: its status, progress,
// stage logs, and, on failure, the error that aborted it.
type Job struct {
	ID          string
	Type        string
	Status      JobStatus
	Progress    float64
	StartTime   time.Time
	EndTime     *time.Time
	Error       error
	Description string
	Logs        []string
	mu          sync.RWMutex
}

type Manager struct {
	jobs map[string]*Job
	mu   sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		jobs: make(map[string]*Job),
	}
}

func (m *Manager) CreateJob(jobType, description string) *Job {
	m.mu.Lock()
	defer m.mu.Unlock()

	job := &Job{
		ID:          uuid.NewString(),
		Type:        jobType,
		Status:      JobPending,
		StartTime:   time.Now(),
		Description: description,
		Logs:        []string{},
	}

	m.jobs[job.ID] = job
	return job
}

func (m *Manager) GetJob(jobID string) (*Job, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, exists := m.jobs[jobID]
	return job, exists
}

func (m *Manager) ListJobs() []*Job {
	m.mu.RLock()
	defer m.mu.RUnlock()

	jobs := make([]*Job, 0, len(m.jobs))
	for _, job := range m.jobs {
		jobs = append(jobs, job)
	}
	return jobs
}

func (j *Job) SetStatus(status JobStatus) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	if status == JobCompleted || status == JobFailed {
		now := time.Now()
		j.EndTime = &now
	}
}

func (j *Job) SetProgress(progress float64) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress = progress
}

func (j *Job) AddLog(message string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	timestamp := time.Now().Format("15:04:05")
	j.Logs = append(j.Logs, fmt.Sprintf("[%s] %s", timestamp, message))
}

func (j *Job) SetError(err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Error = err
	j.Status = JobFailed
	now := time.Now()
	j.EndTime = &now
}

func (j *Job) GetStatus() JobStatus {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.Status
}

func (j *Job) GetProgress() float64 {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.Progress
}

func (j *Job) GetLogs() []string {
	j.mu.RLock()
	defer j.mu.RUnlock()
	logs := make([]string, len(j.Logs))
	copy(logs, j.Logs)
	return logs
}
