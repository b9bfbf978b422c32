package model

import (
	"time"

	"github.com/google/uuid"
)

// RunStatus represents the lifecycle state of a pipeline run
type RunStatus string

const (
	RunStatusPending   RunStatus = "pending"
	RunStatusRunning   RunStatus = "running"
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusFailed    RunStatus = "failed"
)

// StepStatus represents the outcome of a single pipeline step
type StepStatus string

const (
	StepStatusSucceeded StepStatus = "succeeded"
	StepStatusFailed    StepStatus = "failed"
	StepStatusSkipped   StepStatus = "skipped"
)

// StepResult records the outcome of one executed step
type StepResult struct {
	Name       string
	Status     StepStatus
	BestEffort bool
	Err        error
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns how long the step took
func (r *StepResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Run represents one pipeline execution for a pull request event
type Run struct {
	ID          string
	PullRequest *PullRequest
	WorkDir     string // Per-run workspace, populated by the checkout step
	Status      RunStatus
	CurrentStep string
	Steps       []StepResult
	StartedAt   time.Time
	FinishedAt  time.Time
}

// NewRun creates a pending run for the given pull request
func NewRun(pr *PullRequest) *Run {
	return &Run{
		ID:          uuid.NewString(),
		PullRequest: pr,
		Status:      RunStatusPending,
	}
}

// Start transitions the run from pending to running
func (r *Run) Start() {
	r.Status = RunStatusRunning
	r.StartedAt = time.Now()
}

// StepStarted marks the named step as the currently executing one
func (r *Run) StepStarted(name string) {
	r.CurrentStep = name
}

// StepFinished appends the result of the step that just completed
func (r *Run) StepFinished(result StepResult) {
	r.Steps = append(r.Steps, result)
	r.CurrentStep = ""
}

// Finish moves the run to its terminal state. A run succeeds iff every
// fail-fast step succeeded; best-effort step failures do not count.
func (r *Run) Finish() {
	r.FinishedAt = time.Now()
	for _, s := range r.Steps {
		if s.Status == StepStatusFailed && !s.BestEffort {
			r.Status = RunStatusFailed
			return
		}
	}
	r.Status = RunStatusSucceeded
}

// Failed reports whether the run reached the failed terminal state
func (r *Run) Failed() bool {
	return r.Status == RunStatusFailed
}
