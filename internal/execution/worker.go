package execution

import (
	"context"
	"sync"
	"time"

	"fibtest/internal/config"
	"fibtest/internal/domain"
)

// WorkerPool executes test cases on a configurable number of workers
type WorkerPool struct {
	config    *config.Config
	runner    *Runner
	scheduler Scheduler
	progress  Progress
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, runner *Runner, scheduler Scheduler) *WorkerPool {
	return &WorkerPool{
		config:    cfg,
		runner:    runner,
		scheduler: scheduler,
	}
}

// SetProgress sets the progress reporter for the worker pool
func (wp *WorkerPool) SetProgress(progress Progress) {
	wp.progress = progress
}

// Execute runs every test case (no fail-fast).
func (wp *WorkerPool) Execute(ctx context.Context, cases []domain.TestCase) ([]domain.TestResult, time.Duration, error) {
	return wp.ExecuteWithOptions(ctx, cases, false)
}

// ExecuteWithOptions runs test cases and returns the results of those that ran,
// ordered by registration index. With failFast no new test starts after the
// first failure.
func (wp *WorkerPool) ExecuteWithOptions(ctx context.Context, cases []domain.TestCase, failFast bool) ([]domain.TestResult, time.Duration, error) {
	if len(cases) == 0 {
		return nil, 0, nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	workerCount := wp.config.Processors
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(cases) {
		workerCount = len(cases)
	}
	distribution := wp.scheduler.Schedule(len(cases), workerCount)

	results := make([]domain.TestResult, len(cases))
	completed := make([]bool, len(cases))

	var mu sync.Mutex
	var passed, failed int
	startTime := time.Now()

	var wg sync.WaitGroup
	for i, indexes := range distribution {
		wg.Add(1)
		go func(workerID int, indexes []int) {
			defer wg.Done()
			for _, idx := range indexes {
				if runCtx.Err() != nil {
					return
				}
				result := wp.runner.Run(cases[idx])
				result.Index = idx
				result.WorkerID = workerID

				mu.Lock()
				results[idx] = result
				completed[idx] = true
				if result.Success {
					passed++
				} else {
					failed++
				}
				if wp.progress != nil {
					wp.progress.Update(passed, failed)
				}
				if failFast && !result.Success {
					cancel()
				}
				mu.Unlock()
			}
		}(i+1, indexes)
	}
	wg.Wait()

	if wp.progress != nil {
		wp.progress.Finish()
	}

	ordered := make([]domain.TestResult, 0, len(cases))
	for idx, done := range completed {
		if done {
			ordered = append(ordered, results[idx])
		}
	}
	return ordered, time.Since(startTime), ctx.Err()
}

var _ Executor = (*WorkerPool)(nil)
