package execution

import (
	"context"
	"time"

	"fibtest/internal/domain"
)

// Executor executes tests and returns results in registration order
type Executor interface {
	Execute(ctx context.Context, cases []domain.TestCase) ([]domain.TestResult, time.Duration, error)
}

// Progress receives running pass/fail counts while tests execute
type Progress interface {
	Update(successCount, failCount int)
	Finish()
}
