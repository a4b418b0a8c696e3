package execution

// Scheduler distributes test indexes across workers
type Scheduler interface {
	Schedule(testCount int, workerCount int) [][]int
}

// RoundRobinScheduler distributes tests evenly across workers
type RoundRobinScheduler struct{}

// NewRoundRobinScheduler creates a new RoundRobinScheduler
func NewRoundRobinScheduler() *RoundRobinScheduler {
	return &RoundRobinScheduler{}
}

// Schedule assigns test indexes to workers using round-robin.
// Each worker's slice is in ascending index order.
func (s *RoundRobinScheduler) Schedule(testCount int, workerCount int) [][]int {
	if workerCount <= 0 {
		workerCount = 1
	}

	distribution := make([][]int, workerCount)
	for i := range distribution {
		distribution[i] = make([]int, 0, testCount/workerCount+1)
	}

	for i := 0; i < testCount; i++ {
		workerIndex := i % workerCount
		distribution[workerIndex] = append(distribution[workerIndex], i)
	}

	return distribution
}
