package mocks

import (
	"sync"

	"github.com/user/trailclean/pkg/ports"
)

// ProgressReporter is a mock implementation of ports.ProgressReporter.
type ProgressReporter struct {
	mu sync.Mutex

	// Recorded calls for verification
	Total        int
	AdvanceCalls []int
	Finished     bool
}

func (m *ProgressReporter) Start(total int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Total = total
}

func (m *ProgressReporter) Advance(done int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AdvanceCalls = append(m.AdvanceCalls, done)
}

func (m *ProgressReporter) Finish() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Finished = true
}

// MaxAdvance returns the highest cumulative count reported.
func (m *ProgressReporter) MaxAdvance() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	max := 0
	for _, v := range m.AdvanceCalls {
		if v > max {
			max = v
		}
	}
	return max
}

var _ ports.ProgressReporter = (*ProgressReporter)(nil)
