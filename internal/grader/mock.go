package grader

import (
	"context"
	"sync"

	"github.com/hwei-lab/cogscreen/internal/llm"
)

// MockOutcome is a canned grading outcome for the MockGrader.
type MockOutcome struct {
	Result *Result
	Err    error
}

// MockGrader returns canned outcomes in FIFO order and records all
// requests. An empty queue behaves like an unavailable provider.
type MockGrader struct {
	mu       sync.Mutex
	outcomes []MockOutcome
	Calls    []Request
}

var _ Grader = (*MockGrader)(nil)

// NewMockGrader creates a MockGrader with the given canned outcomes.
func NewMockGrader(outcomes ...MockOutcome) *MockGrader {
	return &MockGrader{outcomes: outcomes}
}

func (m *MockGrader) Grade(_ context.Context, req Request) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.outcomes) == 0 {
		return nil, &llm.ErrProviderUnavailable{}
	}

	out := m.outcomes[0]
	m.outcomes = m.outcomes[1:]

	if out.Err != nil {
		return nil, out.Err
	}
	return out.Result, nil
}

// AddOutcome appends a canned outcome to the queue.
func (m *MockGrader) AddOutcome(out MockOutcome) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, out)
}
