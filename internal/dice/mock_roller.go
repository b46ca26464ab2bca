package dice

import (
	"sync"
)

// MockRoller implements Roller for testing with predetermined results.
// Float64 and Chance consume the float queue; Intn and Between consume the
// int queue and return the queued value verbatim.
type MockRoller struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
}

// NewMockRoller creates a new mock roller with empty queues
func NewMockRoller() *MockRoller {
	return &MockRoller{}
}

// QueueFloats appends predetermined results for Float64 and Chance draws
func (m *MockRoller) QueueFloats(values ...float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.floats = append(m.floats, values...)
}

// QueueInts appends predetermined results for Intn and Between draws
func (m *MockRoller) QueueInts(values ...int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ints = append(m.ints, values...)
}

// Reset clears both queues
func (m *MockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.floats = nil
	m.ints = nil
}

// Float64 implements Roller.Float64
func (m *MockRoller) Float64() float64 {
	return m.nextFloat()
}

// Intn implements Roller.Intn
func (m *MockRoller) Intn(n int) int {
	return m.nextInt()
}

// Between implements Roller.Between
func (m *MockRoller) Between(min, max int) int {
	return m.nextInt()
}

// Chance implements Roller.Chance
func (m *MockRoller) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return m.nextFloat() < p
}

func (m *MockRoller) nextFloat() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.floats) == 0 {
		panic("dice: mock roller has no queued float results")
	}
	v := m.floats[0]
	m.floats = m.floats[1:]
	return v
}

func (m *MockRoller) nextInt() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.ints) == 0 {
		panic("dice: mock roller has no queued int results")
	}
	v := m.ints[0]
	m.ints = m.ints[1:]
	return v
}

var _ Roller = (*MockRoller)(nil)
