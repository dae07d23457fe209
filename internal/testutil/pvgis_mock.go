package testutil

import (
	"context"
	"sync"
)

// MockYieldSource is a mock implementation of pvgis.Source for testing.
// It returns a fixed yield instead of calling the real API.
type MockYieldSource struct {
	// MockYield is the yield to return from AnnualYield
	MockYield float64
	// MockError is the error to return from AnnualYield
	MockError error

	mu sync.Mutex
	// QueryCount tracks how many times AnnualYield was called
	QueryCount int
}

// NewMockYieldSource creates a mock yield source returning the given yield.
func NewMockYieldSource(yield float64) *MockYieldSource {
	return &MockYieldSource{MockYield: yield}
}

// WithError configures the mock to return the specified error.
func (m *MockYieldSource) WithError(err error) *MockYieldSource {
	m.MockError = err
	return m
}

// AnnualYield returns the configured yield or error.
func (m *MockYieldSource) AnnualYield(_ context.Context, _, _ float64) (float64, error) {
	m.mu.Lock()
	m.QueryCount++
	m.mu.Unlock()

	if m.MockError != nil {
		return 0, m.MockError
	}
	return m.MockYield, nil
}

// Queries returns how many times AnnualYield was called.
func (m *MockYieldSource) Queries() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.QueryCount
}
