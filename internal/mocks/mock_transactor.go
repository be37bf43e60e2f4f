package mocks

import "context"

// MockTransactor runs the function directly with the caller's context.
type MockTransactor struct {
	Calls int
}

func (m *MockTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}
