package mocks

import "context"

// MockPinger reports database reachability for health checks.
type MockPinger struct {
	PingFn func(ctx context.Context) error
	Err    error
}

// Ping returns PingFn's result when set, otherwise Err.
func (m *MockPinger) Ping(ctx context.Context) error {
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return m.Err
}
