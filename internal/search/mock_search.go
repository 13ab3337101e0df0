package search

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of Client using testify/mock.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Search(ctx context.Context, query string, limit int) (Outcome, error) {
	args := m.Called(ctx, query, limit)
	return args.Get(0).(Outcome), args.Error(1)
}
