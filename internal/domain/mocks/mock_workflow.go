// Package mocks provides testify mocks for the domain package.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"viewstrap.dev/pkg/viewstrap/internal/domain"
)

// MockWorkflow is a mock type for the domain.Workflow type.
type MockWorkflow struct {
	mock.Mock
}

var _ domain.Workflow = (*MockWorkflow)(nil)

// Bootstrap provides a mock function with given fields: ctx, args.
func (_m *MockWorkflow) Bootstrap(ctx context.Context, args domain.BootstrapArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}

// Status provides a mock function with given fields: ctx, args.
func (_m *MockWorkflow) Status(ctx context.Context, args domain.StatusArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}

// NewMockWorkflow creates a new instance of MockWorkflow. It also registers a
// testing interface on the mock and a cleanup function to assert the mocks
// expectations.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mockWorkflow := &MockWorkflow{}
	mockWorkflow.Mock.Test(t)

	t.Cleanup(func() { mockWorkflow.AssertExpectations(t) })

	return mockWorkflow
}
