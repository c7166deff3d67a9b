// Package mocks provides testify mocks for the controller package.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"viewstrap.dev/pkg/viewstrap/internal/controller"
	m "viewstrap.dev/pkg/viewstrap/internal/model"
)

// MockUI is a mock type for the controller.UI type.
type MockUI struct {
	mock.Mock
}

var _ controller.UI = (*MockUI)(nil)

// DisplayText provides a mock function with given fields: ctx, text.
func (_m *MockUI) DisplayText(ctx context.Context, text string) error {
	ret := _m.Called(ctx, text)
	return ret.Error(0)
}

// DisplayDiff provides a mock function with given fields: ctx, diff.
func (_m *MockUI) DisplayDiff(ctx context.Context, diff string) error {
	ret := _m.Called(ctx, diff)
	return ret.Error(0)
}

// DisplayReport provides a mock function with given fields: ctx, report, format.
func (_m *MockUI) DisplayReport(ctx context.Context, report m.Report, format controller.ReportFormat) error {
	ret := _m.Called(ctx, report, format)
	return ret.Error(0)
}

// DisplayStatus provides a mock function with given fields: ctx, statuses.
func (_m *MockUI) DisplayStatus(ctx context.Context, statuses []m.FileStatus) error {
	ret := _m.Called(ctx, statuses)
	return ret.Error(0)
}

// Confirm provides a mock function with given fields: ctx, path, diff.
func (_m *MockUI) Confirm(ctx context.Context, path m.Path, diff string) (bool, error) {
	ret := _m.Called(ctx, path, diff)
	return ret.Bool(0), ret.Error(1)
}

// NewMockUI creates a new instance of MockUI. It also registers a testing
// interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mockUI := &MockUI{}
	mockUI.Mock.Test(t)

	t.Cleanup(func() { mockUI.AssertExpectations(t) })

	return mockUI
}
