// Code generated by MockGen. DO NOT EDIT.
// Source: executor.go

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	domain "github.com/tagin-labs/tagin-verifier/internal/domain"
)

// MockExecutor is a mock of Executor interface.
type MockExecutor struct {
	ctrl     *gomock.Controller
	recorder *MockExecutorMockRecorder
}

// MockExecutorMockRecorder is the mock recorder for MockExecutor.
type MockExecutorMockRecorder struct {
	mock *MockExecutor
}

// NewMockExecutor creates a new mock instance.
func NewMockExecutor(ctrl *gomock.Controller) *MockExecutor {
	mock := &MockExecutor{ctrl: ctrl}
	mock.recorder = &MockExecutorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockExecutor) EXPECT() *MockExecutorMockRecorder {
	return m.recorder
}

// AddToWhitelist mocks base method.
func (m *MockExecutor) AddToWhitelist(ctx context.Context, address string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddToWhitelist", ctx, address)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddToWhitelist indicates an expected call of AddToWhitelist.
func (mr *MockExecutorMockRecorder) AddToWhitelist(ctx, address interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddToWhitelist", reflect.TypeOf((*MockExecutor)(nil).AddToWhitelist), ctx, address)
}

// CheckWhitelisted mocks base method.
func (m *MockExecutor) CheckWhitelisted(ctx context.Context, address string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CheckWhitelisted", ctx, address)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CheckWhitelisted indicates an expected call of CheckWhitelisted.
func (mr *MockExecutorMockRecorder) CheckWhitelisted(ctx, address interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CheckWhitelisted", reflect.TypeOf((*MockExecutor)(nil).CheckWhitelisted), ctx, address)
}

// ExecuteTransfer mocks base method.
func (m *MockExecutor) ExecuteTransfer(ctx context.Context, input *domain.TransferInput) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExecuteTransfer", ctx, input)
	ret0, _ := ret[0].(error)
	return ret0
}

// ExecuteTransfer indicates an expected call of ExecuteTransfer.
func (mr *MockExecutorMockRecorder) ExecuteTransfer(ctx, input interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExecuteTransfer", reflect.TypeOf((*MockExecutor)(nil).ExecuteTransfer), ctx, input)
}

// GetOwner mocks base method.
func (m *MockExecutor) GetOwner(ctx context.Context, tokenID uint64) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetOwner", ctx, tokenID)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetOwner indicates an expected call of GetOwner.
func (mr *MockExecutorMockRecorder) GetOwner(ctx, tokenID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetOwner", reflect.TypeOf((*MockExecutor)(nil).GetOwner), ctx, tokenID)
}
