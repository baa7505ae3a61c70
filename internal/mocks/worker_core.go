// Code generated by MockGen. DO NOT EDIT.
// Source: worker.go

// Package mocks is a generated GoMock package.
package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	domain "github.com/tagin-labs/tagin-verifier/internal/domain"
	workflow "go.temporal.io/sdk/workflow"
)

// MockCoreWorker is a mock of WorkerCore interface.
type MockCoreWorker struct {
	ctrl     *gomock.Controller
	recorder *MockCoreWorkerMockRecorder
}

// MockCoreWorkerMockRecorder is the mock recorder for MockCoreWorker.
type MockCoreWorkerMockRecorder struct {
	mock *MockCoreWorker
}

// NewMockCoreWorker creates a new mock instance.
func NewMockCoreWorker(ctrl *gomock.Controller) *MockCoreWorker {
	mock := &MockCoreWorker{ctrl: ctrl}
	mock.recorder = &MockCoreWorkerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCoreWorker) EXPECT() *MockCoreWorkerMockRecorder {
	return m.recorder
}

// TransferProduct mocks base method.
func (m *MockCoreWorker) TransferProduct(ctx workflow.Context, input *domain.TransferInput) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TransferProduct", ctx, input)
	ret0, _ := ret[0].(error)
	return ret0
}

// TransferProduct indicates an expected call of TransferProduct.
func (mr *MockCoreWorkerMockRecorder) TransferProduct(ctx, input interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TransferProduct", reflect.TypeOf((*MockCoreWorker)(nil).TransferProduct), ctx, input)
}
