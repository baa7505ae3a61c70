// Code generated by MockGen. DO NOT EDIT.
// Source: writer.go

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	domain "github.com/tagin-labs/tagin-verifier/internal/domain"
	store "github.com/tagin-labs/tagin-verifier/internal/store"
)

// MockScanWriter is a mock of Writer interface.
type MockScanWriter struct {
	ctrl     *gomock.Controller
	recorder *MockScanWriterMockRecorder
}

// MockScanWriterMockRecorder is the mock recorder for MockScanWriter.
type MockScanWriterMockRecorder struct {
	mock *MockScanWriter
}

// NewMockScanWriter creates a new mock instance.
func NewMockScanWriter(ctrl *gomock.Controller) *MockScanWriter {
	mock := &MockScanWriter{ctrl: ctrl}
	mock.recorder = &MockScanWriterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockScanWriter) EXPECT() *MockScanWriterMockRecorder {
	return m.recorder
}

// Append mocks base method.
func (m *MockScanWriter) Append(ctx context.Context, event *domain.ScanEvent) (*domain.ScanEvent, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Append", ctx, event)
	ret0, _ := ret[0].(*domain.ScanEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Append indicates an expected call of Append.
func (mr *MockScanWriterMockRecorder) Append(ctx, event interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Append", reflect.TypeOf((*MockScanWriter)(nil).Append), ctx, event)
}

// Close mocks base method.
func (m *MockScanWriter) Close() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Close")
}

// Close indicates an expected call of Close.
func (mr *MockScanWriterMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockScanWriter)(nil).Close))
}

// Query mocks base method.
func (m *MockScanWriter) Query(ctx context.Context, filter store.ScanEventFilter) ([]*domain.ScanEvent, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Query", ctx, filter)
	ret0, _ := ret[0].([]*domain.ScanEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Query indicates an expected call of Query.
func (mr *MockScanWriterMockRecorder) Query(ctx, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Query", reflect.TypeOf((*MockScanWriter)(nil).Query), ctx, filter)
}
