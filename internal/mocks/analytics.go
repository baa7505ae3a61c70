// Code generated by MockGen. DO NOT EDIT.
// Source: aggregator.go

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	domain "github.com/tagin-labs/tagin-verifier/internal/domain"
)

// MockAggregator is a mock of Aggregator interface.
type MockAggregator struct {
	ctrl     *gomock.Controller
	recorder *MockAggregatorMockRecorder
}

// MockAggregatorMockRecorder is the mock recorder for MockAggregator.
type MockAggregatorMockRecorder struct {
	mock *MockAggregator
}

// NewMockAggregator creates a new mock instance.
func NewMockAggregator(ctrl *gomock.Controller) *MockAggregator {
	mock := &MockAggregator{ctrl: ctrl}
	mock.recorder = &MockAggregatorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAggregator) EXPECT() *MockAggregatorMockRecorder {
	return m.recorder
}

// ScanStats mocks base method.
func (m *MockAggregator) ScanStats(ctx context.Context, manufacturer string, rangeDays int) (*domain.AggregateWindow, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ScanStats", ctx, manufacturer, rangeDays)
	ret0, _ := ret[0].(*domain.AggregateWindow)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ScanStats indicates an expected call of ScanStats.
func (mr *MockAggregatorMockRecorder) ScanStats(ctx, manufacturer, rangeDays interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ScanStats", reflect.TypeOf((*MockAggregator)(nil).ScanStats), ctx, manufacturer, rangeDays)
}
