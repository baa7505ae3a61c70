// Code generated by MockGen. DO NOT EDIT.
// Source: handler.go

// Package mocks is a generated GoMock package.
package mocks

import (
	reflect "reflect"

	gin "github.com/gin-gonic/gin"
	gomock "github.com/golang/mock/gomock"
)

// MockAPIHandler is a mock of Handler interface.
type MockAPIHandler struct {
	ctrl     *gomock.Controller
	recorder *MockAPIHandlerMockRecorder
}

// MockAPIHandlerMockRecorder is the mock recorder for MockAPIHandler.
type MockAPIHandlerMockRecorder struct {
	mock *MockAPIHandler
}

// NewMockAPIHandler creates a new mock instance.
func NewMockAPIHandler(ctrl *gomock.Controller) *MockAPIHandler {
	mock := &MockAPIHandler{ctrl: ctrl}
	mock.recorder = &MockAPIHandlerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAPIHandler) EXPECT() *MockAPIHandlerMockRecorder {
	return m.recorder
}

// AppendScan mocks base method.
func (m *MockAPIHandler) AppendScan(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "AppendScan", c)
}

// AppendScan indicates an expected call of AppendScan.
func (mr *MockAPIHandlerMockRecorder) AppendScan(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AppendScan", reflect.TypeOf((*MockAPIHandler)(nil).AppendScan), c)
}

// GetMismatchHeatmap mocks base method.
func (m *MockAPIHandler) GetMismatchHeatmap(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GetMismatchHeatmap", c)
}

// GetMismatchHeatmap indicates an expected call of GetMismatchHeatmap.
func (mr *MockAPIHandlerMockRecorder) GetMismatchHeatmap(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetMismatchHeatmap", reflect.TypeOf((*MockAPIHandler)(nil).GetMismatchHeatmap), c)
}

// GetProduct mocks base method.
func (m *MockAPIHandler) GetProduct(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GetProduct", c)
}

// GetProduct indicates an expected call of GetProduct.
func (mr *MockAPIHandlerMockRecorder) GetProduct(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProduct", reflect.TypeOf((*MockAPIHandler)(nil).GetProduct), c)
}

// GetScanStats mocks base method.
func (m *MockAPIHandler) GetScanStats(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GetScanStats", c)
}

// GetScanStats indicates an expected call of GetScanStats.
func (mr *MockAPIHandlerMockRecorder) GetScanStats(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetScanStats", reflect.TypeOf((*MockAPIHandler)(nil).GetScanStats), c)
}

// GetTransferStatus mocks base method.
func (m *MockAPIHandler) GetTransferStatus(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "GetTransferStatus", c)
}

// GetTransferStatus indicates an expected call of GetTransferStatus.
func (mr *MockAPIHandlerMockRecorder) GetTransferStatus(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetTransferStatus", reflect.TypeOf((*MockAPIHandler)(nil).GetTransferStatus), c)
}

// HealthCheck mocks base method.
func (m *MockAPIHandler) HealthCheck(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "HealthCheck", c)
}

// HealthCheck indicates an expected call of HealthCheck.
func (mr *MockAPIHandlerMockRecorder) HealthCheck(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HealthCheck", reflect.TypeOf((*MockAPIHandler)(nil).HealthCheck), c)
}

// ListProducts mocks base method.
func (m *MockAPIHandler) ListProducts(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ListProducts", c)
}

// ListProducts indicates an expected call of ListProducts.
func (mr *MockAPIHandlerMockRecorder) ListProducts(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListProducts", reflect.TypeOf((*MockAPIHandler)(nil).ListProducts), c)
}

// RegisterProduct mocks base method.
func (m *MockAPIHandler) RegisterProduct(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "RegisterProduct", c)
}

// RegisterProduct indicates an expected call of RegisterProduct.
func (mr *MockAPIHandlerMockRecorder) RegisterProduct(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RegisterProduct", reflect.TypeOf((*MockAPIHandler)(nil).RegisterProduct), c)
}

// StartTransfer mocks base method.
func (m *MockAPIHandler) StartTransfer(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "StartTransfer", c)
}

// StartTransfer indicates an expected call of StartTransfer.
func (mr *MockAPIHandlerMockRecorder) StartTransfer(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StartTransfer", reflect.TypeOf((*MockAPIHandler)(nil).StartTransfer), c)
}

// UpdateWhitelist mocks base method.
func (m *MockAPIHandler) UpdateWhitelist(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "UpdateWhitelist", c)
}

// UpdateWhitelist indicates an expected call of UpdateWhitelist.
func (mr *MockAPIHandlerMockRecorder) UpdateWhitelist(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateWhitelist", reflect.TypeOf((*MockAPIHandler)(nil).UpdateWhitelist), c)
}

// Verify mocks base method.
func (m *MockAPIHandler) Verify(c *gin.Context) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Verify", c)
}

// Verify indicates an expected call of Verify.
func (mr *MockAPIHandlerMockRecorder) Verify(c interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Verify", reflect.TypeOf((*MockAPIHandler)(nil).Verify), c)
}
