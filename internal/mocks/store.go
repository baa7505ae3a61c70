// Code generated by MockGen. DO NOT EDIT.
// Source: store.go

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
	store "github.com/tagin-labs/tagin-verifier/internal/store"
	schema "github.com/tagin-labs/tagin-verifier/internal/store/schema"
)

// MockStore is a mock of Store interface.
type MockStore struct {
	ctrl     *gomock.Controller
	recorder *MockStoreMockRecorder
}

// MockStoreMockRecorder is the mock recorder for MockStore.
type MockStoreMockRecorder struct {
	mock *MockStore
}

// NewMockStore creates a new mock instance.
func NewMockStore(ctrl *gomock.Controller) *MockStore {
	mock := &MockStore{ctrl: ctrl}
	mock.recorder = &MockStoreMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStore) EXPECT() *MockStoreMockRecorder {
	return m.recorder
}

// CreateProduct mocks base method.
func (m *MockStore) CreateProduct(ctx context.Context, product *schema.Product) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateProduct", ctx, product)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateProduct indicates an expected call of CreateProduct.
func (mr *MockStoreMockRecorder) CreateProduct(ctx, product interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateProduct", reflect.TypeOf((*MockStore)(nil).CreateProduct), ctx, product)
}

// CreateScanEvent mocks base method.
func (m *MockStore) CreateScanEvent(ctx context.Context, event *schema.ScanEvent) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateScanEvent", ctx, event)
	ret0, _ := ret[0].(error)
	return ret0
}

// CreateScanEvent indicates an expected call of CreateScanEvent.
func (mr *MockStoreMockRecorder) CreateScanEvent(ctx, event interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateScanEvent", reflect.TypeOf((*MockStore)(nil).CreateScanEvent), ctx, event)
}

// GetBlockCursor mocks base method.
func (m *MockStore) GetBlockCursor(ctx context.Context, chain string) (uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetBlockCursor", ctx, chain)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetBlockCursor indicates an expected call of GetBlockCursor.
func (mr *MockStoreMockRecorder) GetBlockCursor(ctx, chain interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetBlockCursor", reflect.TypeOf((*MockStore)(nil).GetBlockCursor), ctx, chain)
}

// GetProductBySerial mocks base method.
func (m *MockStore) GetProductBySerial(ctx context.Context, manufacturer, serialNumber string) (*schema.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProductBySerial", ctx, manufacturer, serialNumber)
	ret0, _ := ret[0].(*schema.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProductBySerial indicates an expected call of GetProductBySerial.
func (mr *MockStoreMockRecorder) GetProductBySerial(ctx, manufacturer, serialNumber interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProductBySerial", reflect.TypeOf((*MockStore)(nil).GetProductBySerial), ctx, manufacturer, serialNumber)
}

// GetProductByTokenID mocks base method.
func (m *MockStore) GetProductByTokenID(ctx context.Context, tokenID uint64) (*schema.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProductByTokenID", ctx, tokenID)
	ret0, _ := ret[0].(*schema.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProductByTokenID indicates an expected call of GetProductByTokenID.
func (mr *MockStoreMockRecorder) GetProductByTokenID(ctx, tokenID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProductByTokenID", reflect.TypeOf((*MockStore)(nil).GetProductByTokenID), ctx, tokenID)
}

// ListProductsByManufacturer mocks base method.
func (m *MockStore) ListProductsByManufacturer(ctx context.Context, manufacturer string, limit, offset int) ([]*schema.Product, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListProductsByManufacturer", ctx, manufacturer, limit, offset)
	ret0, _ := ret[0].([]*schema.Product)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListProductsByManufacturer indicates an expected call of ListProductsByManufacturer.
func (mr *MockStoreMockRecorder) ListProductsByManufacturer(ctx, manufacturer, limit, offset interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListProductsByManufacturer", reflect.TypeOf((*MockStore)(nil).ListProductsByManufacturer), ctx, manufacturer, limit, offset)
}

// ListScanEvents mocks base method.
func (m *MockStore) ListScanEvents(ctx context.Context, filter store.ScanEventFilter) ([]*schema.ScanEvent, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListScanEvents", ctx, filter)
	ret0, _ := ret[0].([]*schema.ScanEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListScanEvents indicates an expected call of ListScanEvents.
func (mr *MockStoreMockRecorder) ListScanEvents(ctx, filter interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListScanEvents", reflect.TypeOf((*MockStore)(nil).ListScanEvents), ctx, filter)
}

// SetBlockCursor mocks base method.
func (m *MockStore) SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetBlockCursor", ctx, chain, blockNumber)
	ret0, _ := ret[0].(error)
	return ret0
}

// SetBlockCursor indicates an expected call of SetBlockCursor.
func (mr *MockStoreMockRecorder) SetBlockCursor(ctx, chain, blockNumber interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetBlockCursor", reflect.TypeOf((*MockStore)(nil).SetBlockCursor), ctx, chain, blockNumber)
}

// UpdateProductOwner mocks base method.
func (m *MockStore) UpdateProductOwner(ctx context.Context, tokenID uint64, owner string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateProductOwner", ctx, tokenID, owner)
	ret0, _ := ret[0].(error)
	return ret0
}

// UpdateProductOwner indicates an expected call of UpdateProductOwner.
func (mr *MockStoreMockRecorder) UpdateProductOwner(ctx, tokenID, owner interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateProductOwner", reflect.TypeOf((*MockStore)(nil).UpdateProductOwner), ctx, tokenID, owner)
}
