// Code generated by MockGen. DO NOT EDIT.
// Source: client.go

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	big "math/big"
	reflect "reflect"

	ethereum "github.com/ethereum/go-ethereum"
	common "github.com/ethereum/go-ethereum/common"
	types "github.com/ethereum/go-ethereum/core/types"
	gomock "github.com/golang/mock/gomock"
	domain "github.com/tagin-labs/tagin-verifier/internal/domain"
)

// MockLedgerClient is a mock of Client interface.
type MockLedgerClient struct {
	ctrl     *gomock.Controller
	recorder *MockLedgerClientMockRecorder
}

// MockLedgerClientMockRecorder is the mock recorder for MockLedgerClient.
type MockLedgerClientMockRecorder struct {
	mock *MockLedgerClient
}

// NewMockLedgerClient creates a new mock instance.
func NewMockLedgerClient(ctrl *gomock.Controller) *MockLedgerClient {
	mock := &MockLedgerClient{ctrl: ctrl}
	mock.recorder = &MockLedgerClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLedgerClient) EXPECT() *MockLedgerClientMockRecorder {
	return m.recorder
}

// AddToWhitelist mocks base method.
func (m *MockLedgerClient) AddToWhitelist(ctx context.Context, account string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AddToWhitelist", ctx, account)
	ret0, _ := ret[0].(error)
	return ret0
}

// AddToWhitelist indicates an expected call of AddToWhitelist.
func (mr *MockLedgerClientMockRecorder) AddToWhitelist(ctx, account interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AddToWhitelist", reflect.TypeOf((*MockLedgerClient)(nil).AddToWhitelist), ctx, account)
}

// Approve mocks base method.
func (m *MockLedgerClient) Approve(ctx context.Context, to string, tokenID uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Approve", ctx, to, tokenID)
	ret0, _ := ret[0].(error)
	return ret0
}

// Approve indicates an expected call of Approve.
func (mr *MockLedgerClientMockRecorder) Approve(ctx, to, tokenID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Approve", reflect.TypeOf((*MockLedgerClient)(nil).Approve), ctx, to, tokenID)
}

// BalanceOf mocks base method.
func (m *MockLedgerClient) BalanceOf(ctx context.Context, owner string) (uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BalanceOf", ctx, owner)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// BalanceOf indicates an expected call of BalanceOf.
func (mr *MockLedgerClientMockRecorder) BalanceOf(ctx, owner interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BalanceOf", reflect.TypeOf((*MockLedgerClient)(nil).BalanceOf), ctx, owner)
}

// Close mocks base method.
func (m *MockLedgerClient) Close() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Close")
}

// Close indicates an expected call of Close.
func (mr *MockLedgerClientMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockLedgerClient)(nil).Close))
}

// ContractAddress mocks base method.
func (m *MockLedgerClient) ContractAddress() common.Address {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ContractAddress")
	ret0, _ := ret[0].(common.Address)
	return ret0
}

// ContractAddress indicates an expected call of ContractAddress.
func (mr *MockLedgerClientMockRecorder) ContractAddress() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ContractAddress", reflect.TypeOf((*MockLedgerClient)(nil).ContractAddress))
}

// GetProductDetails mocks base method.
func (m *MockLedgerClient) GetProductDetails(ctx context.Context, tokenID uint64) (*domain.LedgerBinding, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetProductDetails", ctx, tokenID)
	ret0, _ := ret[0].(*domain.LedgerBinding)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetProductDetails indicates an expected call of GetProductDetails.
func (mr *MockLedgerClientMockRecorder) GetProductDetails(ctx, tokenID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetProductDetails", reflect.TypeOf((*MockLedgerClient)(nil).GetProductDetails), ctx, tokenID)
}

// HeaderByNumber mocks base method.
func (m *MockLedgerClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "HeaderByNumber", ctx, number)
	ret0, _ := ret[0].(*types.Header)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// HeaderByNumber indicates an expected call of HeaderByNumber.
func (mr *MockLedgerClientMockRecorder) HeaderByNumber(ctx, number interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "HeaderByNumber", reflect.TypeOf((*MockLedgerClient)(nil).HeaderByNumber), ctx, number)
}

// IsWhitelisted mocks base method.
func (m *MockLedgerClient) IsWhitelisted(ctx context.Context, account string) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsWhitelisted", ctx, account)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IsWhitelisted indicates an expected call of IsWhitelisted.
func (mr *MockLedgerClientMockRecorder) IsWhitelisted(ctx, account interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsWhitelisted", reflect.TypeOf((*MockLedgerClient)(nil).IsWhitelisted), ctx, account)
}

// MintProduct mocks base method.
func (m *MockLedgerClient) MintProduct(ctx context.Context, metadataHash [32]byte) (uint64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "MintProduct", ctx, metadataHash)
	ret0, _ := ret[0].(uint64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// MintProduct indicates an expected call of MintProduct.
func (mr *MockLedgerClientMockRecorder) MintProduct(ctx, metadataHash interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "MintProduct", reflect.TypeOf((*MockLedgerClient)(nil).MintProduct), ctx, metadataHash)
}

// OwnerOf mocks base method.
func (m *MockLedgerClient) OwnerOf(ctx context.Context, tokenID uint64) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OwnerOf", ctx, tokenID)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// OwnerOf indicates an expected call of OwnerOf.
func (mr *MockLedgerClientMockRecorder) OwnerOf(ctx, tokenID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OwnerOf", reflect.TypeOf((*MockLedgerClient)(nil).OwnerOf), ctx, tokenID)
}

// ParseRegistryLog mocks base method.
func (m *MockLedgerClient) ParseRegistryLog(ctx context.Context, vLog types.Log) (*domain.RegistryEvent, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ParseRegistryLog", ctx, vLog)
	ret0, _ := ret[0].(*domain.RegistryEvent)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ParseRegistryLog indicates an expected call of ParseRegistryLog.
func (mr *MockLedgerClientMockRecorder) ParseRegistryLog(ctx, vLog interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ParseRegistryLog", reflect.TypeOf((*MockLedgerClient)(nil).ParseRegistryLog), ctx, vLog)
}

// RemoveFromWhitelist mocks base method.
func (m *MockLedgerClient) RemoveFromWhitelist(ctx context.Context, account string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RemoveFromWhitelist", ctx, account)
	ret0, _ := ret[0].(error)
	return ret0
}

// RemoveFromWhitelist indicates an expected call of RemoveFromWhitelist.
func (mr *MockLedgerClientMockRecorder) RemoveFromWhitelist(ctx, account interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RemoveFromWhitelist", reflect.TypeOf((*MockLedgerClient)(nil).RemoveFromWhitelist), ctx, account)
}

// SafeTransferFrom mocks base method.
func (m *MockLedgerClient) SafeTransferFrom(ctx context.Context, from, to string, tokenID uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SafeTransferFrom", ctx, from, to, tokenID)
	ret0, _ := ret[0].(error)
	return ret0
}

// SafeTransferFrom indicates an expected call of SafeTransferFrom.
func (mr *MockLedgerClientMockRecorder) SafeTransferFrom(ctx, from, to, tokenID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SafeTransferFrom", reflect.TypeOf((*MockLedgerClient)(nil).SafeTransferFrom), ctx, from, to, tokenID)
}

// SubscribeFilterLogs mocks base method.
func (m *MockLedgerClient) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SubscribeFilterLogs", ctx, query, ch)
	ret0, _ := ret[0].(ethereum.Subscription)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SubscribeFilterLogs indicates an expected call of SubscribeFilterLogs.
func (mr *MockLedgerClientMockRecorder) SubscribeFilterLogs(ctx, query, ch interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SubscribeFilterLogs", reflect.TypeOf((*MockLedgerClient)(nil).SubscribeFilterLogs), ctx, query, ch)
}

// TransferFrom mocks base method.
func (m *MockLedgerClient) TransferFrom(ctx context.Context, from, to string, tokenID uint64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TransferFrom", ctx, from, to, tokenID)
	ret0, _ := ret[0].(error)
	return ret0
}

// TransferFrom indicates an expected call of TransferFrom.
func (mr *MockLedgerClientMockRecorder) TransferFrom(ctx, from, to, tokenID interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TransferFrom", reflect.TypeOf((*MockLedgerClient)(nil).TransferFrom), ctx, from, to, tokenID)
}
