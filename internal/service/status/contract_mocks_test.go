// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=status_test
//

// Package status_test is a generated GoMock package.
package status_test

import (
	context "context"
	entities "dispatch/internal/entities"
	registry "dispatch/internal/registry"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"
)

// MockOrderRepository is a mock of OrderRepository interface.
type MockOrderRepository struct {
	ctrl     *gomock.Controller
	recorder *MockOrderRepositoryMockRecorder
	isgomock struct{}
}

// MockOrderRepositoryMockRecorder is the mock recorder for MockOrderRepository.
type MockOrderRepositoryMockRecorder struct {
	mock *MockOrderRepository
}

// NewMockOrderRepository creates a new mock instance.
func NewMockOrderRepository(ctrl *gomock.Controller) *MockOrderRepository {
	mock := &MockOrderRepository{ctrl: ctrl}
	mock.recorder = &MockOrderRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockOrderRepository) EXPECT() *MockOrderRepositoryMockRecorder {
	return m.recorder
}

// ApplyStatus mocks base method.
func (m *MockOrderRepository) ApplyStatus(ctx context.Context, desc registry.Descriptor, orderID string, mapping registry.StatusMapping, driver *entities.DriverInfo, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ApplyStatus", ctx, desc, orderID, mapping, driver, at)
	ret0, _ := ret[0].(error)
	return ret0
}

// ApplyStatus indicates an expected call of ApplyStatus.
func (mr *MockOrderRepositoryMockRecorder) ApplyStatus(ctx, desc, orderID, mapping, driver, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplyStatus", reflect.TypeOf((*MockOrderRepository)(nil).ApplyStatus), ctx, desc, orderID, mapping, driver, at)
}

// GetSnapshot mocks base method.
func (m *MockOrderRepository) GetSnapshot(ctx context.Context, desc registry.Descriptor, orderID string) (*entities.OrderSnapshot, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetSnapshot", ctx, desc, orderID)
	ret0, _ := ret[0].(*entities.OrderSnapshot)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetSnapshot indicates an expected call of GetSnapshot.
func (mr *MockOrderRepositoryMockRecorder) GetSnapshot(ctx, desc, orderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetSnapshot", reflect.TypeOf((*MockOrderRepository)(nil).GetSnapshot), ctx, desc, orderID)
}

// GetStatus mocks base method.
func (m *MockOrderRepository) GetStatus(ctx context.Context, desc registry.Descriptor, orderID string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetStatus", ctx, desc, orderID)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetStatus indicates an expected call of GetStatus.
func (mr *MockOrderRepositoryMockRecorder) GetStatus(ctx, desc, orderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetStatus", reflect.TypeOf((*MockOrderRepository)(nil).GetStatus), ctx, desc, orderID)
}
