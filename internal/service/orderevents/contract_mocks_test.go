// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderevents_test
//

// Package orderevents_test is a generated GoMock package.
package orderevents_test

import (
	context "context"
	entities "dispatch/internal/entities"
	orderevents "dispatch/internal/service/orderevents"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockAssignmentService is a mock of AssignmentService interface.
type MockAssignmentService struct {
	ctrl     *gomock.Controller
	recorder *MockAssignmentServiceMockRecorder
	isgomock struct{}
}

// MockAssignmentServiceMockRecorder is the mock recorder for MockAssignmentService.
type MockAssignmentServiceMockRecorder struct {
	mock *MockAssignmentService
}

// NewMockAssignmentService creates a new mock instance.
func NewMockAssignmentService(ctrl *gomock.Controller) *MockAssignmentService {
	mock := &MockAssignmentService{ctrl: ctrl}
	mock.recorder = &MockAssignmentServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAssignmentService) EXPECT() *MockAssignmentServiceMockRecorder {
	return m.recorder
}

// CancelFromModule mocks base method.
func (m *MockAssignmentService) CancelFromModule(ctx context.Context, orderID string, kind entities.JobKind, reason string) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CancelFromModule", ctx, orderID, kind, reason)
	ret0, _ := ret[0].(error)
	return ret0
}

// CancelFromModule indicates an expected call of CancelFromModule.
func (mr *MockAssignmentServiceMockRecorder) CancelFromModule(ctx, orderID, kind, reason any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CancelFromModule", reflect.TypeOf((*MockAssignmentService)(nil).CancelFromModule), ctx, orderID, kind, reason)
}

// EnsureUnclaimed mocks base method.
func (m *MockAssignmentService) EnsureUnclaimed(ctx context.Context, orderID string, kind entities.JobKind) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EnsureUnclaimed", ctx, orderID, kind)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// EnsureUnclaimed indicates an expected call of EnsureUnclaimed.
func (mr *MockAssignmentServiceMockRecorder) EnsureUnclaimed(ctx, orderID, kind any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnsureUnclaimed", reflect.TypeOf((*MockAssignmentService)(nil).EnsureUnclaimed), ctx, orderID, kind)
}

// MockHandlerFactory is a mock of HandlerFactory interface.
type MockHandlerFactory struct {
	ctrl     *gomock.Controller
	recorder *MockHandlerFactoryMockRecorder
	isgomock struct{}
}

// MockHandlerFactoryMockRecorder is the mock recorder for MockHandlerFactory.
type MockHandlerFactoryMockRecorder struct {
	mock *MockHandlerFactory
}

// NewMockHandlerFactory creates a new mock instance.
func NewMockHandlerFactory(ctrl *gomock.Controller) *MockHandlerFactory {
	mock := &MockHandlerFactory{ctrl: ctrl}
	mock.recorder = &MockHandlerFactoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockHandlerFactory) EXPECT() *MockHandlerFactoryMockRecorder {
	return m.recorder
}

// GetHandler mocks base method.
func (m *MockHandlerFactory) GetHandler(eventType entities.OrderEventType) (orderevents.ExecuteFn, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetHandler", eventType)
	ret0, _ := ret[0].(orderevents.ExecuteFn)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetHandler indicates an expected call of GetHandler.
func (mr *MockHandlerFactoryMockRecorder) GetHandler(eventType any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetHandler", reflect.TypeOf((*MockHandlerFactory)(nil).GetHandler), eventType)
}
