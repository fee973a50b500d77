// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=jobs_test
//

// Package jobs_test is a generated GoMock package.
package jobs_test

import (
	context "context"
	entities "dispatch/internal/entities"
	registry "dispatch/internal/registry"
	reflect "reflect"

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

// ListOpen mocks base method.
func (m *MockOrderRepository) ListOpen(ctx context.Context, desc registry.Descriptor) ([]entities.Job, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListOpen", ctx, desc)
	ret0, _ := ret[0].([]entities.Job)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListOpen indicates an expected call of ListOpen.
func (mr *MockOrderRepositoryMockRecorder) ListOpen(ctx, desc any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListOpen", reflect.TypeOf((*MockOrderRepository)(nil).ListOpen), ctx, desc)
}

// MockAssignmentRepository is a mock of AssignmentRepository interface.
type MockAssignmentRepository struct {
	ctrl     *gomock.Controller
	recorder *MockAssignmentRepositoryMockRecorder
	isgomock struct{}
}

// MockAssignmentRepositoryMockRecorder is the mock recorder for MockAssignmentRepository.
type MockAssignmentRepositoryMockRecorder struct {
	mock *MockAssignmentRepository
}

// NewMockAssignmentRepository creates a new mock instance.
func NewMockAssignmentRepository(ctrl *gomock.Controller) *MockAssignmentRepository {
	mock := &MockAssignmentRepository{ctrl: ctrl}
	mock.recorder = &MockAssignmentRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAssignmentRepository) EXPECT() *MockAssignmentRepositoryMockRecorder {
	return m.recorder
}

// TerminalOrderIDs mocks base method.
func (m *MockAssignmentRepository) TerminalOrderIDs(ctx context.Context, kind entities.JobKind, orderIDs []string) (map[string]struct{}, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "TerminalOrderIDs", ctx, kind, orderIDs)
	ret0, _ := ret[0].(map[string]struct{})
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// TerminalOrderIDs indicates an expected call of TerminalOrderIDs.
func (mr *MockAssignmentRepositoryMockRecorder) TerminalOrderIDs(ctx, kind, orderIDs any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "TerminalOrderIDs", reflect.TypeOf((*MockAssignmentRepository)(nil).TerminalOrderIDs), ctx, kind, orderIDs)
}

// MockPickupResolver is a mock of PickupResolver interface.
type MockPickupResolver struct {
	ctrl     *gomock.Controller
	recorder *MockPickupResolverMockRecorder
	isgomock struct{}
}

// MockPickupResolverMockRecorder is the mock recorder for MockPickupResolver.
type MockPickupResolverMockRecorder struct {
	mock *MockPickupResolver
}

// NewMockPickupResolver creates a new mock instance.
func NewMockPickupResolver(ctrl *gomock.Controller) *MockPickupResolver {
	mock := &MockPickupResolver{ctrl: ctrl}
	mock.recorder = &MockPickupResolverMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPickupResolver) EXPECT() *MockPickupResolverMockRecorder {
	return m.recorder
}

// ResolvePickup mocks base method.
func (m *MockPickupResolver) ResolvePickup(ctx context.Context) entities.Address {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ResolvePickup", ctx)
	ret0, _ := ret[0].(entities.Address)
	return ret0
}

// ResolvePickup indicates an expected call of ResolvePickup.
func (mr *MockPickupResolverMockRecorder) ResolvePickup(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ResolvePickup", reflect.TypeOf((*MockPickupResolver)(nil).ResolvePickup), ctx)
}

// MockWorkerDirectory is a mock of WorkerDirectory interface.
type MockWorkerDirectory struct {
	ctrl     *gomock.Controller
	recorder *MockWorkerDirectoryMockRecorder
	isgomock struct{}
}

// MockWorkerDirectoryMockRecorder is the mock recorder for MockWorkerDirectory.
type MockWorkerDirectoryMockRecorder struct {
	mock *MockWorkerDirectory
}

// NewMockWorkerDirectory creates a new mock instance.
func NewMockWorkerDirectory(ctrl *gomock.Controller) *MockWorkerDirectory {
	mock := &MockWorkerDirectory{ctrl: ctrl}
	mock.recorder = &MockWorkerDirectoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockWorkerDirectory) EXPECT() *MockWorkerDirectoryMockRecorder {
	return m.recorder
}

// Find mocks base method.
func (m *MockWorkerDirectory) Find(ctx context.Context, workerID int64) (*entities.Worker, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Find", ctx, workerID)
	ret0, _ := ret[0].(*entities.Worker)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Find indicates an expected call of Find.
func (mr *MockWorkerDirectoryMockRecorder) Find(ctx, workerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Find", reflect.TypeOf((*MockWorkerDirectory)(nil).Find), ctx, workerID)
}
