// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
//

// Package assignment_test is a generated GoMock package.
package assignment_test

import (
	context "context"
	entities "dispatch/internal/entities"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// CancelUnclaimed mocks base method.
func (m *MockRepository) CancelUnclaimed(ctx context.Context, orderID string, kind entities.JobKind, reason string, at time.Time) (*entities.Assignment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CancelUnclaimed", ctx, orderID, kind, reason, at)
	ret0, _ := ret[0].(*entities.Assignment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CancelUnclaimed indicates an expected call of CancelUnclaimed.
func (mr *MockRepositoryMockRecorder) CancelUnclaimed(ctx, orderID, kind, reason, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CancelUnclaimed", reflect.TypeOf((*MockRepository)(nil).CancelUnclaimed), ctx, orderID, kind, reason, at)
}

// Claim mocks base method.
func (m *MockRepository) Claim(ctx context.Context, orderID string, kind entities.JobKind, workerID int64, at time.Time) (*entities.Assignment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Claim", ctx, orderID, kind, workerID, at)
	ret0, _ := ret[0].(*entities.Assignment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Claim indicates an expected call of Claim.
func (mr *MockRepositoryMockRecorder) Claim(ctx, orderID, kind, workerID, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Claim", reflect.TypeOf((*MockRepository)(nil).Claim), ctx, orderID, kind, workerID, at)
}

// CreateAccepted mocks base method.
func (m *MockRepository) CreateAccepted(ctx context.Context, orderID string, kind entities.JobKind, workerID int64, at time.Time) (*entities.Assignment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateAccepted", ctx, orderID, kind, workerID, at)
	ret0, _ := ret[0].(*entities.Assignment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateAccepted indicates an expected call of CreateAccepted.
func (mr *MockRepositoryMockRecorder) CreateAccepted(ctx, orderID, kind, workerID, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateAccepted", reflect.TypeOf((*MockRepository)(nil).CreateAccepted), ctx, orderID, kind, workerID, at)
}

// EnsureUnclaimed mocks base method.
func (m *MockRepository) EnsureUnclaimed(ctx context.Context, orderID string, kind entities.JobKind) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "EnsureUnclaimed", ctx, orderID, kind)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// EnsureUnclaimed indicates an expected call of EnsureUnclaimed.
func (mr *MockRepositoryMockRecorder) EnsureUnclaimed(ctx, orderID, kind any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "EnsureUnclaimed", reflect.TypeOf((*MockRepository)(nil).EnsureUnclaimed), ctx, orderID, kind)
}

// GetByOrderID mocks base method.
func (m *MockRepository) GetByOrderID(ctx context.Context, orderID string, kind entities.JobKind) (*entities.Assignment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByOrderID", ctx, orderID, kind)
	ret0, _ := ret[0].(*entities.Assignment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByOrderID indicates an expected call of GetByOrderID.
func (mr *MockRepositoryMockRecorder) GetByOrderID(ctx, orderID, kind any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByOrderID", reflect.TypeOf((*MockRepository)(nil).GetByOrderID), ctx, orderID, kind)
}

// ListUpdatedSince mocks base method.
func (m *MockRepository) ListUpdatedSince(ctx context.Context, kind entities.JobKind, since time.Time) ([]entities.Assignment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListUpdatedSince", ctx, kind, since)
	ret0, _ := ret[0].([]entities.Assignment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListUpdatedSince indicates an expected call of ListUpdatedSince.
func (mr *MockRepositoryMockRecorder) ListUpdatedSince(ctx, kind, since any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListUpdatedSince", reflect.TypeOf((*MockRepository)(nil).ListUpdatedSince), ctx, kind, since)
}

// UpdateStatus mocks base method.
func (m *MockRepository) UpdateStatus(ctx context.Context, orderID string, kind entities.JobKind, workerID int64, expected entities.AssignmentStatus, modify entities.AssignmentModify) (*entities.Assignment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateStatus", ctx, orderID, kind, workerID, expected, modify)
	ret0, _ := ret[0].(*entities.Assignment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateStatus indicates an expected call of UpdateStatus.
func (mr *MockRepositoryMockRecorder) UpdateStatus(ctx, orderID, kind, workerID, expected, modify any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateStatus", reflect.TypeOf((*MockRepository)(nil).UpdateStatus), ctx, orderID, kind, workerID, expected, modify)
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

// IncrementCancelled mocks base method.
func (m *MockWorkerDirectory) IncrementCancelled(ctx context.Context, workerID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncrementCancelled", ctx, workerID)
	ret0, _ := ret[0].(error)
	return ret0
}

// IncrementCancelled indicates an expected call of IncrementCancelled.
func (mr *MockWorkerDirectoryMockRecorder) IncrementCancelled(ctx, workerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementCancelled", reflect.TypeOf((*MockWorkerDirectory)(nil).IncrementCancelled), ctx, workerID)
}

// IncrementCompleted mocks base method.
func (m *MockWorkerDirectory) IncrementCompleted(ctx context.Context, workerID int64, earnings float64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncrementCompleted", ctx, workerID, earnings)
	ret0, _ := ret[0].(error)
	return ret0
}

// IncrementCompleted indicates an expected call of IncrementCompleted.
func (mr *MockWorkerDirectoryMockRecorder) IncrementCompleted(ctx, workerID, earnings any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementCompleted", reflect.TypeOf((*MockWorkerDirectory)(nil).IncrementCompleted), ctx, workerID, earnings)
}

// IncrementTotalJobs mocks base method.
func (m *MockWorkerDirectory) IncrementTotalJobs(ctx context.Context, workerID int64) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncrementTotalJobs", ctx, workerID)
	ret0, _ := ret[0].(error)
	return ret0
}

// IncrementTotalJobs indicates an expected call of IncrementTotalJobs.
func (mr *MockWorkerDirectoryMockRecorder) IncrementTotalJobs(ctx, workerID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementTotalJobs", reflect.TypeOf((*MockWorkerDirectory)(nil).IncrementTotalJobs), ctx, workerID)
}

// MockStatusTranslator is a mock of StatusTranslator interface.
type MockStatusTranslator struct {
	ctrl     *gomock.Controller
	recorder *MockStatusTranslatorMockRecorder
	isgomock struct{}
}

// MockStatusTranslatorMockRecorder is the mock recorder for MockStatusTranslator.
type MockStatusTranslatorMockRecorder struct {
	mock *MockStatusTranslator
}

// NewMockStatusTranslator creates a new mock instance.
func NewMockStatusTranslator(ctrl *gomock.Controller) *MockStatusTranslator {
	mock := &MockStatusTranslator{ctrl: ctrl}
	mock.recorder = &MockStatusTranslatorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStatusTranslator) EXPECT() *MockStatusTranslatorMockRecorder {
	return m.recorder
}

// Apply mocks base method.
func (m *MockStatusTranslator) Apply(ctx context.Context, kind entities.JobKind, orderID string, assignmentStatus entities.AssignmentStatus, driver *entities.DriverInfo, at time.Time) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Apply", ctx, kind, orderID, assignmentStatus, driver, at)
	ret0, _ := ret[0].(error)
	return ret0
}

// Apply indicates an expected call of Apply.
func (mr *MockStatusTranslatorMockRecorder) Apply(ctx, kind, orderID, assignmentStatus, driver, at any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Apply", reflect.TypeOf((*MockStatusTranslator)(nil).Apply), ctx, kind, orderID, assignmentStatus, driver, at)
}

// OrderStatus mocks base method.
func (m *MockStatusTranslator) OrderStatus(ctx context.Context, kind entities.JobKind, orderID string) (string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "OrderStatus", ctx, kind, orderID)
	ret0, _ := ret[0].(string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// OrderStatus indicates an expected call of OrderStatus.
func (mr *MockStatusTranslatorMockRecorder) OrderStatus(ctx, kind, orderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OrderStatus", reflect.TypeOf((*MockStatusTranslator)(nil).OrderStatus), ctx, kind, orderID)
}

// MockTxManager is a mock of TxManager interface.
type MockTxManager struct {
	ctrl     *gomock.Controller
	recorder *MockTxManagerMockRecorder
	isgomock struct{}
}

// MockTxManagerMockRecorder is the mock recorder for MockTxManager.
type MockTxManagerMockRecorder struct {
	mock *MockTxManager
}

// NewMockTxManager creates a new mock instance.
func NewMockTxManager(ctrl *gomock.Controller) *MockTxManager {
	mock := &MockTxManager{ctrl: ctrl}
	mock.recorder = &MockTxManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxManager) EXPECT() *MockTxManagerMockRecorder {
	return m.recorder
}

// Do mocks base method.
func (m *MockTxManager) Do(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Do", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Do indicates an expected call of Do.
func (mr *MockTxManagerMockRecorder) Do(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Do", reflect.TypeOf((*MockTxManager)(nil).Do), ctx, fn)
}
