// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=facility_test
//

// Package facility_test is a generated GoMock package.
package facility_test

import (
	context "context"
	entities "dispatch/internal/entities"
	reflect "reflect"

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

// DefaultActive mocks base method.
func (m *MockRepository) DefaultActive(ctx context.Context) (*entities.Facility, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DefaultActive", ctx)
	ret0, _ := ret[0].(*entities.Facility)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DefaultActive indicates an expected call of DefaultActive.
func (mr *MockRepositoryMockRecorder) DefaultActive(ctx any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DefaultActive", reflect.TypeOf((*MockRepository)(nil).DefaultActive), ctx)
}
