package usecase

import (
	"context"

	"dnotes/internal/domain/entity"
	"dnotes/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockProjectUsecase is a mock type for the ProjectUsecase type
type MockProjectUsecase struct {
	mock.Mock
}

type MockProjectUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProjectUsecase) EXPECT() *MockProjectUsecase_Expecter {
	return &MockProjectUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockProjectUsecase) CreateProject(ctx context.Context, principal entity.Principal, input usecase.CreateProjectInput) (*entity.Project, error) {
	ret := _m.Called(ctx, principal, input)

	var r0 *entity.Project
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, usecase.CreateProjectInput) *entity.Project); ok {
		r0 = rf(ctx, principal, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Project)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, usecase.CreateProjectInput) error); ok {
		r1 = rf(ctx, principal, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateProject is a helper method to define mock.On call
func (_e *MockProjectUsecase_Expecter) CreateProject(ctx any, principal any, input any) *mock.Call {
	return _e.mock.On("CreateProject", ctx, principal, input)
}

func (_m *MockProjectUsecase) GetProjectByID(ctx context.Context, principal entity.Principal, clientID uint64, projectID uint64) (*entity.Project, error) {
	ret := _m.Called(ctx, principal, clientID, projectID)

	var r0 *entity.Project
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, uint64, uint64) *entity.Project); ok {
		r0 = rf(ctx, principal, clientID, projectID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Project)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, uint64, uint64) error); ok {
		r1 = rf(ctx, principal, clientID, projectID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetProjectByID is a helper method to define mock.On call
func (_e *MockProjectUsecase_Expecter) GetProjectByID(ctx any, principal any, clientID any, projectID any) *mock.Call {
	return _e.mock.On("GetProjectByID", ctx, principal, clientID, projectID)
}

func (_m *MockProjectUsecase) ListProjects(ctx context.Context, principal entity.Principal, clientID uint64) ([]*entity.Project, error) {
	ret := _m.Called(ctx, principal, clientID)

	var r0 []*entity.Project
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, uint64) []*entity.Project); ok {
		r0 = rf(ctx, principal, clientID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Project)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, uint64) error); ok {
		r1 = rf(ctx, principal, clientID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListProjects is a helper method to define mock.On call
func (_e *MockProjectUsecase_Expecter) ListProjects(ctx any, principal any, clientID any) *mock.Call {
	return _e.mock.On("ListProjects", ctx, principal, clientID)
}

func (_m *MockProjectUsecase) UpdateProject(ctx context.Context, principal entity.Principal, clientID uint64, projectID uint64, patch entity.ProjectPatch) (*entity.Project, error) {
	ret := _m.Called(ctx, principal, clientID, projectID, patch)

	var r0 *entity.Project
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, uint64, uint64, entity.ProjectPatch) *entity.Project); ok {
		r0 = rf(ctx, principal, clientID, projectID, patch)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Project)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, uint64, uint64, entity.ProjectPatch) error); ok {
		r1 = rf(ctx, principal, clientID, projectID, patch)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateProject is a helper method to define mock.On call
func (_e *MockProjectUsecase_Expecter) UpdateProject(ctx any, principal any, clientID any, projectID any, patch any) *mock.Call {
	return _e.mock.On("UpdateProject", ctx, principal, clientID, projectID, patch)
}

func (_m *MockProjectUsecase) SoftDeleteProject(ctx context.Context, principal entity.Principal, clientID uint64, projectID uint64) error {
	ret := _m.Called(ctx, principal, clientID, projectID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, uint64, uint64) error); ok {
		r0 = rf(ctx, principal, clientID, projectID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SoftDeleteProject is a helper method to define mock.On call
func (_e *MockProjectUsecase_Expecter) SoftDeleteProject(ctx any, principal any, clientID any, projectID any) *mock.Call {
	return _e.mock.On("SoftDeleteProject", ctx, principal, clientID, projectID)
}

func (_m *MockProjectUsecase) HardDeleteProject(ctx context.Context, principal entity.Principal, clientID uint64, projectID uint64) error {
	ret := _m.Called(ctx, principal, clientID, projectID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, uint64, uint64) error); ok {
		r0 = rf(ctx, principal, clientID, projectID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// HardDeleteProject is a helper method to define mock.On call
func (_e *MockProjectUsecase_Expecter) HardDeleteProject(ctx any, principal any, clientID any, projectID any) *mock.Call {
	return _e.mock.On("HardDeleteProject", ctx, principal, clientID, projectID)
}

func (_m *MockProjectUsecase) RestoreProject(ctx context.Context, principal entity.Principal, clientID uint64, projectID uint64) (*entity.Project, error) {
	ret := _m.Called(ctx, principal, clientID, projectID)

	var r0 *entity.Project
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, uint64, uint64) *entity.Project); ok {
		r0 = rf(ctx, principal, clientID, projectID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Project)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, uint64, uint64) error); ok {
		r1 = rf(ctx, principal, clientID, projectID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RestoreProject is a helper method to define mock.On call
func (_e *MockProjectUsecase_Expecter) RestoreProject(ctx any, principal any, clientID any, projectID any) *mock.Call {
	return _e.mock.On("RestoreProject", ctx, principal, clientID, projectID)
}

// NewMockProjectUsecase creates a new instance of MockProjectUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockProjectUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProjectUsecase {
	m := &MockProjectUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
