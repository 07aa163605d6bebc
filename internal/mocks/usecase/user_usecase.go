package usecase

import (
	"context"

	"dnotes/internal/domain/entity"
	"dnotes/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockUserUsecase is a mock type for the UserUsecase type
type MockUserUsecase struct {
	mock.Mock
}

type MockUserUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUserUsecase) EXPECT() *MockUserUsecase_Expecter {
	return &MockUserUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockUserUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	ret := _m.Called(ctx, input)

	var r0 *usecase.AuthOutput
	if rf, ok := ret.Get(0).(func(context.Context, usecase.RegisterInput) *usecase.AuthOutput); ok {
		r0 = rf(ctx, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.AuthOutput)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, usecase.RegisterInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Register is a helper method to define mock.On call
func (_e *MockUserUsecase_Expecter) Register(ctx any, input any) *mock.Call {
	return _e.mock.On("Register", ctx, input)
}

func (_m *MockUserUsecase) ValidateEmail(ctx context.Context, principal entity.Principal, code string) (*entity.User, error) {
	ret := _m.Called(ctx, principal, code)

	var r0 *entity.User
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, string) *entity.User); ok {
		r0 = rf(ctx, principal, code)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, string) error); ok {
		r1 = rf(ctx, principal, code)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ValidateEmail is a helper method to define mock.On call
func (_e *MockUserUsecase_Expecter) ValidateEmail(ctx any, principal any, code any) *mock.Call {
	return _e.mock.On("ValidateEmail", ctx, principal, code)
}

func (_m *MockUserUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	ret := _m.Called(ctx, input)

	var r0 *usecase.AuthOutput
	if rf, ok := ret.Get(0).(func(context.Context, usecase.LoginInput) *usecase.AuthOutput); ok {
		r0 = rf(ctx, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.AuthOutput)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, usecase.LoginInput) error); ok {
		r1 = rf(ctx, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Login is a helper method to define mock.On call
func (_e *MockUserUsecase_Expecter) Login(ctx any, input any) *mock.Call {
	return _e.mock.On("Login", ctx, input)
}

func (_m *MockUserUsecase) GetMe(ctx context.Context, principal entity.Principal) (*entity.User, error) {
	ret := _m.Called(ctx, principal)

	var r0 *entity.User
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal) *entity.User); ok {
		r0 = rf(ctx, principal)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal) error); ok {
		r1 = rf(ctx, principal)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetMe is a helper method to define mock.On call
func (_e *MockUserUsecase_Expecter) GetMe(ctx any, principal any) *mock.Call {
	return _e.mock.On("GetMe", ctx, principal)
}

func (_m *MockUserUsecase) UpdatePersonalData(ctx context.Context, principal entity.Principal, data entity.PersonalData) (*entity.User, error) {
	ret := _m.Called(ctx, principal, data)

	var r0 *entity.User
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, entity.PersonalData) *entity.User); ok {
		r0 = rf(ctx, principal, data)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, entity.PersonalData) error); ok {
		r1 = rf(ctx, principal, data)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdatePersonalData is a helper method to define mock.On call
func (_e *MockUserUsecase_Expecter) UpdatePersonalData(ctx any, principal any, data any) *mock.Call {
	return _e.mock.On("UpdatePersonalData", ctx, principal, data)
}

func (_m *MockUserUsecase) UpdateProfileImage(ctx context.Context, principal entity.Principal, input usecase.ProfileImageInput) (*entity.User, error) {
	ret := _m.Called(ctx, principal, input)

	var r0 *entity.User
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, usecase.ProfileImageInput) *entity.User); ok {
		r0 = rf(ctx, principal, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, usecase.ProfileImageInput) error); ok {
		r1 = rf(ctx, principal, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateProfileImage is a helper method to define mock.On call
func (_e *MockUserUsecase_Expecter) UpdateProfileImage(ctx any, principal any, input any) *mock.Call {
	return _e.mock.On("UpdateProfileImage", ctx, principal, input)
}

func (_m *MockUserUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	ret := _m.Called(ctx, email)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, email)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// RequestPasswordReset is a helper method to define mock.On call
func (_e *MockUserUsecase_Expecter) RequestPasswordReset(ctx any, email any) *mock.Call {
	return _e.mock.On("RequestPasswordReset", ctx, email)
}

func (_m *MockUserUsecase) RecoverPassword(ctx context.Context, principal entity.Principal, newPassword string) error {
	ret := _m.Called(ctx, principal, newPassword)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, string) error); ok {
		r0 = rf(ctx, principal, newPassword)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// RecoverPassword is a helper method to define mock.On call
func (_e *MockUserUsecase_Expecter) RecoverPassword(ctx any, principal any, newPassword any) *mock.Call {
	return _e.mock.On("RecoverPassword", ctx, principal, newPassword)
}

func (_m *MockUserUsecase) SoftDeleteUser(ctx context.Context, principal entity.Principal) error {
	ret := _m.Called(ctx, principal)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal) error); ok {
		r0 = rf(ctx, principal)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SoftDeleteUser is a helper method to define mock.On call
func (_e *MockUserUsecase_Expecter) SoftDeleteUser(ctx any, principal any) *mock.Call {
	return _e.mock.On("SoftDeleteUser", ctx, principal)
}

func (_m *MockUserUsecase) HardDeleteUser(ctx context.Context, principal entity.Principal) error {
	ret := _m.Called(ctx, principal)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal) error); ok {
		r0 = rf(ctx, principal)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// HardDeleteUser is a helper method to define mock.On call
func (_e *MockUserUsecase_Expecter) HardDeleteUser(ctx any, principal any) *mock.Call {
	return _e.mock.On("HardDeleteUser", ctx, principal)
}

func (_m *MockUserUsecase) RestoreUser(ctx context.Context, principal entity.Principal) (*entity.User, error) {
	ret := _m.Called(ctx, principal)

	var r0 *entity.User
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal) *entity.User); ok {
		r0 = rf(ctx, principal)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal) error); ok {
		r1 = rf(ctx, principal)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RestoreUser is a helper method to define mock.On call
func (_e *MockUserUsecase_Expecter) RestoreUser(ctx any, principal any) *mock.Call {
	return _e.mock.On("RestoreUser", ctx, principal)
}

func (_m *MockUserUsecase) Dashboard(ctx context.Context, principal entity.Principal) (*entity.UserStats, error) {
	ret := _m.Called(ctx, principal)

	var r0 *entity.UserStats
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal) *entity.UserStats); ok {
		r0 = rf(ctx, principal)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.UserStats)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal) error); ok {
		r1 = rf(ctx, principal)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Dashboard is a helper method to define mock.On call
func (_e *MockUserUsecase_Expecter) Dashboard(ctx any, principal any) *mock.Call {
	return _e.mock.On("Dashboard", ctx, principal)
}

// NewMockUserUsecase creates a new instance of MockUserUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockUserUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserUsecase {
	m := &MockUserUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
