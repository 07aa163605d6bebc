package usecase

import (
	"context"

	"dnotes/internal/domain/entity"
	"dnotes/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockCompanyUsecase is a mock type for the CompanyUsecase type
type MockCompanyUsecase struct {
	mock.Mock
}

type MockCompanyUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCompanyUsecase) EXPECT() *MockCompanyUsecase_Expecter {
	return &MockCompanyUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockCompanyUsecase) OnboardCompany(ctx context.Context, principal entity.Principal, input usecase.CompanyInput) (*entity.User, error) {
	ret := _m.Called(ctx, principal, input)

	var r0 *entity.User
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, usecase.CompanyInput) *entity.User); ok {
		r0 = rf(ctx, principal, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, usecase.CompanyInput) error); ok {
		r1 = rf(ctx, principal, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// OnboardCompany is a helper method to define mock.On call
func (_e *MockCompanyUsecase_Expecter) OnboardCompany(ctx any, principal any, input any) *mock.Call {
	return _e.mock.On("OnboardCompany", ctx, principal, input)
}

func (_m *MockCompanyUsecase) GetMyCompany(ctx context.Context, principal entity.Principal) (*entity.Company, error) {
	ret := _m.Called(ctx, principal)

	var r0 *entity.Company
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal) *entity.Company); ok {
		r0 = rf(ctx, principal)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Company)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal) error); ok {
		r1 = rf(ctx, principal)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetMyCompany is a helper method to define mock.On call
func (_e *MockCompanyUsecase_Expecter) GetMyCompany(ctx any, principal any) *mock.Call {
	return _e.mock.On("GetMyCompany", ctx, principal)
}

// NewMockCompanyUsecase creates a new instance of MockCompanyUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCompanyUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCompanyUsecase {
	m := &MockCompanyUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
