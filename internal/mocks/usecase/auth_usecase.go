package usecase

import (
	"context"

	"dnotes/internal/domain/entity"
	"dnotes/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockAuthUsecase is a mock type for the AuthUsecase type
type MockAuthUsecase struct {
	mock.Mock
}

type MockAuthUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockAuthUsecase) EXPECT() *MockAuthUsecase_Expecter {
	return &MockAuthUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockAuthUsecase) Authenticate(ctx context.Context, credential string, scope usecase.CredentialScope, allowSoftDeleted bool) (*entity.Principal, error) {
	ret := _m.Called(ctx, credential, scope, allowSoftDeleted)

	var r0 *entity.Principal
	if rf, ok := ret.Get(0).(func(context.Context, string, usecase.CredentialScope, bool) *entity.Principal); ok {
		r0 = rf(ctx, credential, scope, allowSoftDeleted)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Principal)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, usecase.CredentialScope, bool) error); ok {
		r1 = rf(ctx, credential, scope, allowSoftDeleted)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Authenticate is a helper method to define mock.On call
func (_e *MockAuthUsecase_Expecter) Authenticate(ctx any, credential any, scope any, allowSoftDeleted any) *mock.Call {
	return _e.mock.On("Authenticate", ctx, credential, scope, allowSoftDeleted)
}

// NewMockAuthUsecase creates a new instance of MockAuthUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockAuthUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
