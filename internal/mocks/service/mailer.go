package service

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// MockMailer is a mock type for the Mailer type
type MockMailer struct {
	mock.Mock
}

type MockMailer_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMailer) EXPECT() *MockMailer_Expecter {
	return &MockMailer_Expecter{mock: &_m.Mock}
}

func (_m *MockMailer) SendValidationCode(ctx context.Context, to string, code string) error {
	ret := _m.Called(ctx, to, code)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, to, code)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SendValidationCode is a helper method to define mock.On call
func (_e *MockMailer_Expecter) SendValidationCode(ctx any, to any, code any) *mock.Call {
	return _e.mock.On("SendValidationCode", ctx, to, code)
}

func (_m *MockMailer) SendPasswordReset(ctx context.Context, to string, resetToken string) error {
	ret := _m.Called(ctx, to, resetToken)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, to, resetToken)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SendPasswordReset is a helper method to define mock.On call
func (_e *MockMailer_Expecter) SendPasswordReset(ctx any, to any, resetToken any) *mock.Call {
	return _e.mock.On("SendPasswordReset", ctx, to, resetToken)
}

// NewMockMailer creates a new instance of MockMailer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockMailer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMailer {
	m := &MockMailer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
