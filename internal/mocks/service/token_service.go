package service

import (
	"dnotes/internal/domain/service"

	mock "github.com/stretchr/testify/mock"
)

// MockTokenService is a mock type for the TokenService type
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

func (_m *MockTokenService) Verify(credential string) (*service.Claims, error) {
	ret := _m.Called(credential)

	var r0 *service.Claims
	if rf, ok := ret.Get(0).(func(string) *service.Claims); ok {
		r0 = rf(credential)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.Claims)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(credential)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Verify is a helper method to define mock.On call
func (_e *MockTokenService_Expecter) Verify(credential any) *mock.Call {
	return _e.mock.On("Verify", credential)
}

func (_m *MockTokenService) IssueAccessToken(userID uint64) (string, error) {
	ret := _m.Called(userID)

	var r0 string
	if rf, ok := ret.Get(0).(func(uint64) string); ok {
		r0 = rf(userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(uint64) error); ok {
		r1 = rf(userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// IssueAccessToken is a helper method to define mock.On call
func (_e *MockTokenService_Expecter) IssueAccessToken(userID any) *mock.Call {
	return _e.mock.On("IssueAccessToken", userID)
}

func (_m *MockTokenService) IssueResetToken(userID uint64) (string, error) {
	ret := _m.Called(userID)

	var r0 string
	if rf, ok := ret.Get(0).(func(uint64) string); ok {
		r0 = rf(userID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(uint64) error); ok {
		r1 = rf(userID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// IssueResetToken is a helper method to define mock.On call
func (_e *MockTokenService_Expecter) IssueResetToken(userID any) *mock.Call {
	return _e.mock.On("IssueResetToken", userID)
}

// NewMockTokenService creates a new instance of MockTokenService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
