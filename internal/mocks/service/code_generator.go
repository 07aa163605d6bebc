package service

import (
	mock "github.com/stretchr/testify/mock"
)

// MockCodeGenerator is a mock type for the CodeGenerator type
type MockCodeGenerator struct {
	mock.Mock
}

type MockCodeGenerator_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCodeGenerator) EXPECT() *MockCodeGenerator_Expecter {
	return &MockCodeGenerator_Expecter{mock: &_m.Mock}
}

func (_m *MockCodeGenerator) Next() (string, error) {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Next is a helper method to define mock.On call
func (_e *MockCodeGenerator_Expecter) Next() *mock.Call {
	return _e.mock.On("Next")
}

// NewMockCodeGenerator creates a new instance of MockCodeGenerator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCodeGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCodeGenerator {
	m := &MockCodeGenerator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
