package service

import (
	"time"

	mock "github.com/stretchr/testify/mock"
)

// MockQRCodeService is a mock type for the QRCodeService type
type MockQRCodeService struct {
	mock.Mock
}

type MockQRCodeService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockQRCodeService) EXPECT() *MockQRCodeService_Expecter {
	return &MockQRCodeService_Expecter{mock: &_m.Mock}
}

func (_m *MockQRCodeService) GenerateVerificationQR(deliveryNoteID uint64, signedAt time.Time) ([]byte, error) {
	ret := _m.Called(deliveryNoteID, signedAt)

	var r0 []byte
	if rf, ok := ret.Get(0).(func(uint64, time.Time) []byte); ok {
		r0 = rf(deliveryNoteID, signedAt)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(uint64, time.Time) error); ok {
		r1 = rf(deliveryNoteID, signedAt)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GenerateVerificationQR is a helper method to define mock.On call
func (_e *MockQRCodeService_Expecter) GenerateVerificationQR(deliveryNoteID any, signedAt any) *mock.Call {
	return _e.mock.On("GenerateVerificationQR", deliveryNoteID, signedAt)
}

func (_m *MockQRCodeService) ParseVerificationQR(payload string) (uint64, error) {
	ret := _m.Called(payload)

	var r0 uint64
	if rf, ok := ret.Get(0).(func(string) uint64); ok {
		r0 = rf(payload)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(uint64)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(payload)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ParseVerificationQR is a helper method to define mock.On call
func (_e *MockQRCodeService_Expecter) ParseVerificationQR(payload any) *mock.Call {
	return _e.mock.On("ParseVerificationQR", payload)
}

// NewMockQRCodeService creates a new instance of MockQRCodeService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockQRCodeService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockQRCodeService {
	m := &MockQRCodeService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
