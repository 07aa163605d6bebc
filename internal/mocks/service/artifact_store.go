package service

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// MockArtifactStore is a mock type for the ArtifactStore type
type MockArtifactStore struct {
	mock.Mock
}

type MockArtifactStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockArtifactStore) EXPECT() *MockArtifactStore_Expecter {
	return &MockArtifactStore_Expecter{mock: &_m.Mock}
}

func (_m *MockArtifactStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	ret := _m.Called(ctx, key, data, contentType)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string, []byte, string) string); ok {
		r0 = rf(ctx, key, data, contentType)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, []byte, string) error); ok {
		r1 = rf(ctx, key, data, contentType)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Put is a helper method to define mock.On call
func (_e *MockArtifactStore_Expecter) Put(ctx any, key any, data any, contentType any) *mock.Call {
	return _e.mock.On("Put", ctx, key, data, contentType)
}

func (_m *MockArtifactStore) Delete(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, key)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Delete is a helper method to define mock.On call
func (_e *MockArtifactStore_Expecter) Delete(ctx any, key any) *mock.Call {
	return _e.mock.On("Delete", ctx, key)
}

// NewMockArtifactStore creates a new instance of MockArtifactStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockArtifactStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockArtifactStore {
	m := &MockArtifactStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
