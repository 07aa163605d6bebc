package service

import (
	"context"

	"dnotes/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockDocumentRenderer is a mock type for the DocumentRenderer type
type MockDocumentRenderer struct {
	mock.Mock
}

type MockDocumentRenderer_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDocumentRenderer) EXPECT() *MockDocumentRenderer_Expecter {
	return &MockDocumentRenderer_Expecter{mock: &_m.Mock}
}

func (_m *MockDocumentRenderer) Render(ctx context.Context, doc *entity.DeliveryNoteDocument) ([]byte, error) {
	ret := _m.Called(ctx, doc)

	var r0 []byte
	if rf, ok := ret.Get(0).(func(context.Context, *entity.DeliveryNoteDocument) []byte); ok {
		r0 = rf(ctx, doc)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *entity.DeliveryNoteDocument) error); ok {
		r1 = rf(ctx, doc)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Render is a helper method to define mock.On call
func (_e *MockDocumentRenderer_Expecter) Render(ctx any, doc any) *mock.Call {
	return _e.mock.On("Render", ctx, doc)
}

func (_m *MockDocumentRenderer) ContentType() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// ContentType is a helper method to define mock.On call
func (_e *MockDocumentRenderer_Expecter) ContentType() *mock.Call {
	return _e.mock.On("ContentType")
}

// NewMockDocumentRenderer creates a new instance of MockDocumentRenderer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockDocumentRenderer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDocumentRenderer {
	m := &MockDocumentRenderer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
