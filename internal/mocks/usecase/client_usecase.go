package usecase

import (
	"context"

	"dnotes/internal/domain/entity"
	"dnotes/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockClientUsecase is a mock type for the ClientUsecase type
type MockClientUsecase struct {
	mock.Mock
}

type MockClientUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockClientUsecase) EXPECT() *MockClientUsecase_Expecter {
	return &MockClientUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockClientUsecase) CreateClient(ctx context.Context, principal entity.Principal, input usecase.CreateClientInput) (*entity.Client, error) {
	ret := _m.Called(ctx, principal, input)

	var r0 *entity.Client
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, usecase.CreateClientInput) *entity.Client); ok {
		r0 = rf(ctx, principal, input)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Client)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, usecase.CreateClientInput) error); ok {
		r1 = rf(ctx, principal, input)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateClient is a helper method to define mock.On call
func (_e *MockClientUsecase_Expecter) CreateClient(ctx any, principal any, input any) *mock.Call {
	return _e.mock.On("CreateClient", ctx, principal, input)
}

func (_m *MockClientUsecase) GetClientByID(ctx context.Context, principal entity.Principal, clientID uint64) (*entity.Client, error) {
	ret := _m.Called(ctx, principal, clientID)

	var r0 *entity.Client
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, uint64) *entity.Client); ok {
		r0 = rf(ctx, principal, clientID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Client)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, uint64) error); ok {
		r1 = rf(ctx, principal, clientID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetClientByID is a helper method to define mock.On call
func (_e *MockClientUsecase_Expecter) GetClientByID(ctx any, principal any, clientID any) *mock.Call {
	return _e.mock.On("GetClientByID", ctx, principal, clientID)
}

func (_m *MockClientUsecase) ListClients(ctx context.Context, principal entity.Principal) ([]*entity.Client, error) {
	ret := _m.Called(ctx, principal)

	var r0 []*entity.Client
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal) []*entity.Client); ok {
		r0 = rf(ctx, principal)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Client)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal) error); ok {
		r1 = rf(ctx, principal)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListClients is a helper method to define mock.On call
func (_e *MockClientUsecase_Expecter) ListClients(ctx any, principal any) *mock.Call {
	return _e.mock.On("ListClients", ctx, principal)
}

func (_m *MockClientUsecase) UpdateClient(ctx context.Context, principal entity.Principal, clientID uint64, patch entity.ClientPatch) (*entity.Client, error) {
	ret := _m.Called(ctx, principal, clientID, patch)

	var r0 *entity.Client
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, uint64, entity.ClientPatch) *entity.Client); ok {
		r0 = rf(ctx, principal, clientID, patch)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Client)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, uint64, entity.ClientPatch) error); ok {
		r1 = rf(ctx, principal, clientID, patch)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateClient is a helper method to define mock.On call
func (_e *MockClientUsecase_Expecter) UpdateClient(ctx any, principal any, clientID any, patch any) *mock.Call {
	return _e.mock.On("UpdateClient", ctx, principal, clientID, patch)
}

func (_m *MockClientUsecase) SoftDeleteClient(ctx context.Context, principal entity.Principal, clientID uint64) error {
	ret := _m.Called(ctx, principal, clientID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, uint64) error); ok {
		r0 = rf(ctx, principal, clientID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SoftDeleteClient is a helper method to define mock.On call
func (_e *MockClientUsecase_Expecter) SoftDeleteClient(ctx any, principal any, clientID any) *mock.Call {
	return _e.mock.On("SoftDeleteClient", ctx, principal, clientID)
}

func (_m *MockClientUsecase) HardDeleteClient(ctx context.Context, principal entity.Principal, clientID uint64) error {
	ret := _m.Called(ctx, principal, clientID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, uint64) error); ok {
		r0 = rf(ctx, principal, clientID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// HardDeleteClient is a helper method to define mock.On call
func (_e *MockClientUsecase_Expecter) HardDeleteClient(ctx any, principal any, clientID any) *mock.Call {
	return _e.mock.On("HardDeleteClient", ctx, principal, clientID)
}

func (_m *MockClientUsecase) RestoreClient(ctx context.Context, principal entity.Principal, clientID uint64) (*entity.Client, error) {
	ret := _m.Called(ctx, principal, clientID)

	var r0 *entity.Client
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, uint64) *entity.Client); ok {
		r0 = rf(ctx, principal, clientID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Client)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, uint64) error); ok {
		r1 = rf(ctx, principal, clientID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RestoreClient is a helper method to define mock.On call
func (_e *MockClientUsecase_Expecter) RestoreClient(ctx any, principal any, clientID any) *mock.Call {
	return _e.mock.On("RestoreClient", ctx, principal, clientID)
}

// NewMockClientUsecase creates a new instance of MockClientUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockClientUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClientUsecase {
	m := &MockClientUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
