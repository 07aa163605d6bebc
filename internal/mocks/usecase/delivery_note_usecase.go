package usecase

import (
	"context"

	"dnotes/internal/domain/entity"
	"dnotes/internal/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockDeliveryNoteUsecase is a mock type for the DeliveryNoteUsecase type
type MockDeliveryNoteUsecase struct {
	mock.Mock
}

type MockDeliveryNoteUsecase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockDeliveryNoteUsecase) EXPECT() *MockDeliveryNoteUsecase_Expecter {
	return &MockDeliveryNoteUsecase_Expecter{mock: &_m.Mock}
}

func (_m *MockDeliveryNoteUsecase) CreateDeliveryNote(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors, content entity.DeliveryNoteContent) (*entity.DeliveryNote, error) {
	ret := _m.Called(ctx, principal, ancestors, content)

	var r0 *entity.DeliveryNote
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, entity.Ancestors, entity.DeliveryNoteContent) *entity.DeliveryNote); ok {
		r0 = rf(ctx, principal, ancestors, content)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.DeliveryNote)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, entity.Ancestors, entity.DeliveryNoteContent) error); ok {
		r1 = rf(ctx, principal, ancestors, content)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateDeliveryNote is a helper method to define mock.On call
func (_e *MockDeliveryNoteUsecase_Expecter) CreateDeliveryNote(ctx any, principal any, ancestors any, content any) *mock.Call {
	return _e.mock.On("CreateDeliveryNote", ctx, principal, ancestors, content)
}

func (_m *MockDeliveryNoteUsecase) GetDeliveryNoteByID(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors, noteID uint64) (*entity.DeliveryNote, error) {
	ret := _m.Called(ctx, principal, ancestors, noteID)

	var r0 *entity.DeliveryNote
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, entity.Ancestors, uint64) *entity.DeliveryNote); ok {
		r0 = rf(ctx, principal, ancestors, noteID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.DeliveryNote)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, entity.Ancestors, uint64) error); ok {
		r1 = rf(ctx, principal, ancestors, noteID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetDeliveryNoteByID is a helper method to define mock.On call
func (_e *MockDeliveryNoteUsecase_Expecter) GetDeliveryNoteByID(ctx any, principal any, ancestors any, noteID any) *mock.Call {
	return _e.mock.On("GetDeliveryNoteByID", ctx, principal, ancestors, noteID)
}

func (_m *MockDeliveryNoteUsecase) ListDeliveryNotes(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors) ([]*entity.DeliveryNote, error) {
	ret := _m.Called(ctx, principal, ancestors)

	var r0 []*entity.DeliveryNote
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, entity.Ancestors) []*entity.DeliveryNote); ok {
		r0 = rf(ctx, principal, ancestors)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.DeliveryNote)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, entity.Ancestors) error); ok {
		r1 = rf(ctx, principal, ancestors)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ListDeliveryNotes is a helper method to define mock.On call
func (_e *MockDeliveryNoteUsecase_Expecter) ListDeliveryNotes(ctx any, principal any, ancestors any) *mock.Call {
	return _e.mock.On("ListDeliveryNotes", ctx, principal, ancestors)
}

func (_m *MockDeliveryNoteUsecase) UpdateDeliveryNote(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors, noteID uint64, patch entity.DeliveryNotePatch) (*entity.DeliveryNote, error) {
	ret := _m.Called(ctx, principal, ancestors, noteID, patch)

	var r0 *entity.DeliveryNote
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, entity.Ancestors, uint64, entity.DeliveryNotePatch) *entity.DeliveryNote); ok {
		r0 = rf(ctx, principal, ancestors, noteID, patch)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.DeliveryNote)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, entity.Ancestors, uint64, entity.DeliveryNotePatch) error); ok {
		r1 = rf(ctx, principal, ancestors, noteID, patch)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateDeliveryNote is a helper method to define mock.On call
func (_e *MockDeliveryNoteUsecase_Expecter) UpdateDeliveryNote(ctx any, principal any, ancestors any, noteID any, patch any) *mock.Call {
	return _e.mock.On("UpdateDeliveryNote", ctx, principal, ancestors, noteID, patch)
}

func (_m *MockDeliveryNoteUsecase) SoftDeleteDeliveryNote(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors, noteID uint64) error {
	ret := _m.Called(ctx, principal, ancestors, noteID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, entity.Ancestors, uint64) error); ok {
		r0 = rf(ctx, principal, ancestors, noteID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// SoftDeleteDeliveryNote is a helper method to define mock.On call
func (_e *MockDeliveryNoteUsecase_Expecter) SoftDeleteDeliveryNote(ctx any, principal any, ancestors any, noteID any) *mock.Call {
	return _e.mock.On("SoftDeleteDeliveryNote", ctx, principal, ancestors, noteID)
}

func (_m *MockDeliveryNoteUsecase) HardDeleteDeliveryNote(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors, noteID uint64) error {
	ret := _m.Called(ctx, principal, ancestors, noteID)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, entity.Ancestors, uint64) error); ok {
		r0 = rf(ctx, principal, ancestors, noteID)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// HardDeleteDeliveryNote is a helper method to define mock.On call
func (_e *MockDeliveryNoteUsecase_Expecter) HardDeleteDeliveryNote(ctx any, principal any, ancestors any, noteID any) *mock.Call {
	return _e.mock.On("HardDeleteDeliveryNote", ctx, principal, ancestors, noteID)
}

func (_m *MockDeliveryNoteUsecase) RestoreDeliveryNote(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors, noteID uint64) (*entity.DeliveryNote, error) {
	ret := _m.Called(ctx, principal, ancestors, noteID)

	var r0 *entity.DeliveryNote
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, entity.Ancestors, uint64) *entity.DeliveryNote); ok {
		r0 = rf(ctx, principal, ancestors, noteID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.DeliveryNote)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, entity.Ancestors, uint64) error); ok {
		r1 = rf(ctx, principal, ancestors, noteID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RestoreDeliveryNote is a helper method to define mock.On call
func (_e *MockDeliveryNoteUsecase_Expecter) RestoreDeliveryNote(ctx any, principal any, ancestors any, noteID any) *mock.Call {
	return _e.mock.On("RestoreDeliveryNote", ctx, principal, ancestors, noteID)
}

func (_m *MockDeliveryNoteUsecase) SignDeliveryNote(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors, noteID uint64) (*entity.DeliveryNote, error) {
	ret := _m.Called(ctx, principal, ancestors, noteID)

	var r0 *entity.DeliveryNote
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, entity.Ancestors, uint64) *entity.DeliveryNote); ok {
		r0 = rf(ctx, principal, ancestors, noteID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.DeliveryNote)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, entity.Ancestors, uint64) error); ok {
		r1 = rf(ctx, principal, ancestors, noteID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SignDeliveryNote is a helper method to define mock.On call
func (_e *MockDeliveryNoteUsecase_Expecter) SignDeliveryNote(ctx any, principal any, ancestors any, noteID any) *mock.Call {
	return _e.mock.On("SignDeliveryNote", ctx, principal, ancestors, noteID)
}

func (_m *MockDeliveryNoteUsecase) RenderDeliveryNotePDF(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors, noteID uint64) (*usecase.RenderedDocument, error) {
	ret := _m.Called(ctx, principal, ancestors, noteID)

	var r0 *usecase.RenderedDocument
	if rf, ok := ret.Get(0).(func(context.Context, entity.Principal, entity.Ancestors, uint64) *usecase.RenderedDocument); ok {
		r0 = rf(ctx, principal, ancestors, noteID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*usecase.RenderedDocument)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.Principal, entity.Ancestors, uint64) error); ok {
		r1 = rf(ctx, principal, ancestors, noteID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RenderDeliveryNotePDF is a helper method to define mock.On call
func (_e *MockDeliveryNoteUsecase_Expecter) RenderDeliveryNotePDF(ctx any, principal any, ancestors any, noteID any) *mock.Call {
	return _e.mock.On("RenderDeliveryNotePDF", ctx, principal, ancestors, noteID)
}

func (_m *MockDeliveryNoteUsecase) RegenerateArtifact(ctx context.Context, noteID uint64) (*entity.DeliveryNote, error) {
	ret := _m.Called(ctx, noteID)

	var r0 *entity.DeliveryNote
	if rf, ok := ret.Get(0).(func(context.Context, uint64) *entity.DeliveryNote); ok {
		r0 = rf(ctx, noteID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.DeliveryNote)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uint64) error); ok {
		r1 = rf(ctx, noteID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RegenerateArtifact is a helper method to define mock.On call
func (_e *MockDeliveryNoteUsecase_Expecter) RegenerateArtifact(ctx any, noteID any) *mock.Call {
	return _e.mock.On("RegenerateArtifact", ctx, noteID)
}

// NewMockDeliveryNoteUsecase creates a new instance of MockDeliveryNoteUsecase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockDeliveryNoteUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDeliveryNoteUsecase {
	m := &MockDeliveryNoteUsecase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
