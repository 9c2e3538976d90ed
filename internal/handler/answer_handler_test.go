package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"qnaboard/internal/errors"
	"qnaboard/internal/model"
)

// MockAnswerService is a mock implementation of service.AnswerService.
type MockAnswerService struct {
	mock.Mock
}

func (m *MockAnswerService) Create(ctx context.Context, caller *model.User, questionID uint, contents string) (*model.Answer, error) {
	args := m.Called(ctx, caller, questionID, contents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Answer), args.Error(1)
}

func (m *MockAnswerService) Get(ctx context.Context, id uint) (*model.Answer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Answer), args.Error(1)
}

func (m *MockAnswerService) Update(ctx context.Context, caller *model.User, id uint, contents string) (*model.Answer, error) {
	args := m.Called(ctx, caller, id, contents)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Answer), args.Error(1)
}

func (m *MockAnswerService) Delete(ctx context.Context, caller *model.User, id uint) error {
	args := m.Called(ctx, caller, id)
	return args.Error(0)
}

func TestAnswerHandler_Create(t *testing.T) {
	t.Run("authenticated create returns 201 with Location", func(t *testing.T) {
		mockSvc := new(MockAnswerService)
		mockSvc.On("Create", mock.Anything, caller, uint(42), "answer").
			Return(&model.Answer{ID: 7, Contents: "answer", AuthorID: caller.ID, QuestionID: 42}, nil)

		h := NewAnswerHandler(mockSvc)
		c, rec := newTestContext(t, http.MethodPost, "/api/questions/42/answers", `{"contents":"answer"}`, caller)
		c.SetParamNames("id")
		c.SetParamValues("42")

		err := h.Create(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/api/answers/7", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("answering a missing question returns 404", func(t *testing.T) {
		mockSvc := new(MockAnswerService)
		mockSvc.On("Create", mock.Anything, caller, uint(99), "answer").
			Return(nil, errors.ErrQuestionNotFound)

		h := NewAnswerHandler(mockSvc)
		c, _ := newTestContext(t, http.MethodPost, "/api/questions/99/answers", `{"contents":"answer"}`, caller)
		c.SetParamNames("id")
		c.SetParamValues("99")

		err := h.Create(c)

		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})

	t.Run("anonymous create returns 403", func(t *testing.T) {
		mockSvc := new(MockAnswerService)
		mockSvc.On("Create", mock.Anything, (*model.User)(nil), uint(42), "answer").
			Return(nil, errors.ErrAuthRequired)

		h := NewAnswerHandler(mockSvc)
		c, _ := newTestContext(t, http.MethodPost, "/api/questions/42/answers", `{"contents":"answer"}`, nil)
		c.SetParamNames("id")
		c.SetParamValues("42")

		err := h.Create(c)

		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})
}

func TestAnswerHandler_Delete(t *testing.T) {
	t.Run("owner delete returns 204", func(t *testing.T) {
		mockSvc := new(MockAnswerService)
		mockSvc.On("Delete", mock.Anything, caller, uint(7)).Return(nil)

		h := NewAnswerHandler(mockSvc)
		c, rec := newTestContext(t, http.MethodDelete, "/api/answers/7", "", caller)
		c.SetParamNames("id")
		c.SetParamValues("7")

		err := h.Delete(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("foreign answer delete returns 403", func(t *testing.T) {
		mockSvc := new(MockAnswerService)
		mockSvc.On("Delete", mock.Anything, caller, uint(7)).Return(errors.ErrForbiddenOwnership)

		h := NewAnswerHandler(mockSvc)
		c, _ := newTestContext(t, http.MethodDelete, "/api/answers/7", "", caller)
		c.SetParamNames("id")
		c.SetParamValues("7")

		err := h.Delete(c)

		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})
}
