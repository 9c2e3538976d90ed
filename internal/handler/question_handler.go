package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"qnaboard/internal/auth"
	"qnaboard/internal/errors"
	"qnaboard/internal/service"
)

// QuestionHandler handles question endpoints.
type QuestionHandler struct {
	questionService service.QuestionService
}

// NewQuestionHandler creates a new question handler.
func NewQuestionHandler(questionService service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// QuestionRequest is the transfer object for creating and updating questions.
type QuestionRequest struct {
	Title    string `json:"title" validate:"required,max=255"`
	Contents string `json:"contents" validate:"required"`
}

// List godoc
// @Summary List questions
// @Description Non-deleted questions in reverse-chronological order.
// @Tags questions
// @Produce json
// @Success 200 {array} model.Question
// @Router /questions [get]
func (h *QuestionHandler) List(c echo.Context) error {
	questions, err := h.questionService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, questions)
}

// Get godoc
// @Summary Get question by id
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} model.Question
// @Failure 404 {object} errors.ErrorResponse
// @Router /questions/{id} [get]
func (h *QuestionHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	question, err := h.questionService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, question)
}

// Create godoc
// @Summary Create a question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body QuestionRequest true "Question payload"
// @Success 201 {object} model.Question
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) Create(c echo.Context) error {
	var req QuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	caller := auth.CallerFrom(c.Request().Context())
	question, err := h.questionService.Create(c.Request().Context(), caller, req.Title, req.Contents)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	c.Response().Header().Set(echo.HeaderLocation, question.ResourceURI())
	return c.JSON(http.StatusCreated, question)
}

// Update godoc
// @Summary Update a question
// @Description Only the author may change title and contents.
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param request body QuestionRequest true "Question payload"
// @Success 200 {object} model.Question
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /questions/{id} [put]
func (h *QuestionHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req QuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	caller := auth.CallerFrom(c.Request().Context())
	question, err := h.questionService.Update(c.Request().Context(), caller, id, req.Title, req.Contents)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, question)
}

// Delete godoc
// @Summary Delete a question
// @Description Permitted only for the author, and only while every remaining answer is the author's own.
// @Tags questions
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /questions/{id} [delete]
func (h *QuestionHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	caller := auth.CallerFrom(c.Request().Context())
	if err := h.questionService.Delete(c.Request().Context(), caller, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
