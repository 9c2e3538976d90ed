package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"qnaboard/internal/auth"
	"qnaboard/internal/errors"
	"qnaboard/internal/service"
)

// AnswerHandler handles answer endpoints.
type AnswerHandler struct {
	answerService service.AnswerService
}

// NewAnswerHandler creates a new answer handler.
func NewAnswerHandler(answerService service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

// AnswerRequest is the transfer object for creating and updating answers.
type AnswerRequest struct {
	Contents string `json:"contents" validate:"required"`
}

// Create godoc
// @Summary Post an answer to a question
// @Tags answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param request body AnswerRequest true "Answer payload"
// @Success 201 {object} model.Answer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /questions/{id}/answers [post]
func (h *AnswerHandler) Create(c echo.Context) error {
	questionID, err := parseID(c)
	if err != nil {
		return err
	}

	var req AnswerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	caller := auth.CallerFrom(c.Request().Context())
	answer, err := h.answerService.Create(c.Request().Context(), caller, questionID, req.Contents)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	c.Response().Header().Set(echo.HeaderLocation, answer.ResourceURI())
	return c.JSON(http.StatusCreated, answer)
}

// Get godoc
// @Summary Get answer by id
// @Tags answers
// @Produce json
// @Param id path int true "Answer ID"
// @Success 200 {object} model.Answer
// @Failure 404 {object} errors.ErrorResponse
// @Router /answers/{id} [get]
func (h *AnswerHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	answer, err := h.answerService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, answer)
}

// Update godoc
// @Summary Update an answer
// @Description Only the author may change the contents.
// @Tags answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Answer ID"
// @Param request body AnswerRequest true "Answer payload"
// @Success 200 {object} model.Answer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /answers/{id} [put]
func (h *AnswerHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req AnswerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	caller := auth.CallerFrom(c.Request().Context())
	answer, err := h.answerService.Update(c.Request().Context(), caller, id, req.Contents)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, answer)
}

// Delete godoc
// @Summary Delete an answer
// @Tags answers
// @Security BearerAuth
// @Param id path int true "Answer ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /answers/{id} [delete]
func (h *AnswerHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	caller := auth.CallerFrom(c.Request().Context())
	if err := h.answerService.Delete(c.Request().Context(), caller, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
