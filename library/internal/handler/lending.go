package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/turnthepage/library-service/library/internal/model"
)

// Lend godoc
// @Summary Lend a book to a reader
// @Tags lendings
// @Accept json
// @Produce json
// @Param request body model.LendRequest true "member id, isbn and optional due date"
// @Success 201 {object} model.LendingResponse
// @Failure 400,404,409 {object} errs.ErrorResponse
// @Router /api/v1/lendings [post]
func (h *Handler) Lend(c echo.Context) error {
	var req model.LendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	lending, err := h.librarySvc.Lend(c.Request().Context(), req, actor(c))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, model.LendingResponse{
		Message: "Book lent successfully",
		Lending: lending,
	})
}

// History godoc
// @Summary Lending history by book or reader
// @Tags lendings
// @Produce json
// @Param bookId query string false "book id"
// @Param readerId query string false "reader id"
// @Success 200 {array} model.LendingDetails
// @Router /api/v1/lendings [get]
func (h *Handler) History(c echo.Context) error {
	var filter model.LendingFilter
	for param, dst := range map[string]**uuid.UUID{
		"bookId":   &filter.BookID,
		"readerId": &filter.ReaderID,
	} {
		if v := c.QueryParam(param); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, param+" must be a uuid")
			}
			*dst = &id
		}
	}
	items, err := h.librarySvc.History(c.Request().Context(), filter)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// Return godoc
// @Summary Mark a lending as returned
// @Tags lendings
// @Produce json
// @Param id path string true "lending id"
// @Success 200 {object} model.ReturnResponse
// @Failure 404,409 {object} errs.ErrorResponse "409 when the lending is already returned"
// @Router /api/v1/lendings/{id}/return [put]
func (h *Handler) Return(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	lending, err := h.librarySvc.ReturnBook(c.Request().Context(), id, actor(c))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, model.ReturnResponse{
		Message: "Book returned successfully",
		Lending: lending,
	})
}

// Overdue godoc
// @Summary Overdue lendings
// @Tags lendings
// @Produce json
// @Success 200 {array} model.LendingDetails
// @Router /api/v1/lendings/overdue [get]
func (h *Handler) Overdue(c echo.Context) error {
	items, err := h.librarySvc.Overdue(c.Request().Context())
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// OverduePayments godoc
// @Summary Fines accrued on overdue lendings
// @Tags lendings
// @Produce json
// @Success 200 {array} model.OverdueFine
// @Router /api/v1/lendings/overdue-payments [get]
func (h *Handler) OverduePayments(c echo.Context) error {
	fines, err := h.librarySvc.OverdueFines(c.Request().Context())
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, fines)
}
