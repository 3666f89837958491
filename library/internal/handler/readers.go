package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/turnthepage/library-service/library/internal/model"
)

func (h *Handler) ListReaders(c echo.Context) error {
	readers, err := h.librarySvc.ListReaders(c.Request().Context(), model.ReaderFilter{})
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, readers)
}

func (h *Handler) FilterReaders(c echo.Context) error {
	var filter model.ReaderFilter
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &filter); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed query")
	}
	readers, err := h.librarySvc.ListReaders(c.Request().Context(), filter)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, readers)
}

func (h *Handler) CreateReader(c echo.Context) error {
	var req model.CreateReaderRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	reader, err := h.librarySvc.CreateReader(c.Request().Context(), req, actor(c))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, model.ReaderResponse{Message: "Reader added", Reader: reader})
}

func (h *Handler) UpdateReader(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.UpdateReaderRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	reader, err := h.librarySvc.UpdateReader(c.Request().Context(), id, req, actor(c))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, model.ReaderResponse{Message: "Reader updated", Reader: reader})
}

func (h *Handler) DeleteReader(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	reader, err := h.librarySvc.DeactivateReader(c.Request().Context(), id, actor(c))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, model.ReaderResponse{Message: "Reader soft deleted", Reader: reader})
}
