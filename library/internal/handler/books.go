package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/turnthepage/library-service/library/internal/model"
	"github.com/turnthepage/library-service/pkg/storage"
)

func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.librarySvc.ListBooks(c.Request().Context(), model.BookFilter{})
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) FilterBooks(c echo.Context) error {
	var filter model.BookFilter
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &filter); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed query")
	}
	books, err := h.librarySvc.ListBooks(c.Request().Context(), filter)
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) CreateBook(c echo.Context) error {
	var req model.CreateBookRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	book, err := h.librarySvc.CreateBook(c.Request().Context(), req, actor(c))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, model.BookResponse{Message: "Book added", Book: book})
}

func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req model.UpdateBookRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	book, err := h.librarySvc.UpdateBook(c.Request().Context(), id, req, actor(c))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, model.BookResponse{Message: "Book updated", Book: book})
}

func (h *Handler) DeleteBook(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	book, err := h.librarySvc.DeleteBook(c.Request().Context(), id, actor(c))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, model.BookResponse{Message: "Book soft deleted", Book: book})
}

// UploadCover takes a multipart "cover" file.
func (h *Handler) UploadCover(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	fh, err := c.FormFile("cover")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cover file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cover file is unreadable")
	}
	defer f.Close()
	body, err := io.ReadAll(io.LimitReader(f, storage.MaxCoverSize+1))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cover file is unreadable")
	}

	book, err := h.librarySvc.UploadCover(c.Request().Context(), id, body, actor(c))
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, model.BookResponse{Message: "Book cover updated", Book: book})
}
