package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ListAudit returns the audit log newest first.
func (h *Handler) ListAudit(c echo.Context) error {
	logs, err := h.librarySvc.ListAudit(c.Request().Context())
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, logs)
}

func (h *Handler) DashboardCounts(c echo.Context) error {
	counts, err := h.librarySvc.DashboardCounts(c.Request().Context())
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, counts)
}

func (h *Handler) SendOverdueNotifications(c echo.Context) error {
	res, err := h.librarySvc.SendOverdueNotifications(c.Request().Context())
	if err != nil {
		return h.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
