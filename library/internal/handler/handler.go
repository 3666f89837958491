package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/turnthepage/library-service/library/internal/errs"
	"github.com/turnthepage/library-service/pkg/auth"
	md "github.com/turnthepage/library-service/pkg/middleware"
	"github.com/turnthepage/library-service/pkg/validate"
	_ "github.com/turnthepage/library-service/swagger"
	"go.uber.org/zap"
)

type Handler struct {
	librarySvc LibraryService
	secret     string
	log        *zap.Logger
}

func New(librarySvc LibraryService, secret string, log *zap.Logger) *Handler {
	return &Handler{
		librarySvc: librarySvc,
		secret:     secret,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.GET("/books", h.ListBooks)
	api.GET("/books/filter", h.FilterBooks)

	api = api.Group("", md.JwtAuthentication(h.secret))

	desk := md.RequireRoles(auth.RoleStaff, auth.RoleLibrarian)
	catalog := md.RequireRoles(auth.RoleAdmin, auth.RoleLibrarian)
	members := md.RequireRoles(auth.RoleStaff, auth.RoleLibrarian, auth.RoleAdmin)

	api.POST("/lendings", h.Lend, desk)
	api.GET("/lendings", h.History, desk)
	api.PUT("/lendings/:id/return", h.Return, desk)
	api.GET("/lendings/overdue", h.Overdue, desk)
	api.GET("/lendings/overdue-payments", h.OverduePayments)

	api.POST("/books", h.CreateBook, catalog)
	api.PUT("/books/:id", h.UpdateBook, catalog)
	api.DELETE("/books/:id", h.DeleteBook, catalog)
	api.PUT("/books/:id/cover", h.UploadCover, catalog)

	api.GET("/readers", h.ListReaders, members)
	api.GET("/readers/filter", h.FilterReaders, members)
	api.POST("/readers", h.CreateReader, members)
	api.PUT("/readers/:id", h.UpdateReader, members)
	api.DELETE("/readers/:id", h.DeleteReader, members)

	api.GET("/audit-logs", h.ListAudit, catalog)
	api.GET("/dashboard/counts", h.DashboardCounts)
	api.POST("/notifications/send-overdue-notifications", h.SendOverdueNotifications, desk)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// actor is the display name recorded as createdBy/updatedBy and in audit entries.
func actor(c echo.Context) string {
	id, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return "unknown"
	}
	if id.Name != "" {
		return id.Name
	}
	return id.UserID
}

func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "id must be a uuid")
	}
	return id, nil
}

func (h *Handler) bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// errorResponse maps the error kinds onto HTTP statuses; anything unclassified is a 500.
func (h *Handler) errorResponse(c echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrInvalidRequest):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	default:
		h.log.Error("request failed",
			zap.String("path", c.Path()),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	msg := err.Error()
	var e *errs.Error
	if errors.As(err, &e) {
		msg = e.Error()
	}
	return echo.NewHTTPError(code, msg)
}
