package scheme

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthcamp/dashboard/internal/platform/browse"
	"github.com/healthcamp/dashboard/internal/platform/confirm"
)

type Handler struct {
	svc    *Service
	limits browse.Limits
}

func NewHandler(svc *Service, limits browse.Limits) *Handler {
	return &Handler{svc: svc, limits: limits}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/schemes", h.List)
	api.GET("/schemes/summary", h.Summary)
	api.GET("/schemes/:id", h.Get)
	api.POST("/schemes/:id/approve", h.Approve)
	api.POST("/schemes/:id/reject", h.Reject)
}

// List browses the applications of one tab, selected by the status query
// parameter.
func (h *Handler) List(c echo.Context) error {
	status, ok := ParseStatus(c.QueryParam("status"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "status must be one of: all, pending, approved, rejected")
	}
	records := browse.Records(h.svc.List(status))
	return c.JSON(http.StatusOK, View.Apply(records, h.limits.Query(c), nil))
}

func (h *Handler) Get(c echo.Context) error {
	a, ok := h.svc.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "scheme application not found")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Approve(c echo.Context) error {
	return h.review(c, DecisionApprove)
}

func (h *Handler) Reject(c echo.Context) error {
	return h.review(c, DecisionReject)
}

func (h *Handler) review(c echo.Context, d Decision) error {
	p, ok, err := h.svc.RequestReview(c.Request().Context(), c.Param("id"), d)
	switch {
	case errors.Is(err, ErrNotPending):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	case !ok:
		return c.NoContent(http.StatusNoContent)
	}
	return confirm.Accepted(c, p)
}

func (h *Handler) Summary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Summary())
}
