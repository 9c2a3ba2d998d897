package patient

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthcamp/dashboard/internal/platform/browse"
)

// Handler serves the read-only patient list of the doctor portal.
type Handler struct {
	svc    *Service
	limits browse.Limits
}

func NewHandler(svc *Service, limits browse.Limits) *Handler {
	return &Handler{svc: svc, limits: limits}
}

func (h *Handler) RegisterRoutes(doctor *echo.Group) {
	doctor.GET("/patients", h.List)
	doctor.GET("/patients/summary", h.Summary)
	doctor.GET("/patients/:id", h.Get)
}

func (h *Handler) List(c echo.Context) error {
	records := browse.Records(h.svc.List())
	return c.JSON(http.StatusOK, View.Apply(records, h.limits.Query(c), nil))
}

func (h *Handler) Get(c echo.Context) error {
	p, ok := h.svc.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Summary(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Summary())
}
