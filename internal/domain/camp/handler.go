package camp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthcamp/dashboard/internal/platform/browse"
	"github.com/healthcamp/dashboard/internal/platform/confirm"
	"github.com/healthcamp/dashboard/internal/platform/form"
)

type Handler struct {
	svc    *Service
	view   browse.View
	limits browse.Limits
}

func NewHandler(svc *Service, doctors DoctorDirectory, limits browse.Limits) *Handler {
	return &Handler{svc: svc, view: NewView(doctors), limits: limits}
}

// RegisterRoutes mounts the management endpoints on admin and the
// read-only upcoming list on both portals.
func (h *Handler) RegisterRoutes(admin, doctor *echo.Group) {
	admin.GET("/camps", h.List)
	admin.GET("/camps/upcoming", h.Upcoming)
	admin.GET("/camps/stats", h.Stats)
	admin.GET("/camps/:id", h.Get)
	admin.POST("/camps", h.Create)
	admin.PUT("/camps/:id", h.Update)
	admin.PATCH("/camps/:id", h.Update)
	admin.DELETE("/camps/:id", h.Delete)

	doctor.GET("/camps/upcoming", h.Upcoming)
}

func (h *Handler) List(c echo.Context) error {
	records := browse.Records(h.svc.List())
	return c.JSON(http.StatusOK, h.view.Apply(records, h.limits.Query(c), nil))
}

func (h *Handler) Get(c echo.Context) error {
	camp, ok := h.svc.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "camp not found")
	}
	return c.JSON(http.StatusOK, camp)
}

func (h *Handler) Create(c echo.Context) error {
	var f Form
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	camp, err := h.svc.Create(c.Request().Context(), f)
	if err != nil {
		return form.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, camp)
}

func (h *Handler) Update(c echo.Context) error {
	var f Form
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	camp, ok, err := h.svc.Update(c.Request().Context(), c.Param("id"), f)
	if err != nil {
		return form.HTTPError(err)
	}
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, camp)
}

func (h *Handler) Delete(c echo.Context) error {
	p, ok := h.svc.RequestDelete(c.Request().Context(), c.Param("id"))
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return confirm.Accepted(c, p)
}

func (h *Handler) Upcoming(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Upcoming())
}

func (h *Handler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Stats())
}
