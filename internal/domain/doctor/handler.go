package doctor

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

func NewHandler(svc *Service, camps CampDirectory, limits browse.Limits) *Handler {
	return &Handler{svc: svc, view: NewView(camps), limits: limits}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/doctors", h.List)
	api.GET("/doctors/stats", h.Stats)
	api.GET("/doctors/specialties", h.ListSpecialties)
	api.GET("/doctors/:id", h.Get)
	api.POST("/doctors", h.Create)
	api.PUT("/doctors/:id", h.Update)
	api.PATCH("/doctors/:id", h.Update)
	api.DELETE("/doctors/:id", h.Delete)
}

func (h *Handler) List(c echo.Context) error {
	records := browse.Records(h.svc.List())
	return c.JSON(http.StatusOK, h.view.Apply(records, h.limits.Query(c), nil))
}

func (h *Handler) Get(c echo.Context) error {
	d, ok := h.svc.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) Create(c echo.Context) error {
	var f Form
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d, err := h.svc.Create(c.Request().Context(), f)
	if err != nil {
		return form.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *Handler) Update(c echo.Context) error {
	var f Form
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d, ok, err := h.svc.Update(c.Request().Context(), c.Param("id"), f)
	if err != nil {
		return form.HTTPError(err)
	}
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, d)
}

// Delete asks for confirmation; the doctor is removed only once the prompt
// is confirmed.
func (h *Handler) Delete(c echo.Context) error {
	p, ok := h.svc.RequestDelete(c.Request().Context(), c.Param("id"))
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return confirm.Accepted(c, p)
}

func (h *Handler) Stats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Stats())
}

func (h *Handler) ListSpecialties(c echo.Context) error {
	return c.JSON(http.StatusOK, Specialties)
}
