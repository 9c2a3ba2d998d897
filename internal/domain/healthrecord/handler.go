package healthrecord

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthcamp/dashboard/internal/platform/browse"
	"github.com/healthcamp/dashboard/internal/platform/confirm"
	"github.com/healthcamp/dashboard/internal/platform/form"
	"github.com/healthcamp/dashboard/pkg/pagination"
)

type Handler struct {
	svc    *Service
	view   browse.View
	limits browse.Limits
}

func NewHandler(svc *Service, camps CampDirectory, limits browse.Limits) *Handler {
	return &Handler{svc: svc, view: NewView(svc.users, camps), limits: limits}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/health-records", h.List)
	api.GET("/health-records/overview", h.Overview)
	api.GET("/health-records/:id", h.Get)
	api.POST("/health-records", h.Create)
	api.PUT("/health-records/:id", h.Update)
	api.PATCH("/health-records/:id", h.Update)
	api.DELETE("/health-records/:id", h.Delete)
	api.GET("/users/:id/health-records", h.ListForUser)
}

func (h *Handler) List(c echo.Context) error {
	records := browse.Records(h.svc.List())
	return c.JSON(http.StatusOK, h.view.Apply(records, h.limits.Query(c), nil))
}

// ListForUser pages through the timeline of one user, newest first.
func (h *Handler) ListForUser(c echo.Context) error {
	p := pagination.FromContextWithLimits(c, h.limits.DefaultSize, h.limits.MaxSize)
	page := pagination.Paginate(h.svc.ForUser(c.Param("id")), p.PageSize, p.Page)
	return c.JSON(http.StatusOK, pagination.NewResponse(page).WithLinks(c.Request().URL.Path))
}

func (h *Handler) Get(c echo.Context) error {
	r, ok := h.svc.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "health record not found")
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) Create(c echo.Context) error {
	var f Form
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	r, err := h.svc.Create(c.Request().Context(), f)
	if err != nil {
		return form.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *Handler) Update(c echo.Context) error {
	var f Form
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	r, ok, err := h.svc.Update(c.Request().Context(), c.Param("id"), f)
	if err != nil {
		return form.HTTPError(err)
	}
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *Handler) Delete(c echo.Context) error {
	p, ok := h.svc.RequestDelete(c.Request().Context(), c.Param("id"))
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return confirm.Accepted(c, p)
}

func (h *Handler) Overview(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Overview())
}
