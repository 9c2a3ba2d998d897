package family

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthcamp/dashboard/internal/platform/auth"
	"github.com/healthcamp/dashboard/internal/platform/browse"
	"github.com/healthcamp/dashboard/internal/platform/form"
)

type Handler struct {
	svc        *Service
	view       browse.View
	expansions *browse.ExpansionRegistry
	limits     browse.Limits
}

func NewHandler(svc *Service, expansions *browse.ExpansionRegistry, limits browse.Limits) *Handler {
	return &Handler{svc: svc, view: NewView(svc), expansions: expansions, limits: limits}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/families", h.List)
	api.GET("/families/statistics", h.Statistics)
	api.GET("/families/:id", h.Get)
	api.POST("/families/:id/expand", h.ToggleExpand)
	api.POST("/families/:id/members", h.AddMember)
}

// List browses the families on the tab named by the status query parameter.
func (h *Handler) List(c echo.Context) error {
	f, ok := ParseFilter(c.QueryParam("status"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "status must be all, needs-attention or a member health status")
	}
	exp := h.expansions.For(auth.SubjectFromContext(c.Request().Context()), h.view.Name)
	records := browse.Records(h.svc.List(f))
	return c.JSON(http.StatusOK, h.view.Apply(records, h.limits.Query(c), exp))
}

func (h *Handler) Get(c echo.Context) error {
	fam, ok := h.svc.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "family not found")
	}
	return c.JSON(http.StatusOK, fam)
}

func (h *Handler) ToggleExpand(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.svc.Get(id); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "family not found")
	}
	exp := h.expansions.For(auth.SubjectFromContext(c.Request().Context()), h.view.Name)
	expanded := exp.Toggle(id)
	return c.JSON(http.StatusOK, map[string]any{"id": id, "expanded": expanded, "expandedIds": exp.Expanded()})
}

func (h *Handler) AddMember(c echo.Context) error {
	var f MemberForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, ok, err := h.svc.AddMember(c.Request().Context(), c.Param("id"), f)
	if err != nil {
		return form.HTTPError(err)
	}
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) Statistics(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Statistics())
}
