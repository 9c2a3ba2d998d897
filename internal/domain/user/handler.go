package user

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthcamp/dashboard/internal/platform/auth"
	"github.com/healthcamp/dashboard/internal/platform/browse"
	"github.com/healthcamp/dashboard/internal/platform/confirm"
	"github.com/healthcamp/dashboard/internal/platform/csvio"
	"github.com/healthcamp/dashboard/internal/platform/form"
)

type Handler struct {
	svc        *Service
	history    HealthHistory
	view       browse.View
	expansions *browse.ExpansionRegistry
	limits     browse.Limits
}

func NewHandler(svc *Service, history HealthHistory, expansions *browse.ExpansionRegistry, limits browse.Limits) *Handler {
	return &Handler{
		svc:        svc,
		history:    history,
		view:       NewView(history),
		expansions: expansions,
		limits:     limits,
	}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/users", h.List)
	api.GET("/users/stats", h.Stats)
	api.GET("/users/export", h.Export)
	api.GET("/users/:id", h.Get)
	api.POST("/users", h.Create)
	api.POST("/users/import", h.Import)
	api.PUT("/users/:id", h.Update)
	api.PATCH("/users/:id", h.Update)
	api.DELETE("/users/:id", h.Delete)
	api.POST("/users/:id/expand", h.ToggleExpand)
}

// List renders the users table. Rows the caller has expanded carry their
// health timeline.
func (h *Handler) List(c echo.Context) error {
	exp := h.expansions.For(auth.SubjectFromContext(c.Request().Context()), h.view.Name)
	records := browse.Records(h.svc.List())
	return c.JSON(http.StatusOK, h.view.Apply(records, h.limits.Query(c), exp))
}

type expandResponse struct {
	ID       string `json:"id"`
	Expanded bool   `json:"expanded"`
	// ExpandedIDs is every row the caller has open in this view.
	ExpandedIDs []string `json:"expandedIds"`
}

// ToggleExpand flips whether the caller sees the detail of a user row. The
// state survives searching, sorting and paging.
func (h *Handler) ToggleExpand(c echo.Context) error {
	id := c.Param("id")
	if _, ok := h.svc.Get(id); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	exp := h.expansions.For(auth.SubjectFromContext(c.Request().Context()), h.view.Name)
	expanded := exp.Toggle(id)
	return c.JSON(http.StatusOK, expandResponse{ID: id, Expanded: expanded, ExpandedIDs: exp.Expanded()})
}

func (h *Handler) Get(c echo.Context) error {
	u, ok := h.svc.Get(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return c.JSON(http.StatusOK, u)
}

func (h *Handler) Create(c echo.Context) error {
	var f Form
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	u, err := h.svc.Create(c.Request().Context(), f)
	if err != nil {
		return form.HTTPError(err)
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *Handler) Update(c echo.Context) error {
	var f Form
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	u, ok, err := h.svc.Update(c.Request().Context(), c.Param("id"), f)
	if err != nil {
		return form.HTTPError(err)
	}
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, u)
}

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

// Import creates employees from an uploaded CSV laid out like the export.
func (h *Handler) Import(c echo.Context) error {
	rows, err := csvio.Decode[ImportRow](c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, h.svc.Import(c.Request().Context(), rows))
}

// Export downloads every employee as CSV.
func (h *Handler) Export(c echo.Context) error {
	users := h.svc.List()
	rows := make([]CSVRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, CSVRow{
			EmployeeID:  u.EmployeeID,
			Name:        u.Name,
			Email:       u.Email,
			Phone:       u.Phone,
			Department:  u.Department,
			Role:        string(u.Role),
			JoiningDate: u.JoiningDate,
			Records:     len(h.history.ForUser(u.ID)),
		})
	}
	return csvio.Attachment(c, "users.csv", rows)
}
