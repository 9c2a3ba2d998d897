package activity

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/healthcamp/dashboard/internal/platform/browse"
)

// View lists the log with the newest entry on top.
var View = browse.View{
	Name: "activities",
	Columns: browse.Columns{
		browse.Col("action", "Activity"),
		browse.Col("user", "User"),
		browse.Col("timestamp", "Time"),
		browse.Col("details", "Details").Unsortable(),
	},
	SearchFields: []string{"action", "user", "details"},
	DefaultSort:  "-timestamp",
}

type Handler struct {
	svc    *Service
	limits browse.Limits
}

func NewHandler(svc *Service, limits browse.Limits) *Handler {
	return &Handler{svc: svc, limits: limits}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/activities", h.List)
	api.GET("/activities/recent", h.Recent)
}

func (h *Handler) List(c echo.Context) error {
	records := browse.Records(h.svc.Entries())
	return c.JSON(http.StatusOK, View.Apply(records, h.limits.Query(c), nil))
}

// Recent returns the latest entries for the dashboard feed, five unless
// limit says otherwise.
func (h *Handler) Recent(c echo.Context) error {
	n := 5
	if raw := c.QueryParam("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		n = v
	}
	return c.JSON(http.StatusOK, h.svc.Recent(n))
}
