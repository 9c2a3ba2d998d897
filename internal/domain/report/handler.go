package report

import (
	"bytes"
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"

	"github.com/healthcamp/dashboard/internal/platform/csvio"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(admin, doctor *echo.Group) {
	admin.GET("/reports/dashboard", h.Dashboard)
	admin.GET("/reports/monthly", h.Monthly)
	admin.GET("/reports/participation", h.Participation)
	admin.GET("/reports/health-trends", h.HealthTrends)
	admin.GET("/reports/:type/export", h.Export)
	doctor.GET("/dashboard", h.DoctorDashboard)
}

func (h *Handler) Dashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Dashboard())
}

func (h *Handler) Monthly(c echo.Context) error {
	p, ok := ParsePeriod(c.QueryParam("period"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "period must be 3months or 6months")
	}
	return c.JSON(http.StatusOK, h.svc.Monthly(p))
}

func (h *Handler) Participation(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Participation())
}

func (h *Handler) HealthTrends(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.HealthTrends())
}

// Export downloads a report as <type>-report.csv.
func (h *Handler) Export(c echo.Context) error {
	t := Type(c.Param("type"))
	if !slices.Contains(Types, t) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown report type")
	}
	var buf bytes.Buffer
	if err := h.svc.Export(&buf, t); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return csvio.Send(c, Filename(t), buf.Bytes())
}

func (h *Handler) DoctorDashboard(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.DoctorDashboard())
}
