package confirm

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	registry *Registry
}

func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/confirmations/:token", h.Get)
	api.POST("/confirmations/:token", h.Resolve)
}

type resolveRequest struct {
	Decision string `json:"decision"`
}

type resolveResponse struct {
	Token   string  `json:"token"`
	Outcome Outcome `json:"outcome"`
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.registry.Lookup(c.Request().Context(), c.Param("token"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Resolve(c echo.Context) error {
	var req resolveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d, err := ParseDecision(req.Decision)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token := c.Param("token")
	outcome, err := h.registry.Resolve(c.Request().Context(), token, d)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, resolveResponse{Token: token, Outcome: outcome})
}

func httpError(err error) error {
	switch {
	case errors.Is(err, ErrUnknownToken):
		return echo.NewHTTPError(http.StatusGone, err.Error())
	case errors.Is(err, ErrNotOwner):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// Accepted answers a request whose effect now waits on p.
func Accepted(c echo.Context, p Prompt) error {
	return c.JSON(http.StatusAccepted, p)
}
