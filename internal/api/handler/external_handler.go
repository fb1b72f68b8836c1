package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bankcore/bank-client-api/internal/api/metrics"
	"github.com/bankcore/bank-client-api/internal/core/domain"
	"github.com/bankcore/bank-client-api/internal/core/ports"
)

// ExternalUserHandler proxies read requests to the third-party user directory.
type ExternalUserHandler struct {
	service ports.ExternalUserService
}

func NewExternalUserHandler(service ports.ExternalUserService) *ExternalUserHandler {
	return &ExternalUserHandler{service: service}
}

// List handles GET /api/external-users.
//
// @Summary      List users from the external directory
// @Tags         external-users
// @Produce      json
// @Success      200  {array}   externalUserResponse
// @Failure      502  {object}  errorResponse
// @Router       /api/external-users [get]
func (h *ExternalUserHandler) List(c echo.Context) error {
	start := time.Now()
	users, err := h.service.ListExternalUsers(c.Request().Context())
	metrics.ExternalRequestDuration.WithLabelValues("list").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ExternalRequestsTotal.WithLabelValues("list", "error").Inc()
		if errors.Is(err, domain.ErrUpstreamUnavailable) {
			return c.JSON(http.StatusBadGateway, errorResponse{Error: "external directory unavailable"})
		}
		return err
	}

	metrics.ExternalRequestsTotal.WithLabelValues("list", "ok").Inc()
	return c.JSON(http.StatusOK, toExternalUserResponses(users))
}

// Get handles GET /api/external-users/:id. An upstream not-found yields 404;
// a directory failure yields 502 with a generic message — the underlying
// cause stays in the logs.
//
// @Summary      Get a user from the external directory
// @Tags         external-users
// @Produce      json
// @Param        id   path      int  true  "External user ID"
// @Success      200  {object}  externalUserResponse
// @Failure      404  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /api/external-users/{id} [get]
func (h *ExternalUserHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	start := time.Now()
	user, err := h.service.GetExternalUser(c.Request().Context(), id)
	metrics.ExternalRequestDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, domain.ErrExternalUserNotFound) {
			metrics.ExternalRequestsTotal.WithLabelValues("get", "not_found").Inc()
			return c.JSON(http.StatusNotFound, errorResponse{Error: "user not found in external directory"})
		}
		metrics.ExternalRequestsTotal.WithLabelValues("get", "error").Inc()
		if errors.Is(err, domain.ErrUpstreamUnavailable) {
			return c.JSON(http.StatusBadGateway, errorResponse{Error: "external directory unavailable"})
		}
		return err
	}

	metrics.ExternalRequestsTotal.WithLabelValues("get", "ok").Inc()
	return c.JSON(http.StatusOK, toExternalUserResponse(*user))
}
