package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bankcore/bank-client-api/internal/api/metrics"
	"github.com/bankcore/bank-client-api/internal/core/domain"
	"github.com/bankcore/bank-client-api/internal/core/ports"
)

// ClientHandler handles HTTP requests for client directory operations.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /api/clients.
//
// @Summary      List active clients
// @Tags         clients
// @Produce      json
// @Success      200  {array}   clientResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	views, err := h.service.ListClients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponses(views))
}

// Get handles GET /api/clients/:id. Soft-deleted clients are still returned
// here, with is_active=false.
//
// @Summary      Get a client by id
// @Tags         clients
// @Produce      json
// @Param        id   path      int  true  "Client ID"
// @Success      200  {object}  clientResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	id, err := clientID(c)
	if err != nil {
		return err
	}

	view, err := h.service.GetClient(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "client not found"})
		}
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(*view))
}

// Create handles POST /api/clients.
//
// @Summary      Create a new client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  clientResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	view, err := h.service.CreateClient(c.Request().Context(), toCreateInput(req))
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return c.JSON(http.StatusConflict, errorResponse{Error: "email already registered"})
		}
		return err
	}

	metrics.ClientsCreatedTotal.WithLabelValues(view.AccountType).Inc()
	return c.JSON(http.StatusCreated, toClientResponse(*view))
}

// Update handles PUT /api/clients/:id — a partial update: fields absent from
// the body keep their stored values.
//
// @Summary      Partially update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Client ID"
// @Param        body  body      updateClientRequest  true  "Fields to change"
// @Success      204   "updated"
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	id, err := clientID(c)
	if err != nil {
		return err
	}

	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.service.UpdateClient(c.Request().Context(), id, toUpdateInput(req)); err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "client not found"})
		}
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return c.JSON(http.StatusConflict, errorResponse{Error: "email already registered"})
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /api/clients/:id — a soft delete: the record stays in
// storage with is_active=false and its email remains reserved.
//
// @Summary      Soft-delete a client
// @Tags         clients
// @Produce      json
// @Param        id   path      int  true  "Client ID"
// @Success      204  "deactivated"
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	id, err := clientID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteClient(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "client not found"})
		}
		return err
	}

	metrics.ClientsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Search handles GET /api/clients/search?term=.
//
// @Summary      Search active clients
// @Tags         clients
// @Produce      json
// @Param        term  query     string  true  "Substring matched against first name, last name, and email"
// @Success      200   {array}   clientResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/clients/search [get]
func (h *ClientHandler) Search(c echo.Context) error {
	term := c.QueryParam("term")

	views, err := h.service.SearchClients(c.Request().Context(), term)
	if err != nil {
		if errors.Is(err, domain.ErrSearchTermRequired) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "search term is required"})
		}
		return err
	}

	metrics.ClientSearchesTotal.Inc()
	return c.JSON(http.StatusOK, toClientResponses(views))
}

// clientID parses the :id path parameter.
func clientID(c echo.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, strconv.IntSize)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid client id")
	}
	return uint(id), nil
}
