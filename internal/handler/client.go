package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/strokerox/agenciaHG/internal/repository"
)

// ClientHandler exposes CRUD on the clientes directory. Deleting a client
// that still has boletos on file is forbidden; the FK constraint enforces
// it and this handler answers 409.
type ClientHandler struct {
	Clients *repository.ClientRepo
}

func NewClientHandler(clients *repository.ClientRepo) *ClientHandler {
	if clients == nil {
		panic("nil repository passed to NewClientHandler")
	}
	return &ClientHandler{Clients: clients}
}

type clientReq struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

// List handles GET /clients, ordered by first name for the sale form's
// passenger selector.
func (h *ClientHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	clients, err := h.Clients.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load clients"})
	}
	return c.JSON(http.StatusOK, clients)
}

// Get handles GET /clients/:id.
func (h *ClientHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid client id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	client, err := h.Clients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load client"})
	}
	return c.JSON(http.StatusOK, client)
}

// Create handles POST /clients.
func (h *ClientHandler) Create(c echo.Context) error {
	var req clientReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Nombre = strings.TrimSpace(req.Nombre)
	req.Apellido = strings.TrimSpace(req.Apellido)
	if req.Nombre == "" || req.Apellido == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nombre and apellido are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Clients.Create(ctx, req.Nombre, req.Apellido)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create client"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"msg":        "client created",
		"id_cliente": id,
	})
}

// Update handles PUT /clients/:id.
func (h *ClientHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid client id"})
	}
	var req clientReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Nombre = strings.TrimSpace(req.Nombre)
	req.Apellido = strings.TrimSpace(req.Apellido)
	if req.Nombre == "" || req.Apellido == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nombre and apellido are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Clients.Update(ctx, id, req.Nombre, req.Apellido); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update client"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "client updated"})
}

// Delete handles DELETE /clients/:id.
func (h *ClientHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid client id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Clients.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "client not found"})
		}
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "client has sales on file and cannot be deleted"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete client"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "client deleted"})
}
