package handler

import (
	"log/slog"
	"net/http"

	"dnotes/internal/delivery/api/response"
	"dnotes/internal/domain/entity"
	"dnotes/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ClientHandlerParams holds dependencies for ClientHandler, injected by Fx.
type ClientHandlerParams struct {
	fx.In

	ClientUC usecase.ClientUsecase
	Logger   *slog.Logger
}

// ClientHandler serves /api/clients.
type ClientHandler struct {
	clientUC usecase.ClientUsecase
	logger   *slog.Logger
}

// NewClientHandler is the constructor for ClientHandler
func NewClientHandler(params ClientHandlerParams) *ClientHandler {
	return &ClientHandler{
		clientUC: params.ClientUC,
		logger:   params.Logger,
	}
}

type CreateClientRequest struct {
	Name    string `json:"name" validate:"required"`
	CIF     string `json:"cif" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// UpdateClientRequest leaves absent fields untouched.
type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

func (h *ClientHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req CreateClientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	client, err := h.clientUC.CreateClient(c.Request().Context(), p, usecase.CreateClientInput{
		Name:    req.Name,
		CIF:     req.CIF,
		Address: req.Address,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toClientView(client))
}

func (h *ClientHandler) List(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	clients, err := h.clientUC.ListClients(c.Request().Context(), p)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, mapViews(clients, toClientView))
}

func (h *ClientHandler) Get(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	clientID, err := pathID(c, "clientId")
	if err != nil {
		return err
	}

	client, err := h.clientUC.GetClientByID(c.Request().Context(), p, clientID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toClientView(client))
}

func (h *ClientHandler) Update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	clientID, err := pathID(c, "clientId")
	if err != nil {
		return err
	}

	var req UpdateClientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	client, err := h.clientUC.UpdateClient(c.Request().Context(), p, clientID, entity.ClientPatch{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toClientView(client))
}

func (h *ClientHandler) Delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	clientID, err := pathID(c, "clientId")
	if err != nil {
		return err
	}
	soft, err := softDelete(c)
	if err != nil {
		return err
	}

	if soft {
		err = h.clientUC.SoftDeleteClient(c.Request().Context(), p, clientID)
	} else {
		err = h.clientUC.HardDeleteClient(c.Request().Context(), p, clientID)
	}
	if err != nil {
		return err
	}

	return response.NoContent(c)
}

func (h *ClientHandler) Restore(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	clientID, err := pathID(c, "clientId")
	if err != nil {
		return err
	}

	client, err := h.clientUC.RestoreClient(c.Request().Context(), p, clientID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toClientView(client))
}
