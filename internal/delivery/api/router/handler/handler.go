// Package handler contains the HTTP handlers of the API.
package handler

import (
	"net/http"
	"strconv"

	"dnotes/internal/delivery/api/response"
	deliverycontext "dnotes/internal/delivery/context"
	"dnotes/internal/domain/entity"
	domainerrors "dnotes/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// principal returns the caller set by the auth middleware.
func principal(c echo.Context) (entity.Principal, error) {
	p, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return entity.Principal{}, domainerrors.NewAuthenticationError(domainerrors.AuthFailureMissing, nil)
	}

	return p, nil
}

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, domainerrors.NewValidationError(name, "must be a positive integer")
	}

	return id, nil
}

// ancestors reads the client and project ids of a nested delivery note path.
func ancestors(c echo.Context) (entity.Ancestors, error) {
	clientID, err := pathID(c, "clientId")
	if err != nil {
		return entity.Ancestors{}, err
	}
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return entity.Ancestors{}, err
	}

	return entity.Ancestors{ClientID: clientID, ProjectID: projectID}, nil
}

// bindAndValidate decodes the request body into req and checks its tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body could not be decoded")
	}

	return c.Validate(req)
}

// softDelete reads the ?soft= flag of a DELETE request. Deletions are soft unless soft=false.
func softDelete(c echo.Context) (bool, error) {
	raw := c.QueryParam("soft")
	if raw == "" {
		return true, nil
	}

	soft, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domainerrors.NewValidationError("soft", "must be true or false")
	}

	return soft, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
