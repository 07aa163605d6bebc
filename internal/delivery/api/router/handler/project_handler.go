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

// ProjectHandlerParams holds dependencies for ProjectHandler, injected by Fx.
type ProjectHandlerParams struct {
	fx.In

	ProjectUC usecase.ProjectUsecase
	Logger    *slog.Logger
}

// ProjectHandler serves projects nested under a client.
type ProjectHandler struct {
	projectUC usecase.ProjectUsecase
	logger    *slog.Logger
}

// NewProjectHandler is the constructor for ProjectHandler
func NewProjectHandler(params ProjectHandlerParams) *ProjectHandler {
	return &ProjectHandler{
		projectUC: params.ProjectUC,
		logger:    params.Logger,
	}
}

type CreateProjectRequest struct {
	ProjectCode string `json:"project_code" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Address     string `json:"address" validate:"required"`
}

type UpdateProjectRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

func (h *ProjectHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	clientID, err := pathID(c, "clientId")
	if err != nil {
		return err
	}

	var req CreateProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	project, err := h.projectUC.CreateProject(c.Request().Context(), p, usecase.CreateProjectInput{
		ClientID:    clientID,
		ProjectCode: req.ProjectCode,
		Name:        req.Name,
		Email:       req.Email,
		Address:     req.Address,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toProjectView(project))
}

func (h *ProjectHandler) List(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	clientID, err := pathID(c, "clientId")
	if err != nil {
		return err
	}

	projects, err := h.projectUC.ListProjects(c.Request().Context(), p, clientID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, mapViews(projects, toProjectView))
}

func (h *ProjectHandler) Get(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	ids, err := ancestors(c)
	if err != nil {
		return err
	}

	project, err := h.projectUC.GetProjectByID(c.Request().Context(), p, ids.ClientID, ids.ProjectID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toProjectView(project))
}

func (h *ProjectHandler) Update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	ids, err := ancestors(c)
	if err != nil {
		return err
	}

	var req UpdateProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	project, err := h.projectUC.UpdateProject(c.Request().Context(), p, ids.ClientID, ids.ProjectID, entity.ProjectPatch{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toProjectView(project))
}

func (h *ProjectHandler) Delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	ids, err := ancestors(c)
	if err != nil {
		return err
	}
	soft, err := softDelete(c)
	if err != nil {
		return err
	}

	if soft {
		err = h.projectUC.SoftDeleteProject(c.Request().Context(), p, ids.ClientID, ids.ProjectID)
	} else {
		err = h.projectUC.HardDeleteProject(c.Request().Context(), p, ids.ClientID, ids.ProjectID)
	}
	if err != nil {
		return err
	}

	return response.NoContent(c)
}

func (h *ProjectHandler) Restore(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	ids, err := ancestors(c)
	if err != nil {
		return err
	}

	project, err := h.projectUC.RestoreProject(c.Request().Context(), p, ids.ClientID, ids.ProjectID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toProjectView(project))
}
