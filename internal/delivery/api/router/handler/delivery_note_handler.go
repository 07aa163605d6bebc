package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"dnotes/internal/delivery/api/response"
	deliverycontext "dnotes/internal/delivery/context"
	"dnotes/internal/domain/entity"
	domainerrors "dnotes/internal/domain/errors"
	"dnotes/internal/errors"
	"dnotes/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeliveryNoteHandlerParams holds dependencies for DeliveryNoteHandler, injected by Fx.
type DeliveryNoteHandlerParams struct {
	fx.In

	DeliveryNoteUC usecase.DeliveryNoteUsecase
	Logger         *slog.Logger
}

// DeliveryNoteHandler serves delivery notes nested under a client and project.
type DeliveryNoteHandler struct {
	noteUC usecase.DeliveryNoteUsecase
	logger *slog.Logger
}

// NewDeliveryNoteHandler is the constructor for DeliveryNoteHandler
func NewDeliveryNoteHandler(params DeliveryNoteHandlerParams) *DeliveryNoteHandler {
	return &DeliveryNoteHandler{
		noteUC: params.DeliveryNoteUC,
		logger: params.Logger,
	}
}

type CreateDeliveryNoteRequest struct {
	Format      string `json:"format" validate:"required"`
	Material    string `json:"material"`
	Hours       int    `json:"hours"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"`
}

type UpdateDeliveryNoteRequest struct {
	Format      *string `json:"format"`
	Material    *string `json:"material"`
	Hours       *int    `json:"hours"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
}

// SignedView is returned when a note was signed but its document is still pending.
type SignedView struct {
	Note             *DeliveryNoteView `json:"note"`
	ArtifactPending  bool              `json:"artifact_pending"`
	ArtifactFailedAt string            `json:"artifact_failed_at,omitempty"`
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if date, err := time.Parse(time.DateOnly, raw); err == nil {
		return date, nil
	}
	date, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, domainerrors.NewValidationError("date", "must be a date in YYYY-MM-DD format")
	}

	return date, nil
}

func (h *DeliveryNoteHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	ids, err := ancestors(c)
	if err != nil {
		return err
	}

	var req CreateDeliveryNoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return err
	}

	note, err := h.noteUC.CreateDeliveryNote(c.Request().Context(), p, ids, entity.DeliveryNoteContent{
		Format:      entity.DeliveryNoteFormat(req.Format),
		Material:    req.Material,
		Hours:       req.Hours,
		Description: req.Description,
		Date:        date,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, toDeliveryNoteView(note))
}

func (h *DeliveryNoteHandler) List(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}
	ids, err := ancestors(c)
	if err != nil {
		return err
	}

	notes, err := h.noteUC.ListDeliveryNotes(c.Request().Context(), p, ids)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, mapViews(notes, toDeliveryNoteView))
}

func (h *DeliveryNoteHandler) Get(c echo.Context) error {
	p, ids, noteID, err := h.target(c)
	if err != nil {
		return err
	}

	note, err := h.noteUC.GetDeliveryNoteByID(c.Request().Context(), p, ids, noteID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toDeliveryNoteView(note))
}

func (h *DeliveryNoteHandler) Update(c echo.Context) error {
	p, ids, noteID, err := h.target(c)
	if err != nil {
		return err
	}

	var req UpdateDeliveryNoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	patch := entity.DeliveryNotePatch{
		Material:    req.Material,
		Hours:       req.Hours,
		Description: req.Description,
	}
	if req.Format != nil {
		format := entity.DeliveryNoteFormat(*req.Format)
		patch.Format = &format
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return err
		}
		patch.Date = &date
	}

	note, err := h.noteUC.UpdateDeliveryNote(c.Request().Context(), p, ids, noteID, patch)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toDeliveryNoteView(note))
}

func (h *DeliveryNoteHandler) Delete(c echo.Context) error {
	p, ids, noteID, err := h.target(c)
	if err != nil {
		return err
	}
	soft, err := softDelete(c)
	if err != nil {
		return err
	}

	if soft {
		err = h.noteUC.SoftDeleteDeliveryNote(c.Request().Context(), p, ids, noteID)
	} else {
		err = h.noteUC.HardDeleteDeliveryNote(c.Request().Context(), p, ids, noteID)
	}
	if err != nil {
		return err
	}

	return response.NoContent(c)
}

func (h *DeliveryNoteHandler) Restore(c echo.Context) error {
	p, ids, noteID, err := h.target(c)
	if err != nil {
		return err
	}

	note, err := h.noteUC.RestoreDeliveryNote(c.Request().Context(), p, ids, noteID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toDeliveryNoteView(note))
}

// Sign answers 202 when the signature is stored but the document is not.
func (h *DeliveryNoteHandler) Sign(c echo.Context) error {
	p, ids, noteID, err := h.target(c)
	if err != nil {
		return err
	}

	note, err := h.noteUC.SignDeliveryNote(c.Request().Context(), p, ids, noteID)
	if err != nil {
		artifactErr, ok := errors.AsType[*domainerrors.ArtifactPersistenceError](err)
		if !ok || note == nil {
			return err
		}

		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
		logger.Warn("Delivery note signed without document",
			slog.Uint64("delivery_note_id", artifactErr.DeliveryNoteID()),
			slog.String("stage", artifactErr.Stage()),
			slog.Any("error", err),
		)

		return response.Success(c, http.StatusAccepted, SignedView{
			Note:             toDeliveryNoteView(note),
			ArtifactPending:  true,
			ArtifactFailedAt: artifactErr.Stage(),
		})
	}

	return response.Success(c, http.StatusOK, SignedView{Note: toDeliveryNoteView(note)})
}

// PDF streams the rendered document as an attachment.
func (h *DeliveryNoteHandler) PDF(c echo.Context) error {
	p, ids, noteID, err := h.target(c)
	if err != nil {
		return err
	}

	doc, err := h.noteUC.RenderDeliveryNotePDF(c.Request().Context(), p, ids, noteID)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.Filename))

	return c.Blob(http.StatusOK, doc.ContentType, doc.Data)
}

func (h *DeliveryNoteHandler) target(c echo.Context) (entity.Principal, entity.Ancestors, uint64, error) {
	p, err := principal(c)
	if err != nil {
		return entity.Principal{}, entity.Ancestors{}, 0, err
	}
	ids, err := ancestors(c)
	if err != nil {
		return entity.Principal{}, entity.Ancestors{}, 0, err
	}
	noteID, err := pathID(c, "noteId")
	if err != nil {
		return entity.Principal{}, entity.Ancestors{}, 0, err
	}

	return p, ids, noteID, nil
}
