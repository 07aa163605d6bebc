package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "dnotes/internal/delivery/context"
	"dnotes/internal/domain/constants"
	"dnotes/internal/domain/entity"
	domainerrors "dnotes/internal/domain/errors"
	"dnotes/internal/domain/repository"
	"dnotes/internal/domain/service"
	"dnotes/internal/errors"
	"dnotes/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Stages reported by ArtifactPersistenceError.
const (
	artifactStageRender = "render"
	artifactStageStore  = "store"
	artifactStageRecord = "record"
)

type deliveryNoteService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	clientRepo  repository.ClientRepository
	projectRepo repository.ProjectRepository
	noteRepo    repository.DeliveryNoteRepository
	renderer    service.DocumentRenderer
	store       service.ArtifactStore
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// DeliveryNoteServiceParams holds dependencies for DeliveryNoteService, injected by Fx.
type DeliveryNoteServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	ClientRepo       repository.ClientRepository
	ProjectRepo      repository.ProjectRepository
	DeliveryNoteRepo repository.DeliveryNoteRepository
	Renderer         service.DocumentRenderer
	Store            service.ArtifactStore
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewDeliveryNoteService is the constructor for deliveryNoteService.
func NewDeliveryNoteService(params DeliveryNoteServiceParams) usecase.DeliveryNoteUsecase {
	return &deliveryNoteService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		clientRepo:  params.ClientRepo,
		projectRepo: params.ProjectRepo,
		noteRepo:    params.DeliveryNoteRepo,
		renderer:    params.Renderer,
		store:       params.Store,
		publisher:   params.Publisher,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *deliveryNoteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolveProject checks the client and the project of a note path, locking both inside a transaction.
func resolveProject(ctx context.Context, clientRepo repository.ClientRepository, projectRepo repository.ProjectRepository,
	principal entity.Principal, ancestors entity.Ancestors,
) (*entity.Project, error) {
	if _, err := clientOwnership(clientRepo).resolve(ctx, principal, ancestors.ClientID, entity.Ancestors{}, activeOnly); err != nil {
		return nil, err
	}

	return projectOwnership(projectRepo).resolve(ctx, principal, ancestors.ProjectID, ancestors, activeOnly)
}

func (srv *deliveryNoteService) CreateDeliveryNote(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors,
	content entity.DeliveryNoteContent,
) (*entity.DeliveryNote, error) {
	note, err := entity.NewDeliveryNote(principal.UserID, ancestors.ClientID, ancestors.ProjectID, content)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := resolveProject(ctx, f.ClientRepo(), f.ProjectRepo(), principal, ancestors); err != nil {
			return err
		}

		repo := f.DeliveryNoteRepo()
		existing, err := repo.FindDuplicate(ctx, note)
		if err == nil {
			return domainerrors.ErrDeliveryNoteAlreadyExists.WithDetailsf("delivery note %d", existing.ID)
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		if err := repo.Insert(ctx, note); err != nil {
			if errors.Is(err, repository.ErrInvalidReference) {
				return domainerrors.ErrProjectNotFound
			}

			return mapDuplicate(err, domainerrors.ErrDeliveryNoteAlreadyExists)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Delivery note created", slog.Uint64("deliveryNoteID", note.ID), slog.Uint64("projectID", note.ProjectID))

	return note, nil
}

func (srv *deliveryNoteService) GetDeliveryNoteByID(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors,
	noteID uint64,
) (*entity.DeliveryNote, error) {
	return deliveryNoteOwnership(srv.noteRepo).resolve(ctx, principal, noteID, ancestors, activeOnly)
}

func (srv *deliveryNoteService) ListDeliveryNotes(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors) ([]*entity.DeliveryNote, error) {
	if _, err := resolveProject(ctx, srv.clientRepo, srv.projectRepo, principal, ancestors); err != nil {
		return nil, err
	}

	notes, err := srv.noteRepo.ListByProject(ctx, principal.UserID, ancestors.ClientID, ancestors.ProjectID)
	if err != nil {
		return nil, err
	}
	if len(notes) == 0 {
		return nil, domainerrors.ErrDeliveryNoteNotFound.WithDetailsf("project %d has no delivery notes", ancestors.ProjectID)
	}

	return notes, nil
}

func (srv *deliveryNoteService) UpdateDeliveryNote(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors,
	noteID uint64, patch entity.DeliveryNotePatch,
) (*entity.DeliveryNote, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	var updated *entity.DeliveryNote
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.DeliveryNoteRepo()

		note, err := deliveryNoteOwnership(repo).resolve(ctx, principal, noteID, ancestors, activeOnly)
		if err != nil {
			return err
		}

		next, err := note.Apply(patch)
		if err != nil {
			return err
		}

		rows, err := repo.UpdateFields(ctx, next)
		if err != nil {
			return err
		}
		if rows == 0 {
			return domainerrors.ErrDeliveryNoteNotFound
		}

		updated, err = repo.FindByID(ctx, noteID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (srv *deliveryNoteService) SoftDeleteDeliveryNote(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors, noteID uint64) error {
	return srv.delete(ctx, principal, ancestors, noteID, entity.LifecycleSoftDeleted)
}

func (srv *deliveryNoteService) HardDeleteDeliveryNote(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors, noteID uint64) error {
	return srv.delete(ctx, principal, ancestors, noteID, entity.LifecycleHardDeleted)
}

// delete refuses signed notes.
func (srv *deliveryNoteService) delete(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors, noteID uint64,
	target entity.Lifecycle,
) error {
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.DeliveryNoteRepo()

		note, err := deliveryNoteOwnership(repo).resolve(ctx, principal, noteID, ancestors, includeSoftDeleted)
		if err != nil {
			return err
		}
		if note.Signed {
			return domainerrors.ErrDeliveryNoteSigned.WithDetailsf("delivery note %d", noteID)
		}

		return transition(ctx, repo.UpdateLifecycle, noteID, target, domainerrors.ErrDeliveryNoteNotFound)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Delivery note deleted", slog.Uint64("deliveryNoteID", noteID), slog.String("lifecycle", target.String()))

	return nil
}

func (srv *deliveryNoteService) RestoreDeliveryNote(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors,
	noteID uint64,
) (*entity.DeliveryNote, error) {
	var restored *entity.DeliveryNote
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.DeliveryNoteRepo()

		if _, err := deliveryNoteOwnership(repo).resolve(ctx, principal, noteID, ancestors, includeSoftDeleted); err != nil {
			return err
		}
		if err := transition(ctx, repo.UpdateLifecycle, noteID, entity.LifecycleActive, domainerrors.ErrDeliveryNoteNotFound); err != nil {
			return err
		}

		var err error
		restored, err = repo.FindByID(ctx, noteID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return restored, nil
}

// SignDeliveryNote commits the signature first; the document is produced afterwards and its
// failure never reverts the signature.
func (srv *deliveryNoteService) SignDeliveryNote(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors,
	noteID uint64,
) (*entity.DeliveryNote, error) {
	var signed *entity.DeliveryNote
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.DeliveryNoteRepo()

		note, err := deliveryNoteOwnership(repo).resolve(ctx, principal, noteID, ancestors, activeOnly)
		if err != nil {
			return err
		}
		if note.Signed {
			return domainerrors.ErrDeliveryNoteAlreadySigned.WithDetailsf("delivery note %d", noteID)
		}

		signedAt := srv.now().UTC()
		rows, err := repo.MarkSigned(ctx, noteID, signedAt)
		if err != nil {
			return err
		}
		if rows == 0 {
			return domainerrors.ErrDeliveryNoteAlreadySigned.WithDetailsf("delivery note %d", noteID)
		}

		note.Signed = true
		note.SignedAt = &signedAt
		signed = note

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Delivery note signed", slog.Uint64("deliveryNoteID", noteID))

	if err := srv.persistArtifact(ctx, signed); err != nil {
		srv.publish(ctx, constants.EventDeliveryNoteArtifactRequested, signed)

		return signed, err
	}

	srv.publish(ctx, constants.EventDeliveryNoteSigned, signed)

	return signed, nil
}

func (srv *deliveryNoteService) RenderDeliveryNotePDF(ctx context.Context, principal entity.Principal, ancestors entity.Ancestors,
	noteID uint64,
) (*usecase.RenderedDocument, error) {
	note, err := deliveryNoteOwnership(srv.noteRepo).resolve(ctx, principal, noteID, ancestors, activeOnly)
	if err != nil {
		return nil, err
	}

	data, err := srv.render(ctx, note)
	if err != nil {
		return nil, err
	}

	return &usecase.RenderedDocument{
		Filename:    fmt.Sprintf("delivery-note-%d.pdf", note.ID),
		ContentType: srv.renderer.ContentType(),
		Data:        data,
	}, nil
}

// RegenerateArtifact is idempotent: a note that already has a document is returned unchanged.
func (srv *deliveryNoteService) RegenerateArtifact(ctx context.Context, noteID uint64) (*entity.DeliveryNote, error) {
	note, err := srv.noteRepo.FindByID(ctx, noteID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domainerrors.ErrDeliveryNoteNotFound.WithDetailsf("delivery note %d", noteID)
	}
	if err != nil {
		return nil, err
	}
	if note.Lifecycle == entity.LifecycleHardDeleted {
		return nil, domainerrors.ErrDeliveryNoteNotFound.WithDetailsf("delivery note %d", noteID)
	}
	if !note.Signed {
		return nil, domainerrors.ErrDeliveryNoteNotSigned.WithDetailsf("delivery note %d", noteID)
	}
	if note.ArtifactLocation != "" {
		return note, nil
	}

	if err := srv.persistArtifact(ctx, note); err != nil {
		return nil, err
	}

	srv.publish(ctx, constants.EventDeliveryNoteSigned, note)

	return note, nil
}

// persistArtifact renders, stores and records the document of a signed note.
func (srv *deliveryNoteService) persistArtifact(ctx context.Context, note *entity.DeliveryNote) error {
	data, err := srv.render(ctx, note)
	if err != nil {
		return domainerrors.NewArtifactPersistenceError(note.ID, artifactStageRender, err)
	}

	key := fmt.Sprintf("delivery-notes/%d/%d-%s.pdf", note.OwnerUserID, note.ID, uuid.NewString())
	location, err := srv.store.Put(ctx, key, data, srv.renderer.ContentType())
	if err != nil {
		return domainerrors.NewArtifactPersistenceError(note.ID, artifactStageStore, err)
	}

	if err := srv.noteRepo.SetArtifactLocation(ctx, note.ID, location); err != nil {
		return domainerrors.NewArtifactPersistenceError(note.ID, artifactStageRecord, err)
	}
	note.ArtifactLocation = location

	srv.log(ctx).Debug("Delivery note artifact stored", slog.Uint64("deliveryNoteID", note.ID), slog.String("location", location))

	return nil
}

func (srv *deliveryNoteService) render(ctx context.Context, note *entity.DeliveryNote) ([]byte, error) {
	doc, err := srv.loadDocument(ctx, note)
	if err != nil {
		return nil, err
	}

	return srv.renderer.Render(ctx, doc)
}

// loadDocument gathers the records printed on a note. Missing parents leave their section empty.
func (srv *deliveryNoteService) loadDocument(ctx context.Context, note *entity.DeliveryNote) (*entity.DeliveryNoteDocument, error) {
	doc := &entity.DeliveryNoteDocument{Note: note}

	owner, err := srv.userRepo.FindByID(ctx, note.OwnerUserID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if owner != nil {
		doc.Owner = owner
		doc.Company = owner.Company
	}

	client, err := srv.clientRepo.FindByID(ctx, note.ClientID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	doc.Client = client

	project, err := srv.projectRepo.FindByID(ctx, note.ProjectID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	doc.Project = project

	return doc, nil
}

// publish is best effort; a lost event is logged and the operation still succeeds.
func (srv *deliveryNoteService) publish(ctx context.Context, eventType string, note *entity.DeliveryNote) {
	event := &service.DeliveryNoteEvent{
		RequestID:        deliverycontext.GetRequestIDFromContext(ctx),
		Type:             eventType,
		DeliveryNoteID:   note.ID,
		OwnerUserID:      note.OwnerUserID,
		ClientID:         note.ClientID,
		ProjectID:        note.ProjectID,
		ArtifactLocation: note.ArtifactLocation,
		OccurredAt:       srv.now().UTC(),
	}

	if err := srv.publisher.PublishDeliveryNoteEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish delivery note event",
			slog.String("type", eventType),
			slog.Uint64("deliveryNoteID", note.ID),
			slog.Any("error", err),
		)
	}
}
