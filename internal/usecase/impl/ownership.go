package impl

import (
	"context"

	"dnotes/internal/domain/entity"
	domainerrors "dnotes/internal/domain/errors"
	"dnotes/internal/domain/repository"
	"dnotes/internal/errors"
)

// ownedResource is implemented by every entity on the ownership chain.
type ownedResource interface {
	Owner() uint64
	State() entity.Lifecycle
}

// visibility selects which lifecycle states a resolution accepts. Hard-deleted rows never resolve.
type visibility int

const (
	// activeOnly serves reads and updates.
	activeOnly visibility = iota
	// includeSoftDeleted serves deletions and restores.
	includeSoftDeleted
)

// ownership describes how one resource kind is found and checked against its ancestors.
type ownership[T ownedResource] struct {
	kind           entity.ResourceKind
	find           func(ctx context.Context, id uint64) (T, error)
	notFound       *domainerrors.BaseError
	notOwned       *domainerrors.BaseError
	ancestorsMatch func(resource T, ancestors entity.Ancestors) bool
}

// resolve finds the resource and checks it belongs to the principal through the supplied ancestors.
// Missing and hard-deleted rows are NotFound; a foreign owner or a wrong ancestor is NotOwned.
func (o ownership[T]) resolve(ctx context.Context, principal entity.Principal, id uint64, ancestors entity.Ancestors, vis visibility) (T, error) {
	var zero T

	resource, err := o.find(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return zero, o.notFound.WithDetailsf("%s %d", o.kind, id)
	}
	if err != nil {
		return zero, err
	}

	state := resource.State()
	if state == entity.LifecycleHardDeleted {
		return zero, o.notFound.WithDetailsf("%s %d", o.kind, id)
	}
	if resource.Owner() != principal.UserID {
		return zero, o.notOwned.WithDetailsf("%s %d", o.kind, id)
	}
	if o.ancestorsMatch != nil && !o.ancestorsMatch(resource, ancestors) {
		return zero, o.notOwned.WithDetailsf("%s %d", o.kind, id)
	}
	if vis == activeOnly && state != entity.LifecycleActive {
		return zero, o.notFound.WithDetailsf("%s %d", o.kind, id)
	}

	return resource, nil
}

func clientOwnership(repo repository.ClientRepository) ownership[*entity.Client] {
	return ownership[*entity.Client]{
		kind:     entity.ResourceClient,
		find:     repo.FindByID,
		notFound: domainerrors.ErrClientNotFound,
		notOwned: domainerrors.ErrClientNotOwned,
	}
}

func projectOwnership(repo repository.ProjectRepository) ownership[*entity.Project] {
	return ownership[*entity.Project]{
		kind:     entity.ResourceProject,
		find:     repo.FindByID,
		notFound: domainerrors.ErrProjectNotFound,
		notOwned: domainerrors.ErrProjectNotOwned,
		ancestorsMatch: func(project *entity.Project, ancestors entity.Ancestors) bool {
			return project.ClientID == ancestors.ClientID
		},
	}
}

func deliveryNoteOwnership(repo repository.DeliveryNoteRepository) ownership[*entity.DeliveryNote] {
	return ownership[*entity.DeliveryNote]{
		kind:     entity.ResourceDeliveryNote,
		find:     repo.FindByID,
		notFound: domainerrors.ErrDeliveryNoteNotFound,
		notOwned: domainerrors.ErrDeliveryNoteNotOwned,
		ancestorsMatch: func(note *entity.DeliveryNote, ancestors entity.Ancestors) bool {
			return note.ClientID == ancestors.ClientID && note.ProjectID == ancestors.ProjectID
		},
	}
}

func userOwnership(repo repository.UserRepository) ownership[*entity.User] {
	return ownership[*entity.User]{
		kind:     entity.ResourceUser,
		find:     repo.FindByID,
		notFound: domainerrors.ErrUserNotFound,
		notOwned: domainerrors.ErrUserNotOwned,
	}
}

// lifecycleUpdater is the conditional lifecycle update every repository exposes.
type lifecycleUpdater func(ctx context.Context, id uint64, from []entity.Lifecycle, to entity.Lifecycle) (int64, error)

// transition moves a row to target from any state allowed to reach it.
// No affected row means the row was not in a source state.
func transition(ctx context.Context, update lifecycleUpdater, id uint64, target entity.Lifecycle, notFound *domainerrors.BaseError) error {
	rows, err := update(ctx, id, entity.TransitionSources(target), target)
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound.WithDetailsf("id %d cannot become %s", id, target)
	}

	return nil
}

// mapDuplicate turns a repository unique-key violation into the given business error.
func mapDuplicate(err error, alreadyExists *domainerrors.BaseError) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return alreadyExists
	}

	return err
}
