package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"dnotes/config"
	"dnotes/internal/domain/entity"
	"dnotes/internal/domain/repository"
	"dnotes/internal/infra/persistence/database"
	"dnotes/internal/infra/persistence/model"
	mockService "dnotes/internal/mocks/service"
	"dnotes/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxValidationAttempts int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:            4,
			MaxValidationAttempts: maxValidationAttempts,
		},
	}
}

// storeFixtures wires the real repositories against a private in-memory SQLite database.
type storeFixtures struct {
	db          *gorm.DB
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	clientRepo  repository.ClientRepository
	projectRepo repository.ProjectRepository
	noteRepo    repository.DeliveryNoteRepository
}

func newStoreFixtures(t *testing.T) storeFixtures {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the shared in-memory database alive and serializes transactions.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return storeFixtures{
		db:          db,
		txManager:   database.NewTransactionManager(db),
		userRepo:    database.NewUserRepository(db),
		companyRepo: database.NewCompanyRepository(db),
		clientRepo:  database.NewClientRepository(db),
		projectRepo: database.NewProjectRepository(db),
		noteRepo:    database.NewDeliveryNoteRepository(db),
	}
}

func (s storeFixtures) seedUser(t *testing.T, email string, validated bool) *entity.User {
	t.Helper()

	user, err := entity.NewUser(email, "hash:secret-password", "123456")
	require.NoError(t, err)
	if validated {
		user.Status = entity.UserStatusValidated
		user.ValidationCode = ""
	}
	require.NoError(t, s.userRepo.Insert(context.Background(), user))

	return user
}

func (s storeFixtures) seedClient(t *testing.T, owner uint64, cif string) *entity.Client {
	t.Helper()

	client, err := entity.NewClient(owner, "Acme", cif, "1 Main St")
	require.NoError(t, err)
	require.NoError(t, s.clientRepo.Insert(context.Background(), client))

	return client
}

func (s storeFixtures) seedProject(t *testing.T, client *entity.Client, code string) *entity.Project {
	t.Helper()

	project, err := entity.NewProject(client.OwnerUserID, client.ID, code, "Warehouse", "site@example.com", "Dock 3")
	require.NoError(t, err)
	require.NoError(t, s.projectRepo.Insert(context.Background(), project))

	return project
}

func (s storeFixtures) seedNote(t *testing.T, project *entity.Project, hours int) *entity.DeliveryNote {
	t.Helper()

	note, err := entity.NewDeliveryNote(project.OwnerUserID, project.ClientID, project.ID, hoursContent(hours))
	require.NoError(t, err)
	require.NoError(t, s.noteRepo.Insert(context.Background(), note))

	return note
}

func hoursContent(hours int) entity.DeliveryNoteContent {
	return entity.DeliveryNoteContent{
		Format:      entity.FormatHours,
		Hours:       hours,
		Description: "Electrical installation",
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func principalOf(userID uint64) entity.Principal {
	return entity.Principal{UserID: userID}
}

func ancestorsOf(project *entity.Project) entity.Ancestors {
	return entity.Ancestors{ClientID: project.ClientID, ProjectID: project.ID}
}

// deliveryNoteFixtures holds the delivery note service and its collaborators.
type deliveryNoteFixtures struct {
	storeFixtures
	service   usecase.DeliveryNoteUsecase
	renderer  *mockService.MockDocumentRenderer
	store     *mockService.MockArtifactStore
	publisher *mockService.MockEventPublisher
}

func createTestDeliveryNoteService(t *testing.T) deliveryNoteFixtures {
	s := newStoreFixtures(t)
	renderer := mockService.NewMockDocumentRenderer(t)
	store := mockService.NewMockArtifactStore(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewDeliveryNoteService(DeliveryNoteServiceParams{
		TxManager:        s.txManager,
		UserRepo:         s.userRepo,
		ClientRepo:       s.clientRepo,
		ProjectRepo:      s.projectRepo,
		DeliveryNoteRepo: s.noteRepo,
		Renderer:         renderer,
		Store:            store,
		Publisher:        publisher,
		Logger:           newDiscardLogger(),
	})

	return deliveryNoteFixtures{
		storeFixtures: s,
		service:       svc,
		renderer:      renderer,
		store:         store,
		publisher:     publisher,
	}
}
