package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"dnotes/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with foreign keys enforced.
func newTestDB(t *testing.T) *gorm.DB {
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
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user, err := entity.NewUser(email, "hash", "123456")
	require.NoError(t, err)
	require.NoError(t, NewUserRepository(db).Insert(context.Background(), user))

	return user
}

func seedClient(t *testing.T, db *gorm.DB, owner uint64, cif string) *entity.Client {
	t.Helper()

	client, err := entity.NewClient(owner, "Acme", cif, "1 Main St")
	require.NoError(t, err)
	require.NoError(t, NewClientRepository(db).Insert(context.Background(), client))

	return client
}

func seedProject(t *testing.T, db *gorm.DB, owner, clientID uint64, code string) *entity.Project {
	t.Helper()

	project, err := entity.NewProject(owner, clientID, code, "Warehouse", "site@example.com", "Dock 3")
	require.NoError(t, err)
	require.NoError(t, NewProjectRepository(db).Insert(context.Background(), project))

	return project
}

func seedNote(t *testing.T, db *gorm.DB, project *entity.Project, hours int, date time.Time) *entity.DeliveryNote {
	t.Helper()

	note, err := entity.NewDeliveryNote(project.OwnerUserID, project.ClientID, project.ID, entity.DeliveryNoteContent{
		Format:      entity.FormatHours,
		Hours:       hours,
		Description: "Install",
		Date:        date,
	})
	require.NoError(t, err)
	require.NoError(t, NewDeliveryNoteRepository(db).Insert(context.Background(), note))

	return note
}
