package database

import (
	"context"

	"dnotes/internal/domain/repository"
	"dnotes/internal/errors"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one transaction. Their reads take row locks.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return &userRepository{conn: conn{db: f.tx, lock: true}}
}

func (f *gormRepositoryFactory) CompanyRepo() repository.CompanyRepository {
	return &companyRepository{conn: conn{db: f.tx, lock: true}}
}

func (f *gormRepositoryFactory) ClientRepo() repository.ClientRepository {
	return &clientRepository{conn: conn{db: f.tx, lock: true}}
}

func (f *gormRepositoryFactory) ProjectRepo() repository.ProjectRepository {
	return &projectRepository{conn: conn{db: f.tx, lock: true}}
}

func (f *gormRepositoryFactory) DeliveryNoteRepo() repository.DeliveryNoteRepository {
	return &deliveryNoteRepository{conn: conn{db: f.tx, lock: true}}
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside a transaction on the primary. A panic in fn rolls back and re-panics.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Clauses(dbresolver.Write).Begin()
	if tx.Error != nil {
		return classifyStoreError(tx.Error, "begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Join(err, errors.Wrap(rbErr, "transaction rollback failed"))
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return classifyStoreError(err, "commit transaction")
	}

	return nil
}
