// Package model holds the GORM persistence structs. Columns scrubbed on hard delete are nullable.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID                 uint64  `gorm:"primaryKey;autoIncrement"`
	Email              *string `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash       *string `gorm:"type:varchar(255)"`
	ValidationCode     *string `gorm:"type:varchar(6)"`
	ValidationAttempts int     `gorm:"not null;default:0"`
	Status             *string `gorm:"type:varchar(20)"`
	Role               *string `gorm:"type:varchar(20);index"`
	Lifecycle          int8    `gorm:"not null;default:0;index"`
	Name               *string `gorm:"type:varchar(100)"`
	Surname            *string `gorm:"type:varchar(100)"`
	NIF                *string `gorm:"column:nif;type:varchar(9)"`
	ProfileImageURL    *string `gorm:"type:varchar(512)"`
	CompanyID          *uint64 `gorm:"index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Company *CompanyModel `gorm:"foreignKey:CompanyID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// All lists the models in dependency order for migrations.
func All() []any {
	return []any{
		&CompanyModel{},
		&UserModel{},
		&ClientModel{},
		&ProjectModel{},
		&DeliveryNoteModel{},
	}
}
