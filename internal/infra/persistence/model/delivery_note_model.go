package model

import (
	"time"

	"gorm.io/datatypes"
)

// DeliveryNoteModel mirrors the 'delivery_notes' table.
type DeliveryNoteModel struct {
	ID               uint64          `gorm:"primaryKey;autoIncrement"`
	OwnerUserID      uint64          `gorm:"not null;index"`
	ClientID         uint64          `gorm:"not null;index"`
	ProjectID        uint64          `gorm:"not null;index"`
	Format           string          `gorm:"type:varchar(16);not null"`
	Material         *string         `gorm:"type:varchar(255)"`
	Hours            int             `gorm:"not null;default:0"`
	Description      *string         `gorm:"type:text"`
	Date             *datatypes.Date `gorm:"index"`
	Signed           bool            `gorm:"not null;default:false"`
	SignedAt         *time.Time
	ArtifactLocation *string `gorm:"type:varchar(512)"`
	Lifecycle        int8    `gorm:"not null;default:0;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Owner   *UserModel    `gorm:"foreignKey:OwnerUserID"`
	Client  *ClientModel  `gorm:"foreignKey:ClientID"`
	Project *ProjectModel `gorm:"foreignKey:ProjectID"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryNoteModel) TableName() string {
	return "delivery_notes"
}
