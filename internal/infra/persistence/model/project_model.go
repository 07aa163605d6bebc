package model

import "time"

// ProjectModel mirrors the 'projects' table. project_code is globally unique.
type ProjectModel struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement"`
	OwnerUserID uint64  `gorm:"not null;index"`
	ClientID    uint64  `gorm:"not null;index"`
	ProjectCode *string `gorm:"type:varchar(64);uniqueIndex"`
	Name        *string `gorm:"type:varchar(255)"`
	Email       *string `gorm:"type:varchar(255)"`
	Address     *string `gorm:"type:varchar(255)"`
	Lifecycle   int8    `gorm:"not null;default:0;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Owner  *UserModel   `gorm:"foreignKey:OwnerUserID"`
	Client *ClientModel `gorm:"foreignKey:ClientID"`
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}
