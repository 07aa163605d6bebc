package model

import "time"

// ClientModel mirrors the 'clients' table. (owner_user_id, cif) is unique.
type ClientModel struct {
	ID          uint64  `gorm:"primaryKey;autoIncrement"`
	OwnerUserID uint64  `gorm:"not null;uniqueIndex:idx_clients_owner_cif,priority:1"`
	Name        *string `gorm:"type:varchar(255)"`
	CIF         *string `gorm:"column:cif;type:varchar(9);uniqueIndex:idx_clients_owner_cif,priority:2"`
	Address     *string `gorm:"type:varchar(255)"`
	Lifecycle   int8    `gorm:"not null;default:0;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerUserID"`
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clients"
}
