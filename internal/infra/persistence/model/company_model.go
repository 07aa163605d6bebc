package model

import "time"

// CompanyModel mirrors the 'companies' table.
type CompanyModel struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement"`
	Name      *string `gorm:"type:varchar(255)"`
	CIF       *string `gorm:"column:cif;type:varchar(9);uniqueIndex"`
	Address   *string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CompanyModel) TableName() string {
	return "companies"
}
