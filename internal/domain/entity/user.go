package entity

import (
	"strings"
	"time"
)

// User is an account owner. Every client, project and delivery note hangs off a user.
// A company role requires CompanyID to be set.
type User struct {
	ID                 uint64
	Email              string
	PasswordHash       string
	ValidationCode     string
	ValidationAttempts int
	Status             UserStatus
	Role               Role
	Lifecycle          Lifecycle
	Name               string
	Surname            string
	NIF                string
	ProfileImageURL    string
	CompanyID          *uint64
	Company            *Company // populated on reads that join the company
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PersonalData is the onboarding payload for a personal account.
type PersonalData struct {
	Name    string
	Surname string
	NIF     string
}

// NewUser builds an unvalidated personal account.
func NewUser(email, passwordHash, validationCode string) (*User, error) {
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := checkField("validationCode", validationCode, "vcode"); err != nil {
		return nil, err
	}

	return &User{
		Email:          email,
		PasswordHash:   passwordHash,
		ValidationCode: validationCode,
		Status:         UserStatusNotValidated,
		Role:           RolePersonal,
		Lifecycle:      LifecycleActive,
	}, nil
}

// IsValidated reports whether the email address was confirmed.
func (u *User) IsValidated() bool {
	return u.Status == UserStatusValidated
}

// ApplyPersonalData validates and sets the personal onboarding fields.
func (u *User) ApplyPersonalData(data PersonalData) error {
	data.Name = strings.TrimSpace(data.Name)
	data.Surname = strings.TrimSpace(data.Surname)
	data.NIF = NormalizeTaxID(data.NIF)

	if err := checkField("name", data.Name, "required,personname,max=100"); err != nil {
		return err
	}
	if err := checkField("surname", data.Surname, "required,personname,max=100"); err != nil {
		return err
	}
	if err := checkField("nif", data.NIF, "required,nif"); err != nil {
		return err
	}

	u.Name = data.Name
	u.Surname = data.Surname
	u.NIF = data.NIF

	return nil
}

// JoinCompany links the user to a company and switches the role accordingly.
func (u *User) JoinCompany(companyID uint64) {
	id := companyID
	u.CompanyID = &id
	u.Role = RoleCompany
}

// Owner returns the user id; a user owns its own account.
func (u *User) Owner() uint64 {
	return u.ID
}

// State returns the lifecycle state.
func (u *User) State() Lifecycle {
	return u.Lifecycle
}

// UserStats aggregates account counters for the dashboard.
type UserStats struct {
	Total        int64 `json:"total"`
	Active       int64 `json:"active"`
	SoftDeleted  int64 `json:"soft_deleted"`
	HardDeleted  int64 `json:"hard_deleted"`
	NotValidated int64 `json:"not_validated"`
	Personal     int64 `json:"personal"`
	Company      int64 `json:"company"`
}
