package entity

// Role represents the kind of account a user has.
type Role string

const (
	// RolePersonal is a self-employed user without a company.
	RolePersonal Role = "personal"
	// RoleCompany is a user acting on behalf of a company.
	RoleCompany Role = "company"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RolePersonal, RoleCompany:
		return true
	default:
		return false
	}
}

// UserStatus tracks whether the email address has been confirmed.
type UserStatus string

const (
	UserStatusNotValidated UserStatus = "not_validated"
	UserStatusValidated    UserStatus = "validated"
)

// String returns the string representation of the UserStatus.
func (s UserStatus) String() string {
	return string(s)
}
