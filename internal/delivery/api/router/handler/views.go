package handler

import (
	"time"

	"dnotes/internal/domain/entity"
)

// UserView is the public representation of an account. Secrets never leave the service.
type UserView struct {
	ID              uint64       `json:"id"`
	Email           string       `json:"email"`
	Status          string       `json:"status"`
	Role            string       `json:"role"`
	Lifecycle       string       `json:"lifecycle"`
	Name            string       `json:"name,omitempty"`
	Surname         string       `json:"surname,omitempty"`
	NIF             string       `json:"nif,omitempty"`
	ProfileImageURL string       `json:"profile_image_url,omitempty"`
	Company         *CompanyView `json:"company,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}

type CompanyView struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	CIF     string `json:"cif"`
	Address string `json:"address"`
}

type ClientView struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	CIF       string    `json:"cif"`
	Address   string    `json:"address"`
	Lifecycle string    `json:"lifecycle"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProjectView struct {
	ID          uint64    `json:"id"`
	ClientID    uint64    `json:"client_id"`
	ProjectCode string    `json:"project_code"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	Lifecycle   string    `json:"lifecycle"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type DeliveryNoteView struct {
	ID               uint64     `json:"id"`
	ClientID         uint64     `json:"client_id"`
	ProjectID        uint64     `json:"project_id"`
	Format           string     `json:"format"`
	Material         string     `json:"material,omitempty"`
	Hours            int        `json:"hours"`
	Description      string     `json:"description"`
	Date             string     `json:"date"`
	Signed           bool       `json:"signed"`
	SignedAt         *time.Time `json:"signed_at,omitempty"`
	ArtifactLocation string     `json:"artifact_location,omitempty"`
	Lifecycle        string     `json:"lifecycle"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// AuthView is returned by register and login.
type AuthView struct {
	Token string    `json:"token"`
	User  *UserView `json:"user"`
}

func toUserView(user *entity.User) *UserView {
	view := &UserView{
		ID:              user.ID,
		Email:           user.Email,
		Status:          user.Status.String(),
		Role:            user.Role.String(),
		Lifecycle:       user.Lifecycle.String(),
		Name:            user.Name,
		Surname:         user.Surname,
		NIF:             user.NIF,
		ProfileImageURL: user.ProfileImageURL,
		CreatedAt:       user.CreatedAt,
	}
	if user.Company != nil {
		view.Company = toCompanyView(user.Company)
	}

	return view
}

func toCompanyView(company *entity.Company) *CompanyView {
	return &CompanyView{
		ID:      company.ID,
		Name:    company.Name,
		CIF:     company.CIF,
		Address: company.Address,
	}
}

func toClientView(client *entity.Client) *ClientView {
	return &ClientView{
		ID:        client.ID,
		Name:      client.Name,
		CIF:       client.CIF,
		Address:   client.Address,
		Lifecycle: client.Lifecycle.String(),
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
}

func toProjectView(project *entity.Project) *ProjectView {
	return &ProjectView{
		ID:          project.ID,
		ClientID:    project.ClientID,
		ProjectCode: project.ProjectCode,
		Name:        project.Name,
		Email:       project.Email,
		Address:     project.Address,
		Lifecycle:   project.Lifecycle.String(),
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

func toDeliveryNoteView(note *entity.DeliveryNote) *DeliveryNoteView {
	view := &DeliveryNoteView{
		ID:               note.ID,
		ClientID:         note.ClientID,
		ProjectID:        note.ProjectID,
		Format:           note.Format.String(),
		Material:         note.Material,
		Hours:            note.Hours,
		Description:      note.Description,
		Signed:           note.Signed,
		SignedAt:         note.SignedAt,
		ArtifactLocation: note.ArtifactLocation,
		Lifecycle:        note.Lifecycle.String(),
		CreatedAt:        note.CreatedAt,
		UpdatedAt:        note.UpdatedAt,
	}
	if !note.Date.IsZero() {
		view.Date = note.Date.Format(time.DateOnly)
	}

	return view
}

func mapViews[T, V any](items []T, convert func(T) V) []V {
	views := make([]V, 0, len(items))
	for _, item := range items {
		views = append(views, convert(item))
	}

	return views
}
