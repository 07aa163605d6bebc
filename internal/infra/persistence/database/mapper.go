package database

import (
	"time"

	"dnotes/internal/domain/entity"
	"dnotes/internal/infra/persistence/model"

	"gorm.io/datatypes"
)

// nullable stores empty strings as NULL so unique indexes ignore scrubbed rows.
func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

func lifecycleValues(states []entity.Lifecycle) []int8 {
	values := make([]int8, 0, len(states))
	for _, state := range states {
		values = append(values, int8(state))
	}

	return values
}

func toUserDomain(m *model.UserModel) *entity.User {
	user := &entity.User{
		ID:                 m.ID,
		Email:              deref(m.Email),
		PasswordHash:       deref(m.PasswordHash),
		ValidationCode:     deref(m.ValidationCode),
		ValidationAttempts: m.ValidationAttempts,
		Status:             entity.UserStatus(deref(m.Status)),
		Role:               entity.Role(deref(m.Role)),
		Lifecycle:          entity.Lifecycle(m.Lifecycle),
		Name:               deref(m.Name),
		Surname:            deref(m.Surname),
		NIF:                deref(m.NIF),
		ProfileImageURL:    deref(m.ProfileImageURL),
		CompanyID:          m.CompanyID,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	if m.Company != nil {
		user.Company = toCompanyDomain(m.Company)
	}

	return user
}

func fromUserDomain(u *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:                 u.ID,
		Email:              nullable(u.Email),
		PasswordHash:       nullable(u.PasswordHash),
		ValidationCode:     nullable(u.ValidationCode),
		ValidationAttempts: u.ValidationAttempts,
		Status:             nullable(u.Status.String()),
		Role:               nullable(u.Role.String()),
		Lifecycle:          int8(u.Lifecycle),
		Name:               nullable(u.Name),
		Surname:            nullable(u.Surname),
		NIF:                nullable(u.NIF),
		ProfileImageURL:    nullable(u.ProfileImageURL),
		CompanyID:          u.CompanyID,
	}
}

func toCompanyDomain(m *model.CompanyModel) *entity.Company {
	return &entity.Company{
		ID:        m.ID,
		Name:      deref(m.Name),
		CIF:       deref(m.CIF),
		Address:   deref(m.Address),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromCompanyDomain(c *entity.Company) *model.CompanyModel {
	return &model.CompanyModel{
		ID:      c.ID,
		Name:    nullable(c.Name),
		CIF:     nullable(c.CIF),
		Address: nullable(c.Address),
	}
}

func toClientDomain(m *model.ClientModel) *entity.Client {
	return &entity.Client{
		ID:          m.ID,
		OwnerUserID: m.OwnerUserID,
		Name:        deref(m.Name),
		CIF:         deref(m.CIF),
		Address:     deref(m.Address),
		Lifecycle:   entity.Lifecycle(m.Lifecycle),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromClientDomain(c *entity.Client) *model.ClientModel {
	return &model.ClientModel{
		ID:          c.ID,
		OwnerUserID: c.OwnerUserID,
		Name:        nullable(c.Name),
		CIF:         nullable(c.CIF),
		Address:     nullable(c.Address),
		Lifecycle:   int8(c.Lifecycle),
	}
}

func toProjectDomain(m *model.ProjectModel) *entity.Project {
	return &entity.Project{
		ID:          m.ID,
		OwnerUserID: m.OwnerUserID,
		ClientID:    m.ClientID,
		ProjectCode: deref(m.ProjectCode),
		Name:        deref(m.Name),
		Email:       deref(m.Email),
		Address:     deref(m.Address),
		Lifecycle:   entity.Lifecycle(m.Lifecycle),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromProjectDomain(p *entity.Project) *model.ProjectModel {
	return &model.ProjectModel{
		ID:          p.ID,
		OwnerUserID: p.OwnerUserID,
		ClientID:    p.ClientID,
		ProjectCode: nullable(p.ProjectCode),
		Name:        nullable(p.Name),
		Email:       nullable(p.Email),
		Address:     nullable(p.Address),
		Lifecycle:   int8(p.Lifecycle),
	}
}

func toDeliveryNoteDomain(m *model.DeliveryNoteModel) *entity.DeliveryNote {
	note := &entity.DeliveryNote{
		ID:               m.ID,
		OwnerUserID:      m.OwnerUserID,
		ClientID:         m.ClientID,
		ProjectID:        m.ProjectID,
		Format:           entity.DeliveryNoteFormat(m.Format),
		Material:         deref(m.Material),
		Hours:            m.Hours,
		Description:      deref(m.Description),
		Signed:           m.Signed,
		ArtifactLocation: deref(m.ArtifactLocation),
		Lifecycle:        entity.Lifecycle(m.Lifecycle),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	if m.Date != nil {
		d := time.Time(*m.Date)
		note.Date = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}
	if m.SignedAt != nil {
		signedAt := m.SignedAt.UTC()
		note.SignedAt = &signedAt
	}

	return note
}

func fromDeliveryNoteDomain(n *entity.DeliveryNote) *model.DeliveryNoteModel {
	return &model.DeliveryNoteModel{
		ID:               n.ID,
		OwnerUserID:      n.OwnerUserID,
		ClientID:         n.ClientID,
		ProjectID:        n.ProjectID,
		Format:           n.Format.String(),
		Material:         nullable(n.Material),
		Hours:            n.Hours,
		Description:      nullable(n.Description),
		Date:             noteDate(n.Date),
		Signed:           n.Signed,
		SignedAt:         n.SignedAt,
		ArtifactLocation: nullable(n.ArtifactLocation),
		Lifecycle:        int8(n.Lifecycle),
	}
}

func noteDate(t time.Time) *datatypes.Date {
	if t.IsZero() {
		return nil
	}
	d := datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))

	return &d
}
