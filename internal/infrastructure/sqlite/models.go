package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/akontos/protokolo/internal/registry/domain"
)

// registrationModel represents one row of the registrations table. Nullable
// columns use sql.Null types; offices are stored as a JSON array to keep
// selection order.
type registrationModel struct {
	ID             string
	Category       string
	ProtocolNumber string
	DraftNumber    sql.NullString
	Issuer         string
	RefNumber      string
	DocDate        string
	Subject        string
	EntryDate      string
	Recipient      sql.NullString
	SIC            sql.NullString
	Offices        string
	CreatedAt      string
	CreatedBy      string
	DeletedAt      sql.NullString
}

// toRegistrationModel converts a domain Registration to a database row.
func toRegistrationModel(r *domain.Registration) (*registrationModel, error) {
	offices, err := json.Marshal(r.Offices())
	if err != nil {
		return nil, fmt.Errorf("encoding offices: %w", err)
	}

	form := r.Form()
	return &registrationModel{
		ID:             r.ID(),
		Category:       r.Category().Key(),
		ProtocolNumber: r.ProtocolNumber(),
		DraftNumber:    nullable(r.DraftNumber()),
		Issuer:         form.Issuer,
		RefNumber:      form.RefNumber,
		DocDate:        form.DocDate,
		Subject:        form.Subject,
		EntryDate:      form.EntryDate,
		Recipient:      nullable(form.Recipient),
		SIC:            nullable(form.SIC),
		Offices:        string(offices),
		CreatedAt:      r.CreatedAt(),
		CreatedBy:      r.CreatedBy(),
		DeletedAt:      nullable(r.DeletedAt()),
	}, nil
}

// toDomain hydrates a domain Registration from a database row.
func (m *registrationModel) toDomain() (*domain.Registration, error) {
	category, err := domain.ParseCategory(m.Category)
	if err != nil {
		return nil, fmt.Errorf("hydrating registration %s: %w", m.ID, err)
	}

	var offices []domain.Office
	if err := json.Unmarshal([]byte(m.Offices), &offices); err != nil {
		return nil, fmt.Errorf("decoding offices for registration %s: %w", m.ID, err)
	}

	form := domain.FormData{
		Issuer:    m.Issuer,
		RefNumber: m.RefNumber,
		DocDate:   m.DocDate,
		Subject:   m.Subject,
		EntryDate: m.EntryDate,
		Recipient: m.Recipient.String,
		SIC:       m.SIC.String,
	}

	return domain.ReconstituteRegistration(
		m.ID,
		category,
		m.ProtocolNumber,
		m.DraftNumber.String,
		form,
		offices,
		m.CreatedAt,
		m.CreatedBy,
		m.DeletedAt.String,
	), nil
}

// nullable maps the empty string to SQL NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
