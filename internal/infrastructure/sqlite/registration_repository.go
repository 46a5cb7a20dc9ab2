package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/akontos/protokolo/internal/registry/domain"
)

// registrationColumns is the list of columns to select for registration queries.
const registrationColumns = `id, category, protocol_number, draft_number,
	issuer, ref_number, doc_date, subject, entry_date, recipient, sic,
	offices, created_at, created_by, deleted_at`

// registrationRepository implements domain.RegistrationRepository using SQLite.
type registrationRepository struct {
	db *sql.DB
}

// newRegistrationRepository creates a new registrationRepository instance.
func newRegistrationRepository(db *sql.DB) *registrationRepository {
	return &registrationRepository{db: db}
}

// Ensure registrationRepository implements domain.RegistrationRepository.
var _ domain.RegistrationRepository = (*registrationRepository)(nil)

// scanRegistration scans a row into a registrationModel.
func scanRegistration(scanner interface{ Scan(...any) error }) (*registrationModel, error) {
	var model registrationModel
	err := scanner.Scan(
		&model.ID, &model.Category, &model.ProtocolNumber, &model.DraftNumber,
		&model.Issuer, &model.RefNumber, &model.DocDate, &model.Subject,
		&model.EntryDate, &model.Recipient, &model.SIC,
		&model.Offices, &model.CreatedAt, &model.CreatedBy, &model.DeletedAt,
	)
	return &model, err
}

// Insert persists a new registration. The primary key constraint rejects a
// duplicate ID, which surfaces as a StoreError since IDs are generated unique.
func (r *registrationRepository) Insert(ctx context.Context, registration *domain.Registration) error {
	model, err := toRegistrationModel(registration)
	if err != nil {
		return &domain.StoreError{Op: "insert", Err: err}
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO registrations (`+registrationColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		model.ID, model.Category, model.ProtocolNumber, model.DraftNumber,
		model.Issuer, model.RefNumber, model.DocDate, model.Subject,
		model.EntryDate, model.Recipient, model.SIC,
		model.Offices, model.CreatedAt, model.CreatedBy, model.DeletedAt,
	)
	if err != nil {
		return &domain.StoreError{Op: "insert", Err: err}
	}
	return nil
}

// Get retrieves a registration by ID, including soft-deleted ones.
func (r *registrationRepository) Get(ctx context.Context, id string) (*domain.Registration, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+registrationColumns+` FROM registrations WHERE id = ?`,
		id,
	)
	model, err := scanRegistration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{ID: id}
	}
	if err != nil {
		return nil, &domain.StoreError{Op: "get", Err: err}
	}
	return model.toDomain()
}

// GetAll retrieves every registration in insertion (rowid) order, regardless
// of deletion status. Filtering and ordering for display is the caller's job.
func (r *registrationRepository) GetAll(ctx context.Context) ([]*domain.Registration, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+registrationColumns+` FROM registrations ORDER BY rowid`,
	)
	if err != nil {
		return nil, &domain.StoreError{Op: "getAll", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var registrations []*domain.Registration
	for rows.Next() {
		model, err := scanRegistration(rows)
		if err != nil {
			return nil, &domain.StoreError{Op: "getAll", Err: err}
		}
		registration, err := model.toDomain()
		if err != nil {
			return nil, &domain.StoreError{Op: "getAll", Err: err}
		}
		registrations = append(registrations, registration)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Op: "getAll", Err: err}
	}

	return registrations, nil
}

// Update overwrites an existing registration by ID. Only the soft-delete
// transition uses this; the full row is rewritten regardless.
func (r *registrationRepository) Update(ctx context.Context, registration *domain.Registration) error {
	model, err := toRegistrationModel(registration)
	if err != nil {
		return &domain.StoreError{Op: "update", Err: err}
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE registrations SET
			category = ?, protocol_number = ?, draft_number = ?,
			issuer = ?, ref_number = ?, doc_date = ?, subject = ?, entry_date = ?,
			recipient = ?, sic = ?, offices = ?, created_at = ?, created_by = ?,
			deleted_at = ?
		 WHERE id = ?`,
		model.Category, model.ProtocolNumber, model.DraftNumber,
		model.Issuer, model.RefNumber, model.DocDate, model.Subject, model.EntryDate,
		model.Recipient, model.SIC, model.Offices, model.CreatedAt, model.CreatedBy,
		model.DeletedAt,
		model.ID,
	)
	if err != nil {
		return &domain.StoreError{Op: "update", Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return &domain.StoreError{Op: "update", Err: err}
	}
	if affected == 0 {
		return &domain.NotFoundError{ID: registration.ID()}
	}
	return nil
}
