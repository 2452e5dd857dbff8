package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"leadsync/internal/domain/contact"
)

const contactColumns = `id, owner_id, local_id, name, title, company, phone, email, website,
		       notes, interests, captured_at, sync_version, created_at, updated_at, deleted_at`

type ContactRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewContactRepository(pool *pgxpool.Pool, log *slog.Logger) *ContactRepository {
	return &ContactRepository{
		pool: pool,
		log:  log.With("component", "contact_repository"),
	}
}

func (r *ContactRepository) List(ctx context.Context, ownerID int) ([]contact.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE owner_id = $1 AND deleted_at IS NULL
		ORDER BY updated_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("failed to list contacts", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	return r.scanContacts(rows)
}

func (r *ContactRepository) Get(ctx context.Context, ownerID, contactID int) (*contact.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL`

	row := r.pool.QueryRow(ctx, query, contactID, ownerID)

	c, err := r.scanContact(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, contact.ErrNotFound
		}
		r.log.Error("failed to get contact",
			"contact_id", contactID, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("get contact: %w", err)
	}

	return c, nil
}

func (r *ContactRepository) GetByLocalID(ctx context.Context, ownerID int, localID string) (*contact.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE local_id = $1 AND owner_id = $2 AND deleted_at IS NULL`

	row := r.pool.QueryRow(ctx, query, localID, ownerID)

	c, err := r.scanContact(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, contact.ErrNotFound
		}
		r.log.Error("failed to get contact by local id",
			"local_id", localID, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("get contact by local id: %w", err)
	}

	return c, nil
}

func (r *ContactRepository) Create(ctx context.Context, c *contact.Contact) (int, error) {
	const query = `
		INSERT INTO contacts (owner_id, local_id, name, title, company, phone, email,
		                      website, notes, interests, captured_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, sync_version, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		c.OwnerID, c.LocalID, c.Name, c.Title, c.Company, c.Phone, c.Email,
		c.Website, c.Notes, interestsParam(c.Interests), c.CapturedAt,
	).Scan(&c.ID, &c.SyncVersion, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return 0, contact.ErrDuplicateLocalID
		}
		r.log.Error("failed to create contact",
			"owner_id", c.OwnerID, "error", err)
		return 0, fmt.Errorf("create contact: %w", err)
	}

	return c.ID, nil
}

// Update записывает поля контакта одним атомарным оператором, поднимая
// sync_version и updated_at на стороне базы.
func (r *ContactRepository) Update(ctx context.Context, c *contact.Contact) error {
	const query = `
		UPDATE contacts
		SET name = $1, title = $2, company = $3, phone = $4, email = $5,
			website = $6, notes = $7, interests = $8, captured_at = $9,
			sync_version = sync_version + 1, updated_at = NOW()
		WHERE id = $10 AND owner_id = $11 AND deleted_at IS NULL
		RETURNING sync_version, updated_at`

	err := r.pool.QueryRow(ctx, query,
		c.Name, c.Title, c.Company, c.Phone, c.Email,
		c.Website, c.Notes, interestsParam(c.Interests), c.CapturedAt,
		c.ID, c.OwnerID,
	).Scan(&c.SyncVersion, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contact.ErrNotFound
		}
		r.log.Error("failed to update contact",
			"contact_id", c.ID, "owner_id", c.OwnerID, "error", err)
		return fmt.Errorf("update contact: %w", err)
	}

	return nil
}

func (r *ContactRepository) SoftDelete(ctx context.Context, ownerID, contactID int) error {
	const query = `
		UPDATE contacts
		SET deleted_at = NOW(), sync_version = sync_version + 1, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2 AND deleted_at IS NULL`

	result, err := r.pool.Exec(ctx, query, contactID, ownerID)
	if err != nil {
		r.log.Error("failed to soft delete contact",
			"contact_id", contactID, "owner_id", ownerID, "error", err)
		return fmt.Errorf("soft delete contact: %w", err)
	}

	if result.RowsAffected() == 0 {
		return contact.ErrNotFound
	}

	return nil
}

func (r *ContactRepository) Search(ctx context.Context, ownerID int, criteria contact.SearchCriteria) ([]contact.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE owner_id = $1 AND deleted_at IS NULL`

	args := []interface{}{ownerID}
	argIndex := 2

	if criteria.Company != "" {
		query += fmt.Sprintf(" AND company ILIKE $%d", argIndex)
		args = append(args, "%"+criteria.Company+"%")
		argIndex++
	}

	if criteria.Interest != "" {
		query += fmt.Sprintf(" AND $%d = ANY(interests)", argIndex)
		args = append(args, criteria.Interest)
		argIndex++
	}

	if criteria.FromDate != nil {
		query += fmt.Sprintf(" AND updated_at >= $%d", argIndex)
		args = append(args, criteria.FromDate)
		argIndex++
	}

	if criteria.ToDate != nil {
		query += fmt.Sprintf(" AND updated_at <= $%d", argIndex)
		args = append(args, criteria.ToDate)
		argIndex++
	}

	query += " ORDER BY updated_at DESC"

	if criteria.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, criteria.Limit)
		argIndex++
	}

	if criteria.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, criteria.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to search contacts", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("search contacts: %w", err)
	}
	defer rows.Close()

	return r.scanContacts(rows)
}

func (r *ContactRepository) GetModifiedSince(ctx context.Context, ownerID int, since time.Time) ([]contact.Contact, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contacts
		WHERE owner_id = $1 AND updated_at > $2
		ORDER BY updated_at ASC`

	rows, err := r.pool.Query(ctx, query, ownerID, since)
	if err != nil {
		r.log.Error("failed to get modified contacts", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("get modified contacts: %w", err)
	}
	defer rows.Close()

	return r.scanContacts(rows)
}

func (r *ContactRepository) SetLocalID(ctx context.Context, ownerID, contactID int, localID string) error {
	const query = `
		UPDATE contacts
		SET local_id = $1
		WHERE id = $2 AND owner_id = $3 AND deleted_at IS NULL`

	result, err := r.pool.Exec(ctx, query, localID, contactID, ownerID)
	if err != nil {
		if isUniqueViolation(err) {
			return contact.ErrDuplicateLocalID
		}
		r.log.Error("failed to set local id",
			"contact_id", contactID, "owner_id", ownerID, "error", err)
		return fmt.Errorf("set local id: %w", err)
	}

	if result.RowsAffected() == 0 {
		return contact.ErrNotFound
	}

	return nil
}

func (r *ContactRepository) LocalIDMap(ctx context.Context, ownerID int) (map[string]int, error) {
	const query = `
		SELECT local_id, id
		FROM contacts
		WHERE owner_id = $1 AND local_id IS NOT NULL AND deleted_at IS NULL`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("failed to load local id map", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("local id map: %w", err)
	}
	defer rows.Close()

	mappings := make(map[string]int)
	for rows.Next() {
		var localID string
		var serverID int
		if err := rows.Scan(&localID, &serverID); err != nil {
			return nil, fmt.Errorf("scan local id map: %w", err)
		}
		mappings[localID] = serverID
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("local id map rows: %w", err)
	}

	return mappings, nil
}

func (r *ContactRepository) MaxUpdatedAt(ctx context.Context, ownerID int) (*time.Time, error) {
	const query = `
		SELECT MAX(updated_at)
		FROM contacts
		WHERE owner_id = $1 AND deleted_at IS NULL`

	var ts *time.Time
	if err := r.pool.QueryRow(ctx, query, ownerID).Scan(&ts); err != nil {
		r.log.Error("failed to get max updated_at", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("max updated_at: %w", err)
	}

	return ts, nil
}

func (r *ContactRepository) scanContact(row pgx.Row) (*contact.Contact, error) {
	var c contact.Contact
	err := row.Scan(
		&c.ID, &c.OwnerID, &c.LocalID, &c.Name, &c.Title, &c.Company,
		&c.Phone, &c.Email, &c.Website, &c.Notes, &c.Interests,
		&c.CapturedAt, &c.SyncVersion, &c.CreatedAt, &c.UpdatedAt, &c.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *ContactRepository) scanContacts(rows pgx.Rows) ([]contact.Contact, error) {
	var contacts []contact.Contact
	for rows.Next() {
		c, err := r.scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("contact rows: %w", err)
	}

	return contacts, nil
}

// interestsParam нормализует nil к пустому массиву: колонка NOT NULL.
func interestsParam(interests []string) []string {
	if interests == nil {
		return []string{}
	}
	return interests
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
