package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/trailcrew/offroad-backend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const contactColumns = `id, name, email, phone, subject, message, status, priority,
	admin_notes, response_date, notified_at, created_at, updated_at`

type ContactRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewContactRepo(db *dbpg.DB) *ContactRepository {
	return &ContactRepository{db: db, strategy: defaultStrategy()}
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	query := `INSERT INTO contacts (` + contactColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Name, c.Email, c.Phone, c.Subject, c.Message, c.Status, c.Priority,
		c.AdminNotes, c.ResponseDate, c.NotifiedAt, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}

	return nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}

	c, err := scanContact(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrContactNotFound
		}
		return nil, fmt.Errorf("scan contact: %w", err)
	}

	return c, nil
}

func (r *ContactRepository) List(ctx context.Context, f domain.ContactFilter) ([]*domain.Contact, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Status != nil {
		conds = append(conds, "status = "+arg(*f.Status))
	}
	if f.Priority != nil {
		conds = append(conds, "priority = "+arg(*f.Priority))
	}

	query := `SELECT ` + contactColumns + ` FROM contacts`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		query += " LIMIT " + arg(f.Limit)
	}
	if f.Offset > 0 {
		query += " OFFSET " + arg(f.Offset)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var res []*domain.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func (r *ContactRepository) Update(ctx context.Context, c *domain.Contact) error {
	query := `UPDATE contacts
			  SET status = $2, priority = $3, admin_notes = $4, response_date = $5, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Status, c.Priority, c.AdminNotes, c.ResponseDate,
	)
	if err != nil {
		return fmt.Errorf("update contact: %w", err)
	}

	return requireRow(res, domain.ErrContactNotFound)
}

func (r *ContactRepository) MarkNotified(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE contacts SET notified_at = $2 WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, at)
	if err != nil {
		return fmt.Errorf("mark contact notified: %w", err)
	}

	return requireRow(res, domain.ErrContactNotFound)
}

func scanContact(row rowScanner) (*domain.Contact, error) {
	var c domain.Contact
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message, &c.Status, &c.Priority,
		&c.AdminNotes, &c.ResponseDate, &c.NotifiedAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}
