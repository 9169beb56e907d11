package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/trailcrew/offroad-backend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, title, description, short_description, event_date, location, price,
	max_participants, current_participants, difficulty, duration, images,
	equipment, requirements, includes, status, registration_deadline,
	created_by, tags, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{db: db, strategy: defaultStrategy()}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	location, err := toJSON(e.Location)
	if err != nil {
		return err
	}
	images, err := toJSON(e.Images)
	if err != nil {
		return err
	}

	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.ShortDescription, e.Date, location, e.Price,
		e.MaxParticipants, e.CurrentParticipants, e.Difficulty, e.Duration, images,
		pq.Array(e.Equipment), pq.Array(e.Requirements), pq.Array(e.Includes),
		e.Status, e.RegistrationDeadline, e.CreatedBy, pq.Array(e.Tags),
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error) {
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
	} else if !f.IncludeDrafts {
		conds = append(conds, "status <> "+arg(domain.EventStatusDraft))
	}
	if f.Difficulty != nil {
		conds = append(conds, "difficulty = "+arg(*f.Difficulty))
	}
	if f.Tag != "" {
		conds = append(conds, arg(f.Tag)+" = ANY(tags)")
	}

	query := `SELECT ` + eventColumns + ` FROM events`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY event_date ASC"
	if f.Limit > 0 {
		query += " LIMIT " + arg(f.Limit)
	}
	if f.Offset > 0 {
		query += " OFFSET " + arg(f.Offset)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// Update writes every editable field. current_participants is deliberately
// not part of the statement: only the registration paths touch the counter.
func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	location, err := toJSON(e.Location)
	if err != nil {
		return err
	}
	images, err := toJSON(e.Images)
	if err != nil {
		return err
	}

	query := `UPDATE events
			  SET title = $2, description = $3, short_description = $4, event_date = $5,
			      location = $6, price = $7, max_participants = $8, difficulty = $9,
			      duration = $10, images = $11, equipment = $12, requirements = $13,
			      includes = $14, registration_deadline = $15, tags = $16, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.ShortDescription, e.Date,
		location, e.Price, e.MaxParticipants, e.Difficulty,
		e.Duration, images, pq.Array(e.Equipment), pq.Array(e.Requirements),
		pq.Array(e.Includes), e.RegistrationDeadline, pq.Array(e.Tags),
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	return requireRow(res, domain.ErrEventNotFound)
}

func (r *EventRepository) UpdateStatus(ctx context.Context, id string, status domain.EventStatus) error {
	query := `UPDATE events SET status = $2, updated_at = now() WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update event status: %w", err)
	}

	return requireRow(res, domain.ErrEventNotFound)
}

// Delete removes the event only while it has no counted participants; the
// guard and the delete are a single statement.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1 AND current_participants = 0`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.ErrEventHasRegistrations
		}
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	// Nothing deleted: either the id is unknown or the event still has
	// registrations.
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy,
		`SELECT current_participants FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("classify delete: %w", err)
	}
	var participants int
	if err = row.Scan(&participants); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("classify delete: %w", err)
	}

	return domain.ErrEventHasRegistrations
}

// CompletePast flips active events whose date has passed to completed and
// returns them for logging.
func (r *EventRepository) CompletePast(ctx context.Context) ([]*domain.Event, error) {
	query := `UPDATE events
			  SET status = $2, updated_at = now()
			  WHERE status = $1 AND event_date < now()
			  RETURNING ` + eventColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		domain.EventStatusActive, domain.EventStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("complete past events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan completed event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var (
		e        domain.Event
		location []byte
		images   []byte
	)
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.ShortDescription, &e.Date, &location, &e.Price,
		&e.MaxParticipants, &e.CurrentParticipants, &e.Difficulty, &e.Duration, &images,
		pq.Array(&e.Equipment), pq.Array(&e.Requirements), pq.Array(&e.Includes),
		&e.Status, &e.RegistrationDeadline, &e.CreatedBy, pq.Array(&e.Tags),
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = fromJSON(location, &e.Location); err != nil {
		return nil, err
	}
	if err = fromJSON(images, &e.Images); err != nil {
		return nil, err
	}

	return &e, nil
}

func requireRow(res sql.Result, notFound error) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
