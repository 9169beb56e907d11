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

const registrationColumns = `id, event_id, user_id, participant_details, registration_status,
	payment_status, payment_amount, registration_date, payment_date,
	waiver_signed, admin_notes, updated_at`

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db, strategy: defaultStrategy()}
}

// Create inserts the registration and takes the participant slot in one
// transaction. The increment is conditional on the event still being open, so
// concurrent registrations against the last seat cannot both succeed.
func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	details, err := toJSON(reg.Details)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	insert := `INSERT INTO registrations (` + registrationColumns + `)
			   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = tx.ExecContext(
		ctx, insert,
		reg.ID, reg.EventID, reg.UserID, details, reg.Status,
		reg.Payment, reg.PaymentAmount, reg.RegisteredAt, reg.PaymentDate,
		reg.WaiverSigned, reg.AdminNotes, reg.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	increment := `UPDATE events
				  SET current_participants = current_participants + 1, updated_at = now()
				  WHERE id = $1
				    AND status = $2
				    AND registration_deadline >= now()
				    AND current_participants < max_participants`
	res, err := tx.ExecContext(ctx, increment, reg.EventID, domain.EventStatusActive)
	if err != nil {
		return fmt.Errorf("take event slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("take slot rows affected: %w", err)
	}
	if rows == 0 {
		// Somebody closed or filled the event between the service check and
		// here. Classify the refusal for the caller.
		var (
			status  domain.EventStatus
			dl      time.Time
			current int
			max     int
		)
		check := `SELECT status, registration_deadline, current_participants, max_participants
				  FROM events WHERE id = $1`
		if scanErr := tx.QueryRowContext(ctx, check, reg.EventID).
			Scan(&status, &dl, &current, &max); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return domain.ErrEventNotFound
			}
			return fmt.Errorf("classify refusal: %w", scanErr)
		}
		if status != domain.EventStatusActive || time.Now().After(dl) {
			return domain.ErrRegistrationClosed
		}
		return domain.ErrEventFull
	}

	return tx.Commit()
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return reg, nil
}

func (r *RegistrationRepository) List(ctx context.Context, f domain.RegistrationFilter) ([]*domain.Registration, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.EventID != "" {
		conds = append(conds, "event_id = "+arg(f.EventID))
	}
	if f.UserID != "" {
		conds = append(conds, "user_id = "+arg(f.UserID))
	}
	if f.Status != nil {
		conds = append(conds, "registration_status = "+arg(*f.Status))
	}

	query := `SELECT ` + registrationColumns + ` FROM registrations`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY registration_date DESC"
	if f.Limit > 0 {
		query += " LIMIT " + arg(f.Limit)
	}
	if f.Offset > 0 {
		query += " OFFSET " + arg(f.Offset)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, reg)
	}

	return res, rows.Err()
}

// UpdateStatus is a compare-and-set on the current status, so two admins
// racing the same registration cannot apply conflicting transitions. The seat
// release shares the transaction and is floored at zero.
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, reg *domain.Registration, to domain.RegistrationStatus, freeSeat bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	update := `UPDATE registrations
			   SET registration_status = $2, updated_at = now()
			   WHERE id = $1 AND registration_status = $3`
	res, err := tx.ExecContext(ctx, update, reg.ID, to, reg.Status)
	if err != nil {
		return fmt.Errorf("update registration status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("status rows affected: %w", err)
	}
	if rows == 0 {
		var exists bool
		if scanErr := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM registrations WHERE id = $1)`, reg.ID).
			Scan(&exists); scanErr != nil {
			return fmt.Errorf("classify status update: %w", scanErr)
		}
		if !exists {
			return domain.ErrRegistrationNotFound
		}
		// The row moved to another status under us.
		return domain.ErrIllegalTransition
	}

	if freeSeat {
		release := `UPDATE events
					SET current_participants = GREATEST(current_participants - 1, 0), updated_at = now()
					WHERE id = $1`
		if _, err = tx.ExecContext(ctx, release, reg.EventID); err != nil {
			return fmt.Errorf("release event slot: %w", err)
		}
	}

	return tx.Commit()
}

func (r *RegistrationRepository) UpdatePayment(ctx context.Context, id string, status domain.PaymentStatus, paymentDate *time.Time) error {
	// paymentDate is only provided on the transition to paid; otherwise the
	// previously stamped date is kept.
	query := `UPDATE registrations
			  SET payment_status = $2, payment_date = COALESCE($3, payment_date), updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, paymentDate)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}

	return requireRow(res, domain.ErrRegistrationNotFound)
}

func scanRegistration(row rowScanner) (*domain.Registration, error) {
	var (
		reg     domain.Registration
		details []byte
	)
	err := row.Scan(
		&reg.ID, &reg.EventID, &reg.UserID, &details, &reg.Status,
		&reg.Payment, &reg.PaymentAmount, &reg.RegisteredAt, &reg.PaymentDate,
		&reg.WaiverSigned, &reg.AdminNotes, &reg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = fromJSON(details, &reg.Details); err != nil {
		return nil, err
	}

	return &reg, nil
}
