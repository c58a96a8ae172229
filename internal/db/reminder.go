package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	c "assistant/internal/core/domain/common"
	dt "assistant/internal/core/domain/datetime"
	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/reminder"
	"assistant/internal/core/domain/user"

	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
)

const reminderColumns = `id, user_id, title, description, due_at, priority, tags, status,
	created_at, updated_at, completed_at, last_reminded, immediate_notified`

type PgxReminderRepository struct {
	db DBTX
}

func NewPgxReminderRepository(db DBTX) *PgxReminderRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxReminderRepository{db: db}
}

func (r *PgxReminderRepository) Create(
	ctx context.Context,
	input reminder.CreateInput,
) (rem reminder.Reminder, err error) {
	tags, err := encodeTags(input.Tags)
	if err != nil {
		return rem, err
	}
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO reminder (user_id, title, description, due_at, priority, tags, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING `+reminderColumns,
		string(input.UserID),
		input.Title,
		sql.NullString{String: input.Description.Value, Valid: input.Description.IsPresent},
		input.DueAt.Std(),
		input.Priority.String(),
		tags,
		reminder.StatusPending.String(),
		input.CreatedAt.Std(),
	)
	return decodeReminder(row)
}

func (r *PgxReminderRepository) GetByID(
	ctx context.Context,
	id reminder.ID,
) (rem reminder.Reminder, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+reminderColumns+` FROM reminder WHERE id = $1`,
		int64(id),
	)
	rem, err = decodeReminder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return rem, reminder.ErrReminderDoesNotExist
	}
	return rem, err
}

func (r *PgxReminderRepository) Read(
	ctx context.Context,
	options reminder.ReadOptions,
) (reminders []reminder.Reminder, err error) {
	where, args := encodeReminderFilter(options)
	query := `SELECT ` + reminderColumns + ` FROM reminder` + where

	switch options.OrderBy {
	case reminder.OrderByDueAtAsc:
		query += " ORDER BY due_at ASC"
	case reminder.OrderByDueAtDesc:
		query += " ORDER BY due_at DESC"
	default:
		query += " ORDER BY id ASC"
	}
	if options.Limit.IsPresent {
		args = append(args, int64(options.Limit.Value))
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return reminders, err
	}
	defer rows.Close()

	reminders = make([]reminder.Reminder, 0)
	for rows.Next() {
		rem, err := decodeReminder(rows)
		if err != nil {
			return reminders, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

func (r *PgxReminderRepository) Count(
	ctx context.Context,
	options reminder.ReadOptions,
) (count uint, err error) {
	where, args := encodeReminderFilter(options)
	row := r.db.QueryRow(ctx, `SELECT count(*) FROM reminder`+where, args...)
	var n int64
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return uint(n), nil
}

func (r *PgxReminderRepository) SetStatus(
	ctx context.Context,
	input reminder.SetStatusInput,
) (rem reminder.Reminder, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE reminder
		SET status = $2,
			updated_at = $3,
			completed_at = CASE WHEN $2::text = 'completed' THEN $3 ELSE NULL END
		WHERE id = $1
		RETURNING `+reminderColumns,
		int64(input.ID),
		input.Status.String(),
		input.At.Std(),
	)
	rem, err = decodeReminder(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return rem, reminder.ErrReminderDoesNotExist
	}
	return rem, err
}

// MarkReminded is the atomic set-if-null update the approaching and
// overdue tiers rely on for their at-most-once guarantee.
func (r *PgxReminderRepository) MarkReminded(
	ctx context.Context,
	id reminder.ID,
	at dt.Naive,
) (bool, error) {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE reminder SET last_reminded = $2, updated_at = $2
		WHERE id = $1 AND last_reminded IS NULL`,
		int64(id),
		at.Std(),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *PgxReminderRepository) CompleteAfterFinalNotice(
	ctx context.Context,
	id reminder.ID,
	at dt.Naive,
) (bool, error) {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE reminder
		SET status = 'completed',
			completed_at = $2,
			last_reminded = $2,
			immediate_notified = TRUE,
			updated_at = $2
		WHERE id = $1 AND status = 'pending' AND immediate_notified = FALSE`,
		int64(id),
		at.Std(),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func encodeReminderFilter(options reminder.ReadOptions) (string, []interface{}) {
	conditions := make([]string, 0, 6)
	args := make([]interface{}, 0, 6)

	if options.UserIDEquals.IsPresent {
		args = append(args, string(options.UserIDEquals.Value))
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if options.StatusEquals.IsPresent {
		args = append(args, options.StatusEquals.Value.String())
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if options.DueAfter.IsPresent {
		args = append(args, options.DueAfter.Value.Std())
		conditions = append(conditions, fmt.Sprintf("due_at > $%d", len(args)))
	}
	if options.DueAtOrBefore.IsPresent {
		args = append(args, options.DueAtOrBefore.Value.Std())
		conditions = append(conditions, fmt.Sprintf("due_at <= $%d", len(args)))
	}
	if options.LastRemindedIsNull {
		conditions = append(conditions, "last_reminded IS NULL")
	}
	if options.ImmediateNotifiedEquals.IsPresent {
		args = append(args, options.ImmediateNotifiedEquals.Value)
		conditions = append(conditions, fmt.Sprintf("immediate_notified = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func encodeTags(tags []string) (pgtype.TextArray, error) {
	var encoded pgtype.TextArray
	if tags == nil {
		tags = []string{}
	}
	if err := encoded.Set(tags); err != nil {
		return encoded, err
	}
	return encoded, nil
}

func decodeReminder(row pgx.Row) (rem reminder.Reminder, err error) {
	var (
		id                int64
		userID            string
		description       sql.NullString
		dueAt             time.Time
		priority          string
		tags              pgtype.TextArray
		status            string
		createdAt         time.Time
		updatedAt         time.Time
		completedAt       sql.NullTime
		lastReminded      sql.NullTime
		immediateNotified bool
	)
	err = row.Scan(
		&id, &userID, &rem.Title, &description, &dueAt, &priority, &tags, &status,
		&createdAt, &updatedAt, &completedAt, &lastReminded, &immediateNotified,
	)
	if err != nil {
		return rem, err
	}

	rem.ID = reminder.ID(id)
	rem.UserID = user.ID(userID)
	if description.Valid {
		rem.Description = c.NewOptional(description.String, true)
	}
	rem.DueAt = dt.NaiveFromStorage(dueAt)
	rem.Priority, err = reminder.ParsePriority(priority)
	if err != nil {
		return rem, err
	}
	if err := tags.AssignTo(&rem.Tags); err != nil {
		return rem, err
	}
	rem.Status, err = reminder.ParseStatus(status)
	if err != nil {
		return rem, err
	}
	rem.CreatedAt = dt.NaiveFromStorage(createdAt)
	rem.UpdatedAt = dt.NaiveFromStorage(updatedAt)
	if completedAt.Valid {
		rem.CompletedAt = c.NewOptional(dt.NaiveFromStorage(completedAt.Time), true)
	}
	if lastReminded.Valid {
		rem.LastReminded = c.NewOptional(dt.NaiveFromStorage(lastReminded.Time), true)
	}
	rem.ImmediateNotified = immediateNotified
	return rem, nil
}
