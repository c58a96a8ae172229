package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	dt "assistant/internal/core/domain/datetime"
	e "assistant/internal/core/domain/errors"
	"assistant/internal/core/domain/event"
	"assistant/internal/core/domain/user"

	"github.com/jackc/pgx/v4"
)

const eventColumns = `id, user_id, type, title, starts_at, created_at`

type PgxEventRepository struct {
	db DBTX
}

func NewPgxEventRepository(db DBTX) *PgxEventRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxEventRepository{db: db}
}

func (r *PgxEventRepository) Create(
	ctx context.Context,
	input event.CreateInput,
) (ev event.ScheduledEvent, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO scheduled_event (user_id, type, title, starts_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+eventColumns,
		string(input.UserID),
		input.Type,
		input.Title,
		input.StartsAt.Std(),
		input.CreatedAt.Std(),
	)
	return decodeEvent(row)
}

func (r *PgxEventRepository) Read(
	ctx context.Context,
	options event.ReadOptions,
) (events []event.ScheduledEvent, err error) {
	where, args := encodeEventFilter(options)
	query := `SELECT ` + eventColumns + ` FROM scheduled_event` + where
	if options.OrderByStartAt {
		query += " ORDER BY starts_at ASC"
	} else {
		query += " ORDER BY id ASC"
	}
	if options.Limit.IsPresent {
		args = append(args, int64(options.Limit.Value))
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return events, err
	}
	defer rows.Close()

	events = make([]event.ScheduledEvent, 0)
	for rows.Next() {
		ev, err := decodeEvent(rows)
		if err != nil {
			return events, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *PgxEventRepository) Count(
	ctx context.Context,
	options event.ReadOptions,
) (count uint, err error) {
	where, args := encodeEventFilter(options)
	row := r.db.QueryRow(ctx, `SELECT count(*) FROM scheduled_event`+where, args...)
	var n int64
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return uint(n), nil
}

func encodeEventFilter(options event.ReadOptions) (string, []interface{}) {
	conditions := make([]string, 0, 2)
	args := make([]interface{}, 0, 2)

	if options.UserIDEquals.IsPresent {
		args = append(args, string(options.UserIDEquals.Value))
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if options.StartsAfter.IsPresent {
		args = append(args, options.StartsAfter.Value.Std())
		conditions = append(conditions, fmt.Sprintf("starts_at > $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func decodeEvent(row pgx.Row) (ev event.ScheduledEvent, err error) {
	var (
		id        int64
		userID    string
		startsAt  time.Time
		createdAt time.Time
	)
	err = row.Scan(&id, &userID, &ev.Type, &ev.Title, &startsAt, &createdAt)
	if err != nil {
		return ev, err
	}
	ev.ID = event.ID(id)
	ev.UserID = user.ID(userID)
	ev.StartsAt = dt.NaiveFromStorage(startsAt)
	ev.CreatedAt = dt.NaiveFromStorage(createdAt)
	return ev, nil
}
