package repository

import (
	"context"
	"time"

	"github.com/deppfellow/fitness-center/internal/model"
	"github.com/deppfellow/fitness-center/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entityWorkoutSession = "workout_session"

// WorkoutSessionRepository persists sessions in the workout_sessions table.
type WorkoutSessionRepository struct {
	pool *pgxpool.Pool
}

func NewWorkoutSessionRepository(pool *pgxpool.Pool) *WorkoutSessionRepository {
	return &WorkoutSessionRepository{pool: pool}
}

// Create inserts a session and returns its id.
//
// The store enforces that MemberID references an existing member; a
// dangling reference surfaces as a StorageError with sqlerr.ForeignKeyViolation.
func (r *WorkoutSessionRepository) Create(ctx context.Context, session model.WorkoutSession) (id int, err error) {
	defer observe(entityWorkoutSession, "create", time.Now(), &err)

	const stmt = `INSERT INTO workout_sessions (member_id, date, duration, workout_type)
        VALUES ($1, $2, $3, $4) RETURNING id`

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return 0, sqlerr.HandleError("workout_sessions.create", err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return 0, sqlerr.HandleError("workout_sessions.create", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, stmt, session.MemberID, session.Date, session.Duration, session.WorkoutType).Scan(&id)
	if err != nil {
		return 0, sqlerr.HandleError("workout_sessions.create", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, sqlerr.HandleError("workout_sessions.create", err)
	}
	return id, nil
}

// ListByMember returns every session of a member ordered by date, then id.
func (r *WorkoutSessionRepository) ListByMember(ctx context.Context, memberID int) (sessions []model.WorkoutSession, err error) {
	defer observe(entityWorkoutSession, "list_by_member", time.Now(), &err)

	if !storableID(memberID) {
		return []model.WorkoutSession{}, nil
	}

	const query = `SELECT id, member_id, date, duration, workout_type
        FROM workout_sessions WHERE member_id = $1 ORDER BY date, id`

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, sqlerr.HandleError("workout_sessions.list_by_member", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query, memberID)
	if err != nil {
		return nil, sqlerr.HandleError("workout_sessions.list_by_member", err)
	}

	sessions, err = pgx.CollectRows(rows, pgx.RowToStructByPos[model.WorkoutSession])
	if err != nil {
		return nil, sqlerr.HandleError("workout_sessions.list_by_member", err)
	}
	return sessions, nil
}

// Update replaces date, duration and workout type. The member reference is fixed.
func (r *WorkoutSessionRepository) Update(ctx context.Context, id int, fields model.WorkoutSessionFields) (affected int64, err error) {
	defer observe(entityWorkoutSession, "update", time.Now(), &err)

	if !storableID(id) {
		return 0, nil
	}

	const stmt = `UPDATE workout_sessions SET date = $1, duration = $2, workout_type = $3 WHERE id = $4`

	return execInTx(ctx, r.pool, "workout_sessions.update", stmt, fields.Date, fields.Duration, fields.WorkoutType, id)
}

// Delete removes the session and reports how many rows matched.
func (r *WorkoutSessionRepository) Delete(ctx context.Context, id int) (affected int64, err error) {
	defer observe(entityWorkoutSession, "delete", time.Now(), &err)

	if !storableID(id) {
		return 0, nil
	}

	const stmt = `DELETE FROM workout_sessions WHERE id = $1`

	return execInTx(ctx, r.pool, "workout_sessions.delete", stmt, id)
}
