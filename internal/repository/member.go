package repository

import (
	"context"
	"errors"
	"time"

	"github.com/deppfellow/fitness-center/internal/model"
	"github.com/deppfellow/fitness-center/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entityMember = "member"

// MemberRepository persists members in the members table.
type MemberRepository struct {
	pool *pgxpool.Pool
}

func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

// Create inserts a member and returns the id assigned by the store.
func (r *MemberRepository) Create(ctx context.Context, fields model.MemberFields) (id int, err error) {
	defer observe(entityMember, "create", time.Now(), &err)

	const stmt = `INSERT INTO members (name, email, phone) VALUES ($1, $2, $3) RETURNING id`

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return 0, sqlerr.HandleError("members.create", err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return 0, sqlerr.HandleError("members.create", err)
	}
	defer tx.Rollback(ctx)

	if err = tx.QueryRow(ctx, stmt, fields.Name, fields.Email, fields.Phone).Scan(&id); err != nil {
		return 0, sqlerr.HandleError("members.create", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, sqlerr.HandleError("members.create", err)
	}
	return id, nil
}

// List returns every member ordered by id. An empty table yields an empty slice.
func (r *MemberRepository) List(ctx context.Context) (members []model.Member, err error) {
	defer observe(entityMember, "list", time.Now(), &err)

	const query = `SELECT id, name, email, phone FROM members ORDER BY id`

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, sqlerr.HandleError("members.list", err)
	}
	defer conn.Release()

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, sqlerr.HandleError("members.list", err)
	}

	members, err = pgx.CollectRows(rows, pgx.RowToStructByPos[model.Member])
	if err != nil {
		return nil, sqlerr.HandleError("members.list", err)
	}
	return members, nil
}

// GetByID returns the member with the given id, or nil when absent.
func (r *MemberRepository) GetByID(ctx context.Context, id int) (member *model.Member, err error) {
	defer observe(entityMember, "get", time.Now(), &err)

	if !storableID(id) {
		return nil, nil
	}

	const query = `SELECT id, name, email, phone FROM members WHERE id = $1`

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return nil, sqlerr.HandleError("members.get", err)
	}
	defer conn.Release()

	var m model.Member
	err = conn.QueryRow(ctx, query, id).Scan(&m.ID, &m.Name, &m.Email, &m.Phone)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, sqlerr.HandleError("members.get", err)
	}
	return &m, nil
}

// Update replaces every writable field of the member and reports how many
// rows matched. Zero rows is not an error.
func (r *MemberRepository) Update(ctx context.Context, id int, fields model.MemberFields) (affected int64, err error) {
	defer observe(entityMember, "update", time.Now(), &err)

	if !storableID(id) {
		return 0, nil
	}

	const stmt = `UPDATE members SET name = $1, email = $2, phone = $3 WHERE id = $4`

	return execInTx(ctx, r.pool, "members.update", stmt, fields.Name, fields.Email, fields.Phone, id)
}

// Delete removes the member and reports how many rows matched.
//
// A member still referenced by workout sessions is not removed; the
// foreign-key violation comes back as a StorageError.
func (r *MemberRepository) Delete(ctx context.Context, id int) (affected int64, err error) {
	defer observe(entityMember, "delete", time.Now(), &err)

	if !storableID(id) {
		return 0, nil
	}

	const stmt = `DELETE FROM members WHERE id = $1`

	return execInTx(ctx, r.pool, "members.delete", stmt, id)
}

// execInTx runs a single write statement on its own connection and transaction.
func execInTx(ctx context.Context, pool *pgxpool.Pool, op string, stmt string, args ...any) (int64, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return 0, sqlerr.HandleError(op, err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return 0, sqlerr.HandleError(op, err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, stmt, args...)
	if err != nil {
		return 0, sqlerr.HandleError(op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, sqlerr.HandleError(op, err)
	}
	return tag.RowsAffected(), nil
}
