//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/deppfellow/fitness-center/internal/database"
	"github.com/deppfellow/fitness-center/internal/errs"
	"github.com/deppfellow/fitness-center/internal/model"
	"github.com/deppfellow/fitness-center/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
)

func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("fitness"),
		postgrescontainer.WithUsername("fitness"),
		postgrescontainer.WithPassword("fitness"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, waitForDatabase(ctx, connStr))

	logger := zerolog.Nop()
	require.NoError(t, database.Migrate(ctx, &logger, connStr))
	// Second run must be a no-op.
	require.NoError(t, database.Migrate(ctx, &logger, connStr))

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func waitForDatabase(ctx context.Context, connStr string) error {
	deadline := time.Now().Add(30 * time.Second)
	for {
		pool, err := pgxpool.New(ctx, connStr)
		if err == nil {
			err = pool.Ping(ctx)
			pool.Close()
			if err == nil {
				return nil
			}
		}
		if time.Now().After(deadline) {
			return err
		}
		time.Sleep(time.Second)
	}
}

func TestRepositoriesAgainstPostgres(t *testing.T) {
	ctx := context.Background()
	pool := setupPool(t)

	members := NewMemberRepository(pool)
	sessions := NewWorkoutSessionRepository(pool)

	t.Run("empty tables list as empty", func(t *testing.T) {
		list, err := members.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)

		got, err := sessions.ListByMember(ctx, 1)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	var memberID int

	t.Run("member lifecycle", func(t *testing.T) {
		id, err := members.Create(ctx, model.MemberFields{Name: "Ann", Email: "ann@example.com", Phone: "555-0100"})
		require.NoError(t, err)
		require.Positive(t, id)
		memberID = id

		got, err := members.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, model.Member{ID: id, Name: "Ann", Email: "ann@example.com", Phone: "555-0100"}, *got)

		affected, err := members.Update(ctx, id, model.MemberFields{Name: "Ann B", Email: "annb@example.com", Phone: "555-0101"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, affected)

		got, err = members.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Ann B", got.Name)

		list, err := members.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("absent member", func(t *testing.T) {
		got, err := members.GetByID(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, got)

		affected, err := members.Update(ctx, 999999, model.MemberFields{Name: "x", Email: "y", Phone: "z"})
		require.NoError(t, err)
		assert.Zero(t, affected)

		affected, err = members.Delete(ctx, 999999)
		require.NoError(t, err)
		assert.Zero(t, affected)
	})

	t.Run("ids beyond int4 are absent", func(t *testing.T) {
		const id = 2147483648

		got, err := members.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got)

		affected, err := members.Delete(ctx, id)
		require.NoError(t, err)
		assert.Zero(t, affected)

		list, err := sessions.ListByMember(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	var sessionID int
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("session lifecycle", func(t *testing.T) {
		id, err := sessions.Create(ctx, model.WorkoutSession{MemberID: memberID, Date: date, Duration: 45, WorkoutType: "cardio"})
		require.NoError(t, err)
		sessionID = id

		list, err := sessions.ListByMember(ctx, memberID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, memberID, list[0].MemberID)
		assert.Equal(t, "2024-03-01", list[0].Date.Format(model.DateLayout))
		assert.Equal(t, 45, list[0].Duration)

		affected, err := sessions.Update(ctx, id, model.WorkoutSessionFields{Date: date.AddDate(0, 0, 1), Duration: 60, WorkoutType: "strength"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, affected)

		list, err = sessions.ListByMember(ctx, memberID)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-02", list[0].Date.Format(model.DateLayout))
		assert.Equal(t, "strength", list[0].WorkoutType)
		assert.Equal(t, memberID, list[0].MemberID)
	})

	t.Run("dangling member reference", func(t *testing.T) {
		_, err := sessions.Create(ctx, model.WorkoutSession{MemberID: 999999, Date: date, Duration: 30, WorkoutType: "yoga"})

		var storageErr *errs.StorageError
		require.ErrorAs(t, err, &storageErr)
		assert.Equal(t, sqlerr.ForeignKeyViolation, sqlerr.ErrCode(err))
	})

	t.Run("delete blocked while sessions exist", func(t *testing.T) {
		_, err := members.Delete(ctx, memberID)
		assert.Equal(t, sqlerr.ForeignKeyViolation, sqlerr.ErrCode(err))

		got, err := members.GetByID(ctx, memberID)
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("delete session then member", func(t *testing.T) {
		affected, err := sessions.Delete(ctx, sessionID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, affected)

		affected, err = members.Delete(ctx, memberID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, affected)

		got, err := members.GetByID(ctx, memberID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
