package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/deppfellow/fitness-center/internal/errs"
	"github.com/deppfellow/fitness-center/internal/model"
	"github.com/deppfellow/fitness-center/internal/service/servicetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, status, httpErr.Status)
	assert.Equal(t, message, httpErr.Message)
}

func TestMemberServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	db := servicetest.NewDB()
	notifier := &servicetest.Notifier{}
	svc := NewMemberService(db.Members(), notifier)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	id, err := svc.Create(ctx, model.MemberFields{Name: "Ann", Email: "ann@example.com", Phone: "555"})
	require.NoError(t, err)
	assert.Equal(t, []int{id}, notifier.Welcomed)

	got, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)

	require.NoError(t, svc.Update(ctx, id, model.MemberFields{Name: "Bea", Email: "bea@example.com", Phone: "556"}))
	got, err = svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.Member{ID: id, Name: "Bea", Email: "bea@example.com", Phone: "556"}, *got)

	require.NoError(t, svc.Delete(ctx, id))
	_, err = svc.Get(ctx, id)
	requireHTTPError(t, err, http.StatusNotFound, MessageMemberNotFound)
}

func TestMemberServiceGetMissing(t *testing.T) {
	svc := NewMemberService(servicetest.NewDB().Members(), nil)

	_, err := svc.Get(context.Background(), 42)
	requireHTTPError(t, err, http.StatusNotFound, "Member not found")
}

func TestMemberServiceUnmatchedWritesSucceed(t *testing.T) {
	ctx := context.Background()
	db := servicetest.NewDB()
	svc := NewMemberService(db.Members(), nil)

	assert.NoError(t, svc.Update(ctx, 99, model.MemberFields{Name: "x", Email: "y", Phone: "z"}))
	assert.NoError(t, svc.Delete(ctx, 99))
	assert.Zero(t, db.MemberCount())
}

func TestMemberServiceNotifierFailureDoesNotFailCreate(t *testing.T) {
	ctx := context.Background()
	db := servicetest.NewDB()
	svc := NewMemberService(db.Members(), &servicetest.Notifier{Err: errors.New("redis down")})

	id, err := svc.Create(ctx, model.MemberFields{Name: "Ann", Email: "a@b.c", Phone: "1"})
	require.NoError(t, err)
	assert.Positive(t, id)
	assert.Equal(t, 1, db.MemberCount())
}

func TestMemberServiceDeleteBlockedBySessions(t *testing.T) {
	ctx := context.Background()
	db := servicetest.NewDB()
	members := NewMemberService(db.Members(), nil)
	sessions := NewWorkoutSessionService(db.WorkoutSessions())

	id, err := members.Create(ctx, model.MemberFields{Name: "Ann", Email: "a@b.c", Phone: "1"})
	require.NoError(t, err)
	_, err = sessions.Create(ctx, model.WorkoutSession{MemberID: id, Date: time.Now(), Duration: 30, WorkoutType: "yoga"})
	require.NoError(t, err)

	err = members.Delete(ctx, id)
	requireHTTPError(t, err, http.StatusConflict, MessageMemberHasSessions)
	assert.Equal(t, 1, db.MemberCount())
}

func TestMemberServiceStorageFailure(t *testing.T) {
	ctx := context.Background()
	db := servicetest.NewDB()
	db.Fail = true
	svc := NewMemberService(db.Members(), nil)

	_, err := svc.List(ctx)
	assert.True(t, servicetest.IsStorageError(err))

	_, err = svc.Get(ctx, 1)
	assert.True(t, servicetest.IsStorageError(err))

	err = svc.Delete(ctx, 1)
	assert.True(t, servicetest.IsStorageError(err))
	assert.False(t, errors.Is(err, &errs.HTTPError{}))
}

func TestWorkoutSessionServiceLifecycle(t *testing.T) {
	ctx := context.Background()
	db := servicetest.NewDB()
	memberID, err := db.Members().Create(ctx, model.MemberFields{Name: "Ann", Email: "a@b.c", Phone: "1"})
	require.NoError(t, err)

	svc := NewWorkoutSessionService(db.WorkoutSessions())

	_, err = svc.ListByMember(ctx, memberID)
	requireHTTPError(t, err, http.StatusNotFound, MessageNoWorkoutSessions)

	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	id, err := svc.Create(ctx, model.WorkoutSession{MemberID: memberID, Date: day, Duration: 45, WorkoutType: "cardio"})
	require.NoError(t, err)

	list, err := svc.ListByMember(ctx, memberID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)

	require.NoError(t, svc.Update(ctx, id, model.WorkoutSessionFields{Date: day, Duration: 60, WorkoutType: "strength"}))
	list, err = svc.ListByMember(ctx, memberID)
	require.NoError(t, err)
	assert.Equal(t, 60, list[0].Duration)
	assert.Equal(t, memberID, list[0].MemberID)

	require.NoError(t, svc.Delete(ctx, id))
	require.NoError(t, svc.Delete(ctx, id))
	assert.Zero(t, db.SessionCount())
}

func TestWorkoutSessionServiceDanglingMember(t *testing.T) {
	db := servicetest.NewDB()
	svc := NewWorkoutSessionService(db.WorkoutSessions())

	_, err := svc.Create(context.Background(), model.WorkoutSession{MemberID: 999, Date: time.Now(), Duration: 30, WorkoutType: "yoga"})

	assert.True(t, servicetest.IsStorageError(err))
	assert.Zero(t, db.SessionCount())
}
