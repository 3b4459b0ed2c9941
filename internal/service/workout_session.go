package service

import (
	"context"

	"github.com/deppfellow/fitness-center/internal/errs"
	"github.com/deppfellow/fitness-center/internal/model"
	"github.com/rs/zerolog"
)

const (
	MessageNoWorkoutSessions = "No workout sessions found for this member"
	codeNoWorkoutSessions    = "WORKOUT_SESSIONS_NOT_FOUND"
)

// WorkoutSessionStore is the persistence the workout session service depends on.
type WorkoutSessionStore interface {
	Create(ctx context.Context, session model.WorkoutSession) (int, error)
	ListByMember(ctx context.Context, memberID int) ([]model.WorkoutSession, error)
	Update(ctx context.Context, id int, fields model.WorkoutSessionFields) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type WorkoutSessionService struct {
	store WorkoutSessionStore
}

func NewWorkoutSessionService(store WorkoutSessionStore) *WorkoutSessionService {
	return &WorkoutSessionService{store: store}
}

// Create stores a session. A MemberID with no matching member fails in the
// store and comes back as a StorageError.
func (s *WorkoutSessionService) Create(ctx context.Context, session model.WorkoutSession) (int, error) {
	id, err := s.store.Create(ctx, session)
	if err != nil {
		return 0, err
	}

	zerolog.Ctx(ctx).Info().
		Int("workout_session_id", id).
		Int("member_id", session.MemberID).
		Msg("workout session created")

	return id, nil
}

// ListByMember returns the member's sessions, or a 404 HTTPError when there are none.
//
// A member that does not exist and a member without sessions are not distinguished.
func (s *WorkoutSessionService) ListByMember(ctx context.Context, memberID int) ([]model.WorkoutSession, error) {
	sessions, err := s.store.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		code := codeNoWorkoutSessions
		return nil, errs.NewNotFoundError(MessageNoWorkoutSessions, &code)
	}
	return sessions, nil
}

// Update replaces date, duration and type. An id that matches no row is not an error.
func (s *WorkoutSessionService) Update(ctx context.Context, id int, fields model.WorkoutSessionFields) error {
	affected, err := s.store.Update(ctx, id, fields)
	if err != nil {
		return err
	}
	if affected == 0 {
		zerolog.Ctx(ctx).Debug().Int("workout_session_id", id).Msg("workout session update matched no rows")
	}
	return nil
}

// Delete removes the session. An id that matches no row is not an error.
func (s *WorkoutSessionService) Delete(ctx context.Context, id int) error {
	affected, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		zerolog.Ctx(ctx).Debug().Int("workout_session_id", id).Msg("workout session delete matched no rows")
	}
	return nil
}
