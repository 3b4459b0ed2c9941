package service

import (
	"context"

	"github.com/deppfellow/fitness-center/internal/errs"
	"github.com/deppfellow/fitness-center/internal/model"
	"github.com/deppfellow/fitness-center/internal/sqlerr"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	MessageMemberNotFound    = "Member not found"
	MessageMemberHasSessions = "Member has workout sessions"
	codeMemberNotFound       = "MEMBER_NOT_FOUND"
	codeMemberHasSessions    = "MEMBER_HAS_WORKOUT_SESSIONS"
)

// MemberStore is the persistence the member service depends on.
type MemberStore interface {
	Create(ctx context.Context, fields model.MemberFields) (int, error)
	List(ctx context.Context) ([]model.Member, error)
	GetByID(ctx context.Context, id int) (*model.Member, error)
	Update(ctx context.Context, id int, fields model.MemberFields) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

// WelcomeNotifier schedules the welcome message for a new member.
type WelcomeNotifier interface {
	EnqueueMemberWelcome(ctx context.Context, memberID int, to, name string) error
}

type MemberService struct {
	store    MemberStore
	notifier WelcomeNotifier
}

// NewMemberService builds the service. notifier may be nil.
func NewMemberService(store MemberStore, notifier WelcomeNotifier) *MemberService {
	return &MemberService{store: store, notifier: notifier}
}

// Create stores a member and schedules its welcome email.
//
// Failing to schedule the email is logged and does not fail the create.
func (s *MemberService) Create(ctx context.Context, fields model.MemberFields) (int, error) {
	id, err := s.store.Create(ctx, fields)
	if err != nil {
		return 0, err
	}

	logger := zerolog.Ctx(ctx)
	logger.Info().Int("member_id", id).Msg("member created")

	if s.notifier != nil {
		if err := s.notifier.EnqueueMemberWelcome(ctx, id, fields.Email, fields.Name); err != nil {
			logger.Warn().Err(err).Int("member_id", id).Msg("could not schedule member welcome email")
		}
	}

	return id, nil
}

// List returns every member; an empty store yields an empty, non-nil slice.
func (s *MemberService) List(ctx context.Context) ([]model.Member, error) {
	members, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if members == nil {
		members = []model.Member{}
	}
	return members, nil
}

// Get returns the member or a 404 HTTPError.
func (s *MemberService) Get(ctx context.Context, id int) (*model.Member, error) {
	member, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		code := codeMemberNotFound
		return nil, errs.NewNotFoundError(MessageMemberNotFound, &code)
	}
	return member, nil
}

// Update replaces the member's fields. An id that matches no row is not an error.
func (s *MemberService) Update(ctx context.Context, id int, fields model.MemberFields) error {
	affected, err := s.store.Update(ctx, id, fields)
	if err != nil {
		return err
	}
	if affected == 0 {
		zerolog.Ctx(ctx).Debug().Int("member_id", id).Msg("member update matched no rows")
	}
	return nil
}

// Delete removes the member. An id that matches no row is not an error.
//
// Members still referenced by workout sessions are kept and a 409 is returned.
func (s *MemberService) Delete(ctx context.Context, id int) error {
	affected, err := s.store.Delete(ctx, id)
	if sqlerr.ErrCode(err) == sqlerr.ForeignKeyViolation {
		code := codeMemberHasSessions
		return errors.WithStack(errs.NewConflictError(MessageMemberHasSessions, &code))
	}
	if err != nil {
		return err
	}
	if affected == 0 {
		zerolog.Ctx(ctx).Debug().Int("member_id", id).Msg("member delete matched no rows")
	}
	return nil
}
