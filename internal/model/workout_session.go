package model

import (
	"time"

	"github.com/deppfellow/fitness-center/internal/validation"
)

// WorkoutSession is a single training session logged for a member.
type WorkoutSession struct {
	ID          int
	MemberID    int
	Date        time.Time
	Duration    int
	WorkoutType string
}

// WorkoutSessionFields holds the fields replaced by an update.
// MemberID is fixed at creation.
type WorkoutSessionFields struct {
	Date        time.Time
	Duration    int
	WorkoutType string
}

type CreateWorkoutSessionRequest struct {
	MemberID    int    `json:"member_id" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Duration    int    `json:"duration" validate:"required"`
	WorkoutType string `json:"workout_type" validate:"required"`
}

func (r *CreateWorkoutSessionRequest) Validate() error {
	return validation.Struct(r)
}

// Session converts the validated payload into a WorkoutSession without an id.
func (r *CreateWorkoutSessionRequest) Session() WorkoutSession {
	date, _ := time.Parse(DateLayout, r.Date)

	return WorkoutSession{
		MemberID:    r.MemberID,
		Date:        date,
		Duration:    r.Duration,
		WorkoutType: r.WorkoutType,
	}
}

type ListWorkoutSessionsRequest struct {
	MemberID int `param:"member_id" json:"-"`
}

func (r *ListWorkoutSessionsRequest) Validate() error {
	return validation.Struct(r)
}

type UpdateWorkoutSessionRequest struct {
	ID          int    `param:"id" json:"-"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Duration    int    `json:"duration" validate:"required"`
	WorkoutType string `json:"workout_type" validate:"required"`
}

func (r *UpdateWorkoutSessionRequest) Validate() error {
	return validation.Struct(r)
}

func (r *UpdateWorkoutSessionRequest) Fields() WorkoutSessionFields {
	date, _ := time.Parse(DateLayout, r.Date)

	return WorkoutSessionFields{
		Date:        date,
		Duration:    r.Duration,
		WorkoutType: r.WorkoutType,
	}
}

type DeleteWorkoutSessionRequest struct {
	ID int `param:"id" json:"-"`
}

func (r *DeleteWorkoutSessionRequest) Validate() error {
	return validation.Struct(r)
}
