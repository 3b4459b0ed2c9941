package service

import (
	"github.com/deppfellow/fitness-center/internal/lib/job"
	"github.com/deppfellow/fitness-center/internal/repository"
	"github.com/deppfellow/fitness-center/internal/server"
)

type Services struct {
	Members         *MemberService
	WorkoutSessions *WorkoutSessionService
	Job             *job.JobService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Members:         NewMemberService(repos.Members, s.Job),
		WorkoutSessions: NewWorkoutSessionService(repos.WorkoutSessions),
		Job:             s.Job,
	}, nil
}
