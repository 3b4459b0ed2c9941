package repository

import (
	"math"
	"time"

	"github.com/deppfellow/fitness-center/internal/metrics"
	"github.com/deppfellow/fitness-center/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Members         *MemberRepository
	WorkoutSessions *WorkoutSessionRepository
}

// NewRepositories constructs the repository container on top of the shared pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Members:         NewMemberRepository(s.DB.Pool),
		WorkoutSessions: NewWorkoutSessionRepository(s.DB.Pool),
	}
}

// observe is deferred by every operation with a pointer to its named error.
func observe(entity, operation string, start time.Time, errp *error) {
	metrics.ObserveRepository(entity, operation, start, *errp)
}

// storableID reports whether id fits the int4 key columns. Ids outside that
// range cannot match a row, so callers treat them as absent without a query.
func storableID(id int) bool {
	return id >= math.MinInt32 && id <= math.MaxInt32
}
