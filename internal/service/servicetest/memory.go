// Package servicetest provides in-memory stores that mimic the Postgres
// repositories, including the member foreign key, for service and handler tests.
package servicetest

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/deppfellow/fitness-center/internal/errs"
	"github.com/deppfellow/fitness-center/internal/model"
	"github.com/deppfellow/fitness-center/internal/sqlerr"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrUnavailable simulates a lost database connection.
var ErrUnavailable = errors.New("connection refused")

// DB holds both tables behind one lock so the foreign key can be enforced.
type DB struct {
	mu            sync.Mutex
	members       map[int]model.Member
	sessions      map[int]model.WorkoutSession
	nextMemberID  int
	nextSessionID int

	// Fail makes every operation return a StorageError wrapping ErrUnavailable.
	Fail bool
}

func NewDB() *DB {
	return &DB{
		members:  map[int]model.Member{},
		sessions: map[int]model.WorkoutSession{},
	}
}

func (db *DB) Members() *MemberStore {
	return &MemberStore{db: db}
}

func (db *DB) WorkoutSessions() *WorkoutSessionStore {
	return &WorkoutSessionStore{db: db}
}

// MemberCount and SessionCount expose table sizes for assertions.
func (db *DB) MemberCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.members)
}

func (db *DB) SessionCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.sessions)
}

func (db *DB) unavailable(op string) error {
	return sqlerr.HandleError(op, ErrUnavailable)
}

func fkViolation(op, table string) error {
	return sqlerr.HandleError(op, &pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		Message:        "violates foreign key constraint",
		TableName:      table,
		ConstraintName: "workout_sessions_member_id_fkey",
	})
}

type MemberStore struct {
	db *DB
}

func (s *MemberStore) Create(_ context.Context, fields model.MemberFields) (int, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Fail {
		return 0, s.db.unavailable("members.create")
	}

	s.db.nextMemberID++
	id := s.db.nextMemberID
	s.db.members[id] = model.Member{ID: id, Name: fields.Name, Email: fields.Email, Phone: fields.Phone}
	return id, nil
}

func (s *MemberStore) List(_ context.Context) ([]model.Member, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Fail {
		return nil, s.db.unavailable("members.list")
	}

	members := make([]model.Member, 0, len(s.db.members))
	for _, m := range s.db.members {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
	return members, nil
}

func (s *MemberStore) GetByID(_ context.Context, id int) (*model.Member, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Fail {
		return nil, s.db.unavailable("members.get")
	}

	m, ok := s.db.members[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (s *MemberStore) Update(_ context.Context, id int, fields model.MemberFields) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Fail {
		return 0, s.db.unavailable("members.update")
	}

	if _, ok := s.db.members[id]; !ok {
		return 0, nil
	}
	s.db.members[id] = model.Member{ID: id, Name: fields.Name, Email: fields.Email, Phone: fields.Phone}
	return 1, nil
}

func (s *MemberStore) Delete(_ context.Context, id int) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Fail {
		return 0, s.db.unavailable("members.delete")
	}

	for _, ws := range s.db.sessions {
		if ws.MemberID == id {
			return 0, fkViolation("members.delete", "workout_sessions")
		}
	}

	if _, ok := s.db.members[id]; !ok {
		return 0, nil
	}
	delete(s.db.members, id)
	return 1, nil
}

type WorkoutSessionStore struct {
	db *DB
}

func (s *WorkoutSessionStore) Create(_ context.Context, session model.WorkoutSession) (int, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Fail {
		return 0, s.db.unavailable("workout_sessions.create")
	}

	if _, ok := s.db.members[session.MemberID]; !ok {
		return 0, fkViolation("workout_sessions.create", "workout_sessions")
	}

	s.db.nextSessionID++
	session.ID = s.db.nextSessionID
	s.db.sessions[session.ID] = session
	return session.ID, nil
}

func (s *WorkoutSessionStore) ListByMember(_ context.Context, memberID int) ([]model.WorkoutSession, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Fail {
		return nil, s.db.unavailable("workout_sessions.list_by_member")
	}

	sessions := []model.WorkoutSession{}
	for _, ws := range s.db.sessions {
		if ws.MemberID == memberID {
			sessions = append(sessions, ws)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].Date.Equal(sessions[j].Date) {
			return sessions[i].Date.Before(sessions[j].Date)
		}
		return sessions[i].ID < sessions[j].ID
	})
	return sessions, nil
}

func (s *WorkoutSessionStore) Update(_ context.Context, id int, fields model.WorkoutSessionFields) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Fail {
		return 0, s.db.unavailable("workout_sessions.update")
	}

	ws, ok := s.db.sessions[id]
	if !ok {
		return 0, nil
	}
	ws.Date = fields.Date
	ws.Duration = fields.Duration
	ws.WorkoutType = fields.WorkoutType
	s.db.sessions[id] = ws
	return 1, nil
}

func (s *WorkoutSessionStore) Delete(_ context.Context, id int) (int64, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()
	if s.db.Fail {
		return 0, s.db.unavailable("workout_sessions.delete")
	}

	if _, ok := s.db.sessions[id]; !ok {
		return 0, nil
	}
	delete(s.db.sessions, id)
	return 1, nil
}

// Notifier records welcome emails instead of enqueueing them.
type Notifier struct {
	mu       sync.Mutex
	Welcomed []int
	Err      error
}

func (n *Notifier) EnqueueMemberWelcome(_ context.Context, memberID int, _, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.Err != nil {
		return n.Err
	}
	n.Welcomed = append(n.Welcomed, memberID)
	return nil
}

// IsStorageError reports whether err carries an *errs.StorageError.
func IsStorageError(err error) bool {
	var storageErr *errs.StorageError
	return errors.As(err, &storageErr)
}
