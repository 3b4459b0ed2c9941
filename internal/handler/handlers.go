package handler

import (
	"github.com/deppfellow/fitness-center/internal/server"
	"github.com/deppfellow/fitness-center/internal/service"
)

// Handlers groups all HTTP handlers.
type Handlers struct {
	Health          *HealthHandler
	OpenAPI         *OpenAPIHandler
	Members         *MemberHandler
	WorkoutSessions *WorkoutSessionHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:          NewHealthHandler(s),
		OpenAPI:         NewOpenAPIHandler(s),
		Members:         NewMemberHandler(s, services.Members),
		WorkoutSessions: NewWorkoutSessionHandler(s, services.WorkoutSessions),
	}
}
