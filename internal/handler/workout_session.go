package handler

import (
	"github.com/deppfellow/fitness-center/internal/model"
	"github.com/deppfellow/fitness-center/internal/server"
	"github.com/deppfellow/fitness-center/internal/service"
	"github.com/labstack/echo/v4"
)

const (
	MessageWorkoutSessionAdded   = "Workout session added successfully!"
	MessageWorkoutSessionUpdated = "Workout session updated successfully!"
	MessageWorkoutSessionDeleted = "Workout session deleted successfully!"
)

type WorkoutSessionHandler struct {
	Handler
	sessions *service.WorkoutSessionService
}

func NewWorkoutSessionHandler(s *server.Server, sessions *service.WorkoutSessionService) *WorkoutSessionHandler {
	return &WorkoutSessionHandler{
		Handler:  NewHandler(s),
		sessions: sessions,
	}
}

func (h *WorkoutSessionHandler) CreateWorkoutSession(c echo.Context, req *model.CreateWorkoutSessionRequest) (*CreatedResponse, error) {
	id, err := h.sessions.Create(c.Request().Context(), req.Session())
	if err != nil {
		return nil, err
	}
	return &CreatedResponse{Message: MessageWorkoutSessionAdded, ID: id}, nil
}

func (h *WorkoutSessionHandler) ListWorkoutSessions(c echo.Context, req *model.ListWorkoutSessionsRequest) ([]WorkoutSessionResponse, error) {
	sessions, err := h.sessions.ListByMember(c.Request().Context(), req.MemberID)
	if err != nil {
		return nil, err
	}

	resp := make([]WorkoutSessionResponse, 0, len(sessions))
	for _, ws := range sessions {
		resp = append(resp, toWorkoutSessionResponse(ws))
	}
	return resp, nil
}

func (h *WorkoutSessionHandler) UpdateWorkoutSession(c echo.Context, req *model.UpdateWorkoutSessionRequest) (*MessageResponse, error) {
	if err := h.sessions.Update(c.Request().Context(), req.ID, req.Fields()); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: MessageWorkoutSessionUpdated}, nil
}

func (h *WorkoutSessionHandler) DeleteWorkoutSession(c echo.Context, req *model.DeleteWorkoutSessionRequest) (*MessageResponse, error) {
	if err := h.sessions.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: MessageWorkoutSessionDeleted}, nil
}
