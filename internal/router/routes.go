package router

import (
	"net/http"

	"github.com/deppfellow/fitness-center/internal/handler"
	"github.com/deppfellow/fitness-center/internal/model"
	"github.com/labstack/echo/v4"
)

func registerMemberRoutes(r *echo.Echo, h *handler.Handlers) {
	m := h.Members

	members := r.Group("/members")
	members.POST("", handler.Handle(m.Handler, m.CreateMember, http.StatusCreated, handler.New[model.CreateMemberRequest]()))
	members.GET("", handler.Handle(m.Handler, m.ListMembers, http.StatusOK, handler.New[model.ListMembersRequest]()))
	members.GET("/:id", handler.Handle(m.Handler, m.GetMember, http.StatusOK, handler.New[model.GetMemberRequest]()))
	members.PUT("/:id", handler.Handle(m.Handler, m.UpdateMember, http.StatusOK, handler.New[model.UpdateMemberRequest]()))
	members.DELETE("/:id", handler.Handle(m.Handler, m.DeleteMember, http.StatusOK, handler.New[model.DeleteMemberRequest]()))
}

func registerWorkoutSessionRoutes(r *echo.Echo, h *handler.Handlers) {
	ws := h.WorkoutSessions

	workouts := r.Group("/workouts")
	workouts.POST("", handler.Handle(ws.Handler, ws.CreateWorkoutSession, http.StatusCreated, handler.New[model.CreateWorkoutSessionRequest]()))
	workouts.GET("/:member_id", handler.Handle(ws.Handler, ws.ListWorkoutSessions, http.StatusOK, handler.New[model.ListWorkoutSessionsRequest]()))
	workouts.PUT("/:id", handler.Handle(ws.Handler, ws.UpdateWorkoutSession, http.StatusOK, handler.New[model.UpdateWorkoutSessionRequest]()))
	workouts.DELETE("/:id", handler.Handle(ws.Handler, ws.DeleteWorkoutSession, http.StatusOK, handler.New[model.DeleteWorkoutSessionRequest]()))
}
