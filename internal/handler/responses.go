package handler

import "github.com/deppfellow/fitness-center/internal/model"

// MessageResponse is the body of successful updates and deletes.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is the body of successful creates.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

type MemberResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type WorkoutSessionResponse struct {
	ID          int    `json:"id"`
	MemberID    int    `json:"member_id"`
	Date        string `json:"date"`
	Duration    int    `json:"duration"`
	WorkoutType string `json:"workout_type"`
}

func toMemberResponse(m model.Member) MemberResponse {
	return MemberResponse{
		ID:    m.ID,
		Name:  m.Name,
		Email: m.Email,
		Phone: m.Phone,
	}
}

func toWorkoutSessionResponse(ws model.WorkoutSession) WorkoutSessionResponse {
	return WorkoutSessionResponse{
		ID:          ws.ID,
		MemberID:    ws.MemberID,
		Date:        ws.Date.Format(model.DateLayout),
		Duration:    ws.Duration,
		WorkoutType: ws.WorkoutType,
	}
}
