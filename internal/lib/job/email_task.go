package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskMemberWelcome is the job type name stored in Redis.
	TaskMemberWelcome = "email:member_welcome"
)

// MemberWelcomePayload is the JSON payload of the member welcome task.
type MemberWelcomePayload struct {
	MemberID int    `json:"member_id"`
	To       string `json:"to"`
	Name     string `json:"name"`
}

// NewMemberWelcomeTask constructs an Asynq task for greeting a new member.
//
// It is retried up to 3 times on the "default" queue and killed after 30 seconds.
func NewMemberWelcomeTask(memberID int, to, name string) (*asynq.Task, error) {
	payload, err := json.Marshal(MemberWelcomePayload{
		MemberID: memberID,
		To:       to,
		Name:     name,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskMemberWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
