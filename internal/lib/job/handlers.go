package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/fitness-center/internal/metrics"
	"github.com/hibiken/asynq"
)

// handleMemberWelcomeTask sends the welcome email for a newly created member.
//
// With email delivery disabled the task completes without sending.
func (j *JobService) handleMemberWelcomeTask(ctx context.Context, t *asynq.Task) error {
	var p MemberWelcomePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		metrics.RecordWelcomeEmail("error")
		return fmt.Errorf("failed to unmarshal member welcome payload: %w: %w", err, asynq.SkipRetry)
	}

	logger := j.logger.With().
		Str("type", TaskMemberWelcome).
		Int("member_id", p.MemberID).
		Str("to", p.To).
		Logger()

	if !j.emailClient.Enabled() {
		metrics.RecordWelcomeEmail("skipped")
		logger.Info().Msg("email delivery disabled, skipping member welcome email")
		return nil
	}

	logger.Info().Msg("processing member welcome email task")

	if err := j.emailClient.SendMemberWelcomeEmail(p.To, p.Name, p.MemberID); err != nil {
		metrics.RecordWelcomeEmail("error")
		logger.Error().Err(err).Msg("failed to send member welcome email")
		return err
	}

	metrics.RecordWelcomeEmail("sent")
	logger.Info().Msg("sent member welcome email")

	return nil
}
