// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - tasks are enqueued (producer) with asynq.Client
//   - a server runs workers that process them (consumer) with asynq.Server
package job

import (
	"context"
	"fmt"

	"github.com/deppfellow/fitness-center/internal/config"
	"github.com/deppfellow/fitness-center/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	Client *asynq.Client

	server      *asynq.Server
	emailClient *email.Client
	logger      *zerolog.Logger
}

// NewJobService creates a JobService backed by the Redis at cfg.Redis.Address.
//
// Workers are split across queues by weight: critical 6, default 3, low 1.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
			Logger:   newAsynqLogger(logger),
			LogLevel: asynq.WarnLevel,
		},
	)

	return &JobService{
		Client:      client,
		server:      server,
		emailClient: email.NewClient(cfg, logger),
		logger:      logger,
	}
}

// Start registers task handlers and starts the worker server.
//
// It returns once the workers are running.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskMemberWelcome, j.handleMemberWelcomeTask)

	j.logger.Info().Msg("starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	return nil
}

// EnqueueMemberWelcome schedules the welcome email for a new member.
func (j *JobService) EnqueueMemberWelcome(ctx context.Context, memberID int, to, name string) error {
	task, err := NewMemberWelcomeTask(memberID, to, name)
	if err != nil {
		return fmt.Errorf("building member welcome task: %w", err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueueing member welcome task: %w", err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Int("member_id", memberID).
		Msg("enqueued member welcome task")

	return nil
}

// Stop gracefully stops the job server and closes client resources.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}
