// Copyright 2026 StudentHub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"

	"github.com/studenthub/chatroom-service/internal/logging"
	"github.com/studenthub/chatroom-service/internal/monitoring"
	"github.com/studenthub/chatroom-service/internal/tracing"
	"github.com/studenthub/chatroom-service/internal/types"
)

const TaskTypeSend = "notification:send"

var _ DispatcherInterface = (*Dispatcher)(nil)

// Dispatcher enqueues notification tasks on Redis via asynq.
type Dispatcher struct {
	client *asynq.Client
	queue  string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewDispatcher(redisURL, queue string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Dispatcher, error) {
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, err
	}

	return &Dispatcher{
		client:  asynq.NewClient(opt),
		queue:   queue,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}, nil
}

func (d *Dispatcher) Send(ctx context.Context, notification *types.Notification) {
	ctx, span := d.tracer.Start(ctx, "notifications.Dispatcher.Send")
	defer span.End()

	payload, err := json.Marshal(notification)
	if err != nil {
		d.logger.Errorf("failed to marshal notification for user %s: %v", notification.UserID, err)
		return
	}

	task := asynq.NewTask(TaskTypeSend, payload)
	if _, err := d.client.EnqueueContext(ctx, task, asynq.Queue(d.queue)); err != nil {
		d.logger.Errorf("failed to enqueue notification for user %s: %v", notification.UserID, err)
	}
}

func (d *Dispatcher) Close() error {
	return d.client.Close()
}
