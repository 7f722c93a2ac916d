// Copyright 2026 StudentHub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/studenthub/chatroom-service/internal/config"
	"github.com/studenthub/chatroom-service/internal/logging"
	"github.com/studenthub/chatroom-service/internal/notifications"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "worker runs the notification consumer",
	Long:  `Consume queued notification tasks and deliver them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorker(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

func runWorker(ctx context.Context) error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	worker, err := notifications.NewWorker(notifications.WorkerConfig{
		RedisURL:    specs.RedisURL,
		Queue:       specs.NotificationsQueue,
		Concurrency: specs.WorkerConcurrency,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create notification worker: %v", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Infof("Starting notification worker on queue %q", specs.NotificationsQueue)
	return worker.Run(ctx)
}
