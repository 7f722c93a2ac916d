// Copyright 2026 StudentHub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"

	"github.com/studenthub/chatroom-service/internal/types"
)

// DispatcherInterface is the fire-and-forget notification collaborator.
// Send never reports failure to the caller; dispatch problems are logged
// and must not abort the provisioning flow that triggered them.
type DispatcherInterface interface {
	Send(ctx context.Context, notification *types.Notification)
}
