// Copyright 2026 StudentHub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package chatroom

import (
	"github.com/studenthub/chatroom-service/internal/types"
)

// roleFor derives the role row for a membership change. The designated owner
// gets every capability; everyone else can post and nothing more. No other
// combination is ever produced here; elevation happens through a separate
// moderation flow.
func roleFor(chatroomID, userID, ownerID string) *types.ChatroomRole {
	if userID == ownerID {
		return &types.ChatroomRole{
			ChatroomID:        chatroomID,
			UserID:            userID,
			Role:              types.RoleOwner,
			CanPost:           true,
			CanManageMembers:  true,
			CanManageMessages: true,
		}
	}

	return &types.ChatroomRole{
		ChatroomID: chatroomID,
		UserID:     userID,
		Role:       types.RoleMember,
		CanPost:    true,
	}
}

// dedupe preserves first-occurrence order.
func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
