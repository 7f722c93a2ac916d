// Copyright 2026 StudentHub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Chatroom kinds. A "dm" kind exists in the schema for direct messages but
// is never provisioned by this service.
const (
	KindTeam  = "team"
	KindGroup = "group"
	KindDM    = "dm"
)

// Role names carried by chatroom role rows.
const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

type Chatroom struct {
	ID        string    `db:"id"`
	Kind      string    `db:"kind"`
	TeamID    *string   `db:"team_id"`
	Name      *string   `db:"name"`
	Archived  bool      `db:"archived"`
	CreatedAt time.Time `db:"created_at"`
}

type ChatroomMember struct {
	ChatroomID string    `db:"chatroom_id"`
	UserID     string    `db:"user_id"`
	CreatedAt  time.Time `db:"created_at"`
}

type ChatroomRole struct {
	ChatroomID        string `db:"chatroom_id"`
	UserID            string `db:"user_id"`
	Role              string `db:"role"`
	CanPost           bool   `db:"can_post"`
	CanManageMembers  bool   `db:"can_manage_members"`
	CanManageMessages bool   `db:"can_manage_messages"`
}

type Notification struct {
	UserID  string `json:"user_id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Link    string `json:"link,omitempty"`
}
