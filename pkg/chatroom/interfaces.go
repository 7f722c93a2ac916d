// Copyright 2026 StudentHub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package chatroom

import (
	"context"

	"github.com/studenthub/chatroom-service/internal/types"
)

type ServiceInterface interface {
	EnsureTeamChatroom(ctx context.Context, teamID, name, ownerID string, memberIDs []string) (string, error)
	CreateGroupChatroom(ctx context.Context, ownerID string, name *string, participantIDs []string) (string, error)
	RemoveTeamMember(ctx context.Context, teamID, userID string) error
}

// StorageInterface defines the store operations required by this package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetTeamChatroom(ctx context.Context, teamID string) (*types.Chatroom, error)
	CreateChatroom(ctx context.Context, room *types.Chatroom) error
	DeleteChatroom(ctx context.Context, chatroomID string) error
	CreateGroupChatroomAtomic(ctx context.Context, name *string, ownerID string, participantIDs []string) (string, error)
	ListMembers(ctx context.Context, chatroomID string) ([]*types.ChatroomMember, error)
	AddMember(ctx context.Context, chatroomID, userID string) error
	AddMembers(ctx context.Context, chatroomID string, userIDs []string) error
	RemoveMember(ctx context.Context, chatroomID, userID string) error
	RemoveAllMembers(ctx context.Context, chatroomID string) error
	UpsertRole(ctx context.Context, role *types.ChatroomRole) error
	UpsertRoles(ctx context.Context, roles []*types.ChatroomRole) error
	RemoveRole(ctx context.Context, chatroomID, userID string) error
	RemoveAllRoles(ctx context.Context, chatroomID string) error
}

// NotifierInterface is the fire-and-forget notification collaborator.
type NotifierInterface interface {
	Send(ctx context.Context, notification *types.Notification)
}
