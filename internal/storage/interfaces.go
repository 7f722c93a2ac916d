// Copyright 2026 StudentHub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/studenthub/chatroom-service/internal/types"
)

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
