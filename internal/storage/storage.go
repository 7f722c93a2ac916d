// Copyright 2026 StudentHub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/studenthub/chatroom-service/internal/db"
	"github.com/studenthub/chatroom-service/internal/logging"
	"github.com/studenthub/chatroom-service/internal/monitoring"
	"github.com/studenthub/chatroom-service/internal/tracing"
	"github.com/studenthub/chatroom-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// GetTeamChatroom returns the team-kind chatroom anchored to teamID, or
// ErrNotFound. The schema guarantees at most one per team.
func (s *Storage) GetTeamChatroom(ctx context.Context, teamID string) (*types.Chatroom, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTeamChatroom")
	defer span.End()

	var room types.Chatroom
	err := s.db.Statement(ctx).
		Select("id", "kind", "team_id", "name", "archived", "created_at").
		From("chatrooms").
		Where(sq.Eq{"kind": types.KindTeam, "team_id": teamID}).
		QueryRowContext(ctx).
		Scan(&room.ID, &room.Kind, &room.TeamID, &room.Name, &room.Archived, &room.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team chatroom: %w", err)
	}

	return &room, nil
}

func (s *Storage) CreateChatroom(ctx context.Context, room *types.Chatroom) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateChatroom")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("chatrooms").
		Columns("id", "kind", "team_id", "name", "archived").
		Values(room.ID, room.Kind, room.TeamID, room.Name, room.Archived).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return WrapDuplicateKeyError(err, "chatroom already exists")
		}
		return fmt.Errorf("failed to insert chatroom: %w", err)
	}

	return nil
}

func (s *Storage) DeleteChatroom(ctx context.Context, chatroomID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteChatroom")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("chatrooms").
		Where(sq.Eq{"id": chatroomID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete chatroom: %w", err)
	}
	return nil
}

// CreateGroupChatroomAtomic invokes the server-side create_group_chatroom
// function, which creates the chatroom and all membership/role rows in a
// single statement. Returns ErrProcedureNotFound when the function is absent
// so the caller can fall back to client-driven provisioning.
func (s *Storage) CreateGroupChatroomAtomic(ctx context.Context, name *string, ownerID string, participantIDs []string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateGroupChatroomAtomic")
	defer span.End()

	var id *string
	err := s.db.QueryRow(ctx,
		"SELECT create_group_chatroom($1, $2, $3)",
		name, ownerID, participantIDs,
	).Scan(&id)

	if err != nil {
		if IsUndefinedFunctionError(err) {
			return "", ErrProcedureNotFound
		}
		return "", fmt.Errorf("failed to create group chatroom: %w", err)
	}

	if id == nil {
		return "", nil
	}
	return *id, nil
}

func (s *Storage) ListMembers(ctx context.Context, chatroomID string) ([]*types.ChatroomMember, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembers")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("chatroom_id", "user_id", "created_at").
		From("chatroom_members").
		Where(sq.Eq{"chatroom_id": chatroomID})

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.ChatroomMember
	for rows.Next() {
		var m types.ChatroomMember
		if err := rows.Scan(&m.ChatroomID, &m.UserID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) AddMember(ctx context.Context, chatroomID, userID string) error {
	return s.AddMembers(ctx, chatroomID, []string{userID})
}

// AddMembers batch-inserts membership rows. A unique violation anywhere in
// the batch surfaces as ErrDuplicateKey; callers re-establishing state that
// should already exist treat it as success.
func (s *Storage) AddMembers(ctx context.Context, chatroomID string, userIDs []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddMembers")
	defer span.End()

	if len(userIDs) == 0 {
		return nil
	}

	query := s.db.Statement(ctx).
		Insert("chatroom_members").
		Columns("chatroom_id", "user_id")
	for _, userID := range userIDs {
		query = query.Values(chatroomID, userID)
	}

	_, err := query.ExecContext(ctx)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return WrapDuplicateKeyError(err, "membership already exists")
		}
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to add members: %w", err)
	}

	return nil
}

func (s *Storage) RemoveMember(ctx context.Context, chatroomID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveMember")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("chatroom_members").
		Where(sq.Eq{"chatroom_id": chatroomID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

func (s *Storage) RemoveAllMembers(ctx context.Context, chatroomID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveAllMembers")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("chatroom_members").
		Where(sq.Eq{"chatroom_id": chatroomID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove members: %w", err)
	}
	return nil
}

func (s *Storage) UpsertRole(ctx context.Context, role *types.ChatroomRole) error {
	return s.UpsertRoles(ctx, []*types.ChatroomRole{role})
}

// UpsertRoles batch-upserts role rows on conflict target (chatroom_id,
// user_id), so repeated reconciliation never duplicates or errors on a role
// that already exists.
func (s *Storage) UpsertRoles(ctx context.Context, roles []*types.ChatroomRole) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertRoles")
	defer span.End()

	if len(roles) == 0 {
		return nil
	}

	query := s.db.Statement(ctx).
		Insert("chatroom_roles").
		Columns("chatroom_id", "user_id", "role", "can_post", "can_manage_members", "can_manage_messages")
	for _, r := range roles {
		query = query.Values(r.ChatroomID, r.UserID, r.Role, r.CanPost, r.CanManageMembers, r.CanManageMessages)
	}
	query = query.Suffix(
		"ON CONFLICT (chatroom_id, user_id) DO UPDATE SET " +
			"role = EXCLUDED.role, " +
			"can_post = EXCLUDED.can_post, " +
			"can_manage_members = EXCLUDED.can_manage_members, " +
			"can_manage_messages = EXCLUDED.can_manage_messages",
	)

	_, err := query.ExecContext(ctx)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to upsert roles: %w", err)
	}

	return nil
}

func (s *Storage) RemoveRole(ctx context.Context, chatroomID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveRole")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("chatroom_roles").
		Where(sq.Eq{"chatroom_id": chatroomID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove role: %w", err)
	}
	return nil
}

func (s *Storage) RemoveAllRoles(ctx context.Context, chatroomID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveAllRoles")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("chatroom_roles").
		Where(sq.Eq{"chatroom_id": chatroomID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove roles: %w", err)
	}
	return nil
}
