// Copyright 2026 StudentHub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package chatroom

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/studenthub/chatroom-service/internal/identifier"
	"github.com/studenthub/chatroom-service/internal/logging"
	"github.com/studenthub/chatroom-service/internal/monitoring"
	"github.com/studenthub/chatroom-service/internal/storage"
	"github.com/studenthub/chatroom-service/internal/tracing"
	"github.com/studenthub/chatroom-service/internal/types"
)

const defaultGroupName = "Group chat"

var _ ServiceInterface = (*Service)(nil)

// Service provisions chatrooms and reconciles their membership and role
// rows against desired state. Every store call commits independently; the
// schema's uniqueness constraints plus the benign-conflict handling below
// are what keep concurrent callers consistent.
type Service struct {
	storage  StorageInterface
	notifier NotifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	notifier NotifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		notifier: notifier,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// EnsureTeamChatroom makes sure a team has its chatroom and that every user
// in memberIDs holds a membership and role row in it. Calling it again with
// the same arguments is a no-op beyond lookups, and a later call repairs any
// membership or role rows a crashed earlier call left missing. There is no
// rollback on this path: partial state is healed by re-entry, not undone.
func (s *Service) EnsureTeamChatroom(ctx context.Context, teamID, name, ownerID string, memberIDs []string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "chatroom.Service.EnsureTeamChatroom")
	defer span.End()

	room, err := s.storage.GetTeamChatroom(ctx, teamID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return "", err
	}

	var chatroomID string
	if room != nil {
		chatroomID = room.ID
	} else {
		chatroomID, err = s.createTeamChatroom(ctx, teamID, name, ownerID)
		if err != nil {
			return "", err
		}
	}

	if err := s.reconcileMembers(ctx, chatroomID, ownerID, dedupe(memberIDs)); err != nil {
		return "", err
	}

	return chatroomID, nil
}

func (s *Service) createTeamChatroom(ctx context.Context, teamID, name, ownerID string) (string, error) {
	chatroomID := identifier.New()

	var displayName *string
	if name != "" {
		displayName = &name
	}

	err := s.storage.CreateChatroom(ctx, &types.Chatroom{
		ID:     chatroomID,
		Kind:   types.KindTeam,
		TeamID: &teamID,
		Name:   displayName,
	})
	if err != nil {
		if !errors.Is(err, storage.ErrDuplicateKey) {
			return "", err
		}
		// A concurrent call won the insert race. Adopt its chatroom and
		// still establish the owner rows below; both are idempotent.
		s.logger.Debugf("team %s chatroom created concurrently, adopting it", teamID)
		room, err := s.storage.GetTeamChatroom(ctx, teamID)
		if err != nil {
			return "", err
		}
		chatroomID = room.ID
	}

	if err := s.storage.AddMember(ctx, chatroomID, ownerID); err != nil {
		if !errors.Is(err, storage.ErrDuplicateKey) {
			return "", err
		}
		s.logger.Debugf("owner %s already a member of chatroom %s", ownerID, chatroomID)
	}

	if err := s.storage.UpsertRole(ctx, roleFor(chatroomID, ownerID, ownerID)); err != nil {
		return "", err
	}

	return chatroomID, nil
}

// CreateGroupChatroom provisions an ad-hoc group chatroom for ownerID and
// participantIDs. It prefers the atomic server-side procedure; when that is
// absent it falls back to client-driven provisioning, and any fallback
// failure after the chatroom row exists is compensated by best-effort
// cleanup before the original error is returned.
func (s *Service) CreateGroupChatroom(ctx context.Context, ownerID string, name *string, participantIDs []string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "chatroom.Service.CreateGroupChatroom")
	defer span.End()

	participants := make([]string, 0, len(participantIDs))
	for _, id := range dedupe(participantIDs) {
		// The owner is always added separately with the owner role.
		if id != ownerID {
			participants = append(participants, id)
		}
	}

	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			name = nil
		} else {
			name = &trimmed
		}
	}

	chatroomID, err := s.storage.CreateGroupChatroomAtomic(ctx, name, ownerID, participants)
	if err == nil {
		if chatroomID == "" {
			return "", fmt.Errorf("group chatroom creation did not return an identifier")
		}
		s.notifyParticipants(ctx, chatroomID, name, participants)
		return chatroomID, nil
	}

	if !errors.Is(err, storage.ErrProcedureNotFound) {
		return "", err
	}

	s.logger.Warnf("create_group_chatroom procedure unavailable, provisioning client-side: %v", err)
	chatroomID, err = s.provisionGroupChatroomFallback(ctx, ownerID, name, participants)
	if err != nil {
		return "", err
	}

	s.notifyParticipants(ctx, chatroomID, name, participants)
	return chatroomID, nil
}

func (s *Service) provisionGroupChatroomFallback(ctx context.Context, ownerID string, name *string, participants []string) (string, error) {
	chatroomID := identifier.New()

	displayName := defaultGroupName
	if name != nil {
		displayName = *name
	}

	err := s.storage.CreateChatroom(ctx, &types.Chatroom{
		ID:   chatroomID,
		Kind: types.KindGroup,
		Name: &displayName,
	})
	if err != nil {
		return "", err
	}

	// From here on the chatroom row exists, so every failure must undo the
	// partial writes before propagating.
	memberIDs := append([]string{ownerID}, participants...)
	if err := s.storage.AddMembers(ctx, chatroomID, memberIDs); err != nil && !errors.Is(err, storage.ErrDuplicateKey) {
		s.cleanupChatroom(ctx, chatroomID)
		return "", err
	}

	roles := make([]*types.ChatroomRole, 0, len(memberIDs))
	for _, userID := range memberIDs {
		roles = append(roles, roleFor(chatroomID, userID, ownerID))
	}
	if err := s.storage.UpsertRoles(ctx, roles); err != nil {
		s.cleanupChatroom(ctx, chatroomID)
		return "", err
	}

	return chatroomID, nil
}

// reconcileMembers brings persisted membership up to the desired set by
// additive delta only: missing members get membership rows first, role rows
// second, so a role never exists without its membership being at least
// concurrently created. Members outside the desired set are left untouched.
func (s *Service) reconcileMembers(ctx context.Context, chatroomID, ownerID string, desired []string) error {
	ctx, span := s.tracer.Start(ctx, "chatroom.Service.reconcileMembers")
	defer span.End()

	current, err := s.storage.ListMembers(ctx, chatroomID)
	if err != nil {
		return err
	}

	existing := make(map[string]bool, len(current))
	for _, m := range current {
		existing[m.UserID] = true
	}

	missing := make([]string, 0, len(desired))
	for _, userID := range desired {
		if !existing[userID] {
			missing = append(missing, userID)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	if err := s.storage.AddMembers(ctx, chatroomID, missing); err != nil {
		if !errors.Is(err, storage.ErrDuplicateKey) {
			return err
		}
		s.logger.Debugf("some of %d members already present in chatroom %s", len(missing), chatroomID)
	}

	roles := make([]*types.ChatroomRole, 0, len(missing))
	for _, userID := range missing {
		roles = append(roles, roleFor(chatroomID, userID, ownerID))
	}
	if err := s.storage.UpsertRoles(ctx, roles); err != nil {
		return err
	}

	for _, userID := range missing {
		if userID == ownerID {
			continue
		}
		s.notifier.Send(ctx, &types.Notification{
			UserID:  userID,
			Type:    "chatroom_member_added",
			Title:   "Added to team chat",
			Message: "You have been added to your team's chatroom",
			Link:    "/chat/" + chatroomID,
		})
	}

	return nil
}

// RemoveTeamMember deletes a user's membership and role rows from the
// team's chatroom. A missing chatroom, membership or role is a no-op; the
// chatroom itself is never deleted here, even if it ends up empty.
func (s *Service) RemoveTeamMember(ctx context.Context, teamID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "chatroom.Service.RemoveTeamMember")
	defer span.End()

	room, err := s.storage.GetTeamChatroom(ctx, teamID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.storage.RemoveMember(ctx, room.ID, userID); err != nil {
		return err
	}

	return s.storage.RemoveRole(ctx, room.ID, userID)
}

// cleanupChatroom is the compensating path for a failed fallback
// provisioning attempt: best-effort delete of roles, then memberships, then
// the chatroom row. It never fails; the provisioning error that triggered it
// is what the caller surfaces.
func (s *Service) cleanupChatroom(ctx context.Context, chatroomID string) {
	ctx, span := s.tracer.Start(ctx, "chatroom.Service.cleanupChatroom")
	defer span.End()

	if err := s.storage.RemoveAllRoles(ctx, chatroomID); err != nil {
		s.logger.Errorf("cleanup: failed to remove roles for chatroom %s: %v", chatroomID, err)
	}
	if err := s.storage.RemoveAllMembers(ctx, chatroomID); err != nil {
		s.logger.Errorf("cleanup: failed to remove members for chatroom %s: %v", chatroomID, err)
	}
	if err := s.storage.DeleteChatroom(ctx, chatroomID); err != nil {
		s.logger.Errorf("cleanup: failed to delete chatroom %s: %v", chatroomID, err)
	}
}

func (s *Service) notifyParticipants(ctx context.Context, chatroomID string, name *string, participants []string) {
	displayName := defaultGroupName
	if name != nil {
		displayName = *name
	}

	for _, userID := range participants {
		s.notifier.Send(ctx, &types.Notification{
			UserID:  userID,
			Type:    "group_chat_created",
			Title:   "New group chat",
			Message: fmt.Sprintf("You have been added to %q", displayName),
			Link:    "/chat/" + chatroomID,
		})
	}
}
