// Copyright 2026 StudentHub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package chatroom

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/studenthub/chatroom-service/internal/logging"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/teams/{teamID}/chatroom", a.ensureTeamChatroom)
	mux.Delete("/api/v0/teams/{teamID}/chatroom/members/{userID}", a.removeTeamMember)
	mux.Post("/api/v0/chatrooms/group", a.createGroupChatroom)
}

type EnsureTeamChatroomRequest struct {
	Name      string   `json:"name"`
	OwnerID   string   `json:"owner_id" validate:"required"`
	MemberIDs []string `json:"member_ids" validate:"required,min=1,dive,required"`
}

type CreateGroupChatroomRequest struct {
	OwnerID        string   `json:"owner_id" validate:"required"`
	Name           *string  `json:"name"`
	ParticipantIDs []string `json:"participant_ids" validate:"dive,required"`
}

type ChatroomResponse struct {
	ChatroomID string `json:"chatroom_id"`
}

func (a *API) ensureTeamChatroom(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")

	var req EnsureTeamChatroomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	chatroomID, err := a.service.EnsureTeamChatroom(r.Context(), teamID, req.Name, req.OwnerID, req.MemberIDs)
	if err != nil {
		a.logger.Errorf("failed to ensure chatroom for team %s: %v", teamID, err)
		http.Error(w, "Failed to provision team chatroom", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ChatroomResponse{ChatroomID: chatroomID})
}

func (a *API) createGroupChatroom(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupChatroomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	chatroomID, err := a.service.CreateGroupChatroom(r.Context(), req.OwnerID, req.Name, req.ParticipantIDs)
	if err != nil {
		a.logger.Errorf("failed to create group chatroom: %v", err)
		http.Error(w, "Failed to create group chatroom", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(ChatroomResponse{ChatroomID: chatroomID})
}

func (a *API) removeTeamMember(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	userID := chi.URLParam(r, "userID")

	if err := a.service.RemoveTeamMember(r.Context(), teamID, userID); err != nil {
		a.logger.Errorf("failed to remove member %s from team %s chatroom: %v", userID, teamID, err)
		http.Error(w, "Failed to remove team member", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
