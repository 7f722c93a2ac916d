// Copyright 2026 StudentHub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package chatroom

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package chatroom -destination ./mock_chatroom.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package chatroom -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package chatroom -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package chatroom -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestHandler_EnsureTeamChatroom(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(*MockServiceInterface, *MockLoggerInterface)
		wantStatus int
		wantID     string
	}{
		{
			name: "success",
			body: `{"name":"Team Alpha","owner_id":"user-owner","member_ids":["user-owner","user-1"]}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().EnsureTeamChatroom(gomock.Any(), "team-123", "Team Alpha", "user-owner", []string{"user-owner", "user-1"}).
					Return("room-1", nil)
			},
			wantStatus: http.StatusOK,
			wantID:     "room-1",
		},
		{
			name:       "invalid body",
			body:       `{not json`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing owner_id",
			body:       `{"member_ids":["user-1"]}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty member_ids",
			body:       `{"owner_id":"user-owner","member_ids":[]}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "service error",
			body: `{"owner_id":"user-owner","member_ids":["user-1"]}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().EnsureTeamChatroom(gomock.Any(), "team-123", "", "user-owner", []string{"user-1"}).
					Return("", errors.New("service error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tt.setupMocks(mockSvc, mockLogger)

			mux := chi.NewMux()
			NewAPI(mockSvc, mockLogger).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/teams/team-123/chatroom", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantID != "" {
				var resp ChatroomResponse
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.ChatroomID != tt.wantID {
					t.Errorf("expected chatroom ID %q, got %q", tt.wantID, resp.ChatroomID)
				}
			}
		})
	}
}

func TestHandler_CreateGroupChatroom(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMocks func(*MockServiceInterface, *MockLoggerInterface)
		wantStatus int
		wantID     string
	}{
		{
			name: "success",
			body: `{"owner_id":"user-owner","name":"Study group","participant_ids":["user-1","user-2"]}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().CreateGroupChatroom(gomock.Any(), "user-owner", gomock.Any(), []string{"user-1", "user-2"}).
					Return("room-9", nil)
			},
			wantStatus: http.StatusCreated,
			wantID:     "room-9",
		},
		{
			name: "unnamed group",
			body: `{"owner_id":"user-owner","participant_ids":["user-1"]}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().CreateGroupChatroom(gomock.Any(), "user-owner", nil, []string{"user-1"}).
					Return("room-9", nil)
			},
			wantStatus: http.StatusCreated,
			wantID:     "room-9",
		},
		{
			name:       "missing owner_id",
			body:       `{"participant_ids":["user-1"]}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "blank participant id",
			body:       `{"owner_id":"user-owner","participant_ids":["user-1",""]}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "service error",
			body: `{"owner_id":"user-owner","participant_ids":["user-1"]}`,
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().CreateGroupChatroom(gomock.Any(), "user-owner", nil, []string{"user-1"}).
					Return("", errors.New("service error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tt.setupMocks(mockSvc, mockLogger)

			mux := chi.NewMux()
			NewAPI(mockSvc, mockLogger).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/chatrooms/group", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantID != "" {
				var resp ChatroomResponse
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.ChatroomID != tt.wantID {
					t.Errorf("expected chatroom ID %q, got %q", tt.wantID, resp.ChatroomID)
				}
			}
		})
	}
}

func TestHandler_RemoveTeamMember(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*MockServiceInterface, *MockLoggerInterface)
		wantStatus int
	}{
		{
			name: "success",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().RemoveTeamMember(gomock.Any(), "team-123", "user-1").Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "service error",
			setupMocks: func(mockSvc *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockSvc.EXPECT().RemoveTeamMember(gomock.Any(), "team-123", "user-1").
					Return(errors.New("service error"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tt.setupMocks(mockSvc, mockLogger)

			mux := chi.NewMux()
			NewAPI(mockSvc, mockLogger).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodDelete, "/api/v0/teams/team-123/chatroom/members/user-1", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}
