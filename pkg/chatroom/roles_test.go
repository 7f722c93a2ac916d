// Copyright 2026 StudentHub Ltd.
// SPDX-License-Identifier: AGPL-3.0

package chatroom

import (
	"reflect"
	"testing"

	"github.com/studenthub/chatroom-service/internal/types"
)

func TestRoleFor(t *testing.T) {
	owner := roleFor("room-1", "user-owner", "user-owner")
	if owner.Role != types.RoleOwner {
		t.Errorf("expected owner role, got %q", owner.Role)
	}
	if !owner.CanPost || !owner.CanManageMembers || !owner.CanManageMessages {
		t.Errorf("owner must hold every capability, got %+v", owner)
	}

	member := roleFor("room-1", "user-1", "user-owner")
	if member.Role != types.RoleMember {
		t.Errorf("expected member role, got %q", member.Role)
	}
	if !member.CanPost {
		t.Error("member must be able to post")
	}
	if member.CanManageMembers || member.CanManageMessages {
		t.Errorf("member must hold no management capability, got %+v", member)
	}
}

func TestDedupe(t *testing.T) {
	testCases := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "duplicates removed, order preserved",
			input:    []string{"a", "b", "a", "c", "b"},
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "empty ids dropped",
			input:    []string{"", "a", ""},
			expected: []string{"a"},
		},
		{
			name:     "nil input",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := dedupe(tc.input)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}
