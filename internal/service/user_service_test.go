package service

import (
	"context"
	"errors"
	"testing"
)

func TestAssignRoleNotSupported(t *testing.T) {
	// AssignRole never touches its collaborators; the write is a
	// permanent fixed failure until the backend grows a real endpoint.
	svc := NewUserService(nil, nil, nil)

	cases := []struct {
		userID int
		roleID int
	}{
		{1, 1},
		{0, 0},
		{42, 7},
	}

	for _, tc := range cases {
		err := svc.AssignRole(context.Background(), tc.userID, tc.roleID)
		if !errors.Is(err, ErrAssignmentNotSupported) {
			t.Errorf("AssignRole(%d, %d) = %v, want %v", tc.userID, tc.roleID, err, ErrAssignmentNotSupported)
		}
	}
}
