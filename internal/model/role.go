package model

import "time"

// Role represents an RBAC role created through the administration screen.
type Role struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// RoleWithPermissions extends Role to include its associated permission codes.
type RoleWithPermissions struct {
	*Role
	Permissions []string `json:"permissions"`
}
