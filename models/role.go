package models

import (
	"errors"
	"strings"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var ErrInvalidRole = errors.New("the role must be 'user' or 'admin'")

// ParseRole normalizes the role to lowercase before checking it.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(s)))
	switch role {
	case RoleUser, RoleAdmin:
		return role, nil
	}
	return "", ErrInvalidRole
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
