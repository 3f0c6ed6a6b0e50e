package models

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Role separates shoppers from back-office staff.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// ParseRole converts a textual role. Empty input defaults to customer.
func ParseRole(value string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(RoleCustomer):
		return RoleCustomer, nil
	case string(RoleAdmin):
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", value)
	}
}

// User represents a storefront identity.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Avatar       string    `json:"avatar"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	PasswordHash string    `json:"-"`
}

// IsAdmin reports whether the user may access the back-office.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

const avatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg"

// AvatarURL returns the generated avatar for seed. The same seed always
// yields the same URL.
func AvatarURL(seed string) string {
	return avatarBaseURL + "?seed=" + url.QueryEscape(seed)
}
