package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	StatusActive = "active"
	StatusBanned = "banned"

	SubscriptionFree = "free"
	SubscriptionPaid = "paid"
	// SubscriptionExpired is never persisted. It is derived at read time
	// when a paid subscription's expiry has lapsed.
	SubscriptionExpired = "expired"
)

var Roles = []string{RoleUser, RoleAdmin}
var UserStatuses = []string{StatusActive, StatusBanned}

func IsValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

func IsValidStatus(status string) bool {
	return status == StatusActive || status == StatusBanned
}

type User struct {
	ID                 int64      `json:"id"`
	Username           string     `json:"username"`
	Email              string     `json:"email"`
	PasswordHash       string     `json:"-"`
	Role               string     `json:"role"`
	Status             string     `json:"status"`
	SubscriptionStatus string     `json:"subscription_status"`
	SubscriptionExpiry *time.Time `json:"subscription_expiry"`
	ActivationKey      *string    `json:"-"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// UserView is the outward serialization of a User. The subscription status
// it carries is the effective one (a lapsed paid subscription reads as
// "expired"), and the credential digest is never included.
type UserView struct {
	ID                 int64      `json:"id"`
	Username           string     `json:"username"`
	Email              string     `json:"email"`
	Role               string     `json:"role"`
	Status             string     `json:"status"`
	SubscriptionStatus string     `json:"subscription_status"`
	SubscriptionExpiry *time.Time `json:"subscription_expiry"`
	PageCount          int        `json:"page_count"`
	CreatedAt          time.Time  `json:"created_at"`
}
