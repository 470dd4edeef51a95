package domain

import "time"

type User struct {
	ID                  int64      `json:"id"`
	FirstName           string     `json:"firstName"`
	LastName            string     `json:"lastName"`
	Email               string     `json:"email"`
	PasswordHash        string     `json:"-"`
	IsEmailVerified     bool       `json:"isEmailVerified"`
	VerificationToken   *string    `json:"-"`
	VerificationExpires *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"createdAt"`
	LastLoginAt         *time.Time `json:"lastLoginAt,omitempty"`
}

type Task struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	IsComplete bool       `json:"isComplete"`
	CreatedBy  int64      `json:"createdBy"`
	ModifiedBy *int64     `json:"modifiedBy,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	ModifiedAt *time.Time `json:"modifiedAt,omitempty"`
	IsDeleted  bool       `json:"-"`
}

// TokenClaims is the identity carried by a bearer token.
type TokenClaims struct {
	UserID    int64
	Email     string
	Name      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
