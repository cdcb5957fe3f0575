package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"billu/internal/shared/authorization"
)

// User is a back-office operator account. Technicians are not users; their
// portal access lives on the technician roster.
type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	role         authorization.UserRole
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name, email, passwordHash string, role authorization.UserRole) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	now := time.Now().UTC()
	return &User{
		name:         strings.TrimSpace(name),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(id uint, name, email, passwordHash string, role authorization.UserRole, active bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uint                         { return u.id }
func (u *User) Name() string                     { return u.name }
func (u *User) Email() string                    { return u.email }
func (u *User) PasswordHash() string             { return u.passwordHash }
func (u *User) Role() authorization.UserRole     { return u.role }
func (u *User) IsActive() bool                   { return u.active }
func (u *User) CreatedAt() time.Time             { return u.createdAt }
func (u *User) UpdatedAt() time.Time             { return u.updatedAt }

func (u *User) SetID(id uint) {
	u.id = id
}

// PromoteToSuperAdmin elevates the account. Used when the configured
// super-admin email logs in.
func (u *User) PromoteToSuperAdmin() {
	u.role = authorization.RoleSuperAdmin
	u.updatedAt = time.Now().UTC()
}

func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = time.Now().UTC()
}

func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = time.Now().UTC()
	return nil
}
