package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User covers both venue clients and administrators; the role claim in the
// session token is the only thing that separates them.
type User struct {
	id           uuid.UUID
	firstName    string
	lastName     string
	dni          DNI
	email        Email
	phone        string
	passwordHash string
	role         Role
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(firstName, lastName string, dni DNI, email Email, phone, passwordHash string, role Role) (*User, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if firstName == "" || lastName == "" {
		return nil, ErrEmptyName
	}

	return &User{
		id:           uuid.New(),
		firstName:    firstName,
		lastName:     lastName,
		dni:          dni,
		email:        email,
		phone:        strings.TrimSpace(phone),
		passwordHash: passwordHash,
		role:         role,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	firstName, lastName string,
	dni DNI,
	email Email,
	phone, passwordHash string,
	role Role,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		firstName:    firstName,
		lastName:     lastName,
		dni:          dni,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

// FullName is what notifications and contracts display.
func (u *User) FullName() string {
	return u.firstName + " " + u.lastName
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) DNI() DNI             { return u.dni }
func (u *User) Email() Email         { return u.email }
func (u *User) Phone() string        { return u.phone }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
