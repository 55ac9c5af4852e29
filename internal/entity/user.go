package entity

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEducator Role = "educator"
	RoleStudent  Role = "student"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEducator, RoleStudent:
		return true
	}
	return false
}

// RoleAllowed is the capability check used by the use cases: does the actor
// role appear in the required set. Transport middleware delegates to role
// strings, but this is the authoritative check.
func RoleAllowed(actor Role, required ...Role) bool {
	for _, r := range required {
		if actor == r {
			return true
		}
	}
	return false
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	Password  string    `json:"-"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
