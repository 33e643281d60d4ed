package domain

// Court represents a bookable court of the venue
type Court struct {
	ID          int64
	Name        string
	CourtNumber int
	IsActive    bool // inactive courts are excluded from slot generation
}

// User is a customer or an administrator
type User struct {
	ID     int64
	LineID string
	Name   string
	Role   UserRole
}

// UserRole role of a user
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// IsValid checks the role value
func (r UserRole) IsValid() bool {
	return r == UserRoleUser || r == UserRoleAdmin
}
