package entity

type UserRole string

const (
	RoleUser     UserRole = "user"
	RoleBusiness UserRole = "business"
	RoleAdmin    UserRole = "admin"
)

type BusinessStatus string

const (
	BusinessPending  BusinessStatus = "pending"
	BusinessApproved BusinessStatus = "approved"
	BusinessRejected BusinessStatus = "rejected"
	BusinessBlocked  BusinessStatus = "blocked"
)

type User struct {
	Base
	Name           string          `db:"name"`
	Email          string          `db:"email"`
	PasswordHash   string          `db:"password"`
	Phone          *string         `db:"phone"`
	Role           UserRole        `db:"role"`
	BusinessStatus *BusinessStatus `db:"business_status"`
	Points         int64           `db:"points"`
	IsBlocked      bool            `db:"is_blocked"`
	IsActive       bool            `db:"is_active"`
}
