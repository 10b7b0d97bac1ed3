package domain

// Roles
const (
	RoleAdmin = "admin" // Full access
	RoleStaff = "staff" // Read and create only
)

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`                       // Primary key
	Username string `gorm:"unique;not null;size:64" json:"username"`    // Unique username
	Password string `gorm:"not null" json:"-"`                          // Hashed password, never serialized
	Name     string `gorm:"not null;default:''" json:"name"`            // Display name
	Role     string `gorm:"not null;default:staff;size:16" json:"role"` // Role: admin or staff
}

// IsAdmin reports whether the user carries the admin role
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
