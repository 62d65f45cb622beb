package domain

import "errors"

// Common validation errors for User.
var (
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
	ErrInvalidRole         = errors.New("invalid user role")
)

// UserRole identifies the authorization level of a user.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// IsValid reports whether the role is one of the known values.
func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// User represents a registered user of the catalog API.
// It contains essential user information and authentication details.
type User struct {
	ID       int      `json:"id"`
	Username string   `json:"username"`
	Password string   `json:"-"` // Plaintext password, used temporarily during registration
	Hash     string   `json:"-"` // Never expose the password hash in JSON
	Role     UserRole `json:"role"`
}

// NewUser creates a new User with the given username and password and the
// default role. The caller is responsible for hashing the password before
// the user is stored.
func NewUser(username, password string) (*User, error) {
	user := &User{
		Username: username,
		Password: password,
		Role:     RoleUser,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}

	if !u.Role.IsValid() {
		return ErrInvalidRole
	}

	// During registration a plaintext password must be present; existing
	// users loaded from the store carry only the hash.
	if u.Password == "" && u.Hash == "" {
		return ErrEmptyPassword
	}

	return nil
}
