package user

import (
	"errors"
	"strings"
	"time"
)

// User is the internal user model. IDs are assigned once by the store and
// never reused; CreatedAt is set once and UpdatedAt changes on every
// mutation. Both are UTC.
type User struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Title      string    `json:"title"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

var (
	ErrNotFound = errors.New("user not found")
	ErrConflict = errors.New("user id already exists")
)

// ApplyUpdate merges a partial update into the user. The merge rules are
// asymmetric on purpose and callers depend on them:
//   - FirstName, LastName, Email: a value overrides only when present and
//     non-blank after trimming; a blank string never clears the field.
//   - Department, Title: any present value overrides, including an explicit
//     empty string, which clears the field.
//   - IsActive: any present boolean overrides.
func (u *User) ApplyUpdate(dto *UpdateUserDTO) {
	if dto.FirstName != nil {
		if v := strings.TrimSpace(*dto.FirstName); v != "" {
			u.FirstName = v
		}
	}
	if dto.LastName != nil {
		if v := strings.TrimSpace(*dto.LastName); v != "" {
			u.LastName = v
		}
	}
	if dto.Email != nil {
		if v := strings.TrimSpace(*dto.Email); v != "" {
			u.Email = v
		}
	}
	if dto.Department != nil {
		u.Department = strings.TrimSpace(*dto.Department)
	}
	if dto.Title != nil {
		u.Title = strings.TrimSpace(*dto.Title)
	}
	if dto.IsActive != nil {
		u.IsActive = *dto.IsActive
	}
}
