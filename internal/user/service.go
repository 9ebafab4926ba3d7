package user

import (
	"log/slog"
	"strings"

	"github.com/techhive/user-api/internal"
)

// Store is the persistence contract the service drives. The in-memory
// implementation lives in the memory subpackage.
type Store interface {
	List() []User
	Get(id int64) (User, error)
	Insert(u User) (User, error)
	Update(id int64, mutate func(*User)) (User, error)
	Delete(id int64) error
}

type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// ListUsers returns all users ordered by ascending ID.
func (s *Service) ListUsers() []User {
	return s.store.List()
}

func (s *Service) GetUser(id int64) (*User, error) {
	u, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser validates the request, trims all text inputs and inserts the
// user. Validation failure never reaches the store.
func (s *Service) CreateUser(dto *CreateUserDTO) (*User, error) {
	if fieldErrs := ValidateCreate(dto); len(fieldErrs) > 0 {
		return nil, internal.NewValidationError(fieldErrs)
	}

	active := true
	if dto.IsActive != nil {
		active = *dto.IsActive
	}

	u := User{
		FirstName:  strings.TrimSpace(dto.FirstName),
		LastName:   strings.TrimSpace(dto.LastName),
		Email:      strings.TrimSpace(dto.Email),
		Department: strings.TrimSpace(dto.Department),
		Title:      strings.TrimSpace(dto.Title),
		IsActive:   active,
	}

	stored, err := s.store.Insert(u)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", "user_id", stored.ID, "email", stored.Email)
	return &stored, nil
}

// UpdateUser applies a partial update. Only the email is validated, and
// only when provided; the field-level merge rules live on User.ApplyUpdate.
func (s *Service) UpdateUser(id int64, dto *UpdateUserDTO) (*User, error) {
	if fieldErrs := ValidateUpdate(dto); len(fieldErrs) > 0 {
		return nil, internal.NewValidationError(fieldErrs)
	}

	updated, err := s.store.Update(id, func(u *User) {
		u.ApplyUpdate(dto)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "user_id", updated.ID)
	return &updated, nil
}

func (s *Service) DeleteUser(id int64) error {
	if err := s.store.Delete(id); err != nil {
		return err
	}
	s.logger.Info("user deleted", "user_id", id)
	return nil
}
