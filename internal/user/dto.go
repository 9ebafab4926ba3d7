package user

// CreateUserDTO carries the POST /users body. IsActive is a pointer so an
// omitted flag defaults to true rather than false.
type CreateUserDTO struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Title      string `json:"title"`
	IsActive   *bool  `json:"isActive"`
}

// UpdateUserDTO carries the PUT /users/{id} body. Every field is a pointer
// so the merge rules in User.ApplyUpdate can distinguish an omitted field
// from an explicit empty value.
type UpdateUserDTO struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
	Title      *string `json:"title"`
	IsActive   *bool   `json:"isActive"`
}
