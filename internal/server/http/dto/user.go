package dto

// CreateUserRequest describes the admin user creation payload.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserPatchRequest lists the user fields present in a partial update.
// Omitted fields stay nil and are left untouched.
type UserPatchRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}
