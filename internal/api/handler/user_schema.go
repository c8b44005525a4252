package handler

import "time"

// errorResponse is the error envelope documented for all 4xx/5xx responses.
type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// --- Request types ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required,personname"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,strongpassword"`
	Image    string `json:"image"    validate:"required,imageurl"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name  *string `json:"name"  validate:"omitempty,personname"`
	Email *string `json:"email" validate:"omitempty,email"`
	Image *string `json:"image" validate:"omitempty,imageurl"`
}

type createUserRequest struct {
	Name     string `json:"name"     validate:"required,personname"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,strongpassword"`
	Image    string `json:"image"    validate:"required,imageurl"`
	Role     string `json:"role"     validate:"omitempty,role"`
}

// editUserRequest fields are checked by the service so that a missing field
// yields the "all fields are required" message.
type editUserRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type deleteUserRequest struct {
	ID string `json:"id"`
}

// --- Response types ---

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Image     string    `json:"image"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type userEnvelope struct {
	User userResponse `json:"user"`
}

type adminEnvelope struct {
	Admin userResponse `json:"admin"`
}

type usersEnvelope struct {
	Users []userResponse `json:"users"`
}

type messageResponse struct {
	Message string `json:"message"`
}
