package dto

import "time"

type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateUsernameRequest struct {
	NewUsername string `json:"new_username"`
}

type UpdateEmailRequest struct {
	NewEmail string `json:"new_email"`
}

type ResetPasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type CreateTaskRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
}

// UpdateTaskRequest uses pointer fields so a partial update can tell an
// omitted field from one set to the empty string.
type UpdateTaskRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Tags        *string `json:"tags"`
}

type CreateEntryRequest struct {
	Task      string    `json:"task"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}
