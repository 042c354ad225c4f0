package models

// Response shapes referenced by the swagger annotations.

type LoginSuccessResponse struct {
	Token string `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	User  User   `json:"user"`
}

type RegisterSuccessResponse struct {
	Message string `json:"message" example:"User registered successfully"`
	UserID  string `json:"userId" example:"507f1f77bcf86cd799439011"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Password changed successfully"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"unexpected end of JSON input"`
}
