package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// NewDocumentRequest represents the start-new-document request body.
type NewDocumentRequest struct {
	Type string `json:"type" binding:"required" example:"sale-invoice"`
}

// RegisterRequest represents the owner registration request body.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required" example:"owner@example.com"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
	Name     string `json:"name" example:"Asha Mehta"`
}

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"owner@example.com"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// ForgotPasswordRequest represents the forgot-password request body.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required" example:"owner@example.com"`
}

// ResetPasswordRequest represents the reset-password request body.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	NewPassword string `json:"new_password" binding:"required" example:"newsecurepassword456"`
}

// --- Response Types ---

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken  string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// ValidationResponse represents the pre-save validation result.
type ValidationResponse struct {
	Valid  bool     `json:"valid" example:"false"`
	Issues []string `json:"issues" example:"client name is required"`
}

// AssetURLResponse represents a presigned asset download URL.
type AssetURLResponse struct {
	URL string `json:"url" example:"https://s3.amazonaws.com/billkit-assets/assets/logo.png?X-Amz-Signature=..."`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
