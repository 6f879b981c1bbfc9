package dto

// LoginRequest body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the signed token.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// RegisterRequest body for POST /api/auth/register (password is hashed in
// the use case).
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
