package auth

// LoginDTO is the request body for a login attempt.
type LoginDTO struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}
