package models

// User is the authenticated admin identity carried in the session token.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LockoutState is the persisted brute-force counter. It survives
// restarts independently of any session.
type LockoutState struct {
	FailedAttempts int    `json:"failedAttempts"`
	LockoutUntil   string `json:"lockoutUntil,omitempty"`
}
