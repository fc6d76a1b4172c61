package admin

// LoginRequest is the admin login body
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the bearer token for the admin endpoints
type LoginResponse struct {
	Token string `json:"token"`
}
