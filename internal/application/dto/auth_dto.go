package dto

// LoginRequest credenciales de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserDTO usuario autenticado (sin hash).
type UserDTO struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// LoginResponse token firmado más el usuario.
type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
