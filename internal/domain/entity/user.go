package entity

import "time"

// User operador del sistema (solo para autenticación del API).
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	Role         string // "admin" | "analista"
	CreatedAt    time.Time
}
