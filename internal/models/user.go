package models

import "strings"

type Role string

const (
	RoleUser    Role = "usuario"
	RoleTrainer Role = "entrenador"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"nombre"`
	LastName     string `json:"apellido"`
	Username     string `json:"nombre_usuario"`
	Email        string `json:"correo"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"rol"`
}

// UserInput is the full user payload accepted on registration and full update.
type UserInput struct {
	Name     string `json:"nombre" validate:"required,min=3"`
	LastName string `json:"apellido" validate:"required,min=3"`
	Username string `json:"nombre_usuario" validate:"required,min=3"`
	Email    string `json:"correo" validate:"required,email"`
	Password string `json:"contrasena" validate:"required,min=6,bcryptlen"`
	Role     Role   `json:"rol" validate:"omitempty,oneof=usuario entrenador admin"`
}

func (in *UserInput) ApplyDefaults() {
	in.Name = strings.TrimSpace(in.Name)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Role == "" {
		in.Role = RoleUser
	}
}

type UserNameInput struct {
	Name string `json:"nombre" validate:"required"`
}

func (in *UserNameInput) ApplyDefaults() { in.Name = strings.TrimSpace(in.Name) }

type LoginInput struct {
	Email    string `json:"correo" validate:"required,email"`
	Password string `json:"contrasena" validate:"required"`
}

func (in *LoginInput) ApplyDefaults() { in.Email = strings.ToLower(strings.TrimSpace(in.Email)) }
