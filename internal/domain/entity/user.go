package entity

// Roles válidos para User.
const (
	RoleAdministrador = "Administrador"
	RoleAlmacenista   = "Almacenista"
)

// Role etiqueta de capacidad para el control de acceso.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"` // único
}

// User representa un usuario del sistema.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"` // único, siempre en minúsculas
	PasswordHash string `json:"-"`     // bcrypt, nunca plano después de persistir
	RoleID       int64  `json:"role_id"`
	RoleName     string `json:"role_name"` // denormalizado para login y listados
	Active       bool   `json:"active"`
}
