package repository

import "github.com/Miguel-Ovalle/almacen-app/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get*/Find* devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	// FindActiveByEmail busca por correo solo entre usuarios activos (login).
	FindActiveByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	SetActive(id int64, active bool) error
	// List devuelve todos los usuarios, más recientes primero.
	List() ([]*entity.User, error)
	Delete(id int64) error
}

// RoleRepository define el puerto de persistencia para Role.
type RoleRepository interface {
	GetByID(id int64) (*entity.Role, error)
	// List devuelve los roles ordenados por nombre.
	List() ([]*entity.Role, error)
}
