package usecase

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Miguel-Ovalle/almacen-app/internal/application/dto"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain/entity"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios: altas con hash bcrypt,
// edición, activación y las reglas de autoprotección (un usuario nunca puede
// desactivarse ni eliminarse a sí mismo).
type UserUseCase struct {
	repo     repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(repo repository.UserRepository, roleRepo repository.RoleRepository) *UserUseCase {
	return &UserUseCase{repo: repo, roleRepo: roleRepo}
}

// Create crea un usuario. El password se hashea con bcrypt; el correo se
// normaliza a minúsculas. Correo duplicado → ErrEmailAlreadyExists.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" || in.Password == "" || in.RoleID == 0 {
		return nil, domain.ErrInvalidInput
	}
	role, err := uc.roleRepo.GetByID(in.RoleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       role.ID,
		RoleName:     role.Name,
		Active:       in.Active,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// Update edita un usuario. Password vacío conserva el hash actual.
func (uc *UserUseCase) Update(id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		user.Name = name
	}
	if email := strings.ToLower(strings.TrimSpace(in.Email)); email != "" {
		user.Email = email
	}
	if strings.TrimSpace(in.Password) != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.RoleID != 0 {
		role, err := uc.roleRepo.GetByID(in.RoleID)
		if err != nil {
			return nil, err
		}
		if role == nil {
			return nil, domain.ErrNotFound
		}
		user.RoleID = role.ID
		user.RoleName = role.Name
	}
	user.Active = in.Active
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return entityToUserResponse(user), nil
}

// Activate reactiva la cuenta de un usuario.
func (uc *UserUseCase) Activate(actorID, id int64) error {
	return uc.setActive(actorID, id, true)
}

// Deactivate desactiva una cuenta. Autoprotección: si id es el propio actor
// la mutación se omite y se devuelve ErrSelfAction (advertencia, no fallo).
func (uc *UserUseCase) Deactivate(actorID, id int64) error {
	return uc.setActive(actorID, id, false)
}

func (uc *UserUseCase) setActive(actorID, id int64, active bool) error {
	if !active && id == actorID {
		return domain.ErrSelfAction
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.SetActive(id, active)
}

// Delete elimina un usuario. Misma autoprotección que Deactivate.
func (uc *UserUseCase) Delete(actorID, id int64) error {
	if id == actorID {
		return domain.ErrSelfAction
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}

// List lista todos los usuarios, más recientes primero.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	return items, nil
}

// ListRoles devuelve los roles disponibles para el formulario de usuarios.
func (uc *UserUseCase) ListRoles() ([]entity.Role, error) {
	list, err := uc.roleRepo.List()
	if err != nil {
		return nil, err
	}
	roles := make([]entity.Role, 0, len(list))
	for _, r := range list {
		roles = append(roles, *r)
	}
	return roles, nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		RoleID:   u.RoleID,
		RoleName: u.RoleName,
		Active:   u.Active,
	}
}
