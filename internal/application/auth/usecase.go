package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Miguel-Ovalle/almacen-app/internal/application/dto"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain/repository"
	"github.com/Miguel-Ovalle/almacen-app/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login contra usuarios activos.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica correo/password contra usuarios ACTIVOS, genera el JWT con
// id, nombre y rol, y lo retorna junto al usuario. Usuario inexistente,
// inactivo o password incorrecto devuelven el mismo ErrUnauthorized: la
// respuesta no distingue cuál de los tres falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindActiveByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.RoleName, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UserResponse{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			RoleID:   user.RoleID,
			RoleName: user.RoleName,
			Active:   user.Active,
		},
	}, nil
}
