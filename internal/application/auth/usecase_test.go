package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Miguel-Ovalle/almacen-app/internal/application/auth"
	"github.com/Miguel-Ovalle/almacen-app/internal/application/dto"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain"
	"github.com/Miguel-Ovalle/almacen-app/internal/domain/entity"
	pkgjwt "github.com/Miguel-Ovalle/almacen-app/pkg/jwt"
)

const testSecret = "auth-unit-test-secret"

// fakeUserRepo solo implementa la búsqueda por correo que usa el login.
type fakeUserRepo struct {
	users map[string]*entity.User // por email, solo activos
}

func (r *fakeUserRepo) Create(*entity.User) error { return nil }

func (r *fakeUserRepo) GetByID(int64) (*entity.User, error) { return nil, nil }

func (r *fakeUserRepo) Update(*entity.User) error { return nil }

func (r *fakeUserRepo) SetActive(int64, bool) error { return nil }

func (r *fakeUserRepo) List() ([]*entity.User, error) { return nil, nil }

func (r *fakeUserRepo) Delete(int64) error { return nil }

func (r *fakeUserRepo) FindActiveByEmail(email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok || !u.Active {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func newAuthUC(t *testing.T, users ...*entity.User) *auth.AuthUseCase {
	t.Helper()
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, u := range users {
		repo.users[u.Email] = u
	}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "almacen-app-test",
	})
}

func userWithPassword(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID: 7, Name: "Ana", Email: "ana@ejemplo.com",
		PasswordHash: string(hash), RoleID: 2, RoleName: entity.RoleAlmacenista, Active: true,
	}
}

func TestLogin_Exitoso(t *testing.T) {
	uc := newAuthUC(t, userWithPassword(t, "secreta123"))

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@ejemplo.com", Password: "secreta123"})
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.User.ID)
	assert.Equal(t, entity.RoleAlmacenista, resp.User.RoleName)

	// El token debe llevar id, nombre y rol del usuario.
	userID, name, role, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
	assert.Equal(t, "Ana", name)
	assert.Equal(t, entity.RoleAlmacenista, role)
}

func TestLogin_CorreoNormalizado(t *testing.T) {
	uc := newAuthUC(t, userWithPassword(t, "secreta123"))

	_, err := uc.Login(dto.LoginRequest{Email: "  ANA@Ejemplo.com ", Password: "secreta123"})
	assert.NoError(t, err)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := newAuthUC(t, userWithPassword(t, "secreta123"))

	_, err := uc.Login(dto.LoginRequest{Email: "ana@ejemplo.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@ejemplo.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	u := userWithPassword(t, "secreta123")
	u.Active = false
	uc := newAuthUC(t, u)

	// Mismo error que con password incorrecto: el login no revela cuál falló.
	_, err := uc.Login(dto.LoginRequest{Email: "ana@ejemplo.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EntradaVacia(t *testing.T) {
	uc := newAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@ejemplo.com", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
