package service

import (
	"context"
	"testing"

	"kiosko/internal/apierror"
	"kiosko/internal/config"
	"kiosko/internal/dto"
	"kiosko/internal/model"
	"kiosko/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type stubUsuarioRepo struct {
	rows map[uuid.UUID]model.Usuario
	err  error

	findByEmailCalls int
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{rows: make(map[uuid.UUID]model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if r.err != nil {
		return r.err
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.rows[u.ID] = *u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	r.findByEmailCalls++
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.rows {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context, incluirInactivos bool) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.rows {
		if u.Activo || incluirInactivos {
			out = append(out, u)
		}
	}
	return out, r.err
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	if r.err != nil {
		return r.err
	}
	r.rows[u.ID] = *u
	return nil
}

func (r *stubUsuarioRepo) SetActivo(_ context.Context, id uuid.UUID, activo bool) error {
	if r.err != nil {
		return r.err
	}
	u, ok := r.rows[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Activo = activo
	r.rows[id] = u
	return nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    2,
		RoleCacheMinutes:   5,
	}
}

func seedUsuario(t *testing.T, repo *stubUsuarioRepo, email, password string, admin, activo bool) model.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := model.Usuario{
		ID:           uuid.New(),
		Email:        email,
		Nombre:       "Test",
		PasswordHash: string(hash),
		IsAdmin:      admin,
		Activo:       activo,
	}
	repo.rows[u.ID] = u
	return u
}

func TestLoginExitoso(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUsuario(t, repo, "ana@kiosko.local", "secreta", true, true)
	svc := NewAuthService(repo, testAuthConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@kiosko.local", Password: "secreta"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.True(t, resp.User.IsAdmin)

	claims, err := svc.ValidarToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ana@kiosko.local", claims.Email)
	assert.Equal(t, "access", claims.Tipo)
}

func TestLoginErroresDistinguibles(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUsuario(t, repo, "ana@kiosko.local", "secreta", false, true)
	seedUsuario(t, repo, "baja@kiosko.local", "secreta", false, false)
	svc := NewAuthService(repo, testAuthConfig())

	cases := []struct {
		nombre   string
		email    string
		password string
		detalle  string
	}{
		{"correo invalido", "no-es-un-correo", "x", "El correo electrónico no es válido"},
		{"usuario inexistente", "nadie@kiosko.local", "x", "No existe usuario con este correo electrónico"},
		{"password incorrecta", "ana@kiosko.local", "otra", "Contraseña incorrecta"},
		{"cuenta deshabilitada", "baja@kiosko.local", "secreta", "Esta cuenta ha sido deshabilitada"},
	}
	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			_, err := svc.Login(context.Background(), dto.LoginRequest{Email: tc.email, Password: tc.password})
			require.Error(t, err)
			assert.Equal(t, tc.detalle, err.Error())
		})
	}
}

func TestRefreshEmiteNuevosTokens(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUsuario(t, repo, "ana@kiosko.local", "secreta", false, true)
	svc := NewAuthService(repo, testAuthConfig())

	login, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@kiosko.local", Password: "secreta"})
	require.NoError(t, err)

	renovado, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, renovado.AccessToken)

	// an access token is not accepted as a refresh token
	_, err = svc.Refresh(context.Background(), login.AccessToken)
	require.Error(t, err)
}

func TestEsAdminUsaCache(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUsuario(t, repo, "admin@kiosko.local", "secreta", true, true)
	svc := NewAuthService(repo, testAuthConfig())

	admin, err := svc.EsAdmin(context.Background(), "admin@kiosko.local")
	require.NoError(t, err)
	assert.True(t, admin)
	primera := repo.findByEmailCalls

	// second resolution is served from the role cache
	admin, err = svc.EsAdmin(context.Background(), "admin@kiosko.local")
	require.NoError(t, err)
	assert.True(t, admin)
	assert.Equal(t, primera, repo.findByEmailCalls)
}

func TestCrearUsuarioDuplicado(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUsuario(t, repo, "ana@kiosko.local", "secreta", false, true)
	svc := NewAuthService(repo, testAuthConfig())

	_, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Email: "ana@kiosko.local", Nombre: "Ana", Password: "123456",
	})
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}

func TestDesactivarUsuarioInvalidaRol(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := seedUsuario(t, repo, "admin@kiosko.local", "secreta", true, true)
	svc := NewAuthService(repo, testAuthConfig())

	admin, err := svc.EsAdmin(context.Background(), u.Email)
	require.NoError(t, err)
	require.True(t, admin)

	require.NoError(t, svc.DesactivarUsuario(context.Background(), u.ID, "otro@kiosko.local"))
	assert.False(t, repo.rows[u.ID].Activo)

	// the cached admin flag was dropped with the account
	repo.rows[u.ID] = model.Usuario{ID: u.ID, Email: u.Email, IsAdmin: false, Activo: false}
	admin, err = svc.EsAdmin(context.Background(), u.Email)
	require.NoError(t, err)
	assert.False(t, admin)
}

func TestActualizarUsuarioReactivaCuenta(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := seedUsuario(t, repo, "ana@kiosko.local", "secreta", false, true)
	svc := NewAuthService(repo, testAuthConfig())

	require.NoError(t, svc.DesactivarUsuario(context.Background(), u.ID, "admin@kiosko.local"))
	require.False(t, repo.rows[u.ID].Activo)

	activo := true
	resp, err := svc.ActualizarUsuario(context.Background(), u.ID, dto.ActualizarUsuarioRequest{
		Activo: &activo,
	})
	require.NoError(t, err)
	assert.True(t, resp.Activo)
	assert.True(t, repo.rows[u.ID].Activo)
}

func TestDesactivarUsuarioPropiaCuenta(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := seedUsuario(t, repo, "admin@kiosko.local", "secreta", true, true)
	svc := NewAuthService(repo, testAuthConfig())

	err := svc.DesactivarUsuario(context.Background(), u.ID, u.Email)
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
	assert.True(t, repo.rows[u.ID].Activo)
}
