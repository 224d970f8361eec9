package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"kiosko/internal/apierror"
	"kiosko/internal/config"
	"kiosko/internal/dto"
	"kiosko/internal/model"
	"kiosko/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Claims carried inside access and refresh tokens.
type Claims struct {
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
	Nombre  string `json:"nombre"`
	IsAdmin bool   `json:"is_admin"`
	Tipo    string `json:"tipo"` // access | refresh
	jwt.RegisteredClaims
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	ValidarToken(tokenString string) (*Claims, error)
	// EsAdmin resolves the admin flag for an email, cached for a few minutes
	// so the users table is not consulted on every request.
	EsAdmin(ctx context.Context, email string) (bool, error)

	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context, incluirInactivos bool) ([]dto.UsuarioResponse, error)
	DesactivarUsuario(ctx context.Context, id uuid.UUID, solicitante string) error
}

type authService struct {
	repo  repository.UsuarioRepository
	cfg   *config.Config
	roles *gocache.Cache
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	ttl := time.Duration(cfg.RoleCacheMinutes) * time.Minute
	return &authService{
		repo:  repo,
		cfg:   cfg,
		roles: gocache.New(ttl, 2*ttl),
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, apierror.Invalid("El correo electrónico no es válido")
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("No existe usuario con este correo electrónico")
		}
		return nil, apierror.Store("Error al consultar usuario", err)
	}
	if !u.Activo {
		return nil, apierror.Conflict("Esta cuenta ha sido deshabilitada")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.Invalid("Contraseña incorrecta")
	}
	return s.emitirTokens(u)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	claims, err := s.ValidarToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Tipo != "refresh" {
		return nil, apierror.Invalid("El token proporcionado no es un token de refresco")
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, apierror.Invalid("Token inválido")
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("No existe usuario con este correo electrónico")
		}
		return nil, apierror.Store("Error al consultar usuario", err)
	}
	if !u.Activo {
		return nil, apierror.Conflict("Esta cuenta ha sido deshabilitada")
	}
	return s.emitirTokens(u)
}

func (s *authService) ValidarToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apierror.Invalid("Token inválido o expirado")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, apierror.Invalid("Token inválido o expirado")
	}
	return claims, nil
}

func (s *authService) EsAdmin(ctx context.Context, email string) (bool, error) {
	if v, ok := s.roles.Get(email); ok {
		return v.(bool), nil
	}
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, apierror.Store("Error al consultar usuario", err)
	}
	s.roles.SetDefault(email, u.IsAdmin)
	return u.IsAdmin, nil
}

func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apierror.Conflict("Ya existe un usuario con este correo electrónico")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.Store("Error al consultar usuario", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apierror.Store("Error al generar credenciales", err)
	}
	u := &model.Usuario{
		Email:        req.Email,
		Nombre:       req.Nombre,
		PasswordHash: string(hash),
		IsAdmin:      req.IsAdmin,
		Activo:       true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, apierror.Store("Error al crear usuario", err)
	}
	return aUsuarioResponse(u), nil
}

func (s *authService) ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("El usuario no existe")
		}
		return nil, apierror.Store("Error al consultar usuario", err)
	}

	emailAnterior := u.Email
	if req.Nombre != "" {
		u.Nombre = req.Nombre
	}
	if req.Email != "" {
		u.Email = req.Email
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apierror.Store("Error al generar credenciales", err)
		}
		u.PasswordHash = string(hash)
	}
	if req.IsAdmin != nil {
		u.IsAdmin = *req.IsAdmin
	}
	if req.Activo != nil {
		// reactivation path: a deactivated account comes back through here
		u.Activo = *req.Activo
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, apierror.Store("Error al actualizar usuario", err)
	}
	s.roles.Delete(emailAnterior)
	s.roles.Delete(u.Email)
	return aUsuarioResponse(u), nil
}

func (s *authService) ListarUsuarios(ctx context.Context, incluirInactivos bool) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.repo.List(ctx, incluirInactivos)
	if err != nil {
		return nil, apierror.Store("Error al listar usuarios", err)
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, *aUsuarioResponse(&usuarios[i]))
	}
	return out, nil
}

func (s *authService) DesactivarUsuario(ctx context.Context, id uuid.UUID, solicitante string) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("El usuario no existe")
		}
		return apierror.Store("Error al consultar usuario", err)
	}
	if u.Email == solicitante {
		return apierror.Conflict("No puedes desactivar tu propia cuenta")
	}
	if err := s.repo.SetActivo(ctx, id, false); err != nil {
		return apierror.Store("Error al desactivar usuario", err)
	}
	s.roles.Delete(u.Email)
	return nil
}

func (s *authService) emitirTokens(u *model.Usuario) (*dto.LoginResponse, error) {
	expAccess := time.Duration(s.cfg.JWTExpirationHours) * time.Hour
	access, err := s.firmar(u, "access", expAccess)
	if err != nil {
		return nil, apierror.Store("Error al generar token", err)
	}
	refresh, err := s.firmar(u, "refresh", time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, apierror.Store("Error al generar token", err)
	}
	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int(expAccess.Seconds()),
		User:         *aUsuarioResponse(u),
	}, nil
}

func (s *authService) firmar(u *model.Usuario, tipo string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  u.ID.String(),
		Email:   u.Email,
		Nombre:  u.Nombre,
		IsAdmin: u.IsAdmin,
		Tipo:    tipo,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func aUsuarioResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:      u.ID.String(),
		Email:   u.Email,
		Nombre:  u.Nombre,
		IsAdmin: u.IsAdmin,
		Activo:  u.Activo,
	}
}
