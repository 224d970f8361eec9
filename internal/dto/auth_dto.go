package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type CrearUsuarioRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Nombre   string `json:"nombre"   validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	IsAdmin  bool   `json:"is_admin"`
}

type ActualizarUsuarioRequest struct {
	Nombre   string `json:"nombre"   validate:"omitempty,min=2,max=100"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	IsAdmin  *bool  `json:"is_admin"`
	Activo   *bool  `json:"activo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Nombre  string `json:"nombre"`
	IsAdmin bool   `json:"is_admin"`
	Activo  bool   `json:"activo"`
}

type LoginResponse struct {
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"` // seconds
	User         UsuarioResponse `json:"user"`
}
